// Package store is the storage port behind the shop's menu and settings.
package store

import (
	"context"

	"ShopOrder/models"
)

// Cell names one of the scalar settings owned by the shop.
type Cell string

const (
	CellInterval Cell = "interval"
	CellOpen     Cell = "opened"
	CellAdmin    Cell = "admin_user_id"
)

// Store reads menu rows and reads/writes the settings cells.
// ReadCell returns nil for an empty or missing cell.
type Store interface {
	MenuRows(ctx context.Context) ([]models.MenuRow, error)
	ReadCell(ctx context.Context, cell Cell) (interface{}, error)
	WriteCell(ctx context.Context, cell Cell, value string) error
}
