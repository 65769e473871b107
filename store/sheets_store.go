package store

import (
	"context"
	"fmt"
	"strings"

	"ShopOrder/models"

	"google.golang.org/api/sheets/v4"
)

type SheetsConfig struct {
	SpreadsheetID string
	MenuRange     string
	Cells         map[Cell]string // cell -> A1 notation, e.g. Settings!B1
}

// SheetsStore reads the menu and settings from a Google spreadsheet.
type SheetsStore struct {
	srv    *sheets.Service
	config SheetsConfig
}

func NewSheetsStore(srv *sheets.Service, config SheetsConfig) *SheetsStore {
	return &SheetsStore{srv: srv, config: config}
}

// column header aliases, compared lower-cased
var menuHeaders = map[string][]string{
	"category": {"category", "類別", "分類"},
	"name":     {"name", "品項", "名稱"},
	"price":    {"price", "價格"},
	"size":     {"size", "尺寸", "規格"},
	"open":     {"open", "開放", "上架"},
}

func (s *SheetsStore) MenuRows(ctx context.Context) ([]models.MenuRow, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(s.config.SpreadsheetID, s.config.MenuRange).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read menu range %s: %w", s.config.MenuRange, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	columns, err := mapHeader(resp.Values[0])
	if err != nil {
		return nil, err
	}

	rows := make([]models.MenuRow, 0, len(resp.Values)-1)
	for _, values := range resp.Values[1:] {
		if isBlankRow(values) {
			continue
		}
		cell := func(key string) interface{} {
			idx := columns[key]
			if idx < 0 || idx >= len(values) {
				return nil
			}
			return values[idx]
		}
		rows = append(rows, models.MenuRow{
			Category: cellString(cell("category")),
			Name:     cellString(cell("name")),
			Price:    cell("price"),
			Size:     cellString(cell("size")),
			Open:     cell("open"),
		})
	}
	return rows, nil
}

func (s *SheetsStore) ReadCell(ctx context.Context, cell Cell) (interface{}, error) {
	a1, err := s.cellRange(cell)
	if err != nil {
		return nil, err
	}
	resp, err := s.srv.Spreadsheets.Values.Get(s.config.SpreadsheetID, a1).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read cell %s: %w", a1, err)
	}
	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		return nil, nil
	}
	return resp.Values[0][0], nil
}

func (s *SheetsStore) WriteCell(ctx context.Context, cell Cell, value string) error {
	a1, err := s.cellRange(cell)
	if err != nil {
		return err
	}
	body := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err = s.srv.Spreadsheets.Values.Update(s.config.SpreadsheetID, a1, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write cell %s: %w", a1, err)
	}
	return nil
}

func (s *SheetsStore) cellRange(cell Cell) (string, error) {
	a1, ok := s.config.Cells[cell]
	if !ok || a1 == "" {
		return "", fmt.Errorf("no sheet cell configured for %s", cell)
	}
	return a1, nil
}

func mapHeader(header []interface{}) (map[string]int, error) {
	columns := make(map[string]int, len(menuHeaders))
	for key := range menuHeaders {
		columns[key] = -1
	}
	for idx, raw := range header {
		title := strings.ToLower(strings.TrimSpace(cellString(raw)))
		for key, aliases := range menuHeaders {
			for _, alias := range aliases {
				if title == alias && columns[key] < 0 {
					columns[key] = idx
				}
			}
		}
	}
	// size may be absent; a menu without an open column would hide every row
	for _, key := range []string{"category", "name", "price", "open"} {
		if columns[key] < 0 {
			return nil, fmt.Errorf("menu sheet is missing the %q column", key)
		}
	}
	return columns, nil
}

func isBlankRow(values []interface{}) bool {
	for _, v := range values {
		if strings.TrimSpace(cellString(v)) != "" {
			return false
		}
	}
	return true
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprint(t)
	}
}
