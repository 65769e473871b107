package store

import (
	"context"
	"fmt"

	"ShopOrder/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	menuCollection     = "menu_items"
	settingsCollection = "settings"
	settingsDoc        = "shop"
)

// FirestoreStore keeps menu rows in the menu_items collection (ordered by their
// "row" field) and the settings cells as fields of settings/shop.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) MenuRows(ctx context.Context) ([]models.MenuRow, error) {
	docs, err := s.client.Collection(menuCollection).OrderBy("row", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", menuCollection, err)
	}

	rows := make([]models.MenuRow, 0, len(docs))
	for _, doc := range docs {
		var row models.MenuRow
		if err := doc.DataTo(&row); err != nil {
			return nil, fmt.Errorf("decode menu row %s: %w", doc.Ref.ID, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *FirestoreStore) ReadCell(ctx context.Context, cell Cell) (interface{}, error) {
	doc, err := s.client.Collection(settingsCollection).Doc(settingsDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("read setting %s: %w", cell, err)
	}
	return doc.Data()[string(cell)], nil
}

func (s *FirestoreStore) WriteCell(ctx context.Context, cell Cell, value string) error {
	_, err := s.client.Collection(settingsCollection).Doc(settingsDoc).
		Set(ctx, map[string]interface{}{string(cell): value}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("write setting %s: %w", cell, err)
	}
	return nil
}
