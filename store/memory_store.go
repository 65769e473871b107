package store

import (
	"context"
	"sync"

	"ShopOrder/models"
)

// MemoryStore keeps everything in process. Used by tests and STORE_BACKEND=memory.
type MemoryStore struct {
	mu     sync.RWMutex
	rows   []models.MenuRow
	cells  map[Cell]interface{}
	writes int
	// Err, when set, is returned by every call.
	Err error
}

func NewMemoryStore(rows []models.MenuRow) *MemoryStore {
	return &MemoryStore{
		rows:  rows,
		cells: make(map[Cell]interface{}),
	}
}

func (s *MemoryStore) MenuRows(ctx context.Context) ([]models.MenuRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	rows := make([]models.MenuRow, len(s.rows))
	copy(rows, s.rows)
	return rows, nil
}

func (s *MemoryStore) ReadCell(ctx context.Context, cell Cell) (interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.cells[cell], nil
}

func (s *MemoryStore) WriteCell(ctx context.Context, cell Cell, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.cells[cell] = value
	s.writes++
	return nil
}

// SetRaw stores a native value, such as a bool, the way a spreadsheet cell may hold it.
func (s *MemoryStore) SetRaw(cell Cell, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells[cell] = value
}

// SetRows replaces the menu rows.
func (s *MemoryStore) SetRows(rows []models.MenuRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = rows
}

// Writes counts successful WriteCell calls.
func (s *MemoryStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
