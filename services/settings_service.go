package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ShopOrder/store"
)

// IntervalSuffix is the unit written after the prep interval, e.g. "30分鐘".
const IntervalSuffix = "分鐘"

// SettingsService reads and writes the shop's settings cells. The store is the
// only source of truth; nothing is cached.
type SettingsService struct {
	Store store.Store
}

func NewSettingsService(s store.Store) *SettingsService {
	return &SettingsService{Store: s}
}

// ReadInterval returns the prep interval in minutes, 0 when the cell is empty.
func (s *SettingsService) ReadInterval(ctx context.Context) (int, error) {
	raw, err := s.Store.ReadCell(ctx, store.CellInterval)
	if err != nil {
		return 0, err
	}
	switch t := raw.(type) {
	case nil:
		return 0, nil
	case float64:
		if t < 0 || t != float64(int(t)) {
			return 0, fmt.Errorf("%w: interval %v", ErrInvalidData, t)
		}
		return int(t), nil
	}

	text := strings.TrimSpace(fmt.Sprint(raw))
	text = strings.TrimSpace(strings.TrimSuffix(text, IntervalSuffix))
	if text == "" {
		return 0, nil
	}
	minutes, err := strconv.Atoi(text)
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("%w: interval %q", ErrInvalidData, fmt.Sprint(raw))
	}
	return minutes, nil
}

// WriteInterval stores minutes with the unit suffix. Negative values are rejected before writing.
func (s *SettingsService) WriteInterval(ctx context.Context, minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("%w: interval must be a non-negative integer", ErrInvalidInput)
	}
	return s.Store.WriteCell(ctx, store.CellInterval, strconv.Itoa(minutes)+IntervalSuffix)
}

// ReadOpenFlag reports whether the shop takes orders. An empty cell means open.
func (s *SettingsService) ReadOpenFlag(ctx context.Context) (bool, error) {
	raw, err := s.Store.ReadCell(ctx, store.CellOpen)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return true, nil
	}
	if text, ok := raw.(string); ok && strings.TrimSpace(text) == "" {
		return true, nil
	}
	return IsTruthy(raw), nil
}

func (s *SettingsService) WriteOpenFlag(ctx context.Context, opened bool) error {
	return s.Store.WriteCell(ctx, store.CellOpen, strconv.FormatBool(opened))
}

// RecordAdmin stores the LINE user id last seen following or messaging the bot.
func (s *SettingsService) RecordAdmin(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}
	return s.Store.WriteCell(ctx, store.CellAdmin, userID)
}

// ReadAdmin returns the recorded admin user id, or "" when none was recorded.
func (s *SettingsService) ReadAdmin(ctx context.Context) (string, error) {
	raw, err := s.Store.ReadCell(ctx, store.CellAdmin)
	if err != nil || raw == nil {
		return "", err
	}
	return strings.TrimSpace(fmt.Sprint(raw)), nil
}
