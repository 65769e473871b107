package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"ShopOrder/models"
	"ShopOrder/store"
)

// PowderUnselected is the powder choice meaning "no powder".
const PowderUnselected = "不加粉"

// FixedOptions are the seasoning choices shown on the ordering page.
var FixedOptions = models.SeasoningOptions{
	Spiciness: []string{"不辣", "小辣", "中辣", "大辣"},
	Powder:    []string{PowderUnselected, "胡椒粉", "梅粉", "海苔粉", "咖哩粉"},
	Toppings:  []string{"九層塔", "蒜頭", "洋蔥", "辣椒"},
}

type MenuService struct {
	Store    store.Store
	Settings *SettingsService
}

func NewMenuService(s store.Store, settings *SettingsService) *MenuService {
	return &MenuService{Store: s, Settings: settings}
}

// GetMenu re-reads the sheet and returns the menu with the current shop settings.
func (s *MenuService) GetMenu(ctx context.Context) (*models.Menu, error) {
	rows, err := s.Store.MenuRows(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := NormalizeMenu(rows)
	if err != nil {
		return nil, err
	}
	interval, err := s.Settings.ReadInterval(ctx)
	if err != nil {
		return nil, err
	}
	opened, err := s.Settings.ReadOpenFlag(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Menu{
		Categories: categories,
		Seasoning:  FixedOptions,
		Interval:   interval,
		Opened:     opened,
	}, nil
}

// NormalizeMenu groups open rows by category, keeping first-seen category order
// and row order inside each category.
func NormalizeMenu(rows []models.MenuRow) ([]models.MenuCategory, error) {
	categories := []models.MenuCategory{}
	index := make(map[string]int)

	for i, row := range rows {
		if !IsTruthy(row.Open) {
			continue
		}
		item, err := normalizeRow(i+1, row)
		if err != nil {
			return nil, err
		}

		category := strings.TrimSpace(row.Category)
		pos, ok := index[category]
		if !ok {
			pos = len(categories)
			index[category] = pos
			categories = append(categories, models.MenuCategory{Name: category, Items: []models.MenuItem{}})
		}
		categories[pos].Items = append(categories[pos].Items, item)
	}
	return categories, nil
}

func normalizeRow(line int, row models.MenuRow) (models.MenuItem, error) {
	if strings.TrimSpace(row.Category) == "" {
		return models.MenuItem{}, fmt.Errorf("%w: row %d: category is empty", ErrInvalidData, line)
	}
	name := strings.TrimSpace(row.Name)
	if name == "" {
		return models.MenuItem{}, fmt.Errorf("%w: row %d: name is empty", ErrInvalidData, line)
	}

	price, err := parseInteger(row.Price)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: row %d (%s): price: %v", ErrInvalidData, line, name, err)
	}
	item := models.MenuItem{Name: name, Price: price}

	spec := strings.TrimSpace(row.Size)
	if spec == "" || !strings.Contains(spec, "/") {
		return item, nil
	}
	for _, segment := range strings.Split(spec, "/") {
		if strings.TrimSpace(segment) == "" {
			return models.MenuItem{}, fmt.Errorf("%w: row %d (%s): size %q has an empty segment", ErrInvalidData, line, name, spec)
		}
		label, rawPrice, ok := strings.Cut(segment, ":")
		if !ok {
			return models.MenuItem{}, fmt.Errorf("%w: row %d (%s): size %q has no price", ErrInvalidData, line, name, segment)
		}
		sizePrice, err := parseInteger(strings.TrimSpace(rawPrice))
		if err != nil {
			return models.MenuItem{}, fmt.Errorf("%w: row %d (%s): size %q price: %v", ErrInvalidData, line, name, strings.TrimSpace(label), err)
		}
		item.Sizes = append(item.Sizes, models.SizeOption{Label: strings.TrimSpace(label), Price: sizePrice})
	}
	selected := 0
	item.SelectedSize = &selected
	return item, nil
}

// parseInteger accepts the ways a sheet cell can hold a whole number.
func parseInteger(v interface{}) (int64, error) {
	switch t := v.(type) {
	case nil:
		return 0, errors.New("missing")
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) || math.IsNaN(t) {
			return 0, fmt.Errorf("%v is not an integer", t)
		}
		return int64(t), nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, errors.New("missing")
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", s)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported value %v", t)
	}
}

// IsTruthy reads a bool cell that may hold a native bool, a number or "true"/"1"/"yes".
func IsTruthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "yes":
			return true
		}
	}
	return false
}
