package models

// MenuRow is one record from the menu sheet. Price and Open keep the raw cell
// value (number, bool or string) so the normalizer decides how to read them.
type MenuRow struct {
	Category string      `json:"category" firestore:"category"`
	Name     string      `json:"name" firestore:"name"`
	Price    interface{} `json:"price" firestore:"price"`
	Size     string      `json:"size" firestore:"size"`
	Open     interface{} `json:"open" firestore:"open"`
}

type SizeOption struct {
	Label string `json:"label"`
	Price int64  `json:"price"`
}

type MenuItem struct {
	Name         string       `json:"name"`
	Price        int64        `json:"price"`
	Sizes        []SizeOption `json:"sizes,omitempty"`
	SelectedSize *int         `json:"selectedSize,omitempty"`
}

type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// SeasoningOptions lists the fixed choices offered by the ordering page.
type SeasoningOptions struct {
	Spiciness []string `json:"spiciness"`
	Powder    []string `json:"powder"`
	Toppings  []string `json:"toppings"`
}

type Menu struct {
	Categories []MenuCategory   `json:"categories"`
	Seasoning  SeasoningOptions `json:"seasoning"`
	Interval   int              `json:"interval"`
	Opened     bool             `json:"opened"`
}
