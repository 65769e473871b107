package models

import "github.com/shopspring/decimal"

type Customer struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	PickupTime string `json:"pickupTime"`
}

type OrderItem struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Size     string `json:"size"`
}

type Seasoning struct {
	Spiciness string   `json:"spiciness" binding:"required"`
	Powder    string   `json:"powder"`
	Toppings  []string `json:"toppings"`
	Notes     string   `json:"notes"`
}

type Order struct {
	Customer  Customer        `json:"customer"`
	Items     []OrderItem     `json:"items" binding:"required,min=1,dive"`
	Seasoning Seasoning       `json:"seasoning"`
	Total     decimal.Decimal `json:"total"`
}

// RawOrder is a preformatted order text pushed as-is.
type RawOrder struct {
	Order string `json:"order" binding:"required"`
}
