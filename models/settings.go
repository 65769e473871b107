package models

type ShopSettings struct {
	Interval int  `json:"interval"`
	Opened   bool `json:"opened"`
}

// Pointers let binding tell an absent field from a zero value.
type IntervalRequest struct {
	Interval *int `json:"interval" binding:"required"`
}

type OpenRequest struct {
	Opened *bool `json:"opened" binding:"required"`
}
