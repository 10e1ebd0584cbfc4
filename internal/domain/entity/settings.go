package entity

import "github.com/shopspring/decimal"

// Setting is one entry of the key/value settings store.
type Setting struct {
	Key         string
	Value       string
	Description string
}

// ShippingSettings is the shipping policy read on every checkout.
type ShippingSettings struct {
	ShippingCost          decimal.Decimal `json:"shipping_cost"`
	FreeShippingThreshold decimal.Decimal `json:"free_shipping_threshold"`
}
