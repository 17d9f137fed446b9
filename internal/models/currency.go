package models

import "strings"

type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

// ParseCurrency accepts the two supported codes case-insensitively.
func ParseCurrency(s string) (Currency, bool) {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case CurrencyINR:
		return CurrencyINR, true
	case CurrencyUSD:
		return CurrencyUSD, true
	}
	return "", false
}

func (c Currency) Symbol() string {
	if c == CurrencyINR {
		return "₹"
	}
	return "$"
}

// Price holds whole-unit amounts for every supported currency. Catalog prices
// carry no minor units.
type Price struct {
	INR int64 `json:"price_inr" yaml:"price_inr"`
	USD int64 `json:"price_usd" yaml:"price_usd"`
}

func (p Price) In(c Currency) int64 {
	if c == CurrencyINR {
		return p.INR
	}
	return p.USD
}

func (p Price) Valid() bool {
	return p.INR > 0 && p.USD > 0
}
