package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the fiat price of one display unit of an asset.
type ExchangeRate struct {
	Asset        Asset           `json:"asset"`
	FiatCurrency string          `json:"fiat_currency"`
	FiatPerUnit  decimal.Decimal `json:"fiat_per_unit"`
	AsOf         time.Time       `json:"as_of"`
}

// FiatValue returns the fiat value of a native amount.
func (r ExchangeRate) FiatValue(sun int64) decimal.Decimal {
	return SunToTRX(sun).Mul(r.FiatPerUnit)
}

// PricePoint is a single sample of a historical price series.
type PricePoint struct {
	At          time.Time
	FiatPerUnit decimal.Decimal
}
