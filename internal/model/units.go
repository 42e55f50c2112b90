// Package model defines domain models for wallet reconciliation and payments.
package model

import "github.com/shopspring/decimal"

// Address is a base58 TRON account address (T...).
type Address string

// SunPerTRX is the number of indivisible native units (sun) in one display unit.
const SunPerTRX int64 = 1_000_000

// Asset identifies the native currency on the quote provider side.
type Asset string

var (
	// TRX is the native TRON asset.
	TRX Asset = "tron"
)

var sunScale = decimal.NewFromInt(SunPerTRX)

// SunToTRX converts native units to display units without precision loss.
func SunToTRX(sun int64) decimal.Decimal {
	return decimal.NewFromInt(sun).Div(sunScale)
}

// TRXToSun converts display units to native units rounding to the nearest whole sun.
func TRXToSun(trx decimal.Decimal) int64 {
	return trx.Mul(sunScale).Round(0).IntPart()
}
