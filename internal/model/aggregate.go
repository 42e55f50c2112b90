package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a half-open time window [Start, End).
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// PeriodAggregate holds fiat totals of the recent window and period-over-period deltas.
// Totals cover only the bounded history window, never the lifetime of the account.
type PeriodAggregate struct {
	CategorySumFiat  map[Category]decimal.Decimal  `json:"category_sum_fiat"`
	PeriodDelta      map[Category]float64          `json:"period_delta"`
	DirectionSumFiat map[Direction]decimal.Decimal `json:"direction_sum_fiat"`
	DirectionDelta   map[Direction]float64         `json:"direction_delta"`
	BalanceDelta     float64                       `json:"balance_delta"`
	Current          Period                        `json:"current_period"`
	Previous         Period                        `json:"previous_period"`
}
