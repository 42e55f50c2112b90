package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the consistent view published after a successful refresh.
type Snapshot struct {
	Address       Address           `json:"address"`
	BalanceNative int64             `json:"balance_sun"`
	BalanceFiat   decimal.Decimal   `json:"balance_fiat"`
	Rate          ExchangeRate      `json:"rate"`
	TopEntries    []ClassifiedEntry `json:"top_entries"`
	Pending       []ClassifiedEntry `json:"pending"`
	Aggregate     PeriodAggregate   `json:"aggregate"`
	WindowSize    int               `json:"window_size"`
	RefreshedAt   time.Time         `json:"refreshed_at"`
}
