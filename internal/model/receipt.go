package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is emitted once a payment intent succeeds. Kind is entry_fee or withdraw.
type Receipt struct {
	IntentID     string          `json:"intent_id"`
	Kind         string          `json:"kind"`
	TxID         string          `json:"tx_id"`
	From         Address         `json:"from"`
	To           Address         `json:"to"`
	AmountNative int64           `json:"amount_sun"`
	AmountTRX    string          `json:"amount_trx"`
	FiatFee      decimal.Decimal `json:"fiat_fee"`
	FiatCurrency string          `json:"fiat_currency"`
	FiatPerUnit  decimal.Decimal `json:"fiat_per_unit"`
	ExplorerURL  string          `json:"explorer_url,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}
