package model

import "time"

// Direction is the flow of value relative to the viewer.
type Direction string

var (
	Incoming Direction = "incoming"
	Outgoing Direction = "outgoing"
)

// Category is the business meaning assigned to a transfer.
type Category string

var (
	CategoryEntryFee Category = "Entry Fee"
	CategoryWithdraw Category = "Withdraw"
	CategoryPrize    Category = "Prize"
	CategoryDeposit  Category = "Deposit"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryEntryFee, CategoryWithdraw, CategoryPrize, CategoryDeposit}

// EntryStatus is the display status of a classified entry.
type EntryStatus string

var (
	StatusCompleted EntryStatus = "Completed"
	StatusFailed    EntryStatus = "Failed"
	// StatusPending marks a locally submitted payment not yet seen on the ledger.
	StatusPending EntryStatus = "Pending"
)

// ClassifiedEntry is a transfer tagged for display and aggregation.
type ClassifiedEntry struct {
	Sequence         int         `json:"no"`
	Category         Category    `json:"type"`
	Direction        Direction   `json:"direction"`
	SignedAmount     int64       `json:"amount_sun"`
	Status           EntryStatus `json:"status"`
	TxID             string      `json:"tx_id"`
	ShortID          string      `json:"short_id"`
	DisplayTimestamp string      `json:"timestamp"`
	OccurredAt       time.Time   `json:"occurred_at"`
}

// AbsAmount returns the unsigned native amount of the entry.
func (e ClassifiedEntry) AbsAmount() int64 {
	if e.SignedAmount < 0 {
		return -e.SignedAmount
	}
	return e.SignedAmount
}
