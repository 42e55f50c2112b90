package model

import "time"

// TransferKind describes the ledger operation behind a record.
type TransferKind string

var (
	// TransferKindValue marks a plain native value transfer.
	TransferKindValue TransferKind = "TransferContract"
	// TransferKindOther marks any other contract call (token transfers, votes, freezes...).
	TransferKindOther TransferKind = "other"
)

// Outcome is the execution result reported by the ledger.
type Outcome string

var (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// RawTransferRecord is one transaction as returned by the ledger query API.
type RawTransferRecord struct {
	ID         string
	Kind       TransferKind
	Sender     Address
	Recipient  Address
	Amount     int64
	Outcome    Outcome
	OccurredAt time.Time
}
