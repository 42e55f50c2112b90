package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
	"github.com/shopspring/decimal"
)

// Phase is a state of the payment state machine.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseQuotingPrice Phase = "quoting_price"
	PhaseBuilding     Phase = "building"
	PhaseSigning      Phase = "signing"
	PhaseBroadcasting Phase = "broadcasting"
	PhaseSucceeded    Phase = "succeeded"
	PhaseFailed       Phase = "failed"
)

// Terminal reports whether no transition leaves the phase.
func (p Phase) Terminal() bool {
	return p == PhaseSucceeded || p == PhaseFailed
}

// Kind names what an intent pays for.
type Kind string

const (
	KindEntryFee Kind = "entry_fee"
	KindWithdraw Kind = "withdraw"
)

// Reason classifies a failed intent.
type Reason string

const (
	ReasonConfiguration    Reason = "configuration"
	ReasonPriceUnavailable Reason = "price_unavailable"
	ReasonBuild            Reason = "build_error"
	ReasonUserRejected     Reason = "user_rejected"
	ReasonSign             Reason = "sign_error"
	ReasonBroadcast        Reason = "broadcast_error"
	ReasonInFlight         Reason = "in_flight"
	ReasonUnknown          Reason = "unknown"
)

// Failure is the terminal error of an intent.
type Failure struct {
	Reason Reason
	Phase  Phase
	Err    error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("payment failed while %s (%s): %v", f.Phase, f.Reason, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Intent is one submission attempt, from quoting to a terminal phase. Withdrawals carry no
// fiat fee and skip quoting.
type Intent struct {
	ID                   string             `json:"id"`
	Kind                 Kind               `json:"kind"`
	FiatFee              decimal.Decimal    `json:"fiat_fee"`
	Recipient            model.Address      `json:"recipient"`
	From                 model.Address      `json:"from"`
	Rate                 model.ExchangeRate `json:"rate"`
	ResolvedNativeAmount int64              `json:"resolved_amount_sun"`
	Phase                Phase              `json:"phase"`
	History              []Phase            `json:"history"`
	TxID                 string             `json:"tx_id,omitempty"`
	Failure              *Failure           `json:"-"`
	StartedAt            time.Time          `json:"started_at"`
	FinishedAt           time.Time          `json:"finished_at"`
}

// ReasonOf extracts the failure reason carried by err.
func ReasonOf(err error) Reason {
	var failure *Failure
	switch {
	case err == nil:
		return ""
	case errors.As(err, &failure):
		return failure.Reason
	case errors.Is(err, model.ErrPaymentInFlight):
		return ReasonInFlight
	case errors.Is(err, model.ErrConfiguration), errors.Is(err, model.ErrWalletDisconnected):
		return ReasonConfiguration
	default:
		return ReasonUnknown
	}
}

// UserMessage maps a payment error to the text shown to the payer.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrInsufficientFunds):
		return "Insufficient TRX balance"
	case errors.Is(err, model.ErrUserRejected):
		return "Transaction rejected in wallet"
	case errors.Is(err, model.ErrBroadcast):
		return "Broadcast failed"
	default:
		return "Payment failed"
	}
}
