// Package transport exposes the dashboard HTTP API.
package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/payment"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// SnapshotSource serves reconciled dashboard data.
	SnapshotSource interface {
		Snapshot() (model.Snapshot, bool)
		LastError() error
		Refresh(ctx context.Context) (model.Snapshot, error)
	}

	// PaymentSubmitter starts entry fee and withdrawal payments.
	PaymentSubmitter interface {
		Submit(ctx context.Context) (*payment.Intent, error)
		Withdraw(ctx context.Context, recipient model.Address, amountTRX decimal.Decimal) (*payment.Intent, error)
		Active() bool
	}

	// WalletControl exposes the connection state of the wallet.
	WalletControl interface {
		Connected() bool
		Disconnect()
	}

	// AddressParser validates a user supplied address and returns its canonical form.
	AddressParser func(raw string) (model.Address, error)

	// Metrics observes served requests.
	Metrics interface {
		ObserveRequest(method, route string, code int, started time.Time)
	}
)
