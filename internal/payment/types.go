package payment

import (
	"context"
	"time"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// QuoteProvider prices the native asset.
	QuoteProvider interface {
		CurrentPrice(ctx context.Context, asset model.Asset) (model.ExchangeRate, error)
	}

	// ReceiptSink receives receipts of successful payments.
	ReceiptSink interface {
		Publish(ctx context.Context, receipt model.Receipt) error
	}

	// Metrics records pipeline activity.
	Metrics interface {
		ObservePhase(phase string)
		ObserveIntent(phase, reason string, started time.Time)
		ObserveRejected(reason string)
	}
)
