package session

import (
	"context"
	"time"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerQuery lists the latest transfers of an account.
	LedgerQuery interface {
		ListTransfers(ctx context.Context, addr model.Address, limit int, onlyConfirmed bool) ([]model.RawTransferRecord, error)
	}

	// QuoteProvider prices the native asset.
	QuoteProvider interface {
		CurrentPrice(ctx context.Context, asset model.Asset) (model.ExchangeRate, error)
		HistoricalPrices(ctx context.Context, asset model.Asset, windowDays int) ([]model.PricePoint, error)
	}

	// Metrics records refresh outcomes.
	Metrics interface {
		ObserveRefresh(err error, started time.Time)
		ObserveSkippedTick()
		ObserveWindow(entries, skipped int)
	}
)
