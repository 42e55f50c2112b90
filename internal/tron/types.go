package tron

import (
	"context"
	"time"

	"github.com/fbsobreira/gotron-sdk/pkg/proto/api"
	"github.com/fbsobreira/gotron-sdk/pkg/proto/core"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient is the subset of the gotron-sdk gRPC client used by the bridge.
	NodeClient interface {
		GetAccount(addr string) (*core.Account, error)
		Transfer(from, toAddress string, amount int64) (*api.TransactionExtention, error)
		Broadcast(tx *core.Transaction) (*api.Return, error)
		Stop()
	}

	// Signer produces signatures on behalf of the wallet holder.
	Signer interface {
		Address() model.Address
		Sign(ctx context.Context, tx *model.UnsignedTx) (*model.SignedTx, error)
	}

	// Metrics records node and ledger API call outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
