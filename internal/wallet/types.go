package wallet

import (
	"context"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mocks.go -package=mock

type (
	// Bridge is the wallet-side collaborator: account discovery, balance, build/sign/broadcast.
	Bridge interface {
		Address(ctx context.Context) (model.Address, error)
		Balance(ctx context.Context, addr model.Address) (int64, error)
		BuildTransfer(ctx context.Context, to model.Address, amountSun int64, from model.Address) (*model.UnsignedTx, error)
		Sign(ctx context.Context, tx *model.UnsignedTx) (*model.SignedTx, error)
		Broadcast(ctx context.Context, tx *model.SignedTx) (model.BroadcastResult, error)
	}
)
