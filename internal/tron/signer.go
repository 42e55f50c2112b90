package tron

import (
	"context"
	"crypto/ecdsa"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fbsobreira/gotron-sdk/pkg/address"
	"github.com/fbsobreira/gotron-sdk/pkg/proto/core"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

// Approver is asked to confirm every transaction before it is signed.
// Returning false declines the signature.
type Approver func(ctx context.Context, tx *model.UnsignedTx) (bool, error)

// ApproveAll confirms every transaction.
func ApproveAll(context.Context, *model.UnsignedTx) (bool, error) {
	return true, nil
}

// SpendingCap confirms transfers of at most maxTRX display units.
func SpendingCap(maxTRX decimal.Decimal) Approver {
	limit := model.TRXToSun(maxTRX)
	return func(_ context.Context, tx *model.UnsignedTx) (bool, error) {
		return tx.AmountSun <= limit, nil
	}
}

// KeySigner signs TRON transactions with a local secp256k1 key.
type KeySigner struct {
	key     *ecdsa.PrivateKey
	addr    model.Address
	approve Approver
	logger  *zap.Logger
}

// NewKeySigner parses a hex encoded private key. A nil approver confirms everything.
func NewKeySigner(privateKeyHex string, approve Approver, logger *zap.Logger) (*KeySigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid private key: %w", model.ErrConfiguration, err)
	}
	if approve == nil {
		approve = ApproveAll
	}
	addr := model.Address(address.PubkeyToAddress(key.PublicKey).String())
	return &KeySigner{
		key:     key,
		addr:    addr,
		approve: approve,
		logger:  logger.With(zap.String("address", string(addr))),
	}, nil
}

// Address returns the base58 address derived from the key.
func (s *KeySigner) Address() model.Address {
	return s.addr
}

// Sign asks the approver and signs the sha256 digest of the raw transaction data.
func (s *KeySigner) Sign(ctx context.Context, tx *model.UnsignedTx) (*model.SignedTx, error) {
	if tx == nil {
		return nil, fmt.Errorf("%w: nil transaction", model.ErrSign)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrSign, err)
	}

	ok, err := s.approve(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: approval: %w", model.ErrSign, err)
	}
	if !ok {
		s.logger.Info("signature declined", zap.String("tx_id", tx.TxID), zap.Int64("amount_sun", tx.AmountSun))
		return nil, model.ErrUserRejected
	}

	var coreTx core.Transaction
	if err := proto.Unmarshal(tx.Payload, &coreTx); err != nil {
		return nil, fmt.Errorf("%w: decode transaction: %w", model.ErrSign, err)
	}
	rawData, err := proto.Marshal(coreTx.GetRawData())
	if err != nil {
		return nil, fmt.Errorf("%w: marshal raw data: %w", model.ErrSign, err)
	}
	hash := sha256.Sum256(rawData)

	signature, err := crypto.Sign(hash[:], s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrSign, err)
	}
	coreTx.Signature = [][]byte{signature}

	payload, err := proto.Marshal(&coreTx)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal signed transaction: %w", model.ErrSign, err)
	}
	return &model.SignedTx{TxID: tx.TxID, Payload: payload}, nil
}
