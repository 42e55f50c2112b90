// Package tron implements the wallet bridge and ledger query against TRON.
package tron

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fbsobreira/gotron-sdk/pkg/proto/api"
	"github.com/fbsobreira/gotron-sdk/pkg/proto/core"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

const (
	accountNotFound     = "account not found"
	balanceInsufficient = "balance is not sufficient"
)

// Bridge builds, signs and broadcasts native transfers through a TRON node.
type Bridge struct {
	node    NodeClient
	signer  Signer
	metrics Metrics
	logger  *zap.Logger
}

// NewBridge constructs a Bridge.
func NewBridge(node NodeClient, signer Signer, metrics Metrics, logger *zap.Logger) *Bridge {
	return &Bridge{
		node:    node,
		signer:  signer,
		metrics: metrics,
		logger:  logger.Named("tron_bridge"),
	}
}

// Address returns the signer's account.
func (b *Bridge) Address(ctx context.Context) (model.Address, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return b.signer.Address(), nil
}

// Balance returns the native balance of addr in sun. Unknown accounts hold zero.
func (b *Bridge) Balance(ctx context.Context, addr model.Address) (balance int64, err error) {
	started := time.Now()
	defer func() {
		b.observe("get_account", err, started)
	}()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	account, err := b.node.GetAccount(string(addr))
	if err != nil {
		if strings.Contains(err.Error(), accountNotFound) {
			b.logger.Debug("account not found, zero balance", zap.String("address", string(addr)))
			return 0, nil
		}
		return 0, fmt.Errorf("get account %s: %w", addr, err)
	}
	return account.GetBalance(), nil
}

// BuildTransfer asks the node to create an unsigned native transfer.
func (b *Bridge) BuildTransfer(ctx context.Context, to model.Address, amountSun int64, from model.Address) (utx *model.UnsignedTx, err error) {
	started := time.Now()
	defer func() {
		b.observe("transfer", err, started)
	}()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrBuild, err)
	}
	if amountSun <= 0 {
		return nil, fmt.Errorf("%w: non-positive amount %d", model.ErrBuild, amountSun)
	}

	ext, err := b.node.Transfer(string(from), string(to), amountSun)
	if err != nil {
		return nil, buildError(err.Error(), err)
	}
	if ext == nil || ext.GetTransaction() == nil {
		return nil, fmt.Errorf("%w: empty transaction returned", model.ErrBuild)
	}
	if res := ext.GetResult(); res != nil && (!res.GetResult() || res.GetCode() != api.Return_SUCCESS) {
		return nil, buildError(string(res.GetMessage()), nil)
	}

	txID, err := transactionID(ext.GetTransaction())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrBuild, err)
	}
	payload, err := proto.Marshal(ext.GetTransaction())
	if err != nil {
		return nil, fmt.Errorf("%w: marshal transaction: %w", model.ErrBuild, err)
	}

	b.logger.Debug("transfer built",
		zap.String("tx_id", txID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.Int64("amount_sun", amountSun),
	)
	return &model.UnsignedTx{
		TxID:      txID,
		From:      from,
		To:        to,
		AmountSun: amountSun,
		Payload:   payload,
	}, nil
}

// Sign delegates to the signer.
func (b *Bridge) Sign(ctx context.Context, tx *model.UnsignedTx) (*model.SignedTx, error) {
	return b.signer.Sign(ctx, tx)
}

// Broadcast submits a signed transaction. A rejected transaction is reported through the
// result, transport failures through the error.
func (b *Bridge) Broadcast(ctx context.Context, tx *model.SignedTx) (result model.BroadcastResult, err error) {
	started := time.Now()
	defer func() {
		b.observe("broadcast", err, started)
	}()

	if tx == nil {
		return model.BroadcastResult{}, fmt.Errorf("%w: nil transaction", model.ErrBroadcast)
	}
	if err := ctx.Err(); err != nil {
		return model.BroadcastResult{}, fmt.Errorf("%w: %w", model.ErrBroadcast, err)
	}

	var coreTx core.Transaction
	if err := proto.Unmarshal(tx.Payload, &coreTx); err != nil {
		return model.BroadcastResult{}, fmt.Errorf("%w: decode transaction: %w", model.ErrBroadcast, err)
	}

	ret, err := b.node.Broadcast(&coreTx)
	if ret == nil {
		if err == nil {
			err = errors.New("empty response")
		}
		return model.BroadcastResult{}, fmt.Errorf("%w: %w", model.ErrBroadcast, err)
	}

	result = model.BroadcastResult{
		Result:  ret.GetResult() && ret.GetCode() == api.Return_SUCCESS,
		TxID:    tx.TxID,
		Message: string(ret.GetMessage()),
	}
	if !result.Result {
		b.logger.Warn("broadcast rejected",
			zap.String("tx_id", tx.TxID),
			zap.String("code", ret.GetCode().String()),
			zap.String("message", result.Message),
		)
	}
	return result, nil
}

// Close stops the node connection.
func (b *Bridge) Close() {
	b.node.Stop()
}

func (b *Bridge) observe(operation string, err error, started time.Time) {
	if b.metrics == nil {
		return
	}
	b.metrics.Observe(operation, err, started)
}

func buildError(message string, cause error) error {
	err := fmt.Errorf("%w: %s", model.ErrBuild, message)
	if cause != nil {
		err = fmt.Errorf("%w: %w", model.ErrBuild, cause)
	}
	if IsInsufficientBalance(message) {
		return fmt.Errorf("%w: %w", model.ErrInsufficientFunds, err)
	}
	return err
}

// IsInsufficientBalance reports whether a node message describes a low balance.
func IsInsufficientBalance(message string) bool {
	return strings.Contains(strings.ToLower(message), balanceInsufficient)
}

func transactionID(tx *core.Transaction) (string, error) {
	rawData, err := proto.Marshal(tx.GetRawData())
	if err != nil {
		return "", fmt.Errorf("marshal raw data: %w", err)
	}
	hash := sha256.Sum256(rawData)
	return hex.EncodeToString(hash[:]), nil
}
