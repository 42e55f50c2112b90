// Package payment drives entry fee and withdrawal payments through quoting, building, signing
// and broadcasting.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/clock"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/wallet"
	"github.com/goodnatureofminers/arena-wallet-backend/pkg/safe"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultTimeout = 2 * time.Minute

	insufficientBalanceMessage = "balance is not sufficient"
)

var sunScale = decimal.NewFromInt(model.SunPerTRX)

// Config holds the business constants of the payment pipeline.
type Config struct {
	FiatFee      decimal.Decimal
	Recipient    model.Address
	Asset        model.Asset
	// ExplorerLink renders the explorer page of a transaction; nil leaves receipts without one.
	ExplorerLink func(txID string) string
	Timeout      time.Duration
}

// Pipeline runs at most one payment intent at a time.
type Pipeline struct {
	wallet  *wallet.Context
	quotes  QuoteProvider
	cfg     Config
	metrics Metrics
	logger  *zap.Logger
	sinks   []ReceiptSink
	now     clock.NowFunc
	newID   func() string

	active atomic.Bool
}

// New builds a Pipeline. Receipts of successful intents are handed to every sink.
func New(w *wallet.Context, quotes QuoteProvider, cfg Config, metrics Metrics, logger *zap.Logger, sinks ...ReceiptSink) *Pipeline {
	if cfg.Asset == "" {
		cfg.Asset = model.TRX
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Pipeline{
		wallet:  w,
		quotes:  quotes,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger.Named("payment"),
		sinks:   sinks,
		now:     clock.UTCNow,
		newID:   uuid.NewString,
	}
}

// Active reports whether an intent is in flight.
func (p *Pipeline) Active() bool {
	return p.active.Load()
}

// Submit pays the configured fiat entry fee to the configured recipient. It never retries;
// on failure the returned error is a *Failure and the intent is returned as well. A submission
// while another intent is active is refused with model.ErrPaymentInFlight.
func (p *Pipeline) Submit(ctx context.Context) (*Intent, error) {
	return p.submit(ctx, request{
		kind:      KindEntryFee,
		recipient: p.cfg.Recipient,
		fiatFee:   p.cfg.FiatFee,
	})
}

// Withdraw sends amountTRX to recipient. The amount is fixed, so the intent skips quoting;
// otherwise it follows Submit.
func (p *Pipeline) Withdraw(ctx context.Context, recipient model.Address, amountTRX decimal.Decimal) (*Intent, error) {
	return p.submit(ctx, request{
		kind:      KindWithdraw,
		recipient: recipient,
		amountTRX: amountTRX,
	})
}

type request struct {
	kind      Kind
	recipient model.Address
	fiatFee   decimal.Decimal
	amountTRX decimal.Decimal
}

func (p *Pipeline) submit(ctx context.Context, req request) (*Intent, error) {
	if !p.active.CompareAndSwap(false, true) {
		p.rejected(ReasonInFlight)
		return nil, model.ErrPaymentInFlight
	}
	defer p.active.Store(false)

	from, bridge, amount, err := p.precondition(req)
	if err != nil {
		p.rejected(ReasonConfiguration)
		p.logger.Warn("payment refused", zap.String("kind", string(req.kind)), zap.Error(err))
		return nil, err
	}

	// Started intents run to a terminal phase regardless of the caller.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.cfg.Timeout)
	defer cancel()

	intent := &Intent{
		ID:                   p.newID(),
		Kind:                 req.kind,
		FiatFee:              req.fiatFee,
		Recipient:            req.recipient,
		From:                 from,
		ResolvedNativeAmount: amount,
		Phase:                PhaseIdle,
		History:              []Phase{PhaseIdle},
		StartedAt:            p.now(),
	}
	logger := p.logger.With(zap.String("intent_id", intent.ID), zap.String("kind", string(intent.Kind)))

	if err := p.run(ctx, intent, bridge, logger); err != nil {
		return intent, err
	}
	p.deliver(ctx, intent, logger)
	return intent, nil
}

// precondition checks the wallet and the request. A withdrawal's native amount is resolved here.
func (p *Pipeline) precondition(req request) (model.Address, wallet.Bridge, int64, error) {
	from, bridge, err := p.wallet.Require()
	if err != nil {
		return "", nil, 0, fmt.Errorf("%w: %w", model.ErrConfiguration, err)
	}
	if req.recipient == "" {
		return "", nil, 0, fmt.Errorf("%w: recipient address is not configured", model.ErrConfiguration)
	}

	switch req.kind {
	case KindEntryFee:
		if !req.fiatFee.IsPositive() {
			return "", nil, 0, fmt.Errorf("%w: fiat fee must be positive", model.ErrConfiguration)
		}
		return from, bridge, 0, nil
	case KindWithdraw:
		amount, err := safe.NativeAmount(req.amountTRX.Mul(sunScale))
		if err != nil {
			return "", nil, 0, fmt.Errorf("%w: withdraw amount %s: %w", model.ErrConfiguration, req.amountTRX, err)
		}
		return from, bridge, amount, nil
	default:
		return "", nil, 0, fmt.Errorf("%w: unknown payment kind %q", model.ErrConfiguration, req.kind)
	}
}

func (p *Pipeline) run(ctx context.Context, intent *Intent, bridge wallet.Bridge, logger *zap.Logger) error {
	if intent.Kind == KindEntryFee {
		p.advance(intent, PhaseQuotingPrice, logger)
		rate, err := p.quotes.CurrentPrice(ctx, p.cfg.Asset)
		if err != nil {
			return p.fail(intent, ReasonPriceUnavailable, ensure(err, model.ErrPriceUnavailable), logger)
		}
		intent.Rate = rate

		amount, err := ResolveNativeAmount(intent.FiatFee, rate.FiatPerUnit)
		if err != nil {
			return p.fail(intent, ReasonPriceUnavailable, err, logger)
		}
		intent.ResolvedNativeAmount = amount
	}
	amount := intent.ResolvedNativeAmount

	p.advance(intent, PhaseBuilding, logger)
	utx, err := bridge.BuildTransfer(ctx, intent.Recipient, amount, intent.From)
	if err != nil {
		return p.fail(intent, ReasonBuild, ensure(err, model.ErrBuild), logger)
	}

	p.advance(intent, PhaseSigning, logger)
	stx, err := bridge.Sign(ctx, utx)
	if err != nil {
		if errors.Is(err, model.ErrUserRejected) {
			return p.fail(intent, ReasonUserRejected, err, logger)
		}
		return p.fail(intent, ReasonSign, ensure(err, model.ErrSign), logger)
	}

	p.advance(intent, PhaseBroadcasting, logger)
	res, err := bridge.Broadcast(ctx, stx)
	if err != nil {
		return p.fail(intent, ReasonBroadcast, ensure(err, model.ErrBroadcast), logger)
	}
	if !res.Result || res.TxID == "" {
		return p.fail(intent, ReasonBroadcast, broadcastError(res), logger)
	}

	intent.TxID = res.TxID
	p.advance(intent, PhaseSucceeded, logger)
	intent.FinishedAt = p.now()
	p.observeIntent(intent, "")
	logger.Info("payment succeeded",
		zap.String("tx_id", intent.TxID),
		zap.Int64("amount_sun", amount),
		zap.String("fiat_fee", intent.FiatFee.String()),
	)
	return nil
}

// ResolveNativeAmount converts a fiat fee to whole sun at fiatPerUnit, rounding half away
// from zero.
func ResolveNativeAmount(fiatFee, fiatPerUnit decimal.Decimal) (int64, error) {
	if !fiatPerUnit.IsPositive() {
		return 0, fmt.Errorf("%w: non-positive price %s", model.ErrPriceUnavailable, fiatPerUnit)
	}
	amount, err := safe.NativeAmount(fiatFee.Mul(sunScale).Div(fiatPerUnit))
	if err != nil {
		return 0, fmt.Errorf("%w: resolve amount: %w", model.ErrPriceUnavailable, err)
	}
	return amount, nil
}

func (p *Pipeline) deliver(ctx context.Context, intent *Intent, logger *zap.Logger) {
	if !p.wallet.Connected() {
		logger.Info("wallet disconnected, receipt discarded", zap.String("tx_id", intent.TxID))
		return
	}

	receipt := model.Receipt{
		IntentID:     intent.ID,
		Kind:         string(intent.Kind),
		TxID:         intent.TxID,
		From:         intent.From,
		To:           intent.Recipient,
		AmountNative: intent.ResolvedNativeAmount,
		AmountTRX:    model.SunToTRX(intent.ResolvedNativeAmount).String(),
		FiatFee:      intent.FiatFee,
		FiatCurrency: intent.Rate.FiatCurrency,
		FiatPerUnit:  intent.Rate.FiatPerUnit,
		Timestamp:    intent.FinishedAt,
	}
	if p.cfg.ExplorerLink != nil {
		receipt.ExplorerURL = p.cfg.ExplorerLink(intent.TxID)
	}

	for _, sink := range p.sinks {
		if err := sink.Publish(ctx, receipt); err != nil {
			logger.Error("publish receipt", zap.String("tx_id", intent.TxID), zap.Error(err))
		}
	}
}

func (p *Pipeline) advance(intent *Intent, phase Phase, logger *zap.Logger) {
	intent.Phase = phase
	intent.History = append(intent.History, phase)
	if p.metrics != nil {
		p.metrics.ObservePhase(string(phase))
	}
	logger.Debug("payment phase", zap.String("phase", string(phase)))
}

func (p *Pipeline) fail(intent *Intent, reason Reason, err error, logger *zap.Logger) error {
	failure := &Failure{Reason: reason, Phase: intent.Phase, Err: err}
	intent.Failure = failure
	p.advance(intent, PhaseFailed, logger)
	intent.FinishedAt = p.now()
	p.observeIntent(intent, reason)
	logger.Warn("payment failed",
		zap.String("reason", string(reason)),
		zap.String("phase", string(failure.Phase)),
		zap.Error(err),
	)
	return failure
}

func (p *Pipeline) observeIntent(intent *Intent, reason Reason) {
	if p.metrics != nil {
		p.metrics.ObserveIntent(string(intent.Phase), string(reason), intent.StartedAt)
	}
}

func (p *Pipeline) rejected(reason Reason) {
	if p.metrics != nil {
		p.metrics.ObserveRejected(string(reason))
	}
}

func broadcastError(res model.BroadcastResult) error {
	msg := res.Message
	if msg == "" {
		msg = "no transaction id returned"
	}
	err := fmt.Errorf("%w: %s", model.ErrBroadcast, msg)
	if strings.Contains(strings.ToLower(res.Message), insufficientBalanceMessage) {
		err = fmt.Errorf("%w: %w", model.ErrInsufficientFunds, err)
	}
	return err
}

func ensure(err, kind error) error {
	if errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
