// Package session runs the periodic wallet reconciliation and publishes dashboard snapshots.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/clock"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/ledger"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/wallet"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Config tunes the refresh cycle.
type Config struct {
	Interval        time.Duration
	HistoryLimit    int
	TopEntries      int
	TrendWindowDays int
	Asset           model.Asset
	Thresholds      ledger.Thresholds
	Location        *time.Location
	// PendingTTL bounds how long a submitted payment is shown before the ledger reports it.
	PendingTTL      time.Duration
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = DefaultHistoryLimit
	}
	if c.TopEntries <= 0 {
		c.TopEntries = DefaultTopEntries
	}
	if c.TrendWindowDays <= 0 {
		c.TrendWindowDays = DefaultTrendWindowDays
	}
	if c.Asset == "" {
		c.Asset = model.TRX
	}
	if c.Thresholds == (ledger.Thresholds{}) {
		c.Thresholds = ledger.DefaultThresholds()
	}
	if c.Location == nil {
		c.Location = time.UTC
	}
	if c.PendingTTL <= 0 {
		c.PendingTTL = c.Interval * DefaultPendingIntervals
	}
	return c
}

// Session owns the refresh cycle of one connected wallet.
type Session struct {
	wallet     *wallet.Context
	ledger     LedgerQuery
	quotes     QuoteProvider
	classifier *ledger.Classifier
	aggregator *ledger.Aggregator
	cfg        Config
	metrics    Metrics
	logger     *zap.Logger
	now        clock.NowFunc
	sleep      clock.SleepFunc

	group singleflight.Group
	busy  atomic.Bool

	life     context.Context
	teardown context.CancelFunc

	mu       sync.RWMutex
	snapshot *model.Snapshot
	lastErr  error
	pending  []model.ClassifiedEntry
	closed   bool
}

// New builds a Session bound to w. Disconnecting w tears the session down.
func New(w *wallet.Context, lq LedgerQuery, quotes QuoteProvider, cfg Config, metrics Metrics, logger *zap.Logger) *Session {
	cfg = cfg.withDefaults()
	life, teardown := context.WithCancel(context.Background())
	s := &Session{
		wallet:     w,
		ledger:     lq,
		quotes:     quotes,
		classifier: ledger.NewClassifier(cfg.Thresholds, cfg.Location),
		aggregator: ledger.NewAggregator(cfg.Location),
		cfg:        cfg,
		metrics:    metrics,
		logger:     logger.Named("session"),
		now:        clock.UTCNow,
		sleep:      clock.SleepWithContext,
		life:       life,
		teardown:   teardown,
	}
	w.OnDisconnect(s.close)
	return s
}

// Run refreshes immediately and then on every interval until ctx is done or the wallet
// disconnects. Refresh failures are logged and retried on the next tick.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.life, cancel)
	defer stop()

	s.logger.Info("reconciliation started",
		zap.Duration("interval", s.cfg.Interval),
		zap.Int("history_limit", s.cfg.HistoryLimit),
		zap.Int64("entry_fee_below_sun", s.classifier.Thresholds().EntryFeeBelow),
		zap.Int64("prize_above_sun", s.classifier.Thresholds().PrizeAbove),
	)
	for {
		if err := s.tick(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn("refresh failed", zap.Error(err))
		}
		if err := s.sleep(ctx, s.cfg.Interval); err != nil {
			if s.life.Err() != nil {
				s.logger.Info("reconciliation stopped: wallet disconnected")
				return nil
			}
			return err
		}
	}
}

// Refresh runs one refresh cycle. A call made while another refresh is in progress waits for
// that refresh and shares its outcome.
func (s *Session) Refresh(ctx context.Context) (model.Snapshot, error) {
	ch := s.group.DoChan(refreshKey, func() (any, error) {
		s.busy.Store(true)
		defer s.busy.Store(false)
		return s.refresh(ctx)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return model.Snapshot{}, res.Err
		}
		return res.Val.(model.Snapshot), nil
	case <-ctx.Done():
		return model.Snapshot{}, ctx.Err()
	}
}

// tick is the timer-driven refresh: it is skipped while another refresh is running.
func (s *Session) tick(ctx context.Context) error {
	if s.busy.Load() {
		s.observeSkipped()
		s.logger.Debug("refresh in progress, tick skipped")
		return model.ErrRefreshInProgress
	}
	_, err := s.Refresh(ctx)
	return err
}

// Snapshot returns the last published snapshot.
func (s *Session) Snapshot() (model.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed || s.snapshot == nil {
		return model.Snapshot{}, false
	}
	return *s.snapshot, true
}

// LastError returns the error of the latest refresh, nil after a successful one.
func (s *Session) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Publish records a submitted payment as a pending entry until the ledger reports it.
func (s *Session) Publish(_ context.Context, receipt model.Receipt) error {
	entry := s.classifier.PendingEntry(receipt.TxID, receipt.AmountNative, receipt.Timestamp)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return model.ErrWalletDisconnected
	}
	for _, p := range s.pending {
		if p.TxID == entry.TxID {
			return nil
		}
	}
	s.pending = append(s.pending, entry)
	if s.snapshot != nil {
		snap := *s.snapshot
		snap.Pending = clonePending(s.pending)
		s.snapshot = &snap
	}
	return nil
}

func (s *Session) refresh(ctx context.Context) (snap model.Snapshot, err error) {
	started := time.Now()
	defer func() {
		s.observeRefresh(err, started)
	}()

	// The cycle is shared by joined callers: it ends with the session or after one interval.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Interval)
	defer cancel()
	stop := context.AfterFunc(s.life, cancel)
	defer stop()

	snap, records, err := s.collect(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", model.ErrRefresh, err)
		s.setError(err)
		return model.Snapshot{}, err
	}
	return s.publish(snap, records)
}

func (s *Session) collect(ctx context.Context) (model.Snapshot, []model.RawTransferRecord, error) {
	addr, bridge, err := s.wallet.Require()
	if err != nil {
		return model.Snapshot{}, nil, err
	}

	var (
		balance int64
		records []model.RawTransferRecord
		rate    model.ExchangeRate
		trend   []model.PricePoint
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balance, err = bridge.Balance(gctx, addr)
		if err != nil {
			return fmt.Errorf("balance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.ledger.ListTransfers(gctx, addr, s.cfg.HistoryLimit, true)
		if err != nil {
			return fmt.Errorf("list transfers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rate, err = s.quotes.CurrentPrice(gctx, s.cfg.Asset)
		if err != nil {
			return fmt.Errorf("current price: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		trend, err = s.quotes.HistoricalPrices(gctx, s.cfg.Asset, s.cfg.TrendWindowDays)
		if err != nil && gctx.Err() == nil {
			s.logger.Warn("price trend unavailable", zap.Error(err))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.Snapshot{}, nil, err
	}

	now := s.now()
	entries := s.classifier.ClassifyWindow(records, addr)
	s.observeWindow(len(entries), len(records)-len(entries))

	agg := s.aggregator.Aggregate(entries, rate, now)
	agg.BalanceDelta = ledger.TrendDelta(trend)

	top := entries
	if len(top) > s.cfg.TopEntries {
		top = top[:s.cfg.TopEntries]
	}

	return model.Snapshot{
		Address:       addr,
		BalanceNative: balance,
		BalanceFiat:   rate.FiatValue(balance),
		Rate:          rate,
		TopEntries:    top,
		Aggregate:     agg,
		WindowSize:    len(entries),
		RefreshedAt:   now,
	}, records, nil
}

// publish swaps in snap and drops pending entries that records now report or that waited
// longer than PendingTTL.
func (s *Session) publish(snap model.Snapshot, records []model.RawTransferRecord) (model.Snapshot, error) {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		seen[rec.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return model.Snapshot{}, fmt.Errorf("%w: %w", model.ErrRefresh, model.ErrWalletDisconnected)
	}

	kept := s.pending[:0]
	for _, p := range s.pending {
		if _, ok := seen[p.TxID]; ok {
			s.logger.Info("pending payment confirmed by ledger", zap.String("tx_id", p.TxID))
			continue
		}
		if age := snap.RefreshedAt.Sub(p.OccurredAt); age > s.cfg.PendingTTL {
			s.logger.Warn("pending payment expired without ledger record",
				zap.String("tx_id", p.TxID),
				zap.Duration("age", age),
			)
			continue
		}
		kept = append(kept, p)
	}
	s.pending = kept

	snap.Pending = clonePending(s.pending)
	s.snapshot = &snap
	s.lastErr = nil
	s.logger.Debug("snapshot published",
		zap.Int64("balance_sun", snap.BalanceNative),
		zap.Int("window", snap.WindowSize),
		zap.Int("pending", len(snap.Pending)),
	)
	return snap, nil
}

func (s *Session) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.lastErr = err
	}
}

func (s *Session) close() {
	s.mu.Lock()
	s.closed = true
	s.pending = nil
	s.snapshot = nil
	s.lastErr = nil
	s.mu.Unlock()
	s.teardown()
}

func (s *Session) observeRefresh(err error, started time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveRefresh(err, started)
	}
}

func (s *Session) observeSkipped() {
	if s.metrics != nil {
		s.metrics.ObserveSkippedTick()
	}
}

func (s *Session) observeWindow(entries, skipped int) {
	if s.metrics != nil {
		s.metrics.ObserveWindow(entries, skipped)
	}
}

func clonePending(pending []model.ClassifiedEntry) []model.ClassifiedEntry {
	out := make([]model.ClassifiedEntry, len(pending))
	copy(out, pending)
	return out
}
