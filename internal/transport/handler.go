package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/payment"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/wallet"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	reasonNotReady      = "not_ready"
	reasonRefreshFailed = "refresh_failed"
	reasonBusy          = "refresh_in_progress"
	reasonDisconnected  = "wallet_disconnected"
	reasonTimeout       = "timeout"
	reasonBadRequest    = "invalid_request"
	reasonBadRecipient  = "invalid_recipient"

	maxRequestBody = 4 << 10
)

// DashboardHandler serves snapshots, refreshes, payments and wallet teardown.
type DashboardHandler struct {
	sessions SnapshotSource
	payments PaymentSubmitter
	wallet   WalletControl
	parse    AddressParser
	metrics  Metrics
	logger   *zap.Logger
}

// NewDashboardHandler returns a DashboardHandler instance.
func NewDashboardHandler(sessions SnapshotSource, payments PaymentSubmitter, wallet WalletControl, parse AddressParser, metrics Metrics, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		sessions: sessions,
		payments: payments,
		wallet:   wallet,
		parse:    parse,
		metrics:  metrics,
		logger:   logger.Named("dashboard_handler"),
	}
}

type errorResponse struct {
	Error  string          `json:"error"`
	Reason string          `json:"reason"`
	Intent *payment.Intent `json:"intent,omitempty"`
}

type withdrawRequest struct {
	Recipient string          `json:"recipient"`
	AmountTRX decimal.Decimal `json:"amount_trx"`
}

type healthResponse struct {
	Status          string `json:"status"`
	WalletConnected bool   `json:"wallet_connected"`
	PaymentActive   bool   `json:"payment_active"`
}

type snapshotResponse struct {
	Snapshot  model.Snapshot `json:"snapshot"`
	Stale     bool           `json:"stale"`
	LastError string         `json:"last_error,omitempty"`
}

// Register mounts the routes on r.
func (h *DashboardHandler) Register(r *mux.Router) {
	r.HandleFunc("/healthz", h.observe("/healthz", h.Health)).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/snapshot", h.observe("/v1/snapshot", h.Snapshot)).Methods(http.MethodGet)
	v1.HandleFunc("/refresh", h.observe("/v1/refresh", h.Refresh)).Methods(http.MethodPost)
	v1.HandleFunc("/payments/entry-fee", h.observe("/v1/payments/entry-fee", h.SubmitEntryFee)).Methods(http.MethodPost)
	v1.HandleFunc("/payments/withdraw", h.observe("/v1/payments/withdraw", h.Withdraw)).Methods(http.MethodPost)
	v1.HandleFunc("/wallet/disconnect", h.observe("/v1/wallet/disconnect", h.Disconnect)).Methods(http.MethodPost)
}

// Health reports process and wallet state.
func (h *DashboardHandler) Health(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, healthResponse{
		Status:          "ok",
		WalletConnected: h.wallet.Connected(),
		PaymentActive:   h.payments.Active(),
	})
}

// Snapshot returns the last published snapshot, flagged stale when the latest refresh failed.
func (h *DashboardHandler) Snapshot(w http.ResponseWriter, _ *http.Request) {
	lastErr := h.sessions.LastError()
	snap, ok := h.sessions.Snapshot()
	if !ok {
		if !h.wallet.Connected() {
			h.respondJSON(w, http.StatusConflict, errorResponse{Error: "Wallet disconnected", Reason: reasonDisconnected})
			return
		}
		if lastErr != nil {
			h.respondJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "Dashboard data unavailable", Reason: reasonRefreshFailed})
			return
		}
		h.respondJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "Dashboard is loading", Reason: reasonNotReady})
		return
	}

	resp := snapshotResponse{Snapshot: snap}
	if lastErr != nil {
		resp.Stale = true
		resp.LastError = lastErr.Error()
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// Refresh runs a refresh, joining one already in progress.
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sessions.Refresh(r.Context())
	if err != nil {
		code, resp := refreshError(err)
		if code >= http.StatusInternalServerError {
			h.logger.Warn("refresh failed", zap.Error(err))
		}
		h.respondJSON(w, code, resp)
		return
	}
	h.respondJSON(w, http.StatusOK, snapshotResponse{Snapshot: snap})
}

// SubmitEntryFee pays the configured entry fee and returns the terminal intent.
func (h *DashboardHandler) SubmitEntryFee(w http.ResponseWriter, r *http.Request) {
	intent, err := h.payments.Submit(r.Context())
	h.respondPayment(w, intent, err)
}

// Withdraw sends a chosen TRX amount to a chosen recipient and returns the terminal intent.
func (h *DashboardHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid withdraw request", Reason: reasonBadRequest})
		return
	}
	recipient, err := h.parse(req.Recipient)
	if err != nil {
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid recipient address", Reason: reasonBadRecipient})
		return
	}
	if !req.AmountTRX.IsPositive() {
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Amount must be positive", Reason: reasonBadRequest})
		return
	}

	intent, err := h.payments.Withdraw(r.Context(), recipient, req.AmountTRX)
	h.respondPayment(w, intent, err)
}

func (h *DashboardHandler) respondPayment(w http.ResponseWriter, intent *payment.Intent, err error) {
	if err != nil {
		reason := payment.ReasonOf(err)
		code := paymentStatus(reason)
		if code >= http.StatusInternalServerError {
			h.logger.Warn("payment failed", zap.String("reason", string(reason)), zap.Error(err))
		}
		h.respondJSON(w, code, errorResponse{
			Error:  payment.UserMessage(err),
			Reason: string(reason),
			Intent: intent,
		})
		return
	}
	h.respondJSON(w, http.StatusOK, intent)
}

// Disconnect tears the wallet down; later refreshes and payments are refused.
func (h *DashboardHandler) Disconnect(w http.ResponseWriter, _ *http.Request) {
	h.wallet.Disconnect()
	h.logger.Info("wallet disconnected")
	h.respondJSON(w, http.StatusOK, healthResponse{Status: "ok", WalletConnected: false, PaymentActive: h.payments.Active()})
}

func refreshError(err error) (int, errorResponse) {
	switch {
	case errors.Is(err, model.ErrRefreshInProgress):
		return http.StatusConflict, errorResponse{Error: "Refresh already in progress", Reason: reasonBusy}
	case wallet.IsDisconnected(err):
		return http.StatusConflict, errorResponse{Error: "Wallet disconnected", Reason: reasonDisconnected}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout, errorResponse{Error: "Refresh timed out", Reason: reasonTimeout}
	default:
		return http.StatusBadGateway, errorResponse{Error: "Refresh failed", Reason: reasonRefreshFailed}
	}
}

func paymentStatus(reason payment.Reason) int {
	switch reason {
	case payment.ReasonInFlight:
		return http.StatusConflict
	case payment.ReasonConfiguration:
		return http.StatusBadRequest
	case payment.ReasonUserRejected:
		return http.StatusForbidden
	case payment.ReasonPriceUnavailable, payment.ReasonBuild, payment.ReasonSign, payment.ReasonBroadcast:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *DashboardHandler) observe(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next(rec, r)
		h.metrics.ObserveRequest(r.Method, route, rec.code, started)
	}
}

func (h *DashboardHandler) respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("write response", zap.Error(err))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}
