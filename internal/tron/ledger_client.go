package tron

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
	"github.com/goodnatureofminers/arena-wallet-backend/pkg/safe"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// MaxPageSize is the largest transaction page TronGrid serves.
const MaxPageSize = 200

const (
	apiKeyHeader      = "TRON-PRO-API-KEY"
	maxErrorBodySize  = 512
	contractRetOK     = "SUCCESS"
	transferContract  = "TransferContract"
	transactionsRoute = "/v1/accounts/%s/transactions"
)

// LedgerConfig configures the TronGrid REST client.
type LedgerConfig struct {
	BaseURL           string
	APIKey            string
	RequestsPerSecond int
	Timeout           time.Duration
}

// LedgerClient lists account transactions through the TronGrid REST API.
type LedgerClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	rl         ratelimit.Limiter
	metrics    Metrics
	logger     *zap.Logger
}

// NewLedgerClient constructs a LedgerClient.
func NewLedgerClient(cfg LedgerConfig, metrics Metrics, logger *zap.Logger) *LedgerClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	rl := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.RequestsPerSecond)
	}
	return &LedgerClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		rl:         rl,
		metrics:    metrics,
		logger:     logger.Named("trongrid"),
	}
}

type transactionsResponse struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Data    []transactionRecord `json:"data"`
}

type transactionRecord struct {
	TxID           string `json:"txID"`
	BlockTimestamp int64  `json:"block_timestamp"`
	RawData        struct {
		Timestamp int64 `json:"timestamp"`
		Contract  []struct {
			Type      string `json:"type"`
			Parameter struct {
				Value struct {
					Amount       json.Number `json:"amount"`
					OwnerAddress string      `json:"owner_address"`
					ToAddress    string      `json:"to_address"`
				} `json:"value"`
			} `json:"parameter"`
		} `json:"contract"`
	} `json:"raw_data"`
	Ret []struct {
		ContractRet string `json:"contractRet"`
	} `json:"ret"`
}

// ListTransfers returns up to limit of the latest transactions touching addr, newest first
// as served by the API. Records that cannot be decoded are skipped.
func (c *LedgerClient) ListTransfers(ctx context.Context, addr model.Address, limit int, onlyConfirmed bool) (records []model.RawTransferRecord, err error) {
	started := time.Now()
	defer func() {
		c.observe("list_transfers", err, started)
	}()

	if limit <= 0 || limit > MaxPageSize {
		return nil, fmt.Errorf("limit %d out of range (1..%d)", limit, MaxPageSize)
	}
	if err := ValidateAddress(addr); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("order_by", "block_timestamp,desc")
	if onlyConfirmed {
		query.Set("only_confirmed", "true")
	}

	var body transactionsResponse
	if err := c.get(ctx, fmt.Sprintf(transactionsRoute, url.PathEscape(string(addr))), query, &body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, fmt.Errorf("ledger query unsuccessful: %s", body.Error)
	}

	records = make([]model.RawTransferRecord, 0, len(body.Data))
	for i := range body.Data {
		rec, err := decodeRecord(&body.Data[i])
		if err != nil {
			c.logger.Warn("skip malformed transaction",
				zap.String("address", string(addr)),
				zap.String("tx_id", body.Data[i].TxID),
				zap.Error(err),
			)
			continue
		}
		records = append(records, rec)
	}

	c.logger.Debug("transactions listed",
		zap.String("address", string(addr)),
		zap.Int("received", len(body.Data)),
		zap.Int("decoded", len(records)),
	)
	return records, nil
}

func decodeRecord(tx *transactionRecord) (model.RawTransferRecord, error) {
	if tx.TxID == "" {
		return model.RawTransferRecord{}, fmt.Errorf("missing txID")
	}
	if len(tx.RawData.Contract) == 0 {
		return model.RawTransferRecord{}, fmt.Errorf("missing contract")
	}
	if len(tx.Ret) == 0 {
		return model.RawTransferRecord{}, fmt.Errorf("missing execution result")
	}

	millis := tx.RawData.Timestamp
	if millis <= 0 {
		millis = tx.BlockTimestamp
	}
	if millis <= 0 {
		return model.RawTransferRecord{}, fmt.Errorf("missing timestamp")
	}

	outcome := model.OutcomeFailure
	if tx.Ret[0].ContractRet == contractRetOK {
		outcome = model.OutcomeSuccess
	}
	rec := model.RawTransferRecord{
		ID:         tx.TxID,
		Kind:       model.TransferKindOther,
		Outcome:    outcome,
		OccurredAt: time.UnixMilli(millis).UTC(),
	}

	contract := tx.RawData.Contract[0]
	if contract.Type != transferContract {
		return rec, nil
	}
	rec.Kind = model.TransferKindValue

	value := contract.Parameter.Value
	sender, err := NormalizeAddress(value.OwnerAddress)
	if err != nil {
		return model.RawTransferRecord{}, fmt.Errorf("owner address: %w", err)
	}
	recipient, err := NormalizeAddress(value.ToAddress)
	if err != nil {
		return model.RawTransferRecord{}, fmt.Errorf("to address: %w", err)
	}
	raw, err := strconv.ParseUint(value.Amount.String(), 10, 64)
	if err != nil {
		return model.RawTransferRecord{}, fmt.Errorf("amount %q: %w", value.Amount, err)
	}
	amount, err := safe.Int64(raw)
	if err != nil {
		return model.RawTransferRecord{}, fmt.Errorf("amount: %w", err)
	}

	rec.Sender = sender
	rec.Recipient = recipient
	rec.Amount = amount
	return rec, nil
}

func (c *LedgerClient) get(ctx context.Context, path string, query url.Values, out any) error {
	c.rl.Take()

	endpoint := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return fmt.Errorf("ledger API status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *LedgerClient) observe(operation string, err error, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.Observe(operation, err, started)
}
