package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/ledger"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/metrics"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/notify"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/payment"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/quote"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/session"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/transport"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/tron"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/wallet"
	"github.com/gorilla/mux"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var config struct {
	Network       string        `long:"network" env:"ARENA_NETWORK" description:"tron network (mainnet, shasta, nile)" default:"shasta"`
	NodeAddr      string        `long:"node-addr" env:"ARENA_NODE_ADDR" description:"tron gRPC node address, defaults to the network's public node"`
	NodeAPIKey    string        `long:"node-api-key" env:"ARENA_NODE_API_KEY" description:"trongrid API key for the gRPC node"`
	LedgerURL     string        `long:"ledger-url" env:"ARENA_LEDGER_URL" description:"trongrid REST base url, defaults to the network's public api"`
	LedgerAPIKey  string        `long:"ledger-api-key" env:"ARENA_LEDGER_API_KEY" description:"trongrid REST API key"`
	LedgerRPS     int           `long:"ledger-rps" env:"ARENA_LEDGER_RPS" description:"trongrid requests per second" default:"5"`
	QuoteURL      string        `long:"quote-url" env:"ARENA_QUOTE_URL" description:"coingecko base url" default:"https://api.coingecko.com/api/v3"`
	QuoteAPIKey   string        `long:"quote-api-key" env:"ARENA_QUOTE_API_KEY" description:"coingecko API key"`
	QuoteRPS      int           `long:"quote-rps" env:"ARENA_QUOTE_RPS" description:"coingecko requests per second" default:"1"`
	FiatCurrency  string        `long:"fiat" env:"ARENA_FIAT" description:"fiat currency" default:"usd"`
	PrivateKey    string        `long:"private-key" env:"ARENA_PRIVATE_KEY" description:"hex secp256k1 key of the wallet" required:"true"`
	MaxSignTRX    string        `long:"max-sign-trx" env:"ARENA_MAX_SIGN_TRX" description:"largest transfer the signer approves, in TRX" default:"100"`
	Recipient     string        `long:"recipient" env:"ARENA_RECIPIENT" description:"entry fee recipient address"`
	FiatFee       string        `long:"fiat-fee" env:"ARENA_FIAT_FEE" description:"entry fee in fiat" default:"1"`
	EntryFeeBelow int64         `long:"entry-fee-below-trx" env:"ARENA_ENTRY_FEE_BELOW_TRX" description:"outgoing transfers below are entry fees" default:"50"`
	PrizeAbove    int64         `long:"prize-above-trx" env:"ARENA_PRIZE_ABOVE_TRX" description:"incoming transfers above are prizes" default:"100"`
	HistoryLimit  int           `long:"history-limit" env:"ARENA_HISTORY_LIMIT" description:"ledger window size" default:"200"`
	Interval      time.Duration `long:"interval" env:"ARENA_REFRESH_INTERVAL" description:"refresh interval" default:"30s"`
	KafkaBrokers  []string      `long:"kafka-broker" env:"ARENA_KAFKA_BROKERS" env-delim:"," description:"kafka brokers for receipts"`
	KafkaTopic    string        `long:"kafka-topic" env:"ARENA_KAFKA_TOPIC" description:"receipt topic" default:"arena.payments.receipts"`
	HTTPAddr      string        `long:"http-addr" env:"ARENA_HTTP_ADDR" description:"dashboard http addr" default:":8080"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("Failed to load .env", zap.Error(err))
	}
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}
	if err := checkHistoryLimit(config.HistoryLimit); err != nil {
		logger.Fatal("Invalid history-limit", zap.Error(err))
	}

	endpoints, err := tron.EndpointsFor(tron.Network(config.Network))
	if err != nil {
		logger.Fatal("Unknown network", zap.Error(err))
	}
	if config.NodeAddr != "" {
		endpoints.NodeAddr = config.NodeAddr
	}
	if config.LedgerURL != "" {
		endpoints.LedgerURL = config.LedgerURL
	}
	maxSign, err := decimal.NewFromString(config.MaxSignTRX)
	if err != nil {
		logger.Fatal("Invalid max-sign-trx", zap.Error(err))
	}
	fiatFee, err := decimal.NewFromString(config.FiatFee)
	if err != nil {
		logger.Fatal("Invalid fiat-fee", zap.Error(err))
	}
	var recipient model.Address
	if config.Recipient != "" {
		if recipient, err = tron.NormalizeAddress(config.Recipient); err != nil {
			logger.Fatal("Invalid recipient", zap.Error(err))
		}
	}

	node, err := tron.DialNode(tron.NodeConfig{Addr: endpoints.NodeAddr, APIKey: config.NodeAPIKey}, logger)
	if err != nil {
		logger.Fatal("Dial tron node", zap.Error(err))
	}
	signer, err := tron.NewKeySigner(config.PrivateKey, tron.SpendingCap(maxSign), logger)
	if err != nil {
		logger.Fatal("Load signer", zap.Error(err))
	}
	bridge := tron.NewBridge(node, signer, metrics.NewUpstream("tron_node"), logger)
	defer bridge.Close()

	w, err := wallet.Connect(ctx, bridge)
	if err != nil {
		logger.Fatal("Connect wallet", zap.Error(err))
	}
	defer w.Disconnect()
	addr, _ := w.Address()
	logger.Info("Wallet connected", zap.String("address", string(addr)), zap.String("network", config.Network))

	ledgerClient := tron.NewLedgerClient(tron.LedgerConfig{
		BaseURL:           endpoints.LedgerURL,
		APIKey:            config.LedgerAPIKey,
		RequestsPerSecond: config.LedgerRPS,
	}, metrics.NewUpstream("trongrid"), logger)
	quotes := quote.NewClient(quote.Config{
		BaseURL:           config.QuoteURL,
		APIKey:            config.QuoteAPIKey,
		FiatCurrency:      config.FiatCurrency,
		RequestsPerSecond: config.QuoteRPS,
	}, metrics.NewUpstream("coingecko"), logger)

	sess := session.New(w, ledgerClient, quotes, session.Config{
		Interval:     config.Interval,
		HistoryLimit: config.HistoryLimit,
		Asset:        model.TRX,
		Thresholds: ledger.Thresholds{
			EntryFeeBelow: config.EntryFeeBelow * model.SunPerTRX,
			PrizeAbove:    config.PrizeAbove * model.SunPerTRX,
		},
	}, metrics.NewSession(config.Network), logger)
	go func() {
		if err := sess.Run(ctx); err != nil {
			logger.Error("Session stopped", zap.Error(err))
		}
	}()

	sinks := []payment.ReceiptSink{sess}
	if len(config.KafkaBrokers) > 0 {
		writer, err := notify.NewKafkaWriter(notify.KafkaConfig{Brokers: config.KafkaBrokers, Topic: config.KafkaTopic})
		if err != nil {
			logger.Fatal("Kafka writer", zap.Error(err))
		}
		publisher := notify.NewKafkaPublisher(writer, notify.KafkaConfig{}, logger)
		publisher.Start(ctx)
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("Failed to close receipt publisher", zap.Error(err))
			}
		}()
		sinks = append(sinks, publisher)
	}

	payments := payment.New(w, quotes, payment.Config{
		FiatFee:   fiatFee,
		Recipient: recipient,
		Asset:     model.TRX,
		ExplorerLink: func(txID string) string {
			return tron.ExplorerLink(endpoints.ExplorerURL, txID)
		},
	}, metrics.NewPayment(config.Network), logger, sinks...)

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	transport.NewDashboardHandler(sess, payments, w, tron.NormalizeAddress, metrics.NewHTTP(), logger).Register(router)

	s := &http.Server{
		Addr:              config.HTTPAddr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      payment.DefaultTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.HTTPAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

func checkHistoryLimit(limit int) error {
	if limit < 1 || limit > tron.MaxPageSize {
		return fmt.Errorf("history limit %d out of range (1..%d)", limit, tron.MaxPageSize)
	}
	return nil
}
