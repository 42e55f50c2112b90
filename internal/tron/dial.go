package tron

import (
	"fmt"
	"time"

	"github.com/fbsobreira/gotron-sdk/pkg/client"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// NodeConfig configures the gRPC connection to a full node.
type NodeConfig struct {
	Addr    string
	APIKey  string
	Timeout time.Duration
}

// DialNode starts a gotron-sdk client with logging and metrics interceptors.
func DialNode(cfg NodeConfig, logger *zap.Logger) (*client.GrpcClient, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("node address is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	c := client.NewGrpcClientWithTimeout(cfg.Addr, cfg.Timeout)
	if cfg.APIKey != "" {
		c.SetAPIKey(cfg.APIKey)
	}

	chain := []grpc.UnaryClientInterceptor{
		grpcPrometheus.UnaryClientInterceptor,
		grpcZap.UnaryClientInterceptor(logger.Named("tron_node")),
	}
	err := c.Start(
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(grpcMiddleware.ChainUnaryClient(chain...)),
	)
	if err != nil {
		return nil, fmt.Errorf("start TRON gRPC client: %w", err)
	}

	logger.Info("TRON node connected", zap.String("addr", cfg.Addr))
	return c, nil
}
