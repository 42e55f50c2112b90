package tron

import (
	"fmt"
	"strings"
)

// Network names a TRON deployment.
type Network string

const (
	Mainnet Network = "mainnet"
	Shasta  Network = "shasta"
	Nile    Network = "nile"
)

// Endpoints groups the public services of one network.
type Endpoints struct {
	NodeAddr    string
	LedgerURL   string
	ExplorerURL string
}

var endpoints = map[Network]Endpoints{
	Mainnet: {
		NodeAddr:    "grpc.trongrid.io:50051",
		LedgerURL:   "https://api.trongrid.io",
		ExplorerURL: "https://tronscan.org/#/transaction/",
	},
	Shasta: {
		NodeAddr:    "grpc.shasta.trongrid.io:50051",
		LedgerURL:   "https://api.shasta.trongrid.io",
		ExplorerURL: "https://shasta.tronscan.org/#/transaction/",
	},
	Nile: {
		NodeAddr:    "grpc.nile.trongrid.io:50051",
		LedgerURL:   "https://nile.trongrid.io",
		ExplorerURL: "https://nile.tronscan.org/#/transaction/",
	},
}

// EndpointsFor returns the public endpoints of network.
func EndpointsFor(network Network) (Endpoints, error) {
	e, ok := endpoints[Network(strings.ToLower(string(network)))]
	if !ok {
		return Endpoints{}, fmt.Errorf("unsupported network: %s", network)
	}
	return e, nil
}

// ExplorerLink returns the explorer page of txID, or "" when base is empty.
func ExplorerLink(base, txID string) string {
	if base == "" || txID == "" {
		return ""
	}
	return base + txID
}
