// Package wallet holds the connected wallet shared by reconciliation and payments.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
)

// Context is the explicitly owned wallet connection. The root scope creates it and hands it
// by reference to consumers; consumers may only read from it and invoke the bridge.
type Context struct {
	bridge  Bridge
	address model.Address

	mu        sync.Mutex
	connected bool
	hooks     []func()
}

// Connect discovers the account through the bridge and returns a connected Context.
func Connect(ctx context.Context, bridge Bridge) (*Context, error) {
	if bridge == nil {
		return nil, fmt.Errorf("%w: wallet bridge is required", model.ErrConfiguration)
	}
	addr, err := bridge.Address(ctx)
	if err != nil {
		return nil, fmt.Errorf("discover wallet address: %w", err)
	}
	if addr == "" {
		return nil, fmt.Errorf("%w: wallet exposes no account", model.ErrConfiguration)
	}
	return &Context{bridge: bridge, address: addr, connected: true}, nil
}

// Address returns the viewer's address while connected.
func (c *Context) Address() (model.Address, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return "", false
	}
	return c.address, true
}

// Bridge returns the bridge handle while connected.
func (c *Context) Bridge() (Bridge, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return nil, false
	}
	return c.bridge, true
}

// Connected reports whether Disconnect has not been called yet.
func (c *Context) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// OnDisconnect registers a teardown hook. Hooks registered after Disconnect run immediately.
func (c *Context) OnDisconnect(hook func()) {
	c.mu.Lock()
	if c.connected {
		c.hooks = append(c.hooks, hook)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	hook()
}

// Disconnect marks the wallet disconnected and runs teardown hooks once, in registration order.
func (c *Context) Disconnect() {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return
	}
	c.connected = false
	hooks := c.hooks
	c.hooks = nil
	c.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}
}

// Require returns address and bridge, or ErrWalletDisconnected.
func (c *Context) Require() (model.Address, Bridge, error) {
	if c == nil {
		return "", nil, model.ErrWalletDisconnected
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected || c.address == "" || c.bridge == nil {
		return "", nil, model.ErrWalletDisconnected
	}
	return c.address, c.bridge, nil
}

// IsDisconnected reports whether err was caused by a torn down wallet.
func IsDisconnected(err error) bool {
	return errors.Is(err, model.ErrWalletDisconnected)
}
