package model

import "errors"

var (
	// ErrConfiguration reports a missing wallet connection or recipient.
	ErrConfiguration = errors.New("configuration error")
	// ErrPriceUnavailable reports a failed quote lookup.
	ErrPriceUnavailable = errors.New("price unavailable")
	// ErrBuild reports that the bridge could not construct a transaction.
	ErrBuild = errors.New("build transaction failed")
	// ErrUserRejected reports that the wallet holder declined to sign.
	ErrUserRejected = errors.New("rejected by user")
	// ErrSign reports a signing failure other than a user rejection.
	ErrSign = errors.New("sign transaction failed")
	// ErrBroadcast reports that the network did not accept the transaction.
	ErrBroadcast = errors.New("broadcast failed")
	// ErrInsufficientFunds is attached to build/broadcast failures caused by a low balance.
	ErrInsufficientFunds = errors.New("insufficient balance")
	// ErrRefresh reports a failed reconciliation refresh.
	ErrRefresh = errors.New("refresh failed")
	// ErrRefreshInProgress is returned when a timer tick finds a refresh already running.
	ErrRefreshInProgress = errors.New("refresh already in progress")
	// ErrPaymentInFlight is returned when a payment intent is already active.
	ErrPaymentInFlight = errors.New("payment already in progress")
	// ErrWalletDisconnected is returned by components used after wallet teardown.
	ErrWalletDisconnected = errors.New("wallet disconnected")
)
