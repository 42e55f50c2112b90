package model

// UnsignedTx is a transfer built by the wallet bridge and not signed yet.
// Payload is opaque to everything but the bridge that produced it.
type UnsignedTx struct {
	TxID      string
	From      Address
	To        Address
	AmountSun int64
	Payload   []byte
}

// SignedTx is an UnsignedTx carrying a signature.
type SignedTx struct {
	TxID    string
	Payload []byte
}

// BroadcastResult is the raw acknowledgement of the ledger network.
type BroadcastResult struct {
	Result  bool
	TxID    string
	Message string
}
