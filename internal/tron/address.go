package tron

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/fbsobreira/gotron-sdk/pkg/address"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
)

const (
	hexAddressPrefix = 0x41
	hexAddressLength = 21
)

// NormalizeAddress converts a hex (41...) or base58 (T...) address to base58.
func NormalizeAddress(raw string) (model.Address, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if strings.HasPrefix(raw, "T") {
		if err := ValidateAddress(model.Address(raw)); err != nil {
			return "", err
		}
		return model.Address(raw), nil
	}

	b, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return "", fmt.Errorf("invalid hex address %q: %w", raw, err)
	}
	if len(b) != hexAddressLength || b[0] != hexAddressPrefix {
		return "", fmt.Errorf("invalid hex address %q", raw)
	}
	return model.Address(address.Address(b).String()), nil
}

// ValidateAddress checks the base58check encoding of a TRON address.
func ValidateAddress(addr model.Address) error {
	if len(addr) != 34 || !strings.HasPrefix(string(addr), "T") {
		return fmt.Errorf("invalid TRON address %q", addr)
	}
	if _, err := address.Base58ToAddress(string(addr)); err != nil {
		return fmt.Errorf("invalid TRON address %q: %w", addr, err)
	}
	return nil
}
