// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("value out of range")

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// Int64 converts signed or unsigned integers to int64 with range validation.
func Int64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	switch value := any(v).(type) {
	case uint:
		if uint64(value) > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d exceeds int64", ErrOutOfRange, value)
		}
	case uint64:
		if value > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d exceeds int64", ErrOutOfRange, value)
		}
	}
	return int64(v), nil
}

// NativeAmount converts a decimal amount of indivisible units to int64.
// The value is rounded half away from zero and must be positive.
func NativeAmount(d decimal.Decimal) (int64, error) {
	rounded := d.Round(0)
	if !rounded.IsPositive() {
		return 0, fmt.Errorf("%w: amount %s is not positive", ErrOutOfRange, d.String())
	}
	if rounded.GreaterThan(maxInt64) {
		return 0, fmt.Errorf("%w: amount %s exceeds int64", ErrOutOfRange, d.String())
	}
	return rounded.IntPart(), nil
}
