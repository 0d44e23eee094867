package ledger

import (
	"fmt"
	"math"
	"strconv"
)

// parseAmount accepts plain base-10 integers with an optional sign.
// Digit separators such as 1_000 are rejected.
func parseAmount(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, amountErr(raw)
	}
	return n, nil
}

// addAmount returns a+b, or a format error when the sum leaves the int64 range.
func addAmount(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d is out of range", ErrFormat, a, b)
	}
	return a + b, nil
}
