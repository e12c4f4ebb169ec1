// Package mathx provides overflow-checked arithmetic on unsigned 64-bit
// balances and helpers to render lamport amounts.
package mathx

import (
	"math/big"
	"math/bits"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/shopspring/decimal"
)

// CheckedAdd returns a+b or common.ErrMathOverflow if the sum does not fit
// into 64 bits.
func CheckedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, common.ErrMathOverflow
	}
	return sum, nil
}

// CheckedSub returns a-b or common.ErrMathOverflow if b > a.
// Underflow is reported with the same sentinel as overflow: both mean the
// counter left its representable range.
func CheckedSub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, common.ErrMathOverflow
	}
	return diff, nil
}

// Sum adds all values with overflow checking.
func Sum(values ...uint64) (uint64, error) {
	var total uint64
	for _, v := range values {
		var err error
		total, err = CheckedAdd(total, v)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

var lamportsExp = int32(-9)

// FormatLamports renders a lamport amount as a decimal coin amount,
// e.g. 1500000000 -> "1.5".
func FormatLamports(lamports uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), lamportsExp).String()
}
