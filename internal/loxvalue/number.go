package loxvalue

import (
	"math"
	"strconv"
)

// Number is Lox's sole numeric type: a 64-bit float standing in for both
// integers and fractional values.
type Number float64

func (Number) Type() string { return "number" }

// String renders n for `print`/REPL echoing. Integer-valued numbers render
// without a fractional part; everything else uses Go's default float
// formatting. Negative zero is special-cased to "-0" (positive zero stays
// "0"), matching the canonical Lox test-suite wording.
func (n Number) String() string {
	f := float64(n)
	if f == 0 {
		if math.Signbit(f) {
			return "-0"
		}
		return "0"
	}
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
