package tax

import (
	"math"
	"strconv"
	"strings"
)

// RoundHalfUp rounds an amount to the nearest whole naira, with halves
// rounding up: 2.5 becomes 3, 2.4 becomes 2.
func RoundHalfUp(amount float64) float64 {
	return math.Floor(amount + 0.5)
}

// FormatCurrency renders an amount as whole naira with thousand separators,
// e.g. 1234567.8 becomes "₦1,234,568". The sign follows the symbol.
func FormatCurrency(amount float64) string {
	whole := int64(RoundHalfUp(amount))
	return "₦" + addThousandSeparators(strconv.FormatInt(whole, 10))
}

// addThousandSeparators inserts commas into a plain integer string,
// grouping digits in threes from the right.
func addThousandSeparators(numStr string) string {
	negative := strings.HasPrefix(numStr, "-")
	if negative {
		numStr = numStr[1:]
	}

	var b strings.Builder
	for i := 0; i < len(numStr); i++ {
		if i > 0 && (len(numStr)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(numStr[i])
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
