package card

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatValue renders an integer metric value in the requested number
// format. The short format abbreviates thousands with one decimal and a
// "k" suffix; the long format inserts thousands separators. Unknown
// format names degrade to short.
func FormatValue(n int, format string) string {
	if format == NumberFormatLong {
		return groupThousands(n)
	}
	return kFormat(n)
}

// kFormat abbreviates values above 999 as tenths of a thousand: 1100
// becomes "1.1k", 10000 becomes "10.0k". Values at or below 999 pass
// through unchanged, including negatives.
func kFormat(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if abs <= 999 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%.1fk", float64(n)/1000)
}

// groupThousands formats n with comma separators: 1234567 → "1,234,567".
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// formatPercentage renders a percentage value to exactly two decimals.
func formatPercentage(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
