package core

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders n as a dollar amount with two fixed decimals and
// comma thousands grouping, e.g. 1234567.8 -> "$1,234,567.80". Grouping is
// fixed en-US style so output is deterministic regardless of host locale.
// NaN and infinities render as "$--" rather than leaking float spellings
// into display labels.
func FormatCurrency(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "$--"
	}
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatFloat(n, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

// FormatPercent renders n as a percentage with the given number of decimals,
// e.g. FormatPercent(42.345, 1) -> "42.3%".
func FormatPercent(n float64, decimals int) string {
	if decimals < 0 {
		decimals = 1
	}
	return strconv.FormatFloat(n, 'f', decimals, 64) + "%"
}

// FormatCompact renders large magnitudes with a one-decimal suffix:
// 1234 -> "1.2k", 3400000 -> "3.4M", 1200000000 -> "1.2B". Values below a
// thousand keep their plain representation.
func FormatCompact(n float64) string {
	abs := math.Abs(n)
	switch {
	case abs >= 1e9:
		return trimCompact(n/1e9) + "B"
	case abs >= 1e6:
		return trimCompact(n/1e6) + "M"
	case abs >= 1e3:
		return trimCompact(n/1e3) + "k"
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}

// trimCompact formats to one decimal and drops a trailing ".0".
func trimCompact(n float64) string {
	s := strconv.FormatFloat(n, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// groupThousands inserts commas into a non-negative integer string.
func groupThousands(whole string) string {
	if len(whole) <= 3 {
		return whole
	}
	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}
	return b.String()
}
