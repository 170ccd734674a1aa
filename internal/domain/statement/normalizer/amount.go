package normalizer

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// Amount normalizes a raw monetary fragment to a fixed two-decimal string
// and its signed numeric value. Embedded e-mail-like tokens are removed
// first so digits from addresses never leak into the amount; parenthesized
// values follow the accounting convention and come out negative; when poor
// text extraction merges several dotted groups, every dot but the last is a
// thousands separator.
func Amount(raw string) (string, float64, bool) {
	d, ok := AmountDecimal(raw)
	if !ok {
		return "", 0, false
	}
	value, _ := d.Float64()
	return d.StringFixed(2), value, true
}

// AmountDecimal is the decimal-typed core of Amount, shared with the
// largest-amount fallback so candidate comparison stays exact.
func AmountDecimal(raw string) (decimal.Decimal, bool) {
	s := emailRe.ReplaceAllString(raw, "")

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-', r == '(', r == ')':
			b.WriteRune(r)
		}
	}
	s = b.String()
	if s == "" {
		return decimal.Decimal{}, false
	}

	negative := false
	if strings.ContainsRune(s, '(') || strings.ContainsRune(s, ')') {
		negative = true
		s = strings.NewReplacer("(", "", ")", "").Replace(s)
	}
	s = strings.ReplaceAll(s, ",", "")

	// Collapse a mis-merged multi-dot run: the trailing group is the decimal
	// part, everything before it is thousands grouping.
	if parts := strings.Split(s, "."); len(parts) > 2 {
		s = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if negative && !d.IsNegative() {
		d = d.Neg()
	}
	return d, true
}
