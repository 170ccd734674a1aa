package statement

import (
	"regexp"
	"strings"
)

// Pattern is one alternative within a cascade. The extracted value is the
// last non-empty capture group; alternatives carry multiple optional groups
// for layout variants and the rightmost populated one is the most specific.
// A pattern without capture groups yields the whole match.
type Pattern struct {
	re *regexp.Regexp
}

// pat compiles a pattern alternative at table-build time.
func pat(expr string) Pattern {
	return Pattern{re: regexp.MustCompile(expr)}
}

// Extract runs the pattern against text and returns the collapsed value.
func (p Pattern) Extract(text string) (string, bool) {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	for i := len(m) - 1; i >= 1; i-- {
		if v := collapseSpace(m[i]); v != "" {
			return v, true
		}
	}
	if v := collapseSpace(m[0]); v != "" {
		return v, true
	}
	return "", false
}

// Cascade is an ordered list of pattern alternatives for one field. The
// first alternative producing a non-empty value wins unconditionally, even
// if a later one would match "better".
type Cascade []Pattern

// Extract evaluates alternatives in declared order.
func (c Cascade) Extract(text string) (string, bool) {
	for _, p := range c {
		if v, ok := p.Extract(text); ok {
			return v, true
		}
	}
	return "", false
}

// Registry maps issuer -> field -> cascade. Content is configuration data:
// adding an issuer or refining a cascade never touches the resolver.
type Registry map[Issuer]map[Field]Cascade

// Lookup returns the cascade for (issuer, field); nil when either is unknown
// to the registry, which the resolver treats as an always-failing tier.
func (r Registry) Lookup(issuer Issuer, field Field) Cascade {
	fields, ok := r[issuer]
	if !ok {
		return nil
	}
	return fields[field]
}

// DefaultRegistry returns the hand-tuned cascades for the supported issuer
// layouts. Patterns are anchored on each issuer's label wording; looser
// alternatives follow stricter ones so the precise form always wins.
func DefaultRegistry() Registry {
	return Registry{
		IssuerHDFC: {
			FieldCardholderName: {
				pat(`(?i)Name\s*:\s*([A-Z][A-Z\s]+?)\s*\n`),
			},
			FieldCardLast4: {
				pat(`Card No\s*:\s*[\dX\s]+(\d{4})`),
			},
			FieldStatementDate: {
				pat(`(?i)Statement Date\s*:\s*(\d{2}/\d{2}/\d{4})`),
			},
			FieldPaymentDueDate: {
				pat(`(?i)Payment Due Date\s*\n\s*(\d{2}/\d{2}/\d{4})`),
				pat(`(?i)Payment Due Date\s*:?\s*(\d{2}/\d{2}/\d{4})`),
			},
			FieldTotalBalance: {
				pat(`(?i)Total Dues\s*\n[^\n]*?\s([\d,]+\.\d{2})`),
				pat(`(?i)Total Dues\s*:?\s*([\d,]+\.\d{2})`),
			},
			FieldMinimumDue: {
				pat(`(?i)Minimum Amount Due\s*\n[^\n]*?\s([\d,]+\.\d{2})`),
				pat(`(?i)Minimum Amount Due\s*:?\s*([\d,]+\.\d{2})`),
			},
		},
		IssuerICICI: {
			FieldCardholderName: {
				pat(`(?i)Customer Name\s*:?\s*((?:Mr|Mrs|Ms)\.?\s*[A-Z][A-Z\s]+?)(?:\n|$)`),
				pat(`(?i)Customer Name\s*:?\s*([A-Z][A-Z\s]+?)(?:\n|$)`),
			},
			FieldCardLast4: {
				pat(`(?i)Card Account No\s*:?\s+[\d\sX]+(\d{4})`),
			},
			FieldStatementDate: {
				pat(`(?i)Statement Date\s*:?\s+(\d{2}/\d{2}/\d{4})`),
			},
			FieldPaymentDueDate: {
				pat(`(?i)Due Date\s*:?\s*(\d{2}/\d{2}/\d{4})`),
			},
			FieldTotalBalance: {
				pat(`(?i)Your Total Amount Due\s*₹?\s*([\d,]+\.\d{2})`),
				pat(`(?i)Total Amount Due\s*:?\s*₹?\s*([\d,]+\.\d{2})`),
			},
			FieldMinimumDue: {
				pat(`(?i)Minimum Amount Due\s*:?\s*₹?\s*([\d,]+\.\d{2})`),
			},
		},
		IssuerIDFC: {
			FieldCardholderName: {
				// The cardholder line follows the billing-period range on
				// IDFC layouts.
				pat(`\d{2}/\d{2}/\d{4}\s*-\s*\d{2}/\d{2}/\d{4}\s*\n\s*([A-Za-z][A-Za-z\s]+?)\n`),
			},
			FieldCardLast4: {
				pat(`(?i)Card Number\s*:?\s*X+\s*(\d{4})`),
			},
			FieldStatementDate: {
				pat(`(?i)Statement Date\s+(\d{2}/\d{2}/\d{4})`),
				// Billing period: the period end (last group) is the
				// statement date.
				pat(`(\d{2}/\d{2}/\d{4})\s*(?:-|to|–)\s*(\d{2}/\d{2}/\d{4})`),
			},
			FieldPaymentDueDate: {
				pat(`(?is)Payment Due Date\s*\n\s*(\d{2}/\d{2}/\d{4})`),
			},
			FieldTotalBalance: {
				pat(`(?is)Total Amount Due\s*\n\s*([\d,]+\.\d{2})`),
			},
			FieldMinimumDue: {
				pat(`(?is)Minimum Amount Due\s*\n\s*([\d,]+\.\d{2})`),
			},
		},
		IssuerCITI: {
			FieldCardholderName: {
				pat(`(?i)(?:Mr|Mrs|Ms)\.?\s+([A-Z][A-Za-z\s]+?)\n`),
			},
			FieldCardLast4: {
				pat(`(?i)Card Number\s*,?\s*:\s*[\d-]+\s*-\s*(\d{4})`),
			},
			FieldStatementDate: {
				pat(`(?i)Statement Date\s*,?\s*:\s*(\d{2}/\d{2}/\d{2,4})`),
			},
			FieldPaymentDueDate: {
				pat(`(?i)Payment Due Date\s*,?\s*:\s*(\d{2}/\d{2}/\d{2,4})`),
			},
			FieldTotalBalance: {
				pat(`(?i)Total Amount Due\s*\(P\)\s*,?\s*:\s*([\d,]+\.\d{2})`),
				pat(`(?i)Total Amount Due\s*,?\s*:\s*([\d,]+\.\d{2})`),
			},
			FieldMinimumDue: {
				pat(`(?i)Minimum Amount Due\s*\(P\)\s*,?\s*:\s*([\d,]+\.\d{2})`),
				pat(`(?i)Minimum Amount Due\s*,?\s*:\s*([\d,]+\.\d{2})`),
			},
		},
		IssuerSBI: {
			FieldCardholderName: {
				pat(`(?i)Name\s*:?\s*((?:Mr|Mrs|Ms)\.?\s*[A-Z][A-Z\s]+?)(?:\n|$)`),
			},
			FieldCardLast4: {
				pat(`(?i)Credit Card Number\s*:?\s*[X\d\s]+(\d{4})`),
				pat(`X{4,}\s*(\d{4})`),
			},
			FieldStatementDate: {
				pat(`(?i)Statement Date\s*:?\s*(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{2,4}|\d{2}/\d{2}/\d{4})`),
			},
			FieldPaymentDueDate: {
				pat(`(?i)Payment Due Date\s*:?\s*(\d{1,2}\s+[A-Za-z]{3,9}\s+\d{2,4}|\d{2}/\d{2}/\d{4})`),
			},
			FieldTotalBalance: {
				pat(`(?i)Total Amount Due\s*\(?₹?\)?\s*:?\s*([\d,]+\.\d{2})`),
			},
			FieldMinimumDue: {
				pat(`(?i)Minimum Amount Due\s*\(?₹?\)?\s*:?\s*([\d,]+\.\d{2})`),
			},
		},
		IssuerAXIS: {
			FieldCardholderName: {
				pat(`(?i)(?:Mr|Mrs|Ms)\.?\s+([A-Z][A-Za-z\s]+?)\n`),
			},
			FieldCardLast4: {
				pat(`X{3,}\s*(\d{4})`),
			},
			FieldStatementDate: {
				pat(`(?i)Statement\s*(?:Date|Period)\s*[:\-]?\s*(\d{1,2}/\d{1,2}/\d{4})`),
				pat(`(\d{2}/\d{2}/\d{4})\s*(?:-|to|–)\s*(\d{2}/\d{2}/\d{4})`),
			},
			FieldPaymentDueDate: {
				pat(`(?i)Due\s*Date\s*[:\-]?\s*(\d{1,2}/\d{1,2}/\d{4})`),
			},
			FieldTotalBalance: {
				pat(`(?i)Total\s*Amount\s*Due\s*[:₹\s]*([\d,]+\.\d{2})`),
				pat(`(?i)Total\s*Amount\s*Due\s*[:₹\s]*([\d,]+)`),
			},
			FieldMinimumDue: {
				pat(`(?i)Minimum\s*Amount\s*Due\s*[:₹\s]*([\d,]+\.\d{2})`),
			},
		},
	}
}

var spaceRun = regexp.MustCompile(`\s+`)

// collapseSpace folds whitespace runs (including the newlines multi-line
// patterns swallow) into single spaces and trims the result.
func collapseSpace(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}
