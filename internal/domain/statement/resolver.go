package statement

import (
	"unicode"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement/normalizer"
)

// tier is one resolution strategy: a pure function from text to an optional
// raw value. Tiers run left to right until one produces a value; the policy
// is independently testable per tier.
type tier func(text string) (string, bool)

// Resolver resolves a single field against a text through the tiered
// fallback policy: registry cascade, keyword window, field-specific last
// resort. Each Resolve call is independent; resolving fields in any order
// yields identical results.
type Resolver struct {
	registry Registry
}

// NewResolver creates a resolver over the given registry.
func NewResolver(registry Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve exhausts every tier before declaring the field not found. The raw
// candidate from the winning tier is normalized and recorded regardless of
// whether normalization succeeds; a cardholder-name candidate that fails the
// validity filter is discarded outright and resolution falls through to the
// next tier.
func (r *Resolver) Resolve(issuer Issuer, field Field, text string) FieldValue {
	cascade := r.registry.Lookup(issuer, field)
	for _, t := range r.tiers(field, cascade) {
		raw, ok := t(text)
		if !ok {
			continue
		}
		fv := normalizeCandidate(field, raw)
		if !fv.Found {
			continue
		}
		return fv
	}
	return FieldValue{}
}

// tiers assembles the ordered tier list for a field. The first two tiers are
// uniform; tier three exists only for fields with a documented last-resort
// heuristic.
func (r *Resolver) tiers(field Field, cascade Cascade) []tier {
	kind := field.Kind()
	list := []tier{
		cascade.Extract,
		func(text string) (string, bool) {
			w, ok := keywordWindow(text, fieldKeywords[field])
			if !ok {
				return "", false
			}
			// Re-apply the cascade on the narrow window first; the generic
			// token extractor is the blunter instrument.
			if v, ok := cascade.Extract(w); ok {
				return v, true
			}
			return genericToken(w, kind)
		},
	}

	switch field {
	case FieldCardholderName:
		list = append(list, uppercaseNameScan)
	case FieldTotalBalance:
		list = append(list,
			func(text string) (string, bool) { return amountLabelSearch(text, totalBalanceLabels) },
			largestAmount,
		)
	case FieldMinimumDue:
		list = append(list, func(text string) (string, bool) { return amountLabelSearch(text, minimumDueLabels) })
	}
	return list
}

// normalizeCandidate converts a raw tier candidate into a FieldValue. For
// dates and amounts a normalization failure keeps the raw string for
// diagnostics with Valid=false; for names the validity filter rejects the
// candidate entirely, since noisy matches must not propagate.
func normalizeCandidate(field Field, raw string) FieldValue {
	fv := FieldValue{Raw: raw, Found: true}
	switch field.Kind() {
	case KindName:
		cleaned := normalizer.Name(raw)
		if !validName(cleaned) {
			return FieldValue{}
		}
		fv.Text = cleaned
		fv.Valid = true
	case KindDigits:
		if m := digitsRunRe.FindStringSubmatch(raw); m != nil {
			fv.Text = m[1]
			fv.Valid = true
		}
	case KindDate:
		if iso, ok := normalizer.Date(raw); ok {
			fv.Date = iso
			fv.Valid = true
		}
	case KindAmount:
		if formatted, value, ok := normalizer.Amount(raw); ok {
			fv.Amount = &Amount{Formatted: formatted, Value: value}
			fv.Valid = true
		}
	}
	return fv
}

// validName accepts a cleaned cardholder name of at least 4 characters
// containing at least one letter.
func validName(s string) bool {
	if len(s) < 4 {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
