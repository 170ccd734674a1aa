package statement

import (
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement/normalizer"
)

// Fallback heuristics: these run only after the issuer cascade fails for a
// field, trading precision for recall on layouts the registry has never
// seen.

var (
	digitsRunRe = regexp.MustCompile(`\b(\d{4})\b`)
	dateTokenRe = regexp.MustCompile(`\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}|\d{1,2}(?:st|nd|rd|th)?\s+[A-Za-z]{3,9},?\s+\d{2,4}|\d{4}-\d{2}-\d{2}`)
	// Amount-shaped: requires a two-decimal tail so bare reference numbers
	// don't qualify.
	amountTokenRe = regexp.MustCompile(`\(?-?(?:\d{1,3}(?:,\d{2,3})+|\d+)\.\d{2}\)?`)

	nameAfterHonorificRe = regexp.MustCompile(`(?i)\b(?:Mr|Mrs|Ms|Dr)\.?\s+([A-Z][A-Za-z\s]+)`)
	upperWordRe          = regexp.MustCompile(`^[A-Z][A-Z.'&-]*$`)
)

// totalBalanceLabels is the tier-3 priority list for the total balance:
// specific phrasings are tried before generic ones.
var totalBalanceLabels = []string{
	"total amount due",
	"total dues",
	"amount payable",
	"amount due",
	"balance due",
}

var minimumDueLabels = []string{
	"minimum amount due",
	"min amount due",
	"minimum due",
}

// headerVocabulary disqualifies a candidate line in the uppercase-name scan;
// these tokens mark structural labels, not people.
var headerVocabulary = []string{
	"statement", "account", "due", "page", "balance", "summary",
	"date", "card", "bank", "total", "amount", "payment", "credit",
	"limit", "period", "number", "address", "gst",
}

// segments splits text into line-like units on newlines and page breaks.
func segments(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\f'
	})
}

// firstPage returns the text before the first page-break marker.
func firstPage(text string) string {
	if idx := strings.Index(text, PageBreak); idx >= 0 {
		return text[:idx]
	}
	return text
}

// keywordWindow locates the first segment containing any keyword and returns
// it concatenated with one segment of context on each side. Containment is
// case-insensitive; a fuzzy pass follows the exact one so OCR-mangled labels
// ("Paymen1 Due Da1e") still anchor a window.
func keywordWindow(text string, keywords []string) (string, bool) {
	segs := segments(text)
	if idx, ok := findKeywordSegment(segs, keywords, false); ok {
		return window(segs, idx), true
	}
	if idx, ok := findKeywordSegment(segs, keywords, true); ok {
		return window(segs, idx), true
	}
	return "", false
}

func findKeywordSegment(segs []string, keywords []string, useFuzzy bool) (int, bool) {
	for i, seg := range segs {
		lower := strings.ToLower(seg)
		for _, kw := range keywords {
			if useFuzzy {
				if fuzzy.MatchNormalizedFold(kw, lower) {
					return i, true
				}
			} else if strings.Contains(lower, kw) {
				return i, true
			}
		}
	}
	return 0, false
}

func window(segs []string, idx int) string {
	lo, hi := idx-1, idx+1
	if lo < 0 {
		lo = 0
	}
	if hi >= len(segs) {
		hi = len(segs) - 1
	}
	return strings.Join(segs[lo:hi+1], "\n")
}

// genericToken extracts the first kind-shaped token from a narrow window:
// a 4-digit run for card suffixes, a date-shaped token for dates, an
// amount-shaped token for amounts, an honorific-led run for names.
func genericToken(windowText string, kind Kind) (string, bool) {
	switch kind {
	case KindDigits:
		if m := digitsRunRe.FindStringSubmatch(windowText); m != nil {
			return m[1], true
		}
	case KindDate:
		if m := dateTokenRe.FindString(windowText); m != "" {
			return collapseSpace(m), true
		}
	case KindAmount:
		if m := amountTokenRe.FindString(windowText); m != "" {
			return m, true
		}
	case KindName:
		if m := nameAfterHonorificRe.FindStringSubmatch(windowText); m != nil {
			return collapseSpace(m[1]), true
		}
	}
	return "", false
}

// uppercaseNameScan walks the first page for a line of 2-4 all-uppercase
// words that carries no structural vocabulary. Statement headers shout too,
// hence the exclusion list.
func uppercaseNameScan(text string) (string, bool) {
	for _, seg := range segments(firstPage(text)) {
		seg = collapseSpace(seg)
		words := strings.Fields(seg)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		allUpper := true
		for _, w := range words {
			if !upperWordRe.MatchString(w) {
				allUpper = false
				break
			}
		}
		if !allUpper || containsVocabulary(seg) {
			continue
		}
		return seg, true
	}
	return "", false
}

func containsVocabulary(seg string) bool {
	lower := strings.ToLower(seg)
	for _, tok := range headerVocabulary {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// amountLabelSearch anchors on the labels in priority order and pulls the
// first amount-shaped token from the label's window.
func amountLabelSearch(text string, labels []string) (string, bool) {
	for _, label := range labels {
		w, ok := keywordWindow(text, []string{label})
		if !ok {
			continue
		}
		if tok, ok := genericToken(w, KindAmount); ok {
			return tok, true
		}
	}
	return "", false
}

// largestAmount scans the first page for every monetary-shaped token and
// returns the largest non-negative one. Large first-page figures are
// statistically the due amount, but this can pick a credit limit instead;
// the result is a best guess, not authoritative.
func largestAmount(text string) (string, bool) {
	var bestRaw string
	var found bool
	best := decimal.Zero

	for _, tok := range amountTokenRe.FindAllString(firstPage(text), -1) {
		d, ok := normalizer.AmountDecimal(tok)
		if !ok || d.IsNegative() {
			continue
		}
		if !found || d.GreaterThan(best) {
			best = d
			bestRaw = tok
			found = true
		}
	}
	return bestRaw, found
}
