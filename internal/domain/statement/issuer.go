package statement

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Issuer is the financial institution behind a statement layout.
type Issuer string

const (
	IssuerHDFC    Issuer = "HDFC"
	IssuerICICI   Issuer = "ICICI"
	IssuerIDFC    Issuer = "IDFC"
	IssuerCITI    Issuer = "CITI"
	IssuerSBI     Issuer = "SBI"
	IssuerAXIS    Issuer = "AXIS"
	IssuerUnknown Issuer = "UNKNOWN"
)

// signature is one classification rule: the brand token must be present, and
// when coOccur is non-empty at least one of those tokens must appear too.
// Short or ambiguous brand tokens (SBI, AXIS) carry a co-occurrence guard so
// incidental letter runs don't classify a document.
type signature struct {
	issuer  Issuer
	token   string
	coOccur []string
}

// signatures is evaluated in declared order and the first satisfied rule
// wins. The order is a behavioral contract: it deterministically resolves
// texts that mention more than one issuer (payment instructions, co-brand
// footers), so reordering entries is a semantic change, not a refactor.
var signatures = []signature{
	{issuer: IssuerHDFC, token: "HDFC"},
	{issuer: IssuerICICI, token: "ICICI"},
	{issuer: IssuerIDFC, token: "IDFC"},
	{issuer: IssuerCITI, token: "CITI"},
	{issuer: IssuerSBI, token: "SBICARD"},
	{issuer: IssuerSBI, token: "SBI", coOccur: []string{"CARD", "BANK"}},
	{issuer: IssuerAXIS, token: "AXIS", coOccur: []string{"BANK", "CARD"}},
}

// Classifier decides which issuer produced a statement text. All candidate
// tokens are located in a single Aho-Corasick pass; the ordered signature
// list then resolves ambiguity.
type Classifier struct {
	matcher *ahocorasick.Matcher
	tokens  []string
}

// NewClassifier builds the token matcher for the fixed signature list.
func NewClassifier() *Classifier {
	seen := make(map[string]bool)
	var tokens []string
	add := func(tok string) {
		if !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	for _, sig := range signatures {
		add(sig.token)
		for _, tok := range sig.coOccur {
			add(tok)
		}
	}

	patterns := make([][]byte, len(tokens))
	for i, tok := range tokens {
		patterns[i] = []byte(tok)
	}

	return &Classifier{
		matcher: ahocorasick.NewMatcher(patterns),
		tokens:  tokens,
	}
}

// Classify returns the first issuer whose signature is satisfied, or
// IssuerUnknown. Unknown is a valid terminal state, not an error: empty and
// pathologically short inputs land here naturally.
func (c *Classifier) Classify(text string) Issuer {
	if text == "" {
		return IssuerUnknown
	}

	present := make(map[string]bool, len(c.tokens))
	for _, idx := range c.matcher.Match([]byte(normalizeForClassification(text))) {
		if idx >= 0 && idx < len(c.tokens) {
			present[c.tokens[idx]] = true
		}
	}

	for _, sig := range signatures {
		if !present[sig.token] {
			continue
		}
		if len(sig.coOccur) == 0 {
			return sig.issuer
		}
		for _, tok := range sig.coOccur {
			if present[tok] {
				return sig.issuer
			}
		}
	}
	return IssuerUnknown
}

// normalizeForClassification uppercases the text and folds the accented
// variants OCR produces for Citi brand marks ("cíti").
func normalizeForClassification(text string) string {
	up := strings.ToUpper(text)
	return strings.NewReplacer("Í", "I", "Ì", "I", "Î", "I").Replace(up)
}
