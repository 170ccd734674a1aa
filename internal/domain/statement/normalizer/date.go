// Package normalizer converts raw matched statement fragments into canonical
// typed values: ISO dates, signed decimal amounts, and cleaned names. Every
// function is pure; an unparseable input yields a "not ok" result, never an
// error.
package normalizer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts is the ordered template cascade. Day-first forms come first
// because every supported issuer prints day/month/year; ISO and month-name
// forms follow. The first layout that parses wins.
var dateLayouts = []string{
	"2/1/2006",
	"2/1/06",
	"2-1-2006",
	"2-1-06",
	"2 Jan 2006",
	"2 Jan 06",
	"2 January 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2006-01-02",
	"2006/01/02",
}

var (
	ordinalRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)\b`)
	// Last resort: three number groups in day, month, year order.
	dmyRe = regexp.MustCompile(`(\d{1,2})\D+(\d{1,2})\D+(\d{2,4})`)
)

// Date normalizes a raw date fragment to ISO YYYY-MM-DD. Ordinal suffixes
// and thousands-style commas are stripped before the template cascade runs;
// if no template parses, a day/month/year number-group extraction is
// validated as a real calendar date. Output is always ISO or nothing, never
// a partial parse.
func Date(raw string) (string, bool) {
	s := ordinalRe.ReplaceAllString(raw, "$1")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}

	m := dmyRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject overflowed dates like 31/02 that time.Date silently rolls over.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
