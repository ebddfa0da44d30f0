package service

import (
	"regexp"
	"strings"
)

// Most specific pattern first, so "order id: AB12" yields "AB12" and not
// the literal token "id".
var orderIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)order\s+id[:\s]+(\w+)`),
	regexp.MustCompile(`(?i)orderid[:\s]+(\w+)`),
	regexp.MustCompile(`(?i)order\s+(\w+)`),
}

// ExtractOrderID pulls an order identifier out of free text. Patterns are
// tried in order and the first submatch wins.
func ExtractOrderID(message string) (string, bool) {
	for _, re := range orderIDPatterns {
		if m := re.FindStringSubmatch(message); len(m) > 1 && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

var quotedRe = regexp.MustCompile(`"([^"]+)"`)

// ExtractProductName prefers a double-quoted substring; otherwise the
// first hit from the keyword list wins, so keyword order is the tie-break.
func ExtractProductName(message string, keywords []string) (string, bool) {
	if m := quotedRe.FindStringSubmatch(message); len(m) > 1 {
		return m[1], true
	}

	lower := strings.ToLower(message)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return keyword, true
		}
	}
	return "", false
}
