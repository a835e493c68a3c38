// Package textmatch implements the keyword and pattern matching primitives
// used for classification and relevance scoring. Matching is
// case-insensitive substring containment; occurrence counting is a naive
// overlapping substring count.
package textmatch

import (
	"regexp"
	"strings"
)

// paramValueRe detects a numeric value attached to a pharmacokinetic
// parameter abbreviation, e.g. "Vd = 42.5 L", "CL: 3.1 L/h", "ka 0.8".
var paramValueRe = regexp.MustCompile(`(?i)\b(vd|cl|ka|ke|tlag|mtt|t1/2|volume of distribution|distribution volume|clearance|absorption rate constant|elimination rate|lag time|mean transit time|half-life)\b\s*[:=]?\s*\d+(\.\d+)?\s*(l/h|ml/min|mg/l|1/h|l/kg|l|ml|h|min|%)?`)

// ContainsAny reports whether text contains any of the keywords,
// case-insensitively.
func ContainsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if k == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// CountOccurrences returns the number of occurrences of keyword in text,
// case-insensitively. Overlapping occurrences are counted independently:
// CountOccurrences("aaa", "aa") is 2. This naive contract is deliberate
// and callers depend on it.
func CountOccurrences(text, keyword string) int {
	if keyword == "" {
		return 0
	}
	lower := strings.ToLower(text)
	k := strings.ToLower(keyword)

	count := 0
	for i := 0; i+len(k) <= len(lower); i++ {
		if lower[i:i+len(k)] == k {
			count++
		}
	}
	return count
}

// CountAll sums CountOccurrences over every keyword.
func CountAll(text string, keywords []string) int {
	total := 0
	for _, k := range keywords {
		total += CountOccurrences(text, k)
	}
	return total
}

// HasParameterValue reports whether text mentions a PK parameter with an
// attached numeric value (optionally separated by ':' or '=' and followed
// by a unit).
func HasParameterValue(text string) bool {
	return paramValueRe.MatchString(text)
}

// Tokens splits text on whitespace and lowercases each token. Used for
// token-level vocabulary scans.
func Tokens(text string) []string {
	fields := strings.Fields(text)
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}
