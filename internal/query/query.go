// Package query builds enriched PubMed queries from user-supplied required
// terms and a domain keyword vocabulary under a configurable inclusion
// policy.
package query

import "strings"

// PolicyKind selects how many optional terms the builder includes.
type PolicyKind int

const (
	// All includes every optional term, OR-joined.
	All PolicyKind = iota
	// Fraction includes the first ceil(len*percent/100) optional terms.
	Fraction
	// None omits the optional clause entirely.
	None
)

// Policy controls optional-term inclusion. The zero value is All.
type Policy struct {
	Kind    PolicyKind
	Percent int // used only when Kind == Fraction
}

// IncludeAll returns a policy that keeps every optional term.
func IncludeAll() Policy { return Policy{Kind: All} }

// IncludeFraction returns a policy that keeps the first ceil(len*p/100)
// optional terms. For p in [1,100] and a non-empty list this always keeps
// at least one term.
func IncludeFraction(p int) Policy { return Policy{Kind: Fraction, Percent: p} }

// IncludeNone returns a policy that drops the optional clause.
func IncludeNone() Policy { return Policy{Kind: None} }

// Build combines required and optional terms into a PubMed query string.
// Required terms are AND-joined and never dropped; optional terms are
// OR-joined and truncated per the policy. The output is
// "(required) AND (optional)". An empty group is dropped rather than
// emitted as degenerate "()" syntax.
func Build(required, optional []string, pol Policy) string {
	req := joinNonEmpty(required, " AND ")
	opt := joinNonEmpty(selectOptional(optional, pol), " OR ")

	switch {
	case req != "" && opt != "":
		return "(" + req + ") AND (" + opt + ")"
	case req != "":
		return "(" + req + ")"
	case opt != "":
		return "(" + opt + ")"
	default:
		return ""
	}
}

// selectOptional applies the inclusion policy to the ordered optional terms.
// Fraction keeps a deterministic prefix, not a sample.
func selectOptional(optional []string, pol Policy) []string {
	switch pol.Kind {
	case None:
		return nil
	case Fraction:
		if len(optional) == 0 {
			return nil
		}
		n := ceilFraction(len(optional), pol.Percent)
		if n <= 0 {
			return nil
		}
		if n > len(optional) {
			n = len(optional)
		}
		return optional[:n]
	default:
		return optional
	}
}

// ceilFraction returns ceil(count * percent / 100) without floating point.
func ceilFraction(count, percent int) int {
	if percent <= 0 {
		return 0
	}
	return (count*percent + 99) / 100
}

func joinNonEmpty(terms []string, sep string) string {
	kept := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, sep)
}
