// Package uniform decomposes GNU-style uniform build variable names such as
// "nobase_include_HEADERS" into additional prefixes, a main prefix and a
// primary name, and validates the resulting combination against the
// vocabulary rule tables.
package uniform

import "amnames/vocab"

// SplitLongestSuffix splits the longest matching candidate off the end of
// name. A candidate matches if it equals the whole name, or if name ends
// with "_" followed by the candidate. An empty return value stands for an
// absent part: (name, "") when nothing matched, ("", suffix) when the whole
// name matched or only a single leading underscore would remain. Two
// distinct candidates of equal length cannot match the same tail, so the
// longest match is unique and the result does not depend on set iteration
// order.
func SplitLongestSuffix(name string, candidates vocab.Set) (remainder, suffix string) {
	best := ""
	for candidate := range candidates {
		if candidate == "" || len(candidate) > len(name) || len(candidate) <= len(best) {
			continue
		}
		i := len(name) - len(candidate)
		if name[i:] != candidate {
			continue
		}
		if i > 0 && name[i-1] != '_' {
			continue
		}
		best = candidate
	}
	if best == "" {
		return name, ""
	}
	if i := len(name) - len(best); i > 1 {
		return name[:i-1], best
	}
	return "", best
}

// SplitPrimaryName splits a primary name such as PROGRAMS off the end of
// name, using the standard primary names plus any extras from opts.
func SplitPrimaryName(name string, opts vocab.Options) (remainder, primary string) {
	return SplitLongestSuffix(name, opts.PrimaryNames())
}

// SplitMainPrefix splits a main prefix such as bin or man3 off the end of
// name, using the standard main prefixes plus any extras from opts.
func SplitMainPrefix(name string, opts vocab.Options) (remainder, mainPrefix string) {
	return SplitLongestSuffix(name, opts.MainPrefixes())
}
