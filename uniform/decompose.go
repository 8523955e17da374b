package uniform

import (
	"fmt"
	"strings"

	"amnames/vocab"
)

// Decomposed is the result of splitting a full uniform name into its parts.
type Decomposed struct {
	AdditionalPrefixes []string // left to right as they appeared in the name
	MainPrefix         string
	Primary            string
}

// Join reassembles the parts with underscore separators. For every value
// produced by Decompose, Join returns the original input.
func (d Decomposed) Join() string {
	parts := make([]string, 0, len(d.AdditionalPrefixes)+2)
	parts = append(parts, d.AdditionalPrefixes...)
	if d.MainPrefix != "" {
		parts = append(parts, d.MainPrefix)
	}
	if d.Primary != "" {
		parts = append(parts, d.Primary)
	}
	return strings.Join(parts, "_")
}

func (d Decomposed) String() string { return d.Join() }

// Decompose splits a full uniform name right to left: the primary name
// first, then the main prefix, then additional prefixes one at a time until
// nothing is left. Failures wrap ErrMalformedName, ErrUnrecognizedPrimary,
// ErrUnrecognizedMainPrefix or ErrUnknownPrefix.
func Decompose(name string, opts vocab.Options) (Decomposed, error) {
	if name == "" {
		return Decomposed{}, fmt.Errorf("%w: empty name", ErrMalformedName)
	}

	rest, primary := SplitLongestSuffix(name, opts.PrimaryNames())
	if primary == "" {
		return Decomposed{}, fmt.Errorf("%w: %q does not end with a known primary name", ErrUnrecognizedPrimary, name)
	}
	if rest == "" {
		return Decomposed{}, fmt.Errorf("%w: %q is a bare primary name with no main prefix", ErrMalformedName, name)
	}

	rest, mainPrefix := SplitLongestSuffix(rest, opts.MainPrefixes())
	if mainPrefix == "" {
		return Decomposed{}, fmt.Errorf("%w: %q in %q", ErrUnrecognizedMainPrefix, rest, name)
	}

	d := Decomposed{MainPrefix: mainPrefix, Primary: primary}
	additionals := opts.AdditionalPrefixes()
	for rest != "" {
		next, prefix := SplitLongestSuffix(rest, additionals)
		if prefix == "" {
			return Decomposed{}, fmt.Errorf("%w: %q in %q", ErrUnknownPrefix, rest, name)
		}
		d.AdditionalPrefixes = append([]string{prefix}, d.AdditionalPrefixes...)
		rest = next
	}
	return d, nil
}
