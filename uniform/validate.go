package uniform

import (
	"fmt"

	"amnames/vocab"
)

// Validate checks a decomposed name against the standard combination rules
// merged with the caller's overrides. A zero-value RuleTables applies the
// standard rules unchanged. The deny-list checks report
// ErrForbiddenCombination; independently of those, a main prefix outside its
// primary's allow-list reports ErrUnsupportedCombination.
func Validate(d Decomposed, overrides vocab.RuleTables) error {
	rules := vocab.StandardRules().Merge(overrides)

	if rules.ForbiddenMainPrefixesByPrimary[d.Primary].Has(d.MainPrefix) {
		return fmt.Errorf("%w: main prefix %q is forbidden for primary %q in %q",
			ErrForbiddenCombination, d.MainPrefix, d.Primary, d.Join())
	}
	for _, prefix := range d.AdditionalPrefixes {
		if rules.ForbiddenAdditionalByPrimary[d.Primary].Has(prefix) {
			return fmt.Errorf("%w: additional prefix %q is forbidden for primary %q in %q",
				ErrForbiddenCombination, prefix, d.Primary, d.Join())
		}
		if rules.ForbiddenAdditionalByMainPrefix[d.MainPrefix].Has(prefix) {
			return fmt.Errorf("%w: additional prefix %q is forbidden for main prefix %q in %q",
				ErrForbiddenCombination, prefix, d.MainPrefix, d.Join())
		}
	}

	if !rules.AllowedMainPrefixesByPrimary[d.Primary].Has(d.MainPrefix) {
		return fmt.Errorf("%w: main prefix %q is not allowed for primary %q in %q",
			ErrUnsupportedCombination, d.MainPrefix, d.Primary, d.Join())
	}
	return nil
}
