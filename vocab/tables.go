package vocab

// Vocabulary groups the four token sets that drive name decomposition and
// classification.
type Vocabulary struct {
	PrimaryNames          Set
	MainPrefixes          Set
	AdditionalPrefixes    Set
	NoInstallMainPrefixes Set
}

// Merge returns a vocabulary whose sets are the union of both vocabularies'
// sets. Merging a zero-value Vocabulary changes nothing.
func (v Vocabulary) Merge(other Vocabulary) Vocabulary {
	return Vocabulary{
		PrimaryNames:          v.PrimaryNames.Union(other.PrimaryNames),
		MainPrefixes:          v.MainPrefixes.Union(other.MainPrefixes),
		AdditionalPrefixes:    v.AdditionalPrefixes.Union(other.AdditionalPrefixes),
		NoInstallMainPrefixes: v.NoInstallMainPrefixes.Union(other.NoInstallMainPrefixes),
	}
}

// RuleTables holds the combination rules checked during validation.
// AllowedMainPrefixesByPrimary is an allow-list: a main prefix must appear
// in its primary's entry. The three Forbidden tables are deny-lists keyed by
// primary name or main prefix. A nil or missing entry forbids nothing.
type RuleTables struct {
	AllowedMainPrefixesByPrimary    map[string]Set
	ForbiddenMainPrefixesByPrimary  map[string]Set
	ForbiddenAdditionalByPrimary    map[string]Set
	ForbiddenAdditionalByMainPrefix map[string]Set
}

// Merge returns rule tables combining both operands: entries under the same
// key are unioned, other entries are copied. Merging a zero-value RuleTables
// changes nothing.
func (t RuleTables) Merge(other RuleTables) RuleTables {
	return RuleTables{
		AllowedMainPrefixesByPrimary:    mergeTable(t.AllowedMainPrefixesByPrimary, other.AllowedMainPrefixesByPrimary),
		ForbiddenMainPrefixesByPrimary:  mergeTable(t.ForbiddenMainPrefixesByPrimary, other.ForbiddenMainPrefixesByPrimary),
		ForbiddenAdditionalByPrimary:    mergeTable(t.ForbiddenAdditionalByPrimary, other.ForbiddenAdditionalByPrimary),
		ForbiddenAdditionalByMainPrefix: mergeTable(t.ForbiddenAdditionalByMainPrefix, other.ForbiddenAdditionalByMainPrefix),
	}
}

func mergeTable(a, b map[string]Set) map[string]Set {
	merged := make(map[string]Set, len(a)+len(b))
	for key, set := range a {
		merged[key] = set.Clone()
	}
	for key, set := range b {
		if existing, ok := merged[key]; ok {
			merged[key] = existing.Union(set)
		} else {
			merged[key] = set.Clone()
		}
	}
	return merged
}
