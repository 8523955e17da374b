package vocab

// Options selects the vocabulary for a single decomposition or
// classification. The zero value means "standard vocabulary only". The
// Extra sets are unioned with the standard ones; the NoStandard flags drop
// the corresponding standard set so that only caller-supplied tokens remain.
type Options struct {
	ExtraPrimaryNames          Set
	ExtraMainPrefixes          Set
	ExtraAdditionalPrefixes    Set
	ExtraNoInstallMainPrefixes Set

	NoStandardPrimaryNames       bool
	NoStandardMainPrefixes       bool
	NoStandardAdditionalPrefixes bool
}

// PrimaryNames returns the effective primary-name set.
func (o Options) PrimaryNames() Set {
	if o.NoStandardPrimaryNames {
		return o.ExtraPrimaryNames.Clone()
	}
	return stdPrimaryNames.Union(o.ExtraPrimaryNames)
}

// MainPrefixes returns the effective main-prefix set.
func (o Options) MainPrefixes() Set {
	if o.NoStandardMainPrefixes {
		return o.ExtraMainPrefixes.Clone()
	}
	return stdMainPrefixes.Union(o.ExtraMainPrefixes)
}

// AdditionalPrefixes returns the effective additional-prefix set.
func (o Options) AdditionalPrefixes() Set {
	if o.NoStandardAdditionalPrefixes {
		return o.ExtraAdditionalPrefixes.Clone()
	}
	return stdAdditionalPrefixes.Union(o.ExtraAdditionalPrefixes)
}

// NoInstallMainPrefixes returns the effective set of main prefixes that
// block installation. The standard noinst and check prefixes always apply.
func (o Options) NoInstallMainPrefixes() Set {
	return stdNoInstallMainPrefixes.Union(o.ExtraNoInstallMainPrefixes)
}

// Vocabulary returns the complete effective vocabulary for these options.
func (o Options) Vocabulary() Vocabulary {
	return Vocabulary{
		PrimaryNames:          o.PrimaryNames(),
		MainPrefixes:          o.MainPrefixes(),
		AdditionalPrefixes:    o.AdditionalPrefixes(),
		NoInstallMainPrefixes: o.NoInstallMainPrefixes(),
	}
}
