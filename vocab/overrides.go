package vocab

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Overrides bundles caller-supplied vocabulary and rule-table extensions,
// typically kept in a YAML document next to the build description that uses
// them.
type Overrides struct {
	Vocabulary Vocabulary
	Rules      RuleTables
}

// Options converts the vocabulary part of an override document into
// decomposition options.
func (o Overrides) Options() Options {
	return Options{
		ExtraPrimaryNames:          o.Vocabulary.PrimaryNames,
		ExtraMainPrefixes:          o.Vocabulary.MainPrefixes,
		ExtraAdditionalPrefixes:    o.Vocabulary.AdditionalPrefixes,
		ExtraNoInstallMainPrefixes: o.Vocabulary.NoInstallMainPrefixes,
	}
}

// overridesFile mirrors the YAML document structure.
type overridesFile struct {
	PrimaryNames                    []string            `yaml:"primary_names"`
	MainPrefixes                    []string            `yaml:"main_prefixes"`
	AdditionalPrefixes              []string            `yaml:"additional_prefixes"`
	NoInstallMainPrefixes           []string            `yaml:"no_install_main_prefixes"`
	AllowedMainPrefixes             map[string][]string `yaml:"allowed_main_prefixes"`
	ForbiddenMainPrefixes           map[string][]string `yaml:"forbidden_main_prefixes"`
	ForbiddenAdditionalByPrimary    map[string][]string `yaml:"forbidden_additional_by_primary"`
	ForbiddenAdditionalByMainPrefix map[string][]string `yaml:"forbidden_additional_by_main_prefix"`
}

// tokenPattern accepts underscore-joined alphanumeric words. Leading,
// trailing and doubled underscores would break suffix splitting.
var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9]+(_[A-Za-z0-9]+)*$`)

// ParseOverrides parses a YAML override document. An empty document yields
// zero-value overrides; any malformed token fails the whole document.
func ParseOverrides(doc []byte) (Overrides, error) {
	var of overridesFile
	if err := yaml.Unmarshal(doc, &of); err != nil {
		return Overrides{}, fmt.Errorf("invalid YAML: %w", err)
	}

	var o Overrides
	var err error
	if o.Vocabulary.PrimaryNames, err = tokenSet("primary_names", of.PrimaryNames); err != nil {
		return Overrides{}, err
	}
	if o.Vocabulary.MainPrefixes, err = tokenSet("main_prefixes", of.MainPrefixes); err != nil {
		return Overrides{}, err
	}
	if o.Vocabulary.AdditionalPrefixes, err = tokenSet("additional_prefixes", of.AdditionalPrefixes); err != nil {
		return Overrides{}, err
	}
	if o.Vocabulary.NoInstallMainPrefixes, err = tokenSet("no_install_main_prefixes", of.NoInstallMainPrefixes); err != nil {
		return Overrides{}, err
	}
	if o.Rules.AllowedMainPrefixesByPrimary, err = tokenTable("allowed_main_prefixes", of.AllowedMainPrefixes); err != nil {
		return Overrides{}, err
	}
	if o.Rules.ForbiddenMainPrefixesByPrimary, err = tokenTable("forbidden_main_prefixes", of.ForbiddenMainPrefixes); err != nil {
		return Overrides{}, err
	}
	if o.Rules.ForbiddenAdditionalByPrimary, err = tokenTable("forbidden_additional_by_primary", of.ForbiddenAdditionalByPrimary); err != nil {
		return Overrides{}, err
	}
	if o.Rules.ForbiddenAdditionalByMainPrefix, err = tokenTable("forbidden_additional_by_main_prefix", of.ForbiddenAdditionalByMainPrefix); err != nil {
		return Overrides{}, err
	}
	return o, nil
}

func tokenSet(field string, items []string) (Set, error) {
	if len(items) == 0 {
		return nil, nil
	}
	s := NewSet()
	for _, item := range items {
		if !tokenPattern.MatchString(item) {
			return nil, fmt.Errorf("%s: invalid token %q", field, item)
		}
		s.Add(item)
	}
	return s, nil
}

func tokenTable(field string, entries map[string][]string) (map[string]Set, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	table := make(map[string]Set, len(entries))
	for key, items := range entries {
		if !tokenPattern.MatchString(key) {
			return nil, fmt.Errorf("%s: invalid key %q", field, key)
		}
		set, err := tokenSet(field, items)
		if err != nil {
			return nil, err
		}
		if set == nil {
			set = NewSet()
		}
		table[key] = set
	}
	return table, nil
}
