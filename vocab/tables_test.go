package vocab

import (
	"reflect"
	"testing"
)

func TestVocabularyMergeEmptyIsNoOp(t *testing.T) {
	std := Standard()
	merged := std.Merge(Vocabulary{})
	if !reflect.DeepEqual(std, merged) {
		t.Error("merging a zero-value Vocabulary changed the result")
	}
}

func TestVocabularyMergeAddsMembers(t *testing.T) {
	merged := Standard().Merge(Vocabulary{
		PrimaryNames: NewSet("FIRMWARE"),
		MainPrefixes: NewSet("firmware"),
	})

	if !merged.PrimaryNames.Has("FIRMWARE") || !merged.PrimaryNames.Has("PROGRAMS") {
		t.Errorf("primary names not merged: %v", merged.PrimaryNames.Sorted())
	}
	if !merged.MainPrefixes.Has("firmware") || !merged.MainPrefixes.Has("bin") {
		t.Errorf("main prefixes not merged: %v", merged.MainPrefixes.Sorted())
	}
}

func TestRuleTablesMergeEmptyIsNoOp(t *testing.T) {
	std := StandardRules()
	merged := std.Merge(RuleTables{})
	if !reflect.DeepEqual(std, merged) {
		t.Error("merging a zero-value RuleTables changed the result")
	}
}

func TestRuleTablesMergeUnionsPerKey(t *testing.T) {
	merged := StandardRules().Merge(RuleTables{
		AllowedMainPrefixesByPrimary: map[string]Set{
			"PROGRAMS": NewSet("games"),    // existing key, unioned
			"FIRMWARE": NewSet("firmware"), // new key, copied
		},
		ForbiddenMainPrefixesByPrimary: map[string]Set{
			"PROGRAMS": NewSet("sbin"),
		},
	})

	programs := merged.AllowedMainPrefixesByPrimary["PROGRAMS"]
	if !programs.Has("games") || !programs.Has("bin") {
		t.Errorf("PROGRAMS allow-list not unioned: %v", programs.Sorted())
	}
	if !merged.AllowedMainPrefixesByPrimary["FIRMWARE"].Has("firmware") {
		t.Error("new FIRMWARE entry missing")
	}
	if !merged.ForbiddenMainPrefixesByPrimary["PROGRAMS"].Has("sbin") {
		t.Error("forbidden main prefix override missing")
	}
}

func TestRuleTablesMergeLeavesOperandsAlone(t *testing.T) {
	base := StandardRules()
	base.Merge(RuleTables{
		AllowedMainPrefixesByPrimary: map[string]Set{"PROGRAMS": NewSet("games")},
	})
	if base.AllowedMainPrefixesByPrimary["PROGRAMS"].Has("games") {
		t.Error("Merge mutated its receiver")
	}
}
