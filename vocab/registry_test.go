package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardPrimaryNames(t *testing.T) {
	primaries := StandardPrimaryNames()

	for _, name := range []string{"PROGRAMS", "LIBRARIES", "LTLIBRARIES", "LISP",
		"PYTHON", "JAVA", "SCRIPTS", "DATA", "HEADERS", "MANS", "TEXINFOS"} {
		assert.True(t, primaries.Has(name), "missing primary %s", name)
	}
	assert.Equal(t, 11, primaries.Len())
}

func TestManSectionExpansion(t *testing.T) {
	mains := StandardMainPrefixes()
	mans := StandardAllowedMainPrefixes("MANS")
	data := InstallDataPrefixes()

	for _, sec := range StandardManSections() {
		man := "man" + sec
		assert.True(t, mains.Has(man), "main prefixes missing %s", man)
		assert.True(t, mans.Has(man), "MANS allow-list missing %s", man)
		assert.True(t, data.Has(man), "install-data prefixes missing %s", man)
	}
	assert.Len(t, StandardManSections(), 12)
}

func TestEveryPrimaryAllowsNoInstallPrefixes(t *testing.T) {
	table := StandardAllowedMainPrefixTable()
	require.Len(t, table, 11)

	for primary, allowed := range table {
		assert.True(t, allowed.Has("noinst"), "%s does not allow noinst", primary)
		assert.True(t, allowed.Has("check"), "%s does not allow check", primary)
	}
}

func TestAllowedMainPrefixes(t *testing.T) {
	tests := []struct {
		primary string
		want    []string
		notWant []string
	}{
		{"PROGRAMS", []string{"bin", "sbin", "libexec", "pkglibexec"}, []string{"include", "man"}},
		{"HEADERS", []string{"include", "oldinclude", "pkginclude"}, []string{"bin"}},
		// python and pkgpython are listed even though they are not standard
		// main prefixes
		{"PYTHON", []string{"python", "pkgpython"}, []string{"bin"}},
		{"DATA", []string{"data", "sysconf", "sharedstate", "localstate", "pkgdata"}, []string{"lib"}},
	}
	for _, tt := range tests {
		allowed := StandardAllowedMainPrefixes(tt.primary)
		for _, prefix := range tt.want {
			assert.True(t, allowed.Has(prefix), "%s should allow %s", tt.primary, prefix)
		}
		for _, prefix := range tt.notWant {
			assert.False(t, allowed.Has(prefix), "%s should not allow %s", tt.primary, prefix)
		}
	}

	// JAVA has no directory prefixes of its own.
	java := StandardAllowedMainPrefixes("JAVA")
	assert.ElementsMatch(t, []string{"check", "noinst"}, java.Sorted())

	// Unknown primaries get an empty set, not nil.
	unknown := StandardAllowedMainPrefixes("NOSUCH")
	require.NotNil(t, unknown)
	assert.Equal(t, 0, unknown.Len())
}

func TestInstallPrefixSetsAreDisjoint(t *testing.T) {
	data := InstallDataPrefixes()
	for _, prefix := range InstallExecPrefixes().Sorted() {
		assert.False(t, data.Has(prefix), "%s is in both install sets", prefix)
	}
}

func TestStandardForbiddenDefaults(t *testing.T) {
	rules := StandardRules()

	// notrans is man-page specific.
	assert.True(t, rules.ForbiddenAdditionalByPrimary["PROGRAMS"].Has("notrans"))
	assert.True(t, rules.ForbiddenAdditionalByPrimary["HEADERS"].Has("notrans"))
	assert.False(t, rules.ForbiddenAdditionalByPrimary["MANS"].Has("notrans"))

	// man pages install flat by section.
	assert.True(t, rules.ForbiddenAdditionalByPrimary["MANS"].Has("nobase"))

	// never-installed artifacts have no layout to preserve.
	assert.True(t, rules.ForbiddenAdditionalByMainPrefix["noinst"].Has("nobase"))
	assert.True(t, rules.ForbiddenAdditionalByMainPrefix["check"].Has("nobase"))

	assert.Empty(t, rules.ForbiddenMainPrefixesByPrimary)
}

func TestAccessorsReturnCopies(t *testing.T) {
	StandardMainPrefixes().Add("corrupted")
	assert.False(t, StandardMainPrefixes().Has("corrupted"))

	StandardAllowedMainPrefixes("PROGRAMS").Add("corrupted")
	assert.False(t, StandardAllowedMainPrefixes("PROGRAMS").Has("corrupted"))

	StandardAllowedMainPrefixTable()["PROGRAMS"].Add("corrupted")
	assert.False(t, StandardAllowedMainPrefixes("PROGRAMS").Has("corrupted"))

	StandardRules().AllowedMainPrefixesByPrimary["PROGRAMS"].Add("corrupted")
	assert.False(t, StandardRules().AllowedMainPrefixesByPrimary["PROGRAMS"].Has("corrupted"))

	sections := StandardManSections()
	sections[0] = "corrupted"
	assert.Equal(t, "0", StandardManSections()[0])
}
