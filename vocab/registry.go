// Package vocab holds the vocabularies and combination rules of the GNU
// uniform naming scheme: primary names like PROGRAMS or HEADERS, main
// (directory) prefixes like bin or man3, additional prefixes like nobase,
// and the tables saying which of them may be combined. The standard tables
// follow the automake manual ("The Uniform Naming Scheme", "What Gets
// Installed"); callers extend them per call through Options, RuleTables or a
// parsed Overrides document.
//
// The standard tables are built once during package initialization and are
// never mutated afterward, so they are safe for unsynchronized concurrent
// reads. Accessors return copies.
package vocab

// manSections lists the manual page sections that expand into manX main
// prefixes.
var manSections = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "n", "l"}

var (
	stdPrimaryNames = NewSet(
		"PROGRAMS",
		"LIBRARIES",
		"LTLIBRARIES",
		"LISP",
		"PYTHON",
		"JAVA",
		"SCRIPTS",
		"DATA",
		"HEADERS",
		"MANS",
		"TEXINFOS",
	)

	stdMainPrefixes = NewSet(
		"bin",
		"sbin",
		"libexec",
		"dataroot",
		"data",
		"sysconf",
		"sharedstate",
		"localstate",
		"include",
		"oldinclude",
		"doc",
		"info",
		"html",
		"dvi",
		"pdf",
		"ps",
		"lib",
		"lisp",
		"locale",
		"man",
		"pkgdata",
		"pkginclude",
		"pkglib",
		"pkglibexec",
		// not directory prefixes, but they appear at the same position
		"noinst",
		"check",
	)

	stdAdditionalPrefixes = NewSet("dist", "nodist", "nobase", "notrans")

	// main prefixes that block installation entirely
	stdNoInstallMainPrefixes = NewSet("noinst", "check")

	// the two halves of a staged installation, per automake's
	// "The Two Parts of Install"
	stdInstallExecPrefixes = NewSet("bin", "sbin", "libexec", "sysconf", "localstate", "lib", "pkglib")
	stdInstallDataPrefixes = NewSet("data", "info", "man", "include", "oldinclude", "pkgdata", "pkginclude")

	// python and pkgpython are valid for PYTHON even though they are not
	// standard main prefixes on their own
	stdAllowedMainPrefixes = map[string]Set{
		"PROGRAMS":    NewSet("bin", "sbin", "libexec", "pkglibexec"),
		"LIBRARIES":   NewSet("lib", "pkglib"),
		"LTLIBRARIES": NewSet("lib", "pkglib"),
		"LISP":        NewSet("lisp"),
		"PYTHON":      NewSet("python", "pkgpython"),
		"JAVA":        NewSet(),
		"SCRIPTS":     NewSet("bin", "sbin", "libexec", "pkglibexec", "pkgdata"),
		"DATA":        NewSet("data", "sysconf", "sharedstate", "localstate", "pkgdata"),
		"HEADERS":     NewSet("include", "oldinclude", "pkginclude"),
		"MANS":        NewSet("man"),
		"TEXINFOS":    NewSet("info"),
	}

	stdForbiddenMainPrefixes = map[string]Set{}

	// nobase preserves source directory structure, which man pages
	// (installed flat by section) do not have
	stdForbiddenAdditionalByPrimary = map[string]Set{
		"MANS": NewSet("nobase"),
	}

	// never-installed artifacts have no install layout to preserve
	stdForbiddenAdditionalByMainPrefix = map[string]Set{
		"noinst": NewSet("nobase"),
		"check":  NewSet("nobase"),
	}
)

func init() {
	// man0..man9, mann, manl count as main prefixes, as targets for MANS,
	// and as install-data prefixes.
	for _, sec := range manSections {
		man := "man" + sec
		stdMainPrefixes.Add(man)
		stdAllowedMainPrefixes["MANS"].Add(man)
		stdInstallDataPrefixes.Add(man)
	}

	for primary, allowed := range stdAllowedMainPrefixes {
		// noinst and check go with every primary.
		allowed.Add("noinst")
		allowed.Add("check")

		// notrans controls man page translation and makes sense nowhere else.
		if primary != "MANS" {
			forbidden := stdForbiddenAdditionalByPrimary[primary]
			if forbidden == nil {
				forbidden = NewSet()
				stdForbiddenAdditionalByPrimary[primary] = forbidden
			}
			forbidden.Add("notrans")
		}
	}
}

// StandardPrimaryNames returns the primary names defined by the automake
// documentation, such as PROGRAMS or HEADERS.
func StandardPrimaryNames() Set { return stdPrimaryNames.Clone() }

// StandardMainPrefixes returns the standard main prefixes: the GNU directory
// variables (bin, include, man3, ...) plus the no-install prefixes noinst
// and check.
func StandardMainPrefixes() Set { return stdMainPrefixes.Clone() }

// StandardAdditionalPrefixes returns the standard additional prefixes
// (dist, nodist, nobase, notrans).
func StandardAdditionalPrefixes() Set { return stdAdditionalPrefixes.Clone() }

// StandardNoInstallMainPrefixes returns the main prefixes that mark a name
// as build-only, never installed.
func StandardNoInstallMainPrefixes() Set { return stdNoInstallMainPrefixes.Clone() }

// StandardManSections returns the manual page sections ("0".."9", "n", "l")
// expanded into the manX prefixes.
func StandardManSections() []string { return append([]string(nil), manSections...) }

// StandardAllowedMainPrefixes returns the main prefixes that may go with the
// given primary name. Unknown primaries get an empty set.
func StandardAllowedMainPrefixes(primary string) Set {
	if allowed, ok := stdAllowedMainPrefixes[primary]; ok {
		return allowed.Clone()
	}
	return NewSet()
}

// StandardAllowedMainPrefixTable returns the whole primary to allowed main
// prefix table.
func StandardAllowedMainPrefixTable() map[string]Set { return cloneTable(stdAllowedMainPrefixes) }

// InstallExecPrefixes returns the main prefixes handled by the install-exec
// part of a staged installation.
func InstallExecPrefixes() Set { return stdInstallExecPrefixes.Clone() }

// InstallDataPrefixes returns the main prefixes handled by the install-data
// part of a staged installation, including the manX prefixes.
func InstallDataPrefixes() Set { return stdInstallDataPrefixes.Clone() }

// Standard returns the complete standard vocabulary.
func Standard() Vocabulary {
	return Vocabulary{
		PrimaryNames:          stdPrimaryNames.Clone(),
		MainPrefixes:          stdMainPrefixes.Clone(),
		AdditionalPrefixes:    stdAdditionalPrefixes.Clone(),
		NoInstallMainPrefixes: stdNoInstallMainPrefixes.Clone(),
	}
}

// StandardRules returns the standard combination rule tables.
func StandardRules() RuleTables {
	return RuleTables{
		AllowedMainPrefixesByPrimary:    cloneTable(stdAllowedMainPrefixes),
		ForbiddenMainPrefixesByPrimary:  cloneTable(stdForbiddenMainPrefixes),
		ForbiddenAdditionalByPrimary:    cloneTable(stdForbiddenAdditionalByPrimary),
		ForbiddenAdditionalByMainPrefix: cloneTable(stdForbiddenAdditionalByMainPrefix),
	}
}

func cloneTable(table map[string]Set) map[string]Set {
	cloned := make(map[string]Set, len(table))
	for key, set := range table {
		cloned[key] = set.Clone()
	}
	return cloned
}
