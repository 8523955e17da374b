// Package install buckets uniform names into the two halves of a staged
// installation, install-exec and install-data, following automake's "The
// Two Parts of Install".
package install

import (
	"strings"

	"amnames/uniform"
	"amnames/vocab"
)

// Bucket is the installation bucket a uniform name falls into.
type Bucket int

const (
	// Neither marks names that are never installed, such as noinst_PROGRAMS.
	Neither Bucket = iota
	// Exec marks names handled by the install-exec part.
	Exec
	// Data marks names handled by the install-data part.
	Data
)

func (b Bucket) String() string {
	switch b {
	case Exec:
		return "exec"
	case Data:
		return "data"
	default:
		return "neither"
	}
}

// Config is the per-call configuration for classification: the vocabulary
// used for decomposition and the rule-table overrides used for validation.
// The zero value applies the standard vocabulary and rules.
type Config struct {
	Vocab vocab.Options
	Rules vocab.RuleTables
}

// ClassifyMainPrefix buckets a main prefix. No-install prefixes are
// Neither; the fixed install-exec and install-data prefix sets map to their
// bucket; any other prefix is Exec when it contains "exec" and Data
// otherwise, so user-defined prefixes like "myexec" land where they look
// like they belong.
func ClassifyMainPrefix(prefix string, v vocab.Vocabulary) Bucket {
	switch {
	case prefix == "":
		return Neither
	case v.NoInstallMainPrefixes.Has(prefix):
		return Neither
	case vocab.InstallExecPrefixes().Has(prefix):
		return Exec
	case vocab.InstallDataPrefixes().Has(prefix):
		return Data
	case strings.Contains(prefix, "exec"):
		return Exec
	default:
		return Data
	}
}

// Classify decomposes, validates and buckets a full uniform name using the
// standard vocabulary and rules.
func Classify(name string) (Bucket, error) {
	return ClassifyWith(name, Config{})
}

// ClassifyWith is Classify with caller-supplied vocabulary and rule
// overrides. Decomposition and validation failures are propagated with
// Neither.
func ClassifyWith(name string, cfg Config) (Bucket, error) {
	d, err := uniform.Decompose(name, cfg.Vocab)
	if err != nil {
		return Neither, err
	}
	if err := uniform.Validate(d, cfg.Rules); err != nil {
		return Neither, err
	}
	return ClassifyMainPrefix(d.MainPrefix, cfg.Vocab.Vocabulary()), nil
}
