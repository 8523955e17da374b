package install

// FilterExecNames returns, in input order, the names that classify as Exec
// under the standard vocabulary and rules. Names that fail to decompose or
// validate are skipped, so one bad entry cannot abort a batch.
func FilterExecNames(names []string) []string {
	return FilterExecNamesWith(names, Config{})
}

// FilterExecNamesWith is FilterExecNames with caller-supplied overrides.
func FilterExecNamesWith(names []string, cfg Config) []string {
	return filter(names, Exec, cfg)
}

// FilterDataNames returns, in input order, the names that classify as Data
// under the standard vocabulary and rules, skipping names that fail.
func FilterDataNames(names []string) []string {
	return FilterDataNamesWith(names, Config{})
}

// FilterDataNamesWith is FilterDataNames with caller-supplied overrides.
func FilterDataNamesWith(names []string, cfg Config) []string {
	return filter(names, Data, cfg)
}

func filter(names []string, want Bucket, cfg Config) []string {
	var kept []string
	for _, name := range names {
		bucket, err := ClassifyWith(name, cfg)
		if err != nil {
			continue
		}
		if bucket == want {
			kept = append(kept, name)
		}
	}
	return kept
}
