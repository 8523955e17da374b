package uniform

import (
	"sort"

	"amnames/vocab"
)

// StandardNames returns every uniform name that can be formed from the
// standard tables: each allowed mainPrefix_PRIMARY combination, plus the
// same combination under each single additional prefix. The result is
// sorted and free of duplicates.
func StandardNames() []string {
	additionals := vocab.StandardAdditionalPrefixes().Sorted()

	var names []string
	for primary, allowed := range vocab.StandardAllowedMainPrefixTable() {
		for _, mainPrefix := range allowed.Sorted() {
			names = append(names, mainPrefix+"_"+primary)
			for _, additional := range additionals {
				names = append(names, additional+"_"+mainPrefix+"_"+primary)
			}
		}
	}
	sort.Strings(names)
	return names
}
