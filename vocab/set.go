package vocab

import "sort"

// Set is an unordered collection of unique token strings. A nil Set behaves
// like an empty one for reads.
type Set map[string]bool

// NewSet builds a Set from the given items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = true
	}
	return s
}

// Has reports whether item is a member of the set.
func (s Set) Has(item string) bool { return s[item] }

// Add inserts item into the set.
func (s Set) Add(item string) { s[item] = true }

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for item := range s {
		c[item] = true
	}
	return c
}

// Union returns a new set containing the members of both sets. Neither
// receiver nor argument is modified.
func (s Set) Union(other Set) Set {
	u := s.Clone()
	for item := range other {
		u[item] = true
	}
	return u
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}
