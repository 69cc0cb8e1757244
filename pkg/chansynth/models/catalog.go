package models

// SectionCatalog is the ordered list of recognized section labels.
// Duplicates are kept as-is.
type SectionCatalog []string

// Contains reports whether label is one of the catalog entries.
func (c SectionCatalog) Contains(label string) bool {
	for _, s := range c {
		if s == label {
			return true
		}
	}
	return false
}

// Set returns the catalog as a lookup set.
func (c SectionCatalog) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(c))
	for _, s := range c {
		set[s] = struct{}{}
	}
	return set
}
