package domain

import (
	"cmp"
	"strings"
)

// Default collection orderings. Repositories issue the same ORDER BY clauses.

// CompareSkills orders by Order ascending, then Name ascending by byte value
// (the C collation used by the skills query).
func CompareSkills(a, b Skill) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// CompareExperiences orders by Order descending.
func CompareExperiences(a, b Experience) int {
	return cmp.Compare(b.Order, a.Order)
}

// CompareProjects orders by Order ascending.
func CompareProjects(a, b Project) int {
	return cmp.Compare(a.Order, b.Order)
}

// CompareEducation orders by Order descending.
func CompareEducation(a, b Education) int {
	return cmp.Compare(b.Order, a.Order)
}
