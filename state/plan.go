// SPDX-FileCopyrightText: Copyright © 2024 Alpine ROS Developers
//
// SPDX-License-Identifier: MPL-2.0

package state

// Plan is the outcome of resolving a universe. Ordered and Unresolved
// partition the universe's package indices exactly: a package appears in one
// of them, never both, never neither.
type Plan struct {
	// Ordered lists package indices so that every dependency provided
	// within the universe comes strictly before its dependents.
	Ordered []int

	// Tiers groups Ordered into the ready batches of each resolver pass.
	// Flattening Tiers yields Ordered.
	Tiers [][]int

	// Unresolved holds the packages left when resolution stalled, in
	// universe order: members of a dependency cycle, packages blocked
	// behind one, and packages whose dependencies nothing provides.
	Unresolved []int
}

func (p *Plan) OrderedNames(u *Universe) []string {
	names := make([]string, 0, len(p.Ordered))
	for _, idx := range p.Ordered {
		names = append(names, u.Package(idx).Name)
	}
	return names
}

func (p *Plan) UnresolvedNames(u *Universe) []string {
	names := make([]string, 0, len(p.Unresolved))
	for _, idx := range p.Unresolved {
		names = append(names, u.Package(idx).Name)
	}
	return names
}

// Err returns an UnresolvedError when the plan left packages unplaced.
func (p *Plan) Err(u *Universe) error {
	if len(p.Unresolved) == 0 {
		return nil
	}
	return UnresolvedError{Names: p.UnresolvedNames(u)}
}
