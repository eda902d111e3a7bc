package reorient

import "strings"

// CheapSet is a set of reorientations whose cost is overridden to 1 ETM.
// Bit i holds catalog member i.
type CheapSet uint32

// NewCheapSet builds a set from reorientations.
func NewCheapSet(rs ...Reorientation) CheapSet {
	var set CheapSet
	for _, r := range rs {
		if r.Valid() {
			set |= 1 << r
		}
	}
	return set
}

// ParseCheapSet builds a set from reorientation names as accepted by
// ParseReorientation.
func ParseCheapSet(names []string) (CheapSet, error) {
	var set CheapSet
	for _, name := range names {
		r, err := ParseReorientation(name)
		if err != nil {
			return 0, err
		}
		set |= 1 << r
	}
	return set, nil
}

// Contains reports whether r is marked cheap.
func (s CheapSet) Contains(r Reorientation) bool {
	return r.Valid() && s&(1<<r) != 0
}

// Members returns the cheap reorientations in catalog order.
func (s CheapSet) Members() []Reorientation {
	var out []Reorientation
	for _, r := range Catalog() {
		if s.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

// Cost returns the effective ETM cost of r. The identity is always free.
func (s CheapSet) Cost(r Reorientation) int {
	if s.Contains(r) && !r.IsNone() {
		return 1
	}
	return r.BaseCost()
}

// PlacementCost sums the effective cost of every reorientation in p.
func (s CheapSet) PlacementCost(p Placement) int {
	total := 0
	for _, r := range p {
		total += s.Cost(r)
	}
	return total
}

func (s CheapSet) String() string {
	members := s.Members()
	names := make([]string, len(members))
	for i, r := range members {
		names[i] = r.Token(NotationXYZ)
	}
	return strings.Join(names, ",")
}
