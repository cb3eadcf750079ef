package domain

import "strings"

// Placement is a placement snapshot as delivered on the placement-updated
// queue.
type Placement struct {
	TisID         string  `json:"tisId"`
	PersonID      string  `json:"personId"`
	StartDate     ISODate `json:"startDate"`
	PlacementType string  `json:"placementType"`
	Specialty     string  `json:"specialty"`
	Owner         string  `json:"owner"`
}

// notifiablePlacementTypes is matched case-insensitively; the upstream data
// carries inconsistent casing.
var notifiablePlacementTypes = map[string]bool{
	"in post":             true,
	"in post - acting up": true,
	"in post - extension": true,
}

// IsExcluded reports whether the placement's type keeps it out of the
// notification plan.
func (p *Placement) IsExcluded() bool {
	return !notifiablePlacementTypes[strings.ToLower(p.PlacementType)]
}
