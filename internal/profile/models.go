package profile

import "time"

// VisitRecord is one completed photo check-in. Records are append-only and
// never mutated; duplicates for the same place are allowed but inert.
type VisitRecord struct {
	PlaceName string    `json:"place_name"`
	Timestamp time.Time `json:"timestamp"`
	Photo     string    `json:"photo"`
}

// Profile is the remotely persisted user state. The remote copy is
// authoritative: loading replaces any session-local ledger wholesale.
type Profile struct {
	UserID      string        `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Visited     []VisitRecord `json:"visited"`
	Favorites   []string      `json:"favorites"`
}

// VisitedNames returns the set of place names with at least one record.
func (p Profile) VisitedNames() map[string]bool {
	names := make(map[string]bool, len(p.Visited))
	for _, v := range p.Visited {
		names[v.PlaceName] = true
	}
	return names
}
