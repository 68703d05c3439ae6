package checkin

import (
	"backend-rutacorrentina/internal/place"
	"backend-rutacorrentina/internal/shared/geo"
)

// State is the derived check-in state for the selected place.
type State string

const (
	// StateLocating: no coordinate fix yet.
	StateLocating State = "locating"
	// StateTooFar: fix known, outside the check-in radius.
	StateTooFar State = "too-far"
	// StateReady: inside the radius, not yet visited. The only state from
	// which a photo check-in can be confirmed.
	StateReady State = "ready"
	// StateVisited: a visit record exists. Terminal for the session.
	StateVisited State = "visited"
)

// Evaluation is a full recomputation of the state machine, returned by
// every position/selection/ledger event.
type Evaluation struct {
	State     State   `json:"state"`
	PlaceName string  `json:"place_name,omitempty"`
	DistanceM float64 `json:"distance_m,omitempty"`
}

// EvaluateState derives the state from scratch. Precedence: a visited
// place stays visited regardless of distance, then locating while no fix
// exists, then the radius threshold decides ready vs too-far.
func EvaluateState(coord *geo.Coordinate, p place.Place, visited map[string]bool, radiusM float64) Evaluation {
	if visited[p.Name] {
		eval := Evaluation{State: StateVisited, PlaceName: p.Name}
		if coord != nil {
			eval.DistanceM = geo.HaversineM(coord.Lat, coord.Lng, p.Lat, p.Lng)
		}
		return eval
	}
	if coord == nil {
		return Evaluation{State: StateLocating, PlaceName: p.Name}
	}

	d := geo.HaversineM(coord.Lat, coord.Lng, p.Lat, p.Lng)
	if d <= radiusM {
		return Evaluation{State: StateReady, PlaceName: p.Name, DistanceM: d}
	}
	return Evaluation{State: StateTooFar, PlaceName: p.Name, DistanceM: d}
}

// ConfirmResult reports a completed check-in.
type ConfirmResult struct {
	PlaceName  string `json:"place_name"`
	VisitCount int    `json:"visit_count"`
	XPAwarded  int    `json:"xp_awarded"`
	PhotoID    string `json:"photo_id,omitempty"`
}
