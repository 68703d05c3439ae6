package place

// Place is one entry of the catalog. Immutable once loaded for a session.
type Place struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Contact     string  `json:"contact,omitempty"`
	OpensAt     int     `json:"opens_at"`
	ClosesAt    int     `json:"closes_at"`
	Featured    bool    `json:"featured"`
}

// catalogEntry mirrors one raw record of the catalog document, where
// coordinates arrive as a [lat, lng] pair and hours may be absent.
type catalogEntry struct {
	Name        string     `json:"nombre"`
	LatLng      []float64  `json:"lat_lng"`
	Description string     `json:"desc"`
	ImageURL    string     `json:"img"`
	Contact     string     `json:"wp"`
	Featured    bool       `json:"destacado"`
	OpensAt     *int       `json:"opensAt"`
	ClosesAt    *int       `json:"closesAt"`
}

// catalogGroup is one element of the document: a mapping of category name
// to the places under it.
type catalogGroup map[string][]catalogEntry

const (
	defaultOpensAt  = 9
	defaultClosesAt = 22
)

// The loyalty sponsor's workshop is always part of the catalog, injected
// when the document does not carry it.
var workshopPlace = Place{
	Name:        "TechFix Taller",
	Category:    "servicios",
	Lat:         -27.469,
	Lng:         -58.830,
	Description: "Servicio técnico oficial. Reparación de PC, celulares y consolas.",
	Contact:     "5493794000000",
	OpensAt:     8,
	ClosesAt:    20,
	Featured:    true,
}
