package place

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

// Catalog holds the session's place list. Loaded once at startup; read-only
// afterwards.
type Catalog struct {
	places []Place
}

func NewCatalog(places []Place) *Catalog {
	return &Catalog{places: places}
}

var httpClient = &http.Client{Timeout: 10 * time.Second}

// FetchCatalog performs the single startup GET for the catalog document.
// There is no retry: on any failure the error is logged and an empty
// catalog is returned so the rest of the app stays usable.
func FetchCatalog(ctx context.Context, url string) *Catalog {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("catalog request build failed: %v", err)
		return NewCatalog(flatten(nil))
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		log.Printf("catalog fetch failed: %v", err)
		return NewCatalog(flatten(nil))
	}
	defer resp.Body.Close()

	var groups []catalogGroup
	if err := json.NewDecoder(resp.Body).Decode(&groups); err != nil {
		log.Printf("catalog decode failed: %v", err)
		return NewCatalog(flatten(nil))
	}
	return NewCatalog(flatten(groups))
}

// flatten converts the grouped document into the flat place list, dropping
// entries without coordinates, applying default hours and injecting the
// sponsor workshop when absent.
func flatten(groups []catalogGroup) []Place {
	var out []Place
	for _, group := range groups {
		for category, entries := range group {
			for _, e := range entries {
				if len(e.LatLng) < 2 {
					continue
				}
				p := Place{
					Name:        e.Name,
					Category:    category,
					Lat:         e.LatLng[0],
					Lng:         e.LatLng[1],
					Description: e.Description,
					ImageURL:    e.ImageURL,
					Contact:     e.Contact,
					Featured:    e.Featured,
					OpensAt:     defaultOpensAt,
					ClosesAt:    defaultClosesAt,
				}
				if e.OpensAt != nil {
					p.OpensAt = *e.OpensAt
				}
				if e.ClosesAt != nil {
					p.ClosesAt = *e.ClosesAt
				}
				out = append(out, p)
			}
		}
	}

	hasWorkshop := false
	for _, p := range out {
		if strings.Contains(strings.ToLower(p.Name), "techfix") {
			hasWorkshop = true
			break
		}
	}
	if !hasWorkshop {
		out = append([]Place{workshopPlace}, out...)
	}
	return out
}

func (c *Catalog) All() []Place {
	return c.places
}

func (c *Catalog) FindByName(name string) (Place, bool) {
	for _, p := range c.places {
		if p.Name == name {
			return p, true
		}
	}
	return Place{}, false
}

// Featured returns the sponsor workshop entry used for proximity alerts.
func (c *Catalog) Featured() (Place, bool) {
	for _, p := range c.places {
		if p.Featured {
			return p, true
		}
	}
	return Place{}, false
}

// Filter narrows the list by category (or the pseudo-category "open" for
// places open at the given hour) and a case-insensitive name search.
func (c *Catalog) Filter(category, search string, hour int) []Place {
	category = strings.ToLower(category)
	search = strings.ToLower(search)

	var out []Place
	for _, p := range c.places {
		switch category {
		case "", "all":
		case "open":
			if !(p.OpensAt <= hour && p.ClosesAt > hour) {
				continue
			}
		default:
			if !strings.Contains(strings.ToLower(p.Category), category) &&
				!strings.Contains(strings.ToLower(p.Name), category) {
				continue
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Random picks a surprise destination, never the sponsor workshop.
func (c *Catalog) Random() (Place, bool) {
	var candidates []Place
	for _, p := range c.places {
		if strings.Contains(strings.ToLower(p.Name), "techfix") {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return Place{}, false
	}
	return candidates[rand.Intn(len(candidates))], true
}
