package place

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func intPtr(n int) *int { return &n }

func sampleGroups() []catalogGroup {
	return []catalogGroup{
		{
			"turismo": {
				{Name: "Puente General Belgrano", LatLng: []float64{-27.468, -58.855}, Description: "Vista al Paraná"},
				{Name: "Casco Histórico", LatLng: []float64{-27.463, -58.839}, OpensAt: intPtr(8), ClosesAt: intPtr(18)},
				{Name: "Sin Coordenadas"},
			},
			"playa": {
				{Name: "Playa Arazaty", LatLng: []float64{-27.477, -58.855}, Featured: true},
			},
		},
	}
}

func TestFlattenDefaultsAndWorkshop(t *testing.T) {
	places := flatten(sampleGroups())

	// 3 valid entries + injected workshop; the one without coordinates dropped
	if len(places) != 4 {
		t.Fatalf("expected 4 places, got %d", len(places))
	}
	if !places[0].Featured || places[0].OpensAt != 8 || places[0].ClosesAt != 20 {
		t.Fatalf("expected injected workshop first, got %+v", places[0])
	}

	catalog := NewCatalog(places)
	p, ok := catalog.FindByName("Puente General Belgrano")
	if !ok {
		t.Fatalf("expected place")
	}
	if p.OpensAt != defaultOpensAt || p.ClosesAt != defaultClosesAt {
		t.Fatalf("expected default hours, got %d-%d", p.OpensAt, p.ClosesAt)
	}
	if p.Category != "turismo" {
		t.Fatalf("expected category from group key, got %q", p.Category)
	}

	hist, _ := catalog.FindByName("Casco Histórico")
	if hist.OpensAt != 8 || hist.ClosesAt != 18 {
		t.Fatalf("expected explicit hours kept")
	}
}

func TestFlattenKeepsExistingWorkshop(t *testing.T) {
	groups := []catalogGroup{{
		"servicios": {{Name: "TechFix Taller Centro", LatLng: []float64{-27.469, -58.830}}},
	}}
	places := flatten(groups)
	if len(places) != 1 {
		t.Fatalf("expected no duplicate workshop, got %d places", len(places))
	}
}

func TestCatalogFilter(t *testing.T) {
	catalog := NewCatalog(flatten(sampleGroups()))

	if got := catalog.Filter("turismo", "", 12); len(got) != 2 {
		t.Fatalf("expected 2 turismo places, got %d", len(got))
	}
	if got := catalog.Filter("", "puente", 12); len(got) != 1 {
		t.Fatalf("expected 1 search hit, got %d", len(got))
	}
	// Casco Histórico closes at 18, workshop at 20; at hour 19 only
	// default-hour places and the workshop remain out/in accordingly.
	open := catalog.Filter("open", "", 19)
	for _, p := range open {
		if p.Name == "Casco Histórico" {
			t.Fatalf("closed place returned by open filter")
		}
	}
	if got := catalog.Filter("all", "", 12); len(got) != len(catalog.All()) {
		t.Fatalf("expected all places")
	}
}

func TestCatalogRandomSkipsWorkshop(t *testing.T) {
	catalog := NewCatalog(flatten(sampleGroups()))
	for i := 0; i < 20; i++ {
		p, ok := catalog.Random()
		if !ok {
			t.Fatalf("expected a random place")
		}
		if p.Name == "TechFix Taller" {
			t.Fatalf("random must not pick the workshop")
		}
	}

	empty := NewCatalog(flatten(nil)[:1]) // workshop only
	if _, ok := empty.Random(); ok {
		t.Fatalf("expected no candidate")
	}
}

func TestFetchCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"turismo":[{"nombre":"Costanera","lat_lng":[-27.477,-58.855]}]}]`))
	}))
	defer srv.Close()

	catalog := FetchCatalog(context.Background(), srv.URL)
	if _, ok := catalog.FindByName("Costanera"); !ok {
		t.Fatalf("expected fetched place")
	}
}

func TestFetchCatalogFailureDegrades(t *testing.T) {
	catalog := FetchCatalog(context.Background(), "http://127.0.0.1:1/lugares.json")
	// degraded catalog still carries the injected workshop, nothing else
	if len(catalog.All()) != 1 {
		t.Fatalf("expected workshop-only catalog, got %d", len(catalog.All()))
	}
}

func TestFetchCatalogBadDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not-json`))
	}))
	defer srv.Close()

	catalog := FetchCatalog(context.Background(), srv.URL)
	if len(catalog.All()) != 1 {
		t.Fatalf("expected workshop-only catalog on decode failure")
	}
}
