package checkin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"backend-rutacorrentina/internal/config"
	"backend-rutacorrentina/internal/geoloc"
	"backend-rutacorrentina/internal/place"
	"backend-rutacorrentina/internal/profile"
	"backend-rutacorrentina/internal/shared/geo"
	"backend-rutacorrentina/internal/stream"
)

var (
	ErrNoPlaceSelected = errors.New("no place selected")
	ErrPhotoRequired   = errors.New("photo required")
	ErrAlreadyVisited  = errors.New("place already visited")
	ErrNotReady        = errors.New("not within check-in range")
)

// PhotoStore persists the captured check-in photo payload.
type PhotoStore interface {
	SavePhoto(ctx context.Context, userID, placeName, data string) (string, error)
}

// tracker is the per-user session state. All mutations go through Service
// setters, which recompute the derived state; the position feed serializes
// fixes so one is fully applied before the next.
type tracker struct {
	mu      sync.Mutex
	source  *geoloc.PushSource
	feed    *geoloc.Feed
	coord   *geo.Coordinate
	place   *place.Place
	ledger  []profile.VisitRecord
	visited map[string]bool
	alerted bool
}

// Service owns every session tracker and the check-in flow around the
// remote visit ledger.
type Service struct {
	cfg      config.Config
	catalog  *place.Catalog
	profiles *profile.Service
	photos   PhotoStore
	hub      *stream.Hub

	mu       sync.Mutex
	trackers map[string]*tracker
}

func NewService(cfg config.Config, catalog *place.Catalog, profiles *profile.Service, photos PhotoStore, hub *stream.Hub) *Service {
	return &Service{
		cfg:      cfg,
		catalog:  catalog,
		profiles: profiles,
		photos:   photos,
		hub:      hub,
		trackers: map[string]*tracker{},
	}
}

func (s *Service) tracker(userID string) *tracker {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trackers[userID]
	if !ok {
		t = &tracker{
			source:  geoloc.NewPushSource(),
			visited: map[string]bool{},
		}
		t.feed = geoloc.NewFeed(t.source, geoloc.DefaultOptions())
		t.feed.Start(context.Background())
		t.feed.OnUpdate(func(c geo.Coordinate) { s.applyFix(userID, t, c) })
		s.trackers[userID] = t
	}
	return t
}

// ReportPosition feeds one device fix into the user's feed and returns the
// freshly recomputed evaluation.
func (s *Service) ReportPosition(ctx context.Context, userID string, c geo.Coordinate) Evaluation {
	t := s.tracker(userID)
	t.source.Push(c)
	return s.evaluate(t)
}

func (s *Service) applyFix(userID string, t *tracker, c geo.Coordinate) {
	t.mu.Lock()
	coord := c
	t.coord = &coord
	alerted := t.alerted
	t.mu.Unlock()

	if alerted || s.hub == nil {
		return
	}
	featured, ok := s.catalog.Featured()
	if !ok {
		return
	}
	if geo.HaversineM(c.Lat, c.Lng, featured.Lat, featured.Lng) < s.cfg.NotifyRadiusM {
		t.mu.Lock()
		already := t.alerted
		t.alerted = true
		t.mu.Unlock()
		if !already {
			s.hub.Notify(userID, stream.Alert{
				Kind:      stream.AlertGeofence,
				PlaceName: featured.Name,
				Message:   fmt.Sprintf("¡Estás cerca de %s! Pasa a saludar.", featured.Name),
			})
		}
	}
}

// SelectPlace opens a place detail session. The remote ledger is loaded
// here and replaces the session copy: remote is authoritative on load.
func (s *Service) SelectPlace(ctx context.Context, userID, placeName string) (Evaluation, error) {
	p, ok := s.catalog.FindByName(placeName)
	if !ok {
		return Evaluation{}, fmt.Errorf("unknown place %q", placeName)
	}

	prof, _, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return Evaluation{}, err
	}

	t := s.tracker(userID)
	t.mu.Lock()
	t.place = &p
	t.ledger = prof.Visited
	t.visited = prof.VisitedNames()
	t.mu.Unlock()

	return s.evaluate(t), nil
}

// State recomputes the evaluation for the currently selected place.
func (s *Service) State(_ context.Context, userID string) (Evaluation, error) {
	t := s.tracker(userID)
	t.mu.Lock()
	selected := t.place != nil
	t.mu.Unlock()
	if !selected {
		return Evaluation{}, ErrNoPlaceSelected
	}
	return s.evaluate(t), nil
}

func (s *Service) evaluate(t *tracker) Evaluation {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.place == nil {
		return Evaluation{State: StateLocating}
	}
	return EvaluateState(t.coord, *t.place, t.visited, s.cfg.CheckinRadiusM)
}

// Confirm completes a photo check-in. The append to the session ledger
// happens first and is never rolled back; the remote upsert and the photo
// object write are logged-only on failure, so local and remote may diverge
// until the next load.
func (s *Service) Confirm(ctx context.Context, userID, photo string) (ConfirmResult, error) {
	if photo == "" {
		return ConfirmResult{}, ErrPhotoRequired
	}

	t := s.tracker(userID)
	t.mu.Lock()
	if t.place == nil {
		t.mu.Unlock()
		return ConfirmResult{}, ErrNoPlaceSelected
	}
	p := *t.place
	eval := EvaluateState(t.coord, p, t.visited, s.cfg.CheckinRadiusM)
	switch eval.State {
	case StateReady:
	case StateVisited:
		t.mu.Unlock()
		return ConfirmResult{}, ErrAlreadyVisited
	default:
		t.mu.Unlock()
		return ConfirmResult{}, ErrNotReady
	}

	record := profile.VisitRecord{
		PlaceName: p.Name,
		Timestamp: time.Now().UTC(),
		Photo:     photo,
	}
	t.ledger = append(t.ledger, record)
	t.visited[p.Name] = true
	ledger := append([]profile.VisitRecord(nil), t.ledger...)
	t.mu.Unlock()

	result := ConfirmResult{
		PlaceName:  p.Name,
		VisitCount: len(ledger),
		XPAwarded:  s.cfg.PointsPerVisit,
	}

	if s.photos != nil {
		photoID, err := s.photos.SavePhoto(ctx, userID, p.Name, photo)
		if err != nil {
			log.Printf("check-in photo store failed: %v", err)
		} else {
			result.PhotoID = photoID
		}
	}

	if err := s.profiles.SaveVisits(ctx, userID, ledger); err != nil {
		log.Printf("visit ledger sync failed for %s: %v", userID, err)
	}

	if s.hub != nil {
		s.hub.Notify(userID, stream.Alert{
			Kind:      stream.AlertCheckin,
			PlaceName: p.Name,
			Message:   fmt.Sprintf("🎉 +%d XP: %s", result.XPAwarded, p.Name),
			XPAwarded: result.XPAwarded,
		})
	}
	return result, nil
}

// VisitCount returns the session ledger length for the user.
func (s *Service) VisitCount(userID string) int {
	t := s.tracker(userID)
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.ledger)
}
