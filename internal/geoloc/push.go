package geoloc

import (
	"context"
	"sync"

	"backend-rutacorrentina/internal/shared/geo"
)

// PushSource is a Source fed explicitly, used for device fixes reported
// over HTTP and for synthetic coordinate sequences in tests.
type PushSource struct {
	mu     sync.Mutex
	gen    int
	update func(geo.Coordinate)
	fail   func(error)
}

func NewPushSource() *PushSource {
	return &PushSource{}
}

func (s *PushSource) Watch(ctx context.Context, _ Options, update func(geo.Coordinate), fail func(error)) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.update = update
	s.fail = fail
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		// a newer Watch may have replaced the callbacks already
		if s.gen == gen {
			s.update = nil
			s.fail = nil
		}
		s.mu.Unlock()
	}()
}

// Push delivers one fix. Fixes pushed before Watch are dropped.
func (s *PushSource) Push(c geo.Coordinate) {
	s.mu.Lock()
	update := s.update
	s.mu.Unlock()
	if update != nil {
		update(c)
	}
}

// Fail delivers one acquisition error.
func (s *PushSource) Fail(err error) {
	s.mu.Lock()
	fail := s.fail
	s.mu.Unlock()
	if fail != nil {
		fail(err)
	}
}
