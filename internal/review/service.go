package review

import (
	"context"
	"log"
	"sync"
	"time"

	"backend-rutacorrentina/internal/db"

	"github.com/google/uuid"
)

const pageSize = 5

type Service struct {
	db    db.Querier
	queue *Queue

	mu     sync.Mutex
	online bool
}

func NewService(db db.Querier, queue *Queue) *Service {
	return &Service{db: db, queue: queue, online: true}
}

func (s *Service) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

// SetOnline records a connectivity change. The offline-to-online
// transition triggers a flush of the queued reviews.
func (s *Service) SetOnline(ctx context.Context, online bool) (FlushResult, error) {
	s.mu.Lock()
	wasOnline := s.online
	s.online = online
	s.mu.Unlock()

	if online && !wasOnline {
		return s.Flush(ctx)
	}
	n, err := s.queue.Len(ctx)
	if err != nil {
		return FlushResult{}, err
	}
	return FlushResult{Remaining: n}, nil
}

// Submit persists the review immediately when connectivity is available.
// While offline it is appended to the durable queue instead; "queued" is
// reported to the caller as a normal outcome.
func (s *Service) Submit(ctx context.Context, r Review) (SubmitStatus, error) {
	r.ID = uuid.NewString()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	if !s.Online() {
		if err := s.queue.Enqueue(ctx, r); err != nil {
			return "", err
		}
		return StatusQueued, nil
	}

	if err := s.insert(ctx, r); err != nil {
		return "", err
	}
	return StatusPersisted, nil
}

// Flush walks the queue in FIFO order, attempting each item independently.
// Items that fail remain queued in their original relative order; a
// failure on one item does not stop the attempt on the next.
func (s *Service) Flush(ctx context.Context) (FlushResult, error) {
	queued, err := s.queue.All(ctx)
	if err != nil {
		return FlushResult{}, err
	}

	var failed []Review
	for _, r := range queued {
		if err := s.insert(ctx, r); err != nil {
			log.Printf("review flush failed for %s: %v", r.ID, err)
			failed = append(failed, r)
		}
	}

	if err := s.queue.Replace(ctx, failed); err != nil {
		return FlushResult{}, err
	}
	return FlushResult{Flushed: len(queued) - len(failed), Remaining: len(failed)}, nil
}

func (s *Service) insert(ctx context.Context, r Review) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO reviews (id, place_name, author, author_id, text, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, r.ID, r.PlaceName, r.Author, r.AuthorID, r.Text, r.CreatedAt)
	return err
}

// ListByPlace returns the newest reviews for a place, one display page.
func (s *Service) ListByPlace(ctx context.Context, placeName string) ([]Review, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, place_name, author, author_id, text, created_at
		FROM reviews WHERE place_name=$1
		ORDER BY created_at DESC
		LIMIT $2
	`, placeName, pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ID, &r.PlaceName, &r.Author, &r.AuthorID, &r.Text, &r.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}
