package profile

import (
	"context"
	"encoding/json"
	"errors"

	"backend-rutacorrentina/internal/db"

	"github.com/jackc/pgx/v5"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// Get performs the point read for an identity. A missing row is not an
// error: the profile simply starts empty.
func (s *Service) Get(ctx context.Context, userID string) (Profile, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT user_id, COALESCE(display_name,''), COALESCE(visited,'[]'), COALESCE(favorites,'[]')
		FROM profiles WHERE user_id=$1
	`, userID)

	var p Profile
	var visitedRaw, favoritesRaw []byte
	if err := row.Scan(&p.UserID, &p.DisplayName, &visitedRaw, &favoritesRaw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{UserID: userID}, false, nil
		}
		return Profile{}, false, err
	}
	if err := json.Unmarshal(visitedRaw, &p.Visited); err != nil {
		return Profile{}, false, err
	}
	if err := json.Unmarshal(favoritesRaw, &p.Favorites); err != nil {
		return Profile{}, false, err
	}
	return p, true, nil
}

// SaveVisits upserts the whole visit ledger for the identity. The write is
// last-writer-wins over the full array; concurrent appends from two devices
// can lose one update, matching the merge semantics of the profile store.
func (s *Service) SaveVisits(ctx context.Context, userID string, visited []VisitRecord) error {
	raw, err := json.Marshal(visited)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO profiles (user_id, visited)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET visited=EXCLUDED.visited, updated_at=now()
	`, userID, raw)
	return err
}

func (s *Service) SaveDisplayName(ctx context.Context, userID, name string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO profiles (user_id, display_name)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET display_name=EXCLUDED.display_name, updated_at=now()
	`, userID, name)
	return err
}

func (s *Service) SaveFavorites(ctx context.Context, userID string, favorites []string) error {
	raw, err := json.Marshal(favorites)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO profiles (user_id, favorites)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET favorites=EXCLUDED.favorites, updated_at=now()
	`, userID, raw)
	return err
}

// ToggleFavorite flips one place in the favorites list and persists the
// result, returning whether the place is now a favorite.
func (s *Service) ToggleFavorite(ctx context.Context, userID, placeName string) (bool, error) {
	p, _, err := s.Get(ctx, userID)
	if err != nil {
		return false, err
	}

	now := true
	favorites := make([]string, 0, len(p.Favorites)+1)
	for _, f := range p.Favorites {
		if f == placeName {
			now = false
			continue
		}
		favorites = append(favorites, f)
	}
	if now {
		favorites = append(favorites, placeName)
	}

	if err := s.SaveFavorites(ctx, userID, favorites); err != nil {
		return false, err
	}
	return now, nil
}
