package storage

import (
	"context"

	"backend-rutacorrentina/internal/db"

	"github.com/google/uuid"
)

// Service persists check-in photo payloads (binary-as-text encoded) so a
// ledger stores only the reference alongside the inline copy.
type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) SavePhoto(ctx context.Context, userID, placeName, data string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(ctx, `
		INSERT INTO checkin_photos (id, user_id, place_name, data)
		VALUES ($1,$2,$3,$4)
	`, id, userID, placeName, data)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Service) Photo(ctx context.Context, id string) (string, error) {
	var data string
	err := s.db.QueryRow(ctx, `SELECT data FROM checkin_photos WHERE id=$1`, id).Scan(&data)
	return data, err
}
