package gamification

import (
	"context"
	"errors"

	"backend-rutacorrentina/internal/config"
	"backend-rutacorrentina/internal/db"

	"github.com/jackc/pgx/v5"
)

type Service struct {
	cfg config.Config
	db  db.Querier
}

func NewService(cfg config.Config, db db.Querier) *Service {
	return &Service{cfg: cfg, db: db}
}

// StatsFor derives the user's stats from the persisted ledger length.
func (s *Service) StatsFor(ctx context.Context, userID string) (Stats, error) {
	var visits int
	err := s.db.QueryRow(ctx, `
		SELECT jsonb_array_length(COALESCE(visited,'[]'::jsonb))
		FROM profiles WHERE user_id=$1
	`, userID).Scan(&visits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Compute(0, s.cfg), nil
		}
		return Stats{}, err
	}
	return Compute(visits, s.cfg), nil
}

type RankEntry struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	VisitCount  int    `json:"visit_count"`
	XP          int    `json:"xp"`
}

// Leaderboard lists the top profiles by visit count, XP derived per row.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]RankEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(ctx, `
		SELECT user_id, COALESCE(NULLIF(display_name,''),'Anónimo'),
		       jsonb_array_length(COALESCE(visited,'[]'::jsonb)) AS visits
		FROM profiles
		ORDER BY visits DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []RankEntry
	for rows.Next() {
		var e RankEntry
		if err := rows.Scan(&e.UserID, &e.DisplayName, &e.VisitCount); err != nil {
			return nil, err
		}
		e.XP = e.VisitCount * s.cfg.PointsPerVisit
		entries = append(entries, e)
	}
	return entries, nil
}
