package gamification

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
)

func TestStatsFor(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT jsonb_array_length`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"visits"}).AddRow(5))

	svc := NewService(calcConfig(), mock)
	stats, err := svc.StatsFor(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.XP != 500 || stats.Level != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestStatsForMissingProfile(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT jsonb_array_length`).
		WithArgs("user-2").
		WillReturnError(pgx.ErrNoRows)

	svc := NewService(calcConfig(), mock)
	stats, err := svc.StatsFor(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.VisitCount != 0 || stats.Level != 1 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestLeaderboard(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT user_id, COALESCE`).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "display_name", "visits"}).
			AddRow("user-1", "Ale", 7).
			AddRow("user-2", "Anónimo", 3))

	svc := NewService(calcConfig(), mock)
	entries, err := svc.Leaderboard(context.Background(), 0)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].XP != 700 {
		t.Fatalf("expected derived xp 700, got %d", entries[0].XP)
	}
}
