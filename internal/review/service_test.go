package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/redis/go-redis/v9"
)

func newTestService(t *testing.T) (*Service, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	mr := miniredis.RunT(t)
	queue := NewQueue(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return NewService(mock, queue), mock
}

func TestSubmitOnlinePersists(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec(`INSERT INTO reviews`).
		WithArgs(pgxmock.AnyArg(), "Costanera", "Ana", "user-1", "hermoso atardecer", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	status, err := svc.Submit(context.Background(), Review{
		PlaceName: "Costanera",
		Author:    "Ana",
		AuthorID:  "user-1",
		Text:      "hermoso atardecer",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if status != StatusPersisted {
		t.Fatalf("expected persisted, got %s", status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitOfflineQueues(t *testing.T) {
	svc, mock := newTestService(t)

	if _, err := svc.SetOnline(context.Background(), false); err != nil {
		t.Fatalf("set offline: %v", err)
	}

	status, err := svc.Submit(context.Background(), Review{PlaceName: "Costanera", Author: "Ana", Text: "lindo"})
	if err != nil {
		t.Fatalf("submit offline: %v", err)
	}
	if status != StatusQueued {
		t.Fatalf("expected queued, got %s", status)
	}

	n, err := svc.queue.Len(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("queue len: %v %d", err, n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no database writes expected while offline: %v", err)
	}
}

func TestFlushKeepsFailedItemInPlace(t *testing.T) {
	svc, mock := newTestService(t)
	ctx := context.Background()

	if _, err := svc.SetOnline(ctx, false); err != nil {
		t.Fatalf("set offline: %v", err)
	}
	for _, text := range []string{"primera", "segunda", "tercera"} {
		if _, err := svc.Submit(ctx, Review{PlaceName: "Costanera", Author: "Ana", Text: text}); err != nil {
			t.Fatalf("submit %s: %v", text, err)
		}
	}

	mock.ExpectExec(`INSERT INTO reviews`).
		WithArgs(pgxmock.AnyArg(), "Costanera", "Ana", "", "primera", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO reviews`).
		WithArgs(pgxmock.AnyArg(), "Costanera", "Ana", "", "segunda", pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectExec(`INSERT INTO reviews`).
		WithArgs(pgxmock.AnyArg(), "Costanera", "Ana", "", "tercera", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	result, err := svc.SetOnline(ctx, true)
	if err != nil {
		t.Fatalf("flush on reconnect: %v", err)
	}
	if result.Flushed != 2 || result.Remaining != 1 {
		t.Fatalf("expected 2 flushed 1 remaining, got %+v", result)
	}

	left, err := svc.queue.All(ctx)
	if err != nil {
		t.Fatalf("queue all: %v", err)
	}
	if len(left) != 1 || left[0].Text != "segunda" {
		t.Fatalf("failed item should stay queued alone, got %+v", left)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSetOnlineWithoutTransitionDoesNotFlush(t *testing.T) {
	svc, mock := newTestService(t)
	ctx := context.Background()

	result, err := svc.SetOnline(ctx, true)
	if err != nil {
		t.Fatalf("set online: %v", err)
	}
	if result.Flushed != 0 || result.Remaining != 0 {
		t.Fatalf("expected no-op result, got %+v", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no flush expected: %v", err)
	}
}

func TestListByPlaceNewestFirst(t *testing.T) {
	svc, mock := newTestService(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, place_name, author, author_id, text, created_at`).
		WithArgs("Costanera", pageSize).
		WillReturnRows(pgxmock.NewRows([]string{"id", "place_name", "author", "author_id", "text", "created_at"}).
			AddRow("r2", "Costanera", "Bea", "user-2", "nueva", now).
			AddRow("r1", "Costanera", "Ana", "user-1", "vieja", now.Add(-time.Hour)))

	reviews, err := svc.ListByPlace(context.Background(), "Costanera")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reviews) != 2 || reviews[0].ID != "r2" {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
