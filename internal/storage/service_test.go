package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
)

func TestSavePhoto(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO checkin_photos`).
		WithArgs(pgxmock.AnyArg(), "user-1", "Costanera", "data:image/jpeg;base64,x").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService(mock)
	id, err := svc.SavePhoto(context.Background(), "user-1", "Costanera", "data:image/jpeg;base64,x")
	if err != nil {
		t.Fatalf("save photo: %v", err)
	}
	if id == "" {
		t.Fatalf("expected photo id")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSavePhotoError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO checkin_photos`).
		WithArgs(pgxmock.AnyArg(), "user-1", "Costanera", "x").
		WillReturnError(errors.New("insert failed"))

	svc := NewService(mock)
	if _, err := svc.SavePhoto(context.Background(), "user-1", "Costanera", "x"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestPhoto(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT data FROM checkin_photos`).
		WithArgs("photo-1").
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow("data:image/jpeg;base64,x"))

	svc := NewService(mock)
	data, err := svc.Photo(context.Background(), "photo-1")
	if err != nil || data == "" {
		t.Fatalf("photo: %v", err)
	}
}
