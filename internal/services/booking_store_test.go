package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockStore(t *testing.T, monitorPings bool) (*BookingStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(monitorPings))
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}

	return NewBookingStore(gdb), mock
}

func TestCreateAssignsIDAndDate(t *testing.T) {
	store, mock := newMockStore(t, false)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "bookings"`).
		WithArgs(sqlmock.AnyArg(), "Alice", "a@x.com", "555", "Paris", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	before := time.Now().UTC()
	booking, err := store.Create(context.Background(), NewBooking{
		Name: "Alice", Email: "a@x.com", Phone: "555", Destination: "Paris",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if booking.Date.Before(before) {
		t.Fatalf("date %v predates the call", booking.Date)
	}
	if booking.Destination != "Paris" {
		t.Fatalf("unexpected destination %q", booking.Destination)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateStoresMissingFieldsAsEmpty(t *testing.T) {
	store, mock := newMockStore(t, false)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "bookings"`).
		WithArgs(sqlmock.AnyArg(), "", "", "", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if _, err := store.Create(context.Background(), NewBooking{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateFailureRollsBack(t *testing.T) {
	store, mock := newMockStore(t, false)
	connErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "bookings"`).WillReturnError(connErr)
	mock.ExpectRollback()

	booking, err := store.Create(context.Background(), NewBooking{Name: "Alice"})
	if booking != nil {
		t.Fatalf("expected no booking on failure")
	}

	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %T %v", err, err)
	}
	if perr.Op != "create" || !errors.Is(err, connErr) {
		t.Fatalf("unexpected error %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListAllNewestFirst(t *testing.T) {
	store, mock := newMockStore(t, false)

	newer := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	older := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "destination", "date"}).
		AddRow("b2", "Bob", "b@x.com", "666", "Rome", newer).
		AddRow("b1", "Alice", "a@x.com", "555", "Paris", older)

	mock.ExpectQuery(`SELECT \* FROM "bookings" ORDER BY date DESC,id DESC`).WillReturnRows(rows)

	bookings, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if bookings[0].ID != "b2" || bookings[1].ID != "b1" {
		t.Fatalf("unexpected order: %s, %s", bookings[0].ID, bookings[1].ID)
	}
	if !bookings[0].Date.Equal(newer) {
		t.Fatalf("date not scanned: %v", bookings[0].Date)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListAllEmptyIsNotNil(t *testing.T) {
	store, mock := newMockStore(t, false)

	mock.ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "destination", "date"}))

	bookings, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bookings == nil || len(bookings) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", bookings)
	}
}

func TestListAllFailure(t *testing.T) {
	store, mock := newMockStore(t, false)

	mock.ExpectQuery(`SELECT \* FROM "bookings"`).WillReturnError(errors.New("connection reset"))

	_, err := store.ListAll(context.Background())
	if !IsPersistence(err) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func TestPing(t *testing.T) {
	store, mock := newMockStore(t, true)

	mock.ExpectPing()
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectPing().WillReturnError(errors.New("down"))
	if err := store.Ping(context.Background()); !IsPersistence(err) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}
