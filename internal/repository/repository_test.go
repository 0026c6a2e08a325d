package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Harshverma1208/skill-companion-project/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type fakeRow struct {
	err error
}

func (r fakeRow) Scan(...any) error { return r.err }

// fakeDB answers every point query with rowErr; only the error-classification
// paths use it, so the list methods are never reached.
type fakeDB struct {
	rowErr error
}

func (d *fakeDB) Ping(context.Context) error { return nil }
func (d *fakeDB) Close() error               { return nil }

func (d *fakeDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}

func (d *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("unexpected Query call")
}

func (d *fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	return fakeRow{err: d.rowErr}
}

func (d *fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("unexpected Begin call")
}

func TestSkillRepository_GetByNameMissingRow(t *testing.T) {
	repo := NewPostgresSkillRepository(&fakeDB{rowErr: pgx.ErrNoRows})
	_, err := repo.GetByName(context.Background(), "Go")
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSkillRepository_GetByNameOutageIsNotNotFound(t *testing.T) {
	outage := errors.New("connection refused")
	repo := NewPostgresSkillRepository(&fakeDB{rowErr: outage})

	_, err := repo.GetByName(context.Background(), "Go")
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("outage misreported as ErrSkillNotFound: %v", err)
	}
	if !errors.Is(err, outage) {
		t.Fatalf("expected the scan error to propagate, got %v", err)
	}
}

func TestProfileRepository_GetProfileOutageIsNotNotFound(t *testing.T) {
	outage := errors.New("connection refused")
	repo := NewPostgresProfileRepository(&fakeDB{rowErr: outage})

	_, err := repo.GetProfile(context.Background(), uuid.New())
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, ErrUserNotFound) {
		t.Fatalf("outage misreported as ErrUserNotFound: %v", err)
	}
	if !errors.Is(err, outage) {
		t.Fatalf("expected the scan error to propagate, got %v", err)
	}
}

func TestProfileRepository_GetProfileMissingRow(t *testing.T) {
	repo := NewPostgresProfileRepository(&fakeDB{rowErr: pgx.ErrNoRows})
	_, err := repo.GetProfile(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_FindErrorClassification(t *testing.T) {
	missing := NewPostgresUserRepository(&fakeDB{rowErr: pgx.ErrNoRows})
	if _, err := missing.FindByEmail(context.Background(), "a@b.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := missing.FindByID(context.Background(), uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	outage := errors.New("connection refused")
	broken := NewPostgresUserRepository(&fakeDB{rowErr: outage})
	if _, err := broken.FindByEmail(context.Background(), "a@b.com"); errors.Is(err, ErrUserNotFound) || !errors.Is(err, outage) {
		t.Fatalf("expected the scan error to propagate, got %v", err)
	}
	if _, err := broken.FindByID(context.Background(), uuid.New()); errors.Is(err, ErrUserNotFound) || !errors.Is(err, outage) {
		t.Fatalf("expected the scan error to propagate, got %v", err)
	}
}
