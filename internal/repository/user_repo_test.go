package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"signup-api/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestBuildFindQueryNoFilters(t *testing.T) {
	query, args := buildFindQuery(domain.FindUser{})
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
	want := "SELECT " + userColumns + " FROM users ORDER BY created_at, id"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
}

func TestBuildFindQueryByName(t *testing.T) {
	query, args := buildFindQuery(domain.FindUser{Name: strPtr("alice")})
	want := "SELECT " + userColumns + " FROM users WHERE name = $1 ORDER BY created_at, id"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 1 || args[0] != "alice" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildFindQueryAllFilters(t *testing.T) {
	query, args := buildFindQuery(domain.FindUser{
		Name:        strPtr("alice"),
		Email:       strPtr("a@x.com"),
		PhoneNumber: strPtr("555-0100"),
	})
	want := "SELECT " + userColumns + " FROM users WHERE name = $1 AND email = $2 AND phone_number = $3 ORDER BY created_at, id"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %v", args)
	}
}

func TestNewPersistenceErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_name_key"}
	err := newPersistenceError("create user", pgErr)

	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %T", err)
	}
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected unique violation to match ErrDuplicate, got %v", err)
	}
}

func TestNewPersistenceErrorOther(t *testing.T) {
	err := newPersistenceError("find users", errors.New("connection refused"))
	if errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected generic failure to not match ErrDuplicate")
	}
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %T", err)
	}
	if perr.Op != "find users" {
		t.Fatalf("unexpected op: %s", perr.Op)
	}
}
