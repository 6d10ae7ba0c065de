package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate marca una violacion de constraint de unicidad en el store.
var ErrDuplicate = errors.New("duplicate record")

// PersistenceError envuelve una falla del store durante create o find. No se
// recupera localmente: se propaga sin cambios hasta el caller.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func newPersistenceError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		err = fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return &PersistenceError{Op: op, Err: err}
}
