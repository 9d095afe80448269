package postgres

import (
	"MiniLearn/internal/app_errors"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func UnwrapPgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

// writeErr turns constraint violations (SQLSTATE class 23) into
// *app_errors.IntegrityError and wraps everything else with op.
func writeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var ie *app_errors.IntegrityError
	if errors.As(err, &ie) || errors.Is(err, app_errors.ErrNotFound) {
		return err
	}
	if pgErr := UnwrapPgError(err); pgErr != nil && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return &app_errors.IntegrityError{Op: op, Constraint: pgErr.ConstraintName, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// readErr maps an empty result to notFound.
func readErr(err error, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	return err
}
