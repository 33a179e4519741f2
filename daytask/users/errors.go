package users

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// no user matched the lookup
	ErrNotFound = errors.New("user not found")

	// another account already uses the email
	ErrDuplicateEmail = errors.New("email already exists")
)

// postgres unique_violation
const uniqueViolationCode = "23505"

// maps driver errors onto the repository's error kinds
func translateError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicateEmail
	}

	return err
}
