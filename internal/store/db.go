package store

import (
	"errors"
	"fmt"

	"dub-server/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrLinkKeyExists is returned when (domain, key) is already taken
	ErrLinkKeyExists = errors.New("link key already exists for domain")

	// ErrDuplicateCommission is returned when a commission for the same event or invoice exists
	ErrDuplicateCommission = errors.New("commission already exists")

	// ErrDuplicateFraudEvent is returned when an identical pending fraud event exists
	ErrDuplicateFraudEvent = errors.New("pending fraud event already exists")

	// ErrCommissionPaid is returned when reversing a commission whose payout has already been sent
	ErrCommissionPaid = errors.New("commission already paid")

	// ErrPayoutNotSendable is returned when a payout is no longer pending or failed
	ErrPayoutNotSendable = errors.New("payout is not in a sendable state")

	// ErrFraudEventResolved is returned when resolving an event that is no longer pending
	ErrFraudEventResolved = errors.New("fraud event already resolved")
)

const pgUniqueViolation = "23505"

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

func New(connectionString string, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return Store{}, fmt.Errorf("failed to open database: %w", err)
	}
	return Store{db: db, logger: logger}, nil
}

// Close closes the connection pool
func (s *Store) Close() error {
	return s.db.Close()
}

// isUniqueViolation reports whether err is a unique constraint violation,
// optionally restricted to a named constraint or index.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
