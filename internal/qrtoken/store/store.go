package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it.
// Repositories are reached through methods so a Tx-scoped Store exposes the
// same API as the root one.
type Store interface {
	QRTokens() QRTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. It commits if fn returns
	// nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type QRTokens interface {
	// CreateQRToken inserts a token and returns its assigned id.
	// Returns ErrAlreadyExists if the token value is taken.
	CreateQRToken(ctx context.Context, q domain.QRToken) (int64, error)

	GetQRTokenByID(ctx context.Context, id int64) (domain.QRToken, error)
	GetQRTokenByToken(ctx context.Context, token string) (domain.QRToken, error)

	// ListQRTokens returns all tokens ordered by creation time, newest first.
	ListQRTokens(ctx context.Context) ([]domain.QRToken, error)

	// UpdateQRToken overwrites every mutable column and bumps updated_at.
	UpdateQRToken(ctx context.Context, q domain.QRToken) error

	MarkQRTokenUsed(ctx context.Context, id int64) error
	DeleteQRToken(ctx context.Context, id int64) error

	// DeleteExpiredQRTokens removes tokens that expired before the cutoff and
	// reports how many were deleted.
	DeleteExpiredQRTokens(ctx context.Context, before time.Time) (int64, error)
}
