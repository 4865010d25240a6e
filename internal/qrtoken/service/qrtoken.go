package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/domain"
	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/store"
	"github.com/aussiebroadwan/qrtoken/pkg/cryptox"
	"github.com/aussiebroadwan/qrtoken/pkg/qrx"
	"github.com/aussiebroadwan/qrtoken/pkg/slogx"
)

var (
	ErrQRTokenNotFound = errors.New("qr token not found")
	ErrQRTokenExists   = errors.New("qr token already exists")
	ErrInvalidRecord   = errors.New("invalid qr token record")
	ErrQRMismatch      = errors.New("qr code does not encode the token")
)

// QRTokenService holds the rules for tokens received from issuers.
type QRTokenService struct {
	Store store.Store

	// Now is the clock used for validation, time.Now when nil
	Now func() time.Time
}

func (s *QRTokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create stores a record after checking it is well formed and that its QR
// image actually encodes its token.
func (s *QRTokenService) Create(ctx context.Context, rec domain.TokenRecord) (domain.QRToken, error) {
	l := slogx.FromContext(ctx)

	q := domain.QRToken{
		Token:      rec.Token,
		EmployeeID: rec.EmployeeID,
		CreatedAt:  rec.CreatedAt,
		ExpiresAt:  rec.ExpiresAt,
		Used:       rec.Used,
		QRCode:     rec.QRCode,
	}
	if err := checkRecord(q); err != nil {
		return domain.QRToken{}, err
	}

	id, err := s.Store.QRTokens().CreateQRToken(ctx, q)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.QRToken{}, ErrQRTokenExists
		}
		l.Error("failed to create qr token", "error", err)
		return domain.QRToken{}, err
	}

	l.Info("qr token stored", "id", id, "token_fp", cryptox.FingerprintToken(q.Token))
	return s.Get(ctx, id)
}

// List returns every token, newest first.
func (s *QRTokenService) List(ctx context.Context) ([]domain.QRToken, error) {
	return s.Store.QRTokens().ListQRTokens(ctx)
}

// Get returns ErrQRTokenNotFound when id does not exist.
func (s *QRTokenService) Get(ctx context.Context, id int64) (domain.QRToken, error) {
	q, err := s.Store.QRTokens().GetQRTokenByID(ctx, id)
	if err != nil {
		return domain.QRToken{}, mapStoreErr(err)
	}
	return q, nil
}

// FindByToken returns nil, not an error, when no token matches.
func (s *QRTokenService) FindByToken(ctx context.Context, token string) (*domain.QRToken, error) {
	q, err := s.Store.QRTokens().GetQRTokenByToken(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Validate reports whether token exists, is unused and has not expired.
func (s *QRTokenService) Validate(ctx context.Context, token string) (bool, error) {
	q, err := s.FindByToken(ctx, token)
	if err != nil || q == nil {
		return false, err
	}
	return q.IsValidAt(s.now()), nil
}

// Update applies patch to the token with the given id. The merged token must
// still pass the same checks as Create.
func (s *QRTokenService) Update(ctx context.Context, id int64, patch domain.QRTokenPatch) (domain.QRToken, error) {
	var out domain.QRToken

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.QRTokens().GetQRTokenByID(ctx, id)
		if err != nil {
			return mapStoreErr(err)
		}

		next := patch.Apply(current)
		if err := checkRecord(next); err != nil {
			return err
		}

		if err := tx.QRTokens().UpdateQRToken(ctx, next); err != nil {
			return mapStoreErr(err)
		}

		out, err = tx.QRTokens().GetQRTokenByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.QRToken{}, err
	}

	return out, nil
}

// MarkUsed flags the token as redeemed. Marking an already used token is
// not an error.
func (s *QRTokenService) MarkUsed(ctx context.Context, id int64) (domain.QRToken, error) {
	if err := s.Store.QRTokens().MarkQRTokenUsed(ctx, id); err != nil {
		return domain.QRToken{}, mapStoreErr(err)
	}
	return s.Get(ctx, id)
}

func (s *QRTokenService) Delete(ctx context.Context, id int64) error {
	return mapStoreErr(s.Store.QRTokens().DeleteQRToken(ctx, id))
}

// PurgeExpired deletes tokens that expired more than retention ago.
func (s *QRTokenService) PurgeExpired(ctx context.Context, retention time.Duration) (int64, error) {
	return s.Store.QRTokens().DeleteExpiredQRTokens(ctx, s.now().Add(-retention))
}

func checkRecord(q domain.QRToken) error {
	switch {
	case !cryptox.IsAlphanumeric(q.Token):
		return fmt.Errorf("%w: token must be alphanumeric", ErrInvalidRecord)
	case q.EmployeeID <= 0:
		return fmt.Errorf("%w: employee id must be positive", ErrInvalidRecord)
	case q.CreatedAt.IsZero() || q.ExpiresAt.IsZero():
		return fmt.Errorf("%w: timestamps are required", ErrInvalidRecord)
	case !q.ExpiresAt.After(q.CreatedAt):
		return fmt.Errorf("%w: expiry must be after creation", ErrInvalidRecord)
	}

	payload, err := qrx.DecodeBase64(q.QRCode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if payload != q.Token {
		return ErrQRMismatch
	}

	return nil
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrQRTokenNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrQRTokenExists
	default:
		return err
	}
}
