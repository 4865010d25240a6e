package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/domain"
	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/store"
)

const qrTokenColumns = `id, token, employee_id, created_at, expires_at, used, qr_code, updated_at`

type qrTokensRepo struct {
	q dbtx
}

func (r *qrTokensRepo) CreateQRToken(ctx context.Context, t domain.QRToken) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO qr_tokens (token, employee_id, created_at, expires_at, used, qr_code, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Token,
		t.EmployeeID,
		formatTime(t.CreatedAt),
		formatTime(t.ExpiresAt),
		t.Used,
		t.QRCode,
		formatTime(time.Now()),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *qrTokensRepo) GetQRTokenByID(ctx context.Context, id int64) (domain.QRToken, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+qrTokenColumns+` FROM qr_tokens WHERE id = ?`, id)
	t, err := scanQRToken(row)
	if err != nil {
		return domain.QRToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *qrTokensRepo) GetQRTokenByToken(ctx context.Context, token string) (domain.QRToken, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+qrTokenColumns+` FROM qr_tokens WHERE token = ?`, token)
	t, err := scanQRToken(row)
	if err != nil {
		return domain.QRToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *qrTokensRepo) ListQRTokens(ctx context.Context) ([]domain.QRToken, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+qrTokenColumns+` FROM qr_tokens ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.QRToken{}
	for rows.Next() {
		t, err := scanQRToken(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *qrTokensRepo) UpdateQRToken(ctx context.Context, t domain.QRToken) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE qr_tokens
		SET token = ?, employee_id = ?, created_at = ?, expires_at = ?, used = ?, qr_code = ?, updated_at = ?
		WHERE id = ?`,
		t.Token,
		t.EmployeeID,
		formatTime(t.CreatedAt),
		formatTime(t.ExpiresAt),
		t.Used,
		t.QRCode,
		formatTime(time.Now()),
		t.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireAffected(res)
}

func (r *qrTokensRepo) MarkQRTokenUsed(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE qr_tokens SET used = 1, updated_at = ? WHERE id = ?`,
		formatTime(time.Now()), id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *qrTokensRepo) DeleteQRToken(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM qr_tokens WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *qrTokensRepo) DeleteExpiredQRTokens(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM qr_tokens WHERE expires_at < ?`, formatTime(before))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func requireAffected(res rowsAffecter) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
