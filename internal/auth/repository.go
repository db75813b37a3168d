// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/isiolocityfc/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, session *Session) error
	FindByRefreshToken(ctx context.Context, refreshToken string) (*Session, error)
	Rotate(
		ctx context.Context,
		id, token, refreshToken string,
		expiresAt time.Time,
	) error
	DeleteByRefreshToken(ctx context.Context, refreshToken string) (int64, error)
	ListForUser(ctx context.Context, userID string) ([]Session, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const sessionColumns = `
	id, user_id, token, refresh_token, user_agent, ip_address,
	expires_at, created_at, updated_at`

func (r *repository) Create(ctx context.Context, session *Session) error {
	query := `
		INSERT INTO sessions (
			id, user_id, token, refresh_token, user_agent, ip_address,
			expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		session.ID,
		session.UserID,
		session.Token,
		session.RefreshToken,
		session.UserAgent,
		session.IPAddress,
		session.ExpiresAt,
	).Scan(&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create session: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

func (r *repository) FindByRefreshToken(
	ctx context.Context,
	refreshToken string,
) (*Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE refresh_token = $1`

	var session Session
	err := r.db.GetContext(ctx, &session, query, refreshToken)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find session: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &session, nil
}

func (r *repository) Rotate(
	ctx context.Context,
	id, token, refreshToken string,
	expiresAt time.Time,
) error {
	query := `
		UPDATE sessions
		SET token = $2, refresh_token = $3, expires_at = $4, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, token, refreshToken, expiresAt)
	if err != nil {
		return fmt.Errorf("rotate session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rotate session: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("rotate session: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) DeleteByRefreshToken(
	ctx context.Context,
	refreshToken string,
) (int64, error) {
	query := `DELETE FROM sessions WHERE refresh_token = $1`

	result, err := r.db.ExecContext(ctx, query, refreshToken)
	if err != nil {
		return 0, fmt.Errorf("delete session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete session: %w", err)
	}

	return rows, nil
}

func (r *repository) ListForUser(
	ctx context.Context,
	userID string,
) ([]Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE user_id = $1 AND expires_at > NOW()
		ORDER BY updated_at DESC`

	var sessions []Session
	if err := r.db.SelectContext(ctx, &sessions, query, userID); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return sessions, nil
}
