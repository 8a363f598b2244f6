package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileCols = `user_id, full_name, phone, location, theme, language, created_at, updated_at`

// PGRepository is a Postgres-backed profile repository.
type PGRepository struct {
	pool *pgxpool.Pool
}

func NewPGRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(&p.UserID, &p.FullName, &p.Phone, &p.Location,
		&p.Theme, &p.Language, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE user_id = $1`, profileCols)
	p, err := scanProfile(r.pool.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (r *PGRepository) Upsert(ctx context.Context, p *Profile) error {
	query := `INSERT INTO profiles (user_id, full_name, phone, location, theme, language)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			theme = EXCLUDED.theme,
			language = EXCLUDED.language,
			updated_at = now()
		RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		p.UserID, p.FullName, p.Phone, p.Location, p.Theme, p.Language,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
