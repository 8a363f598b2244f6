package scheme

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemeCols = `id, title, category, description, eligibility, benefit, application_url, deadline, created_at`

// PGRepository is a Postgres-backed scheme repository.
type PGRepository struct {
	pool *pgxpool.Pool
}

func NewPGRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func scanScheme(row pgx.Row) (*Scheme, error) {
	var s Scheme
	err := row.Scan(&s.ID, &s.Title, &s.Category, &s.Description,
		&s.Eligibility, &s.Benefit, &s.ApplicationURL, &s.Deadline, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) Create(ctx context.Context, s *Scheme) error {
	query := `INSERT INTO schemes (id, title, category, description, eligibility, benefit, application_url, deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`
	err := r.pool.QueryRow(ctx, query,
		s.ID, s.Title, s.Category, s.Description,
		s.Eligibility, s.Benefit, s.ApplicationURL, s.Deadline,
	).Scan(&s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert scheme: %w", err)
	}
	return nil
}

func (r *PGRepository) GetByID(ctx context.Context, id uuid.UUID) (*Scheme, error) {
	query := fmt.Sprintf(`SELECT %s FROM schemes WHERE id = $1`, schemeCols)
	s, err := scanScheme(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get scheme: %w", err)
	}
	return s, nil
}

func (r *PGRepository) List(ctx context.Context, limit, offset int) ([]*Scheme, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM schemes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count schemes: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM schemes ORDER BY created_at DESC LIMIT $1 OFFSET $2`, schemeCols)
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list schemes: %w", err)
	}
	defer rows.Close()

	items, err := collectSchemes(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *PGRepository) ListByCategory(ctx context.Context, category string, limit, offset int) ([]*Scheme, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM schemes WHERE category = $1`, category).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count schemes: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM schemes WHERE category = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, schemeCols)
	rows, err := r.pool.Query(ctx, query, category, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list schemes by category: %w", err)
	}
	defer rows.Close()

	items, err := collectSchemes(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func collectSchemes(rows pgx.Rows) ([]*Scheme, error) {
	items := []*Scheme{}
	for rows.Next() {
		s, err := scanScheme(rows)
		if err != nil {
			return nil, fmt.Errorf("scan scheme: %w", err)
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
