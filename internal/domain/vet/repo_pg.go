package vet

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const vetCols = `id, name, clinic_name, location, phone, email, specialization,
	rating, available, created_at`

func scanVet(row pgx.Row) (*Veterinarian, error) {
	var v Veterinarian
	err := row.Scan(&v.ID, &v.Name, &v.ClinicName, &v.Location, &v.Phone,
		&v.Email, &v.Specialization, &v.Rating, &v.Available, &v.CreatedAt)
	return &v, err
}

func (r *repoPG) Create(ctx context.Context, v *Veterinarian) error {
	v.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO veterinarians (id, name, clinic_name, location, phone,
			email, specialization, rating, available)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		v.ID, v.Name, v.ClinicName, v.Location, v.Phone,
		v.Email, v.Specialization, v.Rating, v.Available)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Veterinarian, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM veterinarians`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+vetCols+` FROM veterinarians
		ORDER BY rating DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectVets(rows)
	return items, total, err
}

func (r *repoPG) SearchByLocation(ctx context.Context, location string, limit, offset int) ([]*Veterinarian, int, error) {
	pattern := "%" + location + "%"
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM veterinarians WHERE location ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+vetCols+` FROM veterinarians
		WHERE location ILIKE $1 ORDER BY rating DESC LIMIT $2 OFFSET $3`,
		pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectVets(rows)
	return items, total, err
}

func collectVets(rows pgx.Rows) ([]*Veterinarian, error) {
	var items []*Veterinarian
	for rows.Next() {
		v, err := scanVet(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}
