package animal

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

const animalCols = `id, user_id, name, type, breed, age_years, gender, weight_kg,
	health_status, tag_number, created_at, updated_at`

func scanAnimal(row pgx.Row) (*Animal, error) {
	var a Animal
	err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Breed, &a.AgeYears,
		&a.Gender, &a.WeightKG, &a.HealthStatus, &a.TagNumber,
		&a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Animal) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO animals (id, user_id, name, type, breed, age_years, gender,
			weight_kg, health_status, tag_number)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		a.ID, a.UserID, a.Name, a.Type, a.Breed, a.AgeYears, a.Gender,
		a.WeightKG, a.HealthStatus, a.TagNumber)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Animal, error) {
	return scanAnimal(r.pool.QueryRow(ctx, `SELECT `+animalCols+` FROM animals WHERE id = $1`, id))
}

func (r *repoPG) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Animal, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM animals WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+animalCols+` FROM animals
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Animal
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, nil
}

func (r *repoPG) Update(ctx context.Context, a *Animal) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE animals SET name=$2, type=$3, breed=$4, age_years=$5, gender=$6,
			weight_kg=$7, health_status=$8, tag_number=$9, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.Name, a.Type, a.Breed, a.AgeYears, a.Gender,
		a.WeightKG, a.HealthStatus, a.TagNumber)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM animals WHERE id = $1`, id)
	return err
}
