package farm

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

const farmCols = `id, user_id, name, location, area_acres, soil_type, notes, created_at, updated_at`

func scanFarm(row pgx.Row) (*Farm, error) {
	var f Farm
	err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.Location, &f.AreaAcres,
		&f.SoilType, &f.Notes, &f.CreatedAt, &f.UpdatedAt)
	return &f, err
}

func (r *repoPG) Create(ctx context.Context, f *Farm) error {
	f.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO farms (id, user_id, name, location, area_acres, soil_type, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		f.ID, f.UserID, f.Name, f.Location, f.AreaAcres, f.SoilType, f.Notes)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Farm, error) {
	return scanFarm(r.pool.QueryRow(ctx, `SELECT `+farmCols+` FROM farms WHERE id = $1`, id))
}

func (r *repoPG) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Farm, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM farms WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+farmCols+` FROM farms
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Farm
	for rows.Next() {
		f, err := scanFarm(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, f)
	}
	return items, total, nil
}

func (r *repoPG) Update(ctx context.Context, f *Farm) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE farms SET name=$2, location=$3, area_acres=$4, soil_type=$5, notes=$6, updated_at=NOW()
		WHERE id = $1`,
		f.ID, f.Name, f.Location, f.AreaAcres, f.SoilType, f.Notes)
	return err
}
