package healthrecord

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

const recordCols = `id, user_id, animal_id, record_type, diagnosis, severity,
	symptoms, treatment, notes, recorded_by, created_at`

func scanRecord(row pgx.Row) (*HealthRecord, error) {
	var rec HealthRecord
	err := row.Scan(&rec.ID, &rec.UserID, &rec.AnimalID, &rec.RecordType,
		&rec.Diagnosis, &rec.Severity, &rec.Symptoms, &rec.Treatment,
		&rec.Notes, &rec.RecordedBy, &rec.CreatedAt)
	return &rec, err
}

func (r *repoPG) Create(ctx context.Context, rec *HealthRecord) error {
	rec.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO health_records (id, user_id, animal_id, record_type,
			diagnosis, severity, symptoms, treatment, notes, recorded_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		rec.ID, rec.UserID, rec.AnimalID, rec.RecordType,
		rec.Diagnosis, rec.Severity, rec.Symptoms, rec.Treatment,
		rec.Notes, rec.RecordedBy)
	return err
}

func (r *repoPG) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*HealthRecord, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM health_records WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` FROM health_records
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectRecords(rows)
	return items, total, err
}

func (r *repoPG) ListByAnimal(ctx context.Context, animalID uuid.UUID, limit, offset int) ([]*HealthRecord, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM health_records WHERE animal_id = $1`, animalID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` FROM health_records
		WHERE animal_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		animalID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectRecords(rows)
	return items, total, err
}

func collectRecords(rows pgx.Rows) ([]*HealthRecord, error) {
	var items []*HealthRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}
