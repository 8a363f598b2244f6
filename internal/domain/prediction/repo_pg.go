package prediction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const historyCols = `id, user_id, animal_id, input_data, prediction_result, confidence_score, severity_level, recommendations, created_at`

// PGRepository is a Postgres-backed prediction history repository.
type PGRepository struct {
	pool *pgxpool.Pool
}

func NewPGRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func scanHistoryEntry(row pgx.Row) (*HistoryEntry, error) {
	var e HistoryEntry
	err := row.Scan(&e.ID, &e.UserID, &e.AnimalID, &e.InputData, &e.PredictionResult,
		&e.ConfidenceScore, &e.SeverityLevel, &e.Recommendations, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PGRepository) Create(ctx context.Context, e *HistoryEntry) error {
	query := `INSERT INTO voice_predictions
			(id, user_id, animal_id, input_data, prediction_result, confidence_score, severity_level, recommendations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`
	err := r.pool.QueryRow(ctx, query,
		e.ID, e.UserID, e.AnimalID, e.InputData, e.PredictionResult,
		e.ConfidenceScore, e.SeverityLevel, e.Recommendations,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert prediction history: %w", err)
	}
	return nil
}

func (r *PGRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*HistoryEntry, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM voice_predictions WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count prediction history: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM voice_predictions WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, historyCols)
	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list prediction history: %w", err)
	}
	defer rows.Close()

	items := []*HistoryEntry{}
	for rows.Next() {
		e, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan prediction history: %w", err)
		}
		items = append(items, e)
	}
	return items, total, rows.Err()
}
