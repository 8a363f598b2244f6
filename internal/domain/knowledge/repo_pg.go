package knowledge

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const articleCols = `id, title, category, species, summary, content, author, created_at`

// PGRepository is a Postgres-backed article repository.
type PGRepository struct {
	pool *pgxpool.Pool
}

func NewPGRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func scanArticle(row pgx.Row) (*Article, error) {
	var a Article
	err := row.Scan(&a.ID, &a.Title, &a.Category, &a.Species,
		&a.Summary, &a.Content, &a.Author, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PGRepository) Create(ctx context.Context, a *Article) error {
	query := `INSERT INTO knowledge_articles (id, title, category, species, summary, content, author)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`
	err := r.pool.QueryRow(ctx, query,
		a.ID, a.Title, a.Category, a.Species, a.Summary, a.Content, a.Author,
	).Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func (r *PGRepository) GetByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM knowledge_articles WHERE id = $1`, articleCols)
	a, err := scanArticle(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

func (r *PGRepository) List(ctx context.Context, f Filter, limit, offset int) ([]*Article, int, error) {
	where := ""
	args := []interface{}{}
	add := func(clause string, val interface{}) {
		args = append(args, val)
		cond := fmt.Sprintf(clause, len(args))
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.Species != "" {
		add("species = $%d", f.Species)
	}
	if f.Search != "" {
		add("title ILIKE $%d", "%"+f.Search+"%")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM knowledge_articles` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM knowledge_articles%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		articleCols, where, len(args)-1, len(args))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	items := []*Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}
