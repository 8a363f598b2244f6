package knowledge

import (
	"time"

	"github.com/google/uuid"
)

// Article maps to the knowledge_articles table.
type Article struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Category  string    `db:"category" json:"category"`
	Species   *string   `db:"species" json:"species,omitempty"`
	Summary   *string   `db:"summary" json:"summary,omitempty"`
	Content   string    `db:"content" json:"content"`
	Author    *string   `db:"author" json:"author,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
