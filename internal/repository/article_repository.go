package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helpdesk-pro/helpdesk-service/internal/domain"
)

// ArticleRepository searches the knowledge base.
type ArticleRepository interface {
	Search(ctx context.Context, term string, categoryID *int64) ([]domain.Article, error)
}

type articleRepository struct {
	pool *pgxpool.Pool
}

// NewArticleRepository instantiates repository.
func NewArticleRepository(pool *pgxpool.Pool) ArticleRepository {
	return &articleRepository{pool: pool}
}

func (r *articleRepository) Search(ctx context.Context, term string, categoryID *int64) ([]domain.Article, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"

	query := `
        SELECT id, title, body, category_id, view_count, created_at
        FROM kb_articles
        WHERE (LOWER(title) LIKE $1 OR LOWER(body) LIKE $1)`
	args := []any{pattern}
	if categoryID != nil {
		args = append(args, *categoryID)
		query += ` AND category_id=$2`
	}
	query += ` ORDER BY view_count DESC, created_at DESC LIMIT 50`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Article
	for rows.Next() {
		var article domain.Article
		if err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Body,
			&article.CategoryID,
			&article.ViewCount,
			&article.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, article)
	}
	return result, rows.Err()
}
