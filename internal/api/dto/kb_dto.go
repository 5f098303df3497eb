package dto

import (
	"time"

	"github.com/helpdesk-pro/helpdesk-service/internal/domain"
)

// CategoryResponse is the wire shape of a category.
type CategoryResponse struct {
	CategoryID  int64  `json:"categoryID"`
	Name        string `json:"categoryName"`
	Description string `json:"description"`
}

// NewCategoryResponses maps active categories.
func NewCategoryResponses(categories []domain.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, CategoryResponse{
			CategoryID:  category.ID,
			Name:        category.Name,
			Description: category.Description,
		})
	}
	return result
}

// ArticleResponse is the wire shape of a knowledge-base article.
type ArticleResponse struct {
	ArticleID  int64     `json:"articleID"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CategoryID int64     `json:"categoryID"`
	ViewCount  int64     `json:"viewCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewArticleResponses maps search results.
func NewArticleResponses(articles []domain.Article) []ArticleResponse {
	result := make([]ArticleResponse, 0, len(articles))
	for _, article := range articles {
		result = append(result, ArticleResponse{
			ArticleID:  article.ID,
			Title:      article.Title,
			Body:       article.Body,
			CategoryID: article.CategoryID,
			ViewCount:  article.ViewCount,
			CreatedAt:  article.CreatedAt,
		})
	}
	return result
}
