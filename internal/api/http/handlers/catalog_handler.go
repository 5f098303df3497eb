package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-pro/helpdesk-service/internal/api/dto"
	"github.com/helpdesk-pro/helpdesk-service/internal/cache"
	"github.com/helpdesk-pro/helpdesk-service/internal/repository"
	apperrors "github.com/helpdesk-pro/helpdesk-service/pkg/util"
)

// CatalogHandler serves categories and knowledge-base search.
type CatalogHandler struct {
	categories repository.CategoryRepository
	articles   repository.ArticleRepository
	views      *cache.ViewCache
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(categories repository.CategoryRepository, articles repository.ArticleRepository, views *cache.ViewCache) *CatalogHandler {
	return &CatalogHandler{categories: categories, articles: articles, views: views}
}

// Categories handles GET /api/categories, serving from the view cache when
// the refresh worker has primed it.
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	if h.views != nil {
		if cached, ok, err := h.views.GetCategories(c.Context()); err == nil && ok {
			return c.JSON(fiber.Map{
				"success":    true,
				"categories": dto.NewCategoryResponses(cached),
			})
		}
	}

	categories, err := h.categories.ListActive(c.Context())
	if err != nil {
		return apperrors.NewBackendUnavailable(err)
	}
	if h.views != nil {
		if generation, err := h.views.Begin(c.Context()); err == nil {
			_, _ = h.views.PutCategories(c.Context(), generation, categories)
		}
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"categories": dto.NewCategoryResponses(categories),
	})
}

// SearchArticles handles GET /api/knowledge-base/search.
func (h *CatalogHandler) SearchArticles(c *fiber.Ctx) error {
	term := c.Query("searchTerm")
	if term == "" {
		return apperrors.NewValidationError("searchTerm required", nil)
	}

	var categoryID *int64
	if raw := c.Query("categoryID"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			categoryID = &parsed
		}
	}

	articles, err := h.articles.Search(c.Context(), term, categoryID)
	if err != nil {
		return apperrors.NewBackendUnavailable(err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"articles": dto.NewArticleResponses(articles),
	})
}
