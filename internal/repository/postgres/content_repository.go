package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coffee-compass/internal/domain"
	"github.com/coffee-compass/internal/domain/repository"
	apperrors "github.com/coffee-compass/internal/pkg/errors"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type contentRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewContentRepository создает репозиторий каталога платного контента
func NewContentRepository(db *DB, logger *zap.Logger) repository.ContentRepository {
	return &contentRepository{
		db:     db,
		logger: logger,
	}
}

// ListTours возвращает все туры каталога
func (r *contentRepository) ListTours(ctx context.Context) ([]domain.Tour, error) {
	const query = `
		SELECT id, product_id, title, description, city,
		       price_cents, currency, stop_count, created_at
		FROM tours
		ORDER BY city, title`

	var tours []domain.Tour
	if err := r.db.SelectContext(ctx, &tours, query); err != nil {
		r.logger.Error("failed to list tours", zap.Error(err))
		return nil, fmt.Errorf("list tours: %w", err)
	}

	return tours, nil
}

// ListGuides возвращает все гиды каталога
func (r *contentRepository) ListGuides(ctx context.Context) ([]domain.Guide, error) {
	const query = `
		SELECT id, product_id, title, description, city,
		       price_cents, currency, page_count, created_at
		FROM guides
		ORDER BY city, title`

	var guides []domain.Guide
	if err := r.db.SelectContext(ctx, &guides, query); err != nil {
		r.logger.Error("failed to list guides", zap.Error(err))
		return nil, fmt.Errorf("list guides: %w", err)
	}

	return guides, nil
}

// FindByProductID ищет элемент каталога по платёжному product id
func (r *contentRepository) FindByProductID(ctx context.Context, productID string) (*domain.CatalogItem, error) {
	const query = `
		SELECT kind, content_id, product_id FROM (
			SELECT 'tour' AS kind, id AS content_id, product_id FROM tours
			UNION ALL
			SELECT 'guide' AS kind, id AS content_id, product_id FROM guides
		) catalog
		WHERE product_id = $1`

	var item domain.CatalogItem
	err := r.db.GetContext(ctx, &item, query, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrProductNotFound
	}
	if err != nil {
		r.logger.Error("failed to find catalog item",
			zap.String("product_id", productID),
			zap.Error(err))
		return nil, fmt.Errorf("find by product id: %w", err)
	}

	return &item, nil
}

// FindByProductIDs сопоставляет пачку product id с элементами каталога.
// Неизвестные id молча пропускаются: restore не должен падать из-за
// продуктов, уже убранных из каталога.
func (r *contentRepository) FindByProductIDs(ctx context.Context, productIDs []string) ([]domain.CatalogItem, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	const query = `
		SELECT kind, content_id, product_id FROM (
			SELECT 'tour' AS kind, id AS content_id, product_id FROM tours
			UNION ALL
			SELECT 'guide' AS kind, id AS content_id, product_id FROM guides
		) catalog
		WHERE product_id = ANY($1)`

	var items []domain.CatalogItem
	if err := r.db.SelectContext(ctx, &items, query, pq.Array(productIDs)); err != nil {
		r.logger.Error("failed to find catalog items",
			zap.Int("product_count", len(productIDs)),
			zap.Error(err))
		return nil, fmt.Errorf("find by product ids: %w", err)
	}

	return items, nil
}
