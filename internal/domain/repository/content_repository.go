package repository

import (
	"context"

	"github.com/coffee-compass/internal/domain"
)

// ContentRepository - каталог платного контента (туры и гиды)
type ContentRepository interface {
	// ListTours возвращает все туры каталога
	ListTours(ctx context.Context) ([]domain.Tour, error)

	// ListGuides возвращает все гиды каталога
	ListGuides(ctx context.Context) ([]domain.Guide, error)

	// FindByProductID ищет элемент каталога по платёжному product id
	FindByProductID(ctx context.Context, productID string) (*domain.CatalogItem, error)

	// FindByProductIDs сопоставляет пачку product id с элементами каталога
	// (используется при restore покупок)
	FindByProductIDs(ctx context.Context, productIDs []string) ([]domain.CatalogItem, error)
}
