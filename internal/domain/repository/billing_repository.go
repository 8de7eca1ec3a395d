package repository

import (
	"context"

	"github.com/coffee-compass/internal/domain"
)

// BillingRepository - коммерческий провайдер покупок и entitlement-ов
type BillingRepository interface {
	// Purchase выполняет покупку продукта и возвращает исход
	Purchase(ctx context.Context, productID string) (domain.PurchaseOutcome, error)

	// OwnedProducts возвращает множество принадлежащих продуктов
	OwnedProducts(ctx context.Context) ([]string, error)
}
