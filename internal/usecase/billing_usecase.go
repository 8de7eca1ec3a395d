package usecase

import (
	"context"

	"github.com/coffee-compass/internal/config"
	"github.com/coffee-compass/internal/domain"
	"github.com/coffee-compass/internal/domain/repository"
	"github.com/coffee-compass/internal/pkg/errors"
	"github.com/coffee-compass/internal/usecase/dto"
	"go.uber.org/zap"
)

// BillingUseCase - покупка платного контента и восстановление покупок.
// Сбой верификации покупки трактуется как "не куплено": пользователь
// может повторить вручную, автоматических ретраев нет.
type BillingUseCase struct {
	billingRepo      repository.BillingRepository
	contentRepo      repository.ContentRepository
	shopUC           *ShopUseCase
	premiumProductID string
	logger           *zap.Logger
}

// NewBillingUseCase создает usecase покупок
func NewBillingUseCase(
	billingRepo repository.BillingRepository,
	contentRepo repository.ContentRepository,
	shopUC *ShopUseCase,
	cfg *config.BillingConfig,
	logger *zap.Logger,
) *BillingUseCase {
	return &BillingUseCase{
		billingRepo:      billingRepo,
		contentRepo:      contentRepo,
		shopUC:           shopUC,
		premiumProductID: cfg.PremiumProductID,
		logger:           logger,
	}
}

// Purchase покупает продукт каталога. Запись о покупке делается только
// при исходе success; cancelled и pending ничего не меняют локально
// (pending довершается через Restore).
func (uc *BillingUseCase) Purchase(ctx context.Context, productID string) (*dto.PurchaseResponse, error) {
	kind, err := uc.resolveKind(ctx, productID)
	if err != nil {
		return nil, err
	}

	outcome, err := uc.billingRepo.Purchase(ctx, productID)
	if err != nil {
		uc.logger.Error("Purchase failed",
			zap.String("product_id", productID),
			zap.Error(err))
		return nil, errors.ErrPurchaseFailed
	}

	if outcome == domain.PurchaseSuccess {
		if err := uc.recordOwnership(ctx, kind, productID); err != nil {
			return nil, err
		}
	}

	uc.logger.Info("Purchase completed",
		zap.String("product_id", productID),
		zap.String("kind", string(kind)),
		zap.String("outcome", string(outcome)))

	return &dto.PurchaseResponse{
		Outcome:   outcome,
		ProductID: productID,
		Kind:      kind,
	}, nil
}

func (uc *BillingUseCase) resolveKind(ctx context.Context, productID string) (domain.ProductKind, error) {
	if productID == uc.premiumProductID {
		return domain.ProductPremium, nil
	}

	item, err := uc.contentRepo.FindByProductID(ctx, productID)
	if err != nil {
		return "", err
	}

	return item.Kind, nil
}

func (uc *BillingUseCase) recordOwnership(ctx context.Context, kind domain.ProductKind, productID string) error {
	switch kind {
	case domain.ProductPremium:
		return uc.shopUC.SetPremium(ctx, true)
	case domain.ProductTour:
		return uc.shopUC.RecordTourPurchase(ctx, productID)
	case domain.ProductGuide:
		return uc.shopUC.RecordGuidePurchase(ctx, productID)
	}
	return nil
}

// Restore пересинхронизирует локальное состояние с принадлежащими
// продуктами у платёжного провайдера. Продукты, исчезнувшие из каталога,
// молча пропускаются.
func (uc *BillingUseCase) Restore(ctx context.Context) (*dto.RestoreResponse, error) {
	owned, err := uc.billingRepo.OwnedProducts(ctx)
	if err != nil {
		uc.logger.Error("Failed to fetch owned products", zap.Error(err))
		return nil, errors.ErrPurchaseFailed
	}

	resp := &dto.RestoreResponse{
		RestoredTours:  make([]string, 0),
		RestoredGuides: make([]string, 0),
	}

	contentIDs := make([]string, 0, len(owned))
	for _, productID := range owned {
		if productID == uc.premiumProductID {
			if err := uc.shopUC.SetPremium(ctx, true); err != nil {
				return nil, err
			}
			continue
		}
		contentIDs = append(contentIDs, productID)
	}

	items, err := uc.contentRepo.FindByProductIDs(ctx, contentIDs)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		switch item.Kind {
		case domain.ProductTour:
			if err := uc.shopUC.RecordTourPurchase(ctx, item.ProductID); err != nil {
				return nil, err
			}
			resp.RestoredTours = append(resp.RestoredTours, item.ProductID)
		case domain.ProductGuide:
			if err := uc.shopUC.RecordGuidePurchase(ctx, item.ProductID); err != nil {
				return nil, err
			}
			resp.RestoredGuides = append(resp.RestoredGuides, item.ProductID)
		}
	}

	uc.logger.Info("Purchases restored",
		zap.Int("tour_count", len(resp.RestoredTours)),
		zap.Int("guide_count", len(resp.RestoredGuides)))

	return resp, nil
}

// ListTours возвращает каталог туров с признаком доступности.
// Тур доступен при явной покупке или активном premium.
func (uc *BillingUseCase) ListTours(ctx context.Context) ([]dto.TourResponse, error) {
	tours, err := uc.contentRepo.ListTours(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TourResponse, 0, len(tours))
	for _, t := range tours {
		out = append(out, dto.TourResponse{
			Tour:     t,
			Unlocked: uc.shopUC.HasPurchasedTour(t.ProductID),
		})
	}

	return out, nil
}

// ListGuides возвращает каталог гидов с признаком доступности.
// Гид доступен только при явной покупке, premium его не открывает.
func (uc *BillingUseCase) ListGuides(ctx context.Context) ([]dto.GuideResponse, error) {
	guides, err := uc.contentRepo.ListGuides(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.GuideResponse, 0, len(guides))
	for _, g := range guides {
		out = append(out, dto.GuideResponse{
			Guide:    g,
			Unlocked: uc.shopUC.HasPurchasedGuide(g.ProductID),
		})
	}

	return out, nil
}
