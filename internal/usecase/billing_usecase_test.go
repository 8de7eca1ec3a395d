package usecase

import (
	"context"
	"testing"

	"github.com/coffee-compass/internal/config"
	"github.com/coffee-compass/internal/domain"
	"github.com/coffee-compass/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockBillingRepo struct {
	mock.Mock
}

func (m *mockBillingRepo) Purchase(ctx context.Context, productID string) (domain.PurchaseOutcome, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(domain.PurchaseOutcome), args.Error(1)
}

func (m *mockBillingRepo) OwnedProducts(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockContentRepo struct {
	mock.Mock
}

func (m *mockContentRepo) ListTours(ctx context.Context) ([]domain.Tour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tour), args.Error(1)
}

func (m *mockContentRepo) ListGuides(ctx context.Context) ([]domain.Guide, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Guide), args.Error(1)
}

func (m *mockContentRepo) FindByProductID(ctx context.Context, productID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *mockContentRepo) FindByProductIDs(ctx context.Context, productIDs []string) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func newBillingForTest(t *testing.T, billing *mockBillingRepo, content *mockContentRepo) (*BillingUseCase, *ShopUseCase) {
	t.Helper()

	shopUC, err := NewShopUseCase(context.Background(), memory.NewPreferencesRepository(), zap.NewNop())
	require.NoError(t, err)

	cfg := &config.BillingConfig{PremiumProductID: "premium_yearly"}

	return NewBillingUseCase(billing, content, shopUC, cfg, zap.NewNop()), shopUC
}

func TestBillingUseCase_Purchase(t *testing.T) {
	ctx := context.Background()

	t.Run("successful tour purchase records ownership", func(t *testing.T) {
		billing := new(mockBillingRepo)
		content := new(mockContentRepo)

		content.On("FindByProductID", mock.Anything, "t1").
			Return(&domain.CatalogItem{Kind: domain.ProductTour, ContentID: "tour-1", ProductID: "t1"}, nil)
		billing.On("Purchase", mock.Anything, "t1").
			Return(domain.PurchaseSuccess, nil)

		uc, shopUC := newBillingForTest(t, billing, content)

		resp, err := uc.Purchase(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, domain.PurchaseSuccess, resp.Outcome)
		assert.Equal(t, domain.ProductTour, resp.Kind)
		assert.True(t, shopUC.HasPurchasedTour("t1"))
	})

	t.Run("cancelled purchase leaves state untouched", func(t *testing.T) {
		billing := new(mockBillingRepo)
		content := new(mockContentRepo)

		content.On("FindByProductID", mock.Anything, "g1").
			Return(&domain.CatalogItem{Kind: domain.ProductGuide, ContentID: "guide-1", ProductID: "g1"}, nil)
		billing.On("Purchase", mock.Anything, "g1").
			Return(domain.PurchaseCancelled, nil)

		uc, shopUC := newBillingForTest(t, billing, content)

		resp, err := uc.Purchase(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, domain.PurchaseCancelled, resp.Outcome)
		assert.False(t, shopUC.HasPurchasedGuide("g1"))
	})

	t.Run("premium purchase flips premium flag", func(t *testing.T) {
		billing := new(mockBillingRepo)
		content := new(mockContentRepo)

		billing.On("Purchase", mock.Anything, "premium_yearly").
			Return(domain.PurchaseSuccess, nil)

		uc, shopUC := newBillingForTest(t, billing, content)

		resp, err := uc.Purchase(ctx, "premium_yearly")
		require.NoError(t, err)
		assert.Equal(t, domain.ProductPremium, resp.Kind)
		assert.True(t, shopUC.IsPremium())
		content.AssertNotCalled(t, "FindByProductID")
	})

	t.Run("unknown product", func(t *testing.T) {
		billing := new(mockBillingRepo)
		content := new(mockContentRepo)

		content.On("FindByProductID", mock.Anything, "nope").
			Return(nil, assert.AnError)

		uc, _ := newBillingForTest(t, billing, content)

		_, err := uc.Purchase(ctx, "nope")
		assert.Error(t, err)
		billing.AssertNotCalled(t, "Purchase")
	})
}

func TestBillingUseCase_Restore(t *testing.T) {
	ctx := context.Background()

	billing := new(mockBillingRepo)
	content := new(mockContentRepo)

	billing.On("OwnedProducts", mock.Anything).
		Return([]string{"premium_yearly", "t1", "g1", "gone_product"}, nil)
	content.On("FindByProductIDs", mock.Anything, []string{"t1", "g1", "gone_product"}).
		Return([]domain.CatalogItem{
			{Kind: domain.ProductTour, ContentID: "tour-1", ProductID: "t1"},
			{Kind: domain.ProductGuide, ContentID: "guide-1", ProductID: "g1"},
			// gone_product исчез из каталога и молча пропущен
		}, nil)

	uc, shopUC := newBillingForTest(t, billing, content)

	resp, err := uc.Restore(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"t1"}, resp.RestoredTours)
	assert.Equal(t, []string{"g1"}, resp.RestoredGuides)
	assert.True(t, shopUC.IsPremium())
	assert.True(t, shopUC.HasPurchasedGuide("g1"))
}

func TestBillingUseCase_ListTours(t *testing.T) {
	ctx := context.Background()

	billing := new(mockBillingRepo)
	content := new(mockContentRepo)

	content.On("ListTours", mock.Anything).Return([]domain.Tour{
		{ID: "tour-1", ProductID: "t1", Title: "Old Town Coffee Walk"},
		{ID: "tour-2", ProductID: "t2", Title: "Specialty Roasters Tour"},
	}, nil)

	uc, shopUC := newBillingForTest(t, billing, content)
	require.NoError(t, shopUC.RecordTourPurchase(ctx, "t1"))

	tours, err := uc.ListTours(ctx)
	require.NoError(t, err)
	require.Len(t, tours, 2)
	assert.True(t, tours[0].Unlocked)
	assert.False(t, tours[1].Unlocked)

	// premium открывает весь каталог туров
	require.NoError(t, shopUC.SetPremium(ctx, true))

	tours, err = uc.ListTours(ctx)
	require.NoError(t, err)
	assert.True(t, tours[1].Unlocked)
}

func TestBillingUseCase_ListGuides(t *testing.T) {
	ctx := context.Background()

	billing := new(mockBillingRepo)
	content := new(mockContentRepo)

	content.On("ListGuides", mock.Anything).Return([]domain.Guide{
		{ID: "guide-1", ProductID: "g1", Title: "Barcelona Coffee Guide"},
		{ID: "guide-2", ProductID: "g2", Title: "Lisbon Coffee Guide"},
	}, nil)

	uc, shopUC := newBillingForTest(t, billing, content)
	require.NoError(t, shopUC.RecordGuidePurchase(ctx, "g1"))
	// premium гиды не открывает
	require.NoError(t, shopUC.SetPremium(ctx, true))

	guides, err := uc.ListGuides(ctx)
	require.NoError(t, err)
	require.Len(t, guides, 2)
	assert.True(t, guides[0].Unlocked)
	assert.False(t, guides[1].Unlocked)
}
