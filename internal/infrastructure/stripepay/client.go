package stripepay

import (
	"context"
	"fmt"

	"github.com/coffee-compass/internal/config"
	"github.com/coffee-compass/internal/domain"
	"github.com/coffee-compass/internal/domain/repository"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
	"github.com/stripe/stripe-go/v83/price"
	"go.uber.org/zap"
)

type client struct {
	customerID string
	logger     *zap.Logger
}

// NewBillingClient создает платёжный клиент поверх Stripe
func NewBillingClient(cfg *config.BillingConfig, logger *zap.Logger) repository.BillingRepository {
	stripe.Key = cfg.StripeAPIKey
	return &client{
		customerID: cfg.StripeCustomerID,
		logger:     logger,
	}
}

// Purchase выполняет покупку продукта: ищет активную цену продукта и
// создаёт payment intent с product id в метаданных. Исход маппится в
// {success, cancelled, pending}; подтверждение оплаты продолжается на
// устройстве, поэтому незавершённые статусы - это pending, не ошибка.
func (c *client) Purchase(ctx context.Context, productID string) (domain.PurchaseOutcome, error) {
	priceParams := &stripe.PriceListParams{
		Product: stripe.String(productID),
		Active:  stripe.Bool(true),
	}
	priceParams.Context = ctx
	priceParams.Limit = stripe.Int64(1)

	iter := price.List(priceParams)
	if !iter.Next() {
		if err := iter.Err(); err != nil {
			return domain.PurchaseCancelled, fmt.Errorf("failed to list prices: %w", err)
		}
		return domain.PurchaseCancelled, fmt.Errorf("no active price for product %s", productID)
	}
	p := iter.Price()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.UnitAmount),
		Currency: stripe.String(string(p.Currency)),
		Metadata: map[string]string{
			"product_id": productID,
		},
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if c.customerID != "" {
		params.Customer = stripe.String(c.customerID)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		c.logger.Error("Failed to create payment intent",
			zap.String("product_id", productID),
			zap.Error(err))
		return domain.PurchaseCancelled, fmt.Errorf("failed to create payment intent: %w", err)
	}

	c.logger.Info("Payment intent created",
		zap.String("product_id", productID),
		zap.String("payment_intent_id", pi.ID),
		zap.String("status", string(pi.Status)))

	return mapOutcome(pi.Status), nil
}

// OwnedProducts возвращает product id всех успешно оплаченных покупок
func (c *client) OwnedProducts(ctx context.Context) ([]string, error) {
	params := &stripe.PaymentIntentListParams{}
	params.Context = ctx
	if c.customerID != "" {
		params.Customer = stripe.String(c.customerID)
	}

	owned := make([]string, 0)
	seen := make(map[string]bool)

	iter := paymentintent.List(params)
	for iter.Next() {
		pi := iter.PaymentIntent()
		if pi.Status != stripe.PaymentIntentStatusSucceeded {
			continue
		}
		productID := pi.Metadata["product_id"]
		if productID == "" || seen[productID] {
			continue
		}
		seen[productID] = true
		owned = append(owned, productID)
	}
	if err := iter.Err(); err != nil {
		c.logger.Error("Failed to list payment intents", zap.Error(err))
		return nil, fmt.Errorf("failed to list payment intents: %w", err)
	}

	return owned, nil
}

func mapOutcome(status stripe.PaymentIntentStatus) domain.PurchaseOutcome {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return domain.PurchaseSuccess
	case stripe.PaymentIntentStatusCanceled:
		return domain.PurchaseCancelled
	default:
		return domain.PurchasePending
	}
}
