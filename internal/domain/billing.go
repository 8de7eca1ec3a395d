package domain

// PurchaseOutcome - исход покупки у платёжного провайдера
type PurchaseOutcome string

const (
	PurchaseSuccess   PurchaseOutcome = "success"
	PurchaseCancelled PurchaseOutcome = "cancelled"
	PurchasePending   PurchaseOutcome = "pending"
)

// ProductKind - вид продукта каталога
type ProductKind string

const (
	ProductTour    ProductKind = "tour"
	ProductGuide   ProductKind = "guide"
	ProductPremium ProductKind = "premium"
)
