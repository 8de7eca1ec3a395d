package dto

// SearchShopsRequest - запрос поиска кофеен вокруг точки.
// Нулевые координаты валидны (экватор/гринвич), поэтому required нет.
type SearchShopsRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// ShopIDRequest - операция над кандидатом по его id
type ShopIDRequest struct {
	ShopID string `json:"shop_id" validate:"required"`
}

// CheckinRequest - чек-ин по имени заведения
type CheckinRequest struct {
	ShopName string `json:"shop_name" validate:"required,min=1,max=200"`
}

// RateShopRequest - пользовательская оценка заведения
type RateShopRequest struct {
	ShopID string  `json:"shop_id" validate:"required"`
	Rating float64 `json:"rating" validate:"required,min=0,max=5"`
}

// SetPremiumRequest - включение/выключение premium-статуса
type SetPremiumRequest struct {
	Active bool `json:"active"`
}

// PurchaseRequest - покупка продукта каталога по платёжному product id
type PurchaseRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// NearbyRequest - запрос рекомендации вокруг точки
type NearbyRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}
