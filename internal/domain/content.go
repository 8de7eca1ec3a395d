package domain

import "time"

// Tour - платный кофейный маршрут из каталога.
// Доступен при активном premium ИЛИ при явной покупке.
type Tour struct {
	ID          string    `json:"id" db:"id"`
	ProductID   string    `json:"product_id" db:"product_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	City        string    `json:"city" db:"city"`
	PriceCents  int64     `json:"price_cents" db:"price_cents"`
	Currency    string    `json:"currency" db:"currency"`
	StopCount   int       `json:"stop_count" db:"stop_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CatalogItem - плоская запись каталога для сопоставления платёжных
// product id с контентом при покупке и restore
type CatalogItem struct {
	Kind      ProductKind `json:"kind" db:"kind"`
	ContentID string      `json:"content_id" db:"content_id"`
	ProductID string      `json:"product_id" db:"product_id"`
}

// Guide - платный гид из каталога.
// Покупается только поштучно: premium гиды НЕ открывает (осознанная асимметрия).
type Guide struct {
	ID          string    `json:"id" db:"id"`
	ProductID   string    `json:"product_id" db:"product_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	City        string    `json:"city" db:"city"`
	PriceCents  int64     `json:"price_cents" db:"price_cents"`
	Currency    string    `json:"currency" db:"currency"`
	PageCount   int       `json:"page_count" db:"page_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
