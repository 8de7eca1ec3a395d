package domain

import (
	"strconv"
	"strings"
)

// Coordinate - географическая точка
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Shop - кофейня-кандидат из поисковой выдачи
//
// Идентичность выводится из содержимого (имя + координаты), а не генерируется:
// два результата одного и того же заведения из разных под-запросов сойдутся
// на одном id в любом месте пайплайна. Переименование или перенос заведения
// меняет id - избранное и история по старому id не мигрируются.
type Shop struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Distance float64 `json:"distance_km"` // от точки последнего принятого поиска
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// NewShop создает Shop с производным id
func NewShop(name string, lat, lon float64, rating, distanceKm float64, address string) Shop {
	return Shop{
		ID:       DeriveShopID(name, lat, lon),
		Name:     name,
		Rating:   rating,
		Distance: distanceKm,
		Address:  address,
		Lat:      lat,
		Lon:      lon,
	}
}

// DeriveShopID - чистая функция от (lowercase(name), lat, lon).
// Пробелы заменяются подчёркиваниями, координаты печатаются минимальной
// десятичной записью, чтобы одинаковые входы всегда давали одинаковый id.
func DeriveShopID(name string, lat, lon float64) string {
	n := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	return n + "-" + formatCoord(lat) + "-" + formatCoord(lon)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ShopMetadata - персистентные метаданные заведения, ключ - производный id.
// Заменяет глобальный синглтон исходного приложения: хранилище внедряется
// явно и живёт в Preferences Store под собственным ключом.
type ShopMetadata struct {
	Rating float64 `json:"rating"`
	Liked  bool    `json:"liked,omitempty"`
}
