package domain

// Place - сырой результат внешнего поискового провайдера
type Place struct {
	Name     string   `json:"name"`
	Lat      float64  `json:"lat"`
	Lon      float64  `json:"lon"`
	Category string   `json:"category"`
	Address  string   `json:"address"`
	Rating   *float64 `json:"rating,omitempty"` // провайдер может не отдавать рейтинг
}

// SearchRegion - регион поиска вокруг точки
type SearchRegion struct {
	Center   Coordinate
	RadiusKm float64
}
