package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveShopID(t *testing.T) {
	t.Run("pure function of name and coordinates", func(t *testing.T) {
		a := DeriveShopID("Coffee House", 41.39, 2.18)
		b := DeriveShopID("Coffee House", 41.39, 2.18)
		assert.Equal(t, a, b)
	})

	t.Run("lowercases and replaces spaces", func(t *testing.T) {
		id := DeriveShopID("Nomad Coffee Lab", 41.4, 2.18)
		assert.Equal(t, "nomad_coffee_lab-41.4-2.18", id)
	})

	t.Run("identity changes with coordinates", func(t *testing.T) {
		a := DeriveShopID("Coffee House", 41.39, 2.18)
		b := DeriveShopID("Coffee House", 41.40, 2.18)
		assert.NotEqual(t, a, b)
	})

	t.Run("case-insensitive name collision", func(t *testing.T) {
		a := DeriveShopID("COFFEE HOUSE", 41.39, 2.18)
		b := DeriveShopID("coffee house", 41.39, 2.18)
		assert.Equal(t, a, b)
	})
}

func TestNewShop(t *testing.T) {
	shop := NewShop("Coffee House", 41.39, 2.18, 4.5, 1.2, "Carrer de Verdi 21")

	assert.Equal(t, DeriveShopID("Coffee House", 41.39, 2.18), shop.ID)
	assert.Equal(t, "Coffee House", shop.Name)
	assert.Equal(t, 4.5, shop.Rating)
	assert.Equal(t, 1.2, shop.Distance)
}
