package geoapify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coffee-compass/internal/config"
	"github.com/coffee-compass/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_SearchText(t *testing.T) {
	logger := zap.NewNop()

	region := domain.SearchRegion{
		Center:   domain.Coordinate{Lat: 41.3851, Lon: 2.1734},
		RadiusKm: 10,
	}

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "coffee", r.URL.Query().Get("name"))
			assert.Equal(t, "test_key", r.URL.Query().Get("apiKey"))
			assert.Contains(t, r.URL.Query().Get("filter"), "circle:")

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"features": [
					{"properties": {"name": "Coffee House", "lat": 41.39, "lon": 2.18, "formatted": "Carrer de Verdi 21, Barcelona", "categories": ["catering.cafe"]}},
					{"properties": {"name": "", "lat": 41.40, "lon": 2.19, "categories": ["catering.cafe"]}},
					{"properties": {"name": "Nomad Coffee", "lat": 41.40, "lon": 2.18, "formatted": "Passatge Sert 12, Barcelona", "categories": ["catering.cafe", "catering.cafe.coffee_shop"], "rating": 4.6}}
				]
			}`))
		}))
		defer server.Close()

		cfg := &config.SearchConfig{
			BaseURL:        server.URL,
			APIKey:         "test_key",
			RequestTimeout: 10,
			ResultLimit:    20,
		}

		client := NewPlaceSearchClient(cfg, logger)

		places, err := client.SearchText(context.Background(), region, "coffee")
		require.NoError(t, err)
		// безымянный объект отброшен
		require.Len(t, places, 2)
		assert.Equal(t, "Coffee House", places[0].Name)
		assert.Equal(t, "catering.cafe", places[0].Category)
		assert.Nil(t, places[0].Rating)
		assert.Equal(t, "Nomad Coffee", places[1].Name)
		require.NotNil(t, places[1].Rating)
		assert.Equal(t, 4.6, *places[1].Rating)
	})

	t.Run("empty query", func(t *testing.T) {
		cfg := &config.SearchConfig{
			BaseURL:        "https://api.geoapify.com/v2",
			APIKey:         "test_key",
			RequestTimeout: 10,
			ResultLimit:    20,
		}

		client := NewPlaceSearchClient(cfg, logger)

		places, err := client.SearchText(context.Background(), region, "")
		assert.Error(t, err)
		assert.Nil(t, places)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("api error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"statusCode":401,"message":"Invalid apiKey"}`))
		}))
		defer server.Close()

		cfg := &config.SearchConfig{
			BaseURL:        server.URL,
			APIKey:         "bad_key",
			RequestTimeout: 10,
			ResultLimit:    20,
		}

		client := NewPlaceSearchClient(cfg, logger)

		places, err := client.SearchText(context.Background(), region, "coffee")
		assert.Error(t, err)
		assert.Nil(t, places)
		assert.Contains(t, err.Error(), "geoapify API error")
	})
}

func TestClient_SearchCategory(t *testing.T) {
	logger := zap.NewNop()

	region := domain.SearchRegion{
		Center:   domain.Coordinate{Lat: 41.3851, Lon: 2.1734},
		RadiusKm: 10,
	}

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "catering.cafe,catering.bakery", r.URL.Query().Get("categories"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"features": [
					{"properties": {"name": "Forn de Pa", "lat": 41.38, "lon": 2.17, "formatted": "Gran Via 100, Barcelona", "categories": ["catering.bakery"]}}
				]
			}`))
		}))
		defer server.Close()

		cfg := &config.SearchConfig{
			BaseURL:        server.URL,
			APIKey:         "test_key",
			RequestTimeout: 10,
			ResultLimit:    20,
		}

		client := NewPlaceSearchClient(cfg, logger)

		places, err := client.SearchCategory(context.Background(), region, []string{"catering.cafe", "catering.bakery"})
		require.NoError(t, err)
		require.Len(t, places, 1)
		assert.Equal(t, "Forn de Pa", places[0].Name)
		assert.Equal(t, "catering.bakery", places[0].Category)
	})

	t.Run("empty categories", func(t *testing.T) {
		cfg := &config.SearchConfig{
			BaseURL:        "https://api.geoapify.com/v2",
			APIKey:         "test_key",
			RequestTimeout: 10,
			ResultLimit:    20,
		}

		client := NewPlaceSearchClient(cfg, logger)

		places, err := client.SearchCategory(context.Background(), region, nil)
		assert.Error(t, err)
		assert.Nil(t, places)
		assert.Contains(t, err.Error(), "cannot be empty")
	})
}
