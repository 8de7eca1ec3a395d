package geoapify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coffee-compass/internal/config"
	"github.com/coffee-compass/internal/domain"
	"github.com/coffee-compass/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	resultLimit int
	logger      *zap.Logger
}

// NewPlaceSearchClient создает клиент Geoapify Places API
func NewPlaceSearchClient(cfg *config.SearchConfig, logger *zap.Logger) repository.PlaceSearchRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		resultLimit: cfg.ResultLimit,
		logger:      logger,
	}
}

// featureCollection - GeoJSON-ответ Geoapify Places
type featureCollection struct {
	Features []struct {
		Properties struct {
			Name       string   `json:"name"`
			Lat        float64  `json:"lat"`
			Lon        float64  `json:"lon"`
			Formatted  string   `json:"formatted"`
			Categories []string `json:"categories"`
			Rating     *float64 `json:"rating,omitempty"`
		} `json:"properties"`
	} `json:"features"`
}

// SearchText ищет места по свободному тексту в регионе
func (c *client) SearchText(ctx context.Context, region domain.SearchRegion, query string) ([]domain.Place, error) {
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	params := c.regionParams(region)
	params.Set("name", query)

	return c.doSearch(ctx, params)
}

// SearchCategory ищет места по категориям таксономии провайдера в регионе
func (c *client) SearchCategory(ctx context.Context, region domain.SearchRegion, categories []string) ([]domain.Place, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("categories cannot be empty")
	}

	params := c.regionParams(region)
	params.Set("categories", strings.Join(categories, ","))

	return c.doSearch(ctx, params)
}

// regionParams формирует общие параметры запроса для региона поиска
func (c *client) regionParams(region domain.SearchRegion) url.Values {
	params := url.Values{}
	radiusMeters := int(region.RadiusKm * 1000)
	params.Set("filter", fmt.Sprintf("circle:%f,%f,%d",
		region.Center.Lon, region.Center.Lat, radiusMeters))
	params.Set("limit", fmt.Sprintf("%d", c.resultLimit))
	params.Set("apiKey", c.apiKey)
	return params
}

func (c *client) doSearch(ctx context.Context, params url.Values) ([]domain.Place, error) {
	requestURL := fmt.Sprintf("%s/places?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling Geoapify Places API",
		zap.String("url", requestURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geoapify API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("geoapify API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var fc featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	places := make([]domain.Place, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Properties.Name == "" {
			continue // безымянные объекты бесполезны для кандидатов
		}

		category := ""
		if len(f.Properties.Categories) > 0 {
			category = f.Properties.Categories[0]
		}

		places = append(places, domain.Place{
			Name:     f.Properties.Name,
			Lat:      f.Properties.Lat,
			Lon:      f.Properties.Lon,
			Category: category,
			Address:  f.Properties.Formatted,
			Rating:   f.Properties.Rating,
		})
	}

	c.logger.Debug("Geoapify Places API call successful",
		zap.Int("place_count", len(places)))

	return places, nil
}
