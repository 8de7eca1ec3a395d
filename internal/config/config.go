package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	Search         SearchConfig
	Discovery      DiscoveryConfig
	Recommendation RecommendationConfig
	Billing        BillingConfig
	Log            LogConfig
	Worker         WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SearchConfig - настройки клиента внешнего поискового провайдера
type SearchConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout int // seconds
	ResultLimit    int // per-query result cap requested from the provider
}

// DiscoveryConfig - пороги throttle-гейта и фильтрации кандидатов
type DiscoveryConfig struct {
	MinSearchInterval time.Duration // минимум между принятыми поисками
	MinSearchDistance float64       // km, минимальное смещение от последнего принятого поиска
	MaxShopDistance   float64       // km, дальше этого результаты отбрасываются
	RegionRadius      float64       // km, радиус региона в под-запросах к провайдеру
}

// RecommendationConfig - пороги рекомендаций
type RecommendationConfig struct {
	NearbyRadius  float64 // km, радиус для случайной рекомендации рядом
	RouteMaxStops int     // максимум остановок в пешем маршруте
}

// BillingConfig - настройки платёжного провайдера
type BillingConfig struct {
	StripeAPIKey     string
	StripeCustomerID string
	PremiumProductID string
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled          bool
	ConsumerGroup    string
	MaxRetries       int
	MinMoveDistance  float64 // km, фильтр минимального смещения для событий позиции
	PositionStream   string
	DiscoveredStream string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Search: SearchConfig{
			BaseURL:        viper.GetString("SEARCH_BASE_URL"),
			APIKey:         viper.GetString("SEARCH_API_KEY"),
			RequestTimeout: viper.GetInt("SEARCH_REQUEST_TIMEOUT"),
			ResultLimit:    viper.GetInt("SEARCH_RESULT_LIMIT"),
		},
		Discovery: DiscoveryConfig{
			MinSearchInterval: time.Duration(viper.GetInt("DISCOVERY_MIN_INTERVAL_MS")) * time.Millisecond,
			MinSearchDistance: viper.GetFloat64("DISCOVERY_MIN_DISTANCE_KM"),
			MaxShopDistance:   viper.GetFloat64("DISCOVERY_MAX_SHOP_DISTANCE_KM"),
			RegionRadius:      viper.GetFloat64("DISCOVERY_REGION_RADIUS_KM"),
		},
		Recommendation: RecommendationConfig{
			NearbyRadius:  viper.GetFloat64("RECOMMENDATION_NEARBY_RADIUS_KM"),
			RouteMaxStops: viper.GetInt("RECOMMENDATION_ROUTE_MAX_STOPS"),
		},
		Billing: BillingConfig{
			StripeAPIKey:     viper.GetString("STRIPE_API_KEY"),
			StripeCustomerID: viper.GetString("STRIPE_CUSTOMER_ID"),
			PremiumProductID: viper.GetString("STRIPE_PREMIUM_PRODUCT_ID"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:          viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:    viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:       viper.GetInt("WORKER_MAX_RETRIES"),
			MinMoveDistance:  viper.GetFloat64("WORKER_MIN_MOVE_DISTANCE_KM"),
			PositionStream:   viper.GetString("WORKER_POSITION_STREAM"),
			DiscoveredStream: viper.GetString("WORKER_DISCOVERED_STREAM"),
		},
	}

	// Set default values if not provided
	if cfg.Search.BaseURL == "" {
		cfg.Search.BaseURL = "https://api.geoapify.com/v2"
	}
	if cfg.Search.RequestTimeout == 0 {
		cfg.Search.RequestTimeout = 10
	}
	if cfg.Search.ResultLimit == 0 {
		cfg.Search.ResultLimit = 20
	}
	if cfg.Discovery.MinSearchInterval == 0 {
		cfg.Discovery.MinSearchInterval = 2 * time.Second
	}
	if cfg.Discovery.MinSearchDistance == 0 {
		cfg.Discovery.MinSearchDistance = 0.5
	}
	if cfg.Discovery.MaxShopDistance == 0 {
		cfg.Discovery.MaxShopDistance = 30
	}
	if cfg.Discovery.RegionRadius == 0 {
		cfg.Discovery.RegionRadius = 10
	}
	if cfg.Recommendation.NearbyRadius == 0 {
		cfg.Recommendation.NearbyRadius = 10
	}
	if cfg.Recommendation.RouteMaxStops == 0 {
		cfg.Recommendation.RouteMaxStops = 3
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "position-discovery-workers"
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Worker.MinMoveDistance == 0 {
		cfg.Worker.MinMoveDistance = 0.05
	}
	if cfg.Worker.PositionStream == "" {
		cfg.Worker.PositionStream = "stream:position:updates"
	}
	if cfg.Worker.DiscoveredStream == "" {
		cfg.Worker.DiscoveredStream = "stream:shops:discovered"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// IsProduction проверяет продакшн-окружение
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Env, "production")
}
