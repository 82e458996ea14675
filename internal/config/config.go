package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Library   LibraryConfig   `yaml:"library"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds access token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"readlog"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
}

// CatalogConfig holds settings of the external book catalog (Google Books).
type CatalogConfig struct {
	BaseURL              string        `yaml:"base_url"               env:"CATALOG_BASE_URL"               env-default:"https://www.googleapis.com/books/v1/volumes"`
	APIKey               string        `yaml:"api_key"                env:"CATALOG_API_KEY"`
	Timeout              time.Duration `yaml:"timeout"                env:"CATALOG_TIMEOUT"                env-default:"10s"`
	MaxRetries           uint64        `yaml:"max_retries"            env:"CATALOG_MAX_RETRIES"            env-default:"2"`
	RetryInitialInterval time.Duration `yaml:"retry_initial_interval" env:"CATALOG_RETRY_INITIAL_INTERVAL" env-default:"300ms"`
	BreakerFailures      uint32        `yaml:"breaker_failures"       env:"CATALOG_BREAKER_FAILURES"       env-default:"5"`
	BreakerTimeout       time.Duration `yaml:"breaker_timeout"        env:"CATALOG_BREAKER_TIMEOUT"        env-default:"30s"`
	DefaultMaxResults    int           `yaml:"default_max_results"    env:"CATALOG_DEFAULT_MAX_RESULTS"    env-default:"20"`
}

// LibraryConfig holds user library settings.
type LibraryConfig struct {
	RecommendationGenres     int `yaml:"recommendation_genres"      env:"LIBRARY_RECOMMENDATION_GENRES"      env-default:"3"`
	RecommendationsPerGenre  int `yaml:"recommendations_per_genre"  env:"LIBRARY_RECOMMENDATIONS_PER_GENRE"  env-default:"2"`
	RecommendationsMax       int `yaml:"recommendations_max"        env:"LIBRARY_RECOMMENDATIONS_MAX"        env-default:"6"`
	RecommendationMinRating  int `yaml:"recommendation_min_rating"  env:"LIBRARY_RECOMMENDATION_MIN_RATING"  env-default:"4"`
	RecommendationSearchSize int `yaml:"recommendation_search_size" env:"LIBRARY_RECOMMENDATION_SEARCH_SIZE" env-default:"5"`
	StatsTopGenres           int `yaml:"stats_top_genres"           env:"LIBRARY_STATS_TOP_GENRES"           env-default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"120"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"   env-default:"20"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}
