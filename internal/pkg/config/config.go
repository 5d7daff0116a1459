package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=3000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AllowedOrigins is the CORS allow-list. Requests from other origins
	// are rejected; credentials are permitted for listed origins only.
	// Semicolon-separated: commas would collide with the tag syntax.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, delimiter=;, default=https://cosbuyai.onrender.com;https://cosbuyai.com;http://localhost:3000"`

	Mongo  MongoConfig
	Redis  RedisConfig
	OpenAI OpenAIConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGODB_URI,   default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=cosbuy"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`

	// CacheTTL bounds how long a completion stays reusable for an
	// identical query.
	CacheTTL time.Duration `env:"COMPLETION_CACHE_TTL, default=1h"`
}

type OpenAIConfig struct {
	APIKey      string        `env:"OPENAI_API_KEY"`
	BaseURL     string        `env:"OPENAI_BASE_URL,     default=https://api.openai.com"`
	Model       string        `env:"OPENAI_MODEL,        default=gpt-3.5-turbo"`
	MaxTokens   int           `env:"OPENAI_MAX_TOKENS,   default=1000"`
	Temperature float64       `env:"OPENAI_TEMPERATURE,  default=0.7"`
	Timeout     time.Duration `env:"OPENAI_TIMEOUT,      default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
