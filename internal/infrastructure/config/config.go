package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// InsecureDefaultJWTSecret is the fallback signing secret used when
// JWT_SECRET is unset. Deployments must override it; main logs a warning
// whenever it is in effect.
const InsecureDefaultJWTSecret = "your-default-secret"

type Config struct {
	Port      string `env:"PORT,       default=4000"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=auth-db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig caps the /api/auth group per client address.
type RateLimitConfig struct {
	Max    int64 `env:"RATE_LIMIT_MAX,            default=100"`
	Window int   `env:"RATE_LIMIT_WINDOW_MINUTES, default=15"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// EffectiveJWTSecret returns the configured signing secret, falling back to
// the insecure default. The second return reports whether the fallback was
// used.
func (c *Config) EffectiveJWTSecret() (string, bool) {
	if c.JWTSecret == "" {
		return InsecureDefaultJWTSecret, true
	}
	return c.JWTSecret, false
}
