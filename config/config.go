package config

import (
	"log"
	"time"

	"studyhub/utils"
)

// AuthMode selects how the request authenticator behaves. The bypass path
// exists for local development only and is refused in production.
type AuthMode int

const (
	AuthEnforced AuthMode = iota
	AuthBypassed
)

type DatabaseConfig struct {
	URI             string
	DatabaseName    string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	RetryWrites     bool
}

type Config struct {
	Port           string
	Env            string
	Database       DatabaseConfig
	JWTSecret      string
	JWTExpiration  time.Duration
	RefreshExpiry  time.Duration
	AuthMode       AuthMode
	AllowedOrigins []string
	RedisURL       string
	SessionTTL     time.Duration
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load builds the configuration from the environment. Missing required
// values are fatal in production and defaulted everywhere else.
func Load() *Config {
	cfg := &Config{
		Port: utils.GetEnvAsString("PORT", "8080"),
		Env:  utils.GetEnvAsString("GO_ENV", "development"),
		Database: DatabaseConfig{
			URI:             utils.GetEnvAsString("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:    utils.GetEnvAsString("MONGO_DB", "studyhub"),
			MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
			MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
			MaxConnIdleTime: time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
			RetryWrites:     utils.GetEnvAsBool("MONGO_RETRY_WRITES", true),
		},
		JWTSecret:      utils.GetEnvAsString("JWT_SECRET", ""),
		JWTExpiration:  time.Duration(utils.GetEnvAsInt64("JWT_EXPIRATION_TIME", 3600)) * time.Second,
		RefreshExpiry:  time.Duration(utils.GetEnvAsInt64("REFRESH_TOKEN_EXPIRATION_TIME", 604800)) * time.Second,
		AllowedOrigins: utils.GetEnvAsStringSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		RedisURL:       utils.GetEnvAsString("REDIS_URL", ""),
		SessionTTL:     utils.GetEnvAsDuration("SESSION_DURATION", 720*time.Hour),
	}

	if utils.GetEnvAsBool("DISABLE_AUTH", false) {
		cfg.AuthMode = AuthBypassed
	}

	if cfg.IsProduction() {
		if utils.GetEnvAsString("MONGODB_URI", "") == "" {
			log.Fatal("MONGODB_URI must be set in production")
		}
		if cfg.JWTSecret == "" {
			log.Fatal("JWT_SECRET must be set in production")
		}
		if cfg.AuthMode == AuthBypassed {
			log.Fatal("DISABLE_AUTH cannot be enabled in production")
		}
	}

	return cfg
}
