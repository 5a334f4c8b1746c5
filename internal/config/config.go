package config

import "github.com/spf13/viper"

// DefaultJWTSecret is the fallback signing key used when JWT_SECRET is not
// set. It exists only so the server can boot in development; main logs a
// warning when it is in effect.
const DefaultJWTSecret = "dev-secret-change-me"

// Config holds all process configuration, loaded once at startup and passed
// explicitly to the components that need it.
type Config struct {
	AppPort        string
	DatabaseDriver string // "sqlite" or "postgres"
	DatabaseDSN    string
	JWTSecret      string
	RabbitMQURL    string // empty disables event publishing
}

// Load reads configuration from environment variables, falling back to
// development defaults.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "database.db")
	viper.SetDefault("JWT_SECRET", DefaultJWTSecret)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return &Config{
		AppPort:        viper.GetString("APP_PORT"),
		DatabaseDriver: viper.GetString("DATABASE_DRIVER"),
		DatabaseDSN:    viper.GetString("DATABASE_DSN"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		RabbitMQURL:    viper.GetString("RABBITMQ_URL"),
	}
}
