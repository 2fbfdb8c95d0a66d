package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis
	RedisAddr string `mapstructure:"REDIS_ADDR"`

	// Kafka
	KafkaBroker string `mapstructure:"KAFKA_BROKER"`

	// Auth
	JWTSecret        string `mapstructure:"JWT_SECRET"`
	JWTAccessMinutes int    `mapstructure:"JWT_ACCESS_MINUTES"`
	JWTRefreshHours  int    `mapstructure:"JWT_REFRESH_HOURS"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_URL", "host=localhost user=sales password=sales dbname=sales_report port=5432 sslmode=disable")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("KAFKA_BROKER", "localhost:9092")
	viper.SetDefault("JWT_ACCESS_MINUTES", 60)
	viper.SetDefault("JWT_REFRESH_HOURS", 168)

	// Optional .env file for local development, ignored when missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
