package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/app/configs")

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Allow common env vars without APP_ prefix for Docker/VM deploys
	viper.BindEnv("http.port", "HTTP_PORT", "APP_HTTP_PORT")
	viper.BindEnv("database.url", "DATABASE_URL", "APP_DATABASE_URL")
	viper.BindEnv("redis.url", "REDIS_URL", "APP_REDIS_URL")
	viper.BindEnv("queue.url", "QUEUE_URL", "NATS_URL", "APP_QUEUE_URL")
	viper.BindEnv("jwt.secret", "JWT_SECRET", "APP_JWT_SECRET")
	viper.BindEnv("registry.api_key", "EIPA_API_KEY", "APP_REGISTRY_API_KEY")
	viper.BindEnv("email.sendgrid.api_key", "SENDGRID_API_KEY")
	viper.BindEnv("payment.stripe_secret_key", "STRIPE_SECRET_KEY")
	viper.BindEnv("vault.address", "VAULT_ADDR")
	viper.BindEnv("vault.token", "VAULT_TOKEN")
	viper.BindEnv("app.environment", "APP_ENVIRONMENT")
	viper.BindEnv("logging.level", "LOG_LEVEL")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; env vars and defaults cover it.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("app.name", "ev-backend")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("http.port", 8080)
	viper.SetDefault("database.auto_migrate", true)
	viper.SetDefault("database.seed", true)
	viper.SetDefault("queue.driver", "nats")
	viper.SetDefault("queue.url", "nats://localhost:4222")
	viper.SetDefault("redis.url", "redis://localhost:6379/0")
	viper.SetDefault("registry.poll_interval", "30s")
	viper.SetDefault("email.provider", "smtp")
	viper.SetDefault("email.from", "alerts@karta-lodzianina.pl")
	viper.SetDefault("email.smtp.host", "localhost")
	viper.SetDefault("email.smtp.port", 1025)
	viper.SetDefault("logging.level", "info")
}
