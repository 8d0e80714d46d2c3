package config

import "time"

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Queue     QueueConfig     `mapstructure:"queue"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Registry  RegistryConfig  `mapstructure:"registry"`
	Email     EmailConfig     `mapstructure:"email"`
	Payment   PaymentConfig   `mapstructure:"payment"`
	Vault     VaultConfig     `mapstructure:"vault"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type DatabaseConfig struct {
	URL         string `mapstructure:"url"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
	Seed        bool   `mapstructure:"seed"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

// QueueConfig selects the message broker. Driver is "nats" (default) or
// "rabbitmq".
type QueueConfig struct {
	Driver string `mapstructure:"driver"`
	URL    string `mapstructure:"url"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// RegistryConfig points at the EIPA availability registry.
type RegistryConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	APIKey       string        `mapstructure:"api_key"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// EmailConfig selects the alert mail provider: "sendgrid" or "smtp"
// (Mailhog in development).
type EmailConfig struct {
	Provider string     `mapstructure:"provider"`
	From     string     `mapstructure:"from"`
	SendGrid SendGrid   `mapstructure:"sendgrid"`
	SMTP     SMTPConfig `mapstructure:"smtp"`
}

type SendGrid struct {
	APIKey string `mapstructure:"api_key"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type PaymentConfig struct {
	StripeSecretKey string `mapstructure:"stripe_secret_key"`
}

type VaultConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
	Token   string `mapstructure:"token"`
}

type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	MaxAge         int      `mapstructure:"max_age"`
	Credentials    bool     `mapstructure:"credentials"`
}
