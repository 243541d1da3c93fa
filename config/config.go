package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort      string `mapstructure:"APP_PORT"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`
	Env          string `mapstructure:"ENV"`
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisStatsDB  int    `mapstructure:"REDIS_STATS_DB"`

	// Statistics cache TTL in seconds.
	StatsCacheTTL int `mapstructure:"STATS_CACHE_TTL"`

	// SMTP configuration for outgoing mail.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	// The account that is granted the admin role on registration.
	AdminEmail string `mapstructure:"ADMIN_EMAIL"`

	// Reminder job schedule (cron expression).
	ReminderSchedule string `mapstructure:"REMINDER_SCHEDULE"`

	// Salon staff and the shared service price list. The same table feeds
	// booking quotes and revenue reporting so the two can never drift.
	Masters       []string       `mapstructure:"MASTERS"`
	ServicePrices map[string]int `mapstructure:"SERVICE_PRICES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_STATS_DB", 0)
	viper.SetDefault("STATS_CACHE_TTL", 300)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "spa-salon")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_FROM", "Luxury Spa Salon")
	viper.SetDefault("ADMIN_EMAIL", "mia.germ888@gmail.com")
	viper.SetDefault("REMINDER_SCHEDULE", "0 9 * * *")
	viper.SetDefault("MASTERS", []string{"Лариса Павлова", "Марина Пакулова"})
	viper.SetDefault("SERVICE_PRICES", map[string]int{
		"Классический массаж":   800,
		"Лимфодренажный массаж": 1200,
		"Спортивный массаж":     1000,
		"Массаж лица":           600,
	})

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
