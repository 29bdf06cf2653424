package config

import (
	"fmt"
	"time"
)

const (
	defaultMigrationsPath = "migrations/events"

	defaultDBMaxOpenConns    = 10
	defaultDBMaxIdleConns    = 2
	defaultDBConnMaxLifetime = 5 * time.Minute
	defaultDBPingTimeout     = 5 * time.Second
)

type Notifications struct {
	RabbitMQURL       string
	DatabaseURL       string
	MigrationsPath    string
	ShutdownTimeout   time.Duration
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBPingTimeout     time.Duration
}

func LoadNotifications() (Notifications, error) {
	cfg := Notifications{
		RabbitMQURL:       getEnv("RABBITMQ_URL", ""),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", defaultMigrationsPath),
		ShutdownTimeout:   defaultShutdownTimeout,
		DBMaxOpenConns:    defaultDBMaxOpenConns,
		DBMaxIdleConns:    defaultDBMaxIdleConns,
		DBConnMaxLifetime: defaultDBConnMaxLifetime,
		DBPingTimeout:     defaultDBPingTimeout,
	}

	if cfg.RabbitMQURL == "" {
		return Notifications{}, fmt.Errorf("RABBITMQ_URL is required")
	}
	if cfg.DatabaseURL == "" {
		return Notifications{}, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}
