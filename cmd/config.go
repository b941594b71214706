package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"tailor/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort             = "8080"
	defaultOrderChangedTopic    = "orders.status-changed"
	defaultDeadlineReminderCron = "0 0 * * * *"
	defaultDeadlineReminderDays = 3
)

type Config struct {
	AppEnv                 string
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	TracerHost             string
	LogPath                string
	LogLevel               string
	DeadlineReminderCron   string
	DeadlineReminderDays   int
	ShutdownTimeout        time.Duration
}

// LoadConfig reads folder/.env, then folder/.<APP_ENV>.env on top of it.
// Missing files are skipped and variables already set in the process
// environment always win.
func LoadConfig(folder string) (Config, error) {
	if err := loadEnvFiles(folder); err != nil {
		return Config{}, err
	}
	return configFromEnv(os.Getenv)
}

func loadEnvFiles(folder string) error {
	preset := make(map[string]bool)
	for _, key := range envKeys() {
		if _, ok := os.LookupEnv(key); ok {
			preset[key] = true
		}
	}

	base := filepath.Join(folder, ".env")
	if err := godotenv.Load(base); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", base, err)
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		return nil
	}

	overridePath := filepath.Join(folder, "."+env+".env")
	overrides, err := godotenv.Read(overridePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", overridePath, err)
	}
	for key, value := range overrides {
		if preset[key] {
			continue
		}
		if err = os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}

func envKeys() []string {
	return []string{
		"APP_ENV", "HTTP_PORT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"KAFKA_HOST", "KAFKA_ORDER_CHANGED_TOPIC", "TRACER_HOST",
		"LOG_PATH", "LOG_LEVEL",
		"DEADLINE_REMINDER_CRON", "DEADLINE_REMINDER_DAYS", "SHUTDOWN_TIMEOUT",
	}
}

func configFromEnv(getenv func(string) string) (Config, error) {
	or := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		AppEnv:                 getenv("APP_ENV"),
		HTTPPort:               or("HTTP_PORT", defaultHTTPPort),
		DBHost:                 or("DB_HOST", "localhost"),
		DBPort:                 or("DB_PORT", "5432"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              or("DB_SSLMODE", "disable"),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: or("KAFKA_ORDER_CHANGED_TOPIC", defaultOrderChangedTopic),
		TracerHost:             getenv("TRACER_HOST"),
		LogPath:                getenv("LOG_PATH"),
		LogLevel:               or("LOG_LEVEL", "info"),
		DeadlineReminderCron:   or("DEADLINE_REMINDER_CRON", defaultDeadlineReminderCron),
		DeadlineReminderDays:   defaultDeadlineReminderDays,
		ShutdownTimeout:        10 * time.Second,
	}

	if raw := getenv("DEADLINE_REMINDER_DAYS"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("DEADLINE_REMINDER_DAYS: %w", err)
		}
		config.DeadlineReminderDays = days
	}
	if raw := getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		config.ShutdownTimeout = timeout
	}

	return config, nil
}

// DB returns the relational store connection settings.
func (c Config) DB() postgres.ConnConfig {
	return postgres.ConnConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}
