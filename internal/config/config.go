package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the configuration for the notes service
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Clipper ClipperConfig
}

// ServerConfig holds the HTTP listener configuration
type ServerConfig struct {
	Host string
	Port int
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig holds the notes log configuration
type StoreConfig struct {
	NotesPath string
}

// ClipperConfig holds webpage clipping configuration
type ClipperConfig struct {
	RequestTimeout time.Duration
	UserAgent      string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: GetStringEnv("NOTES_HOST", "0.0.0.0"),
			Port: GetIntEnv("NOTES_PORT", 8080),
		},
		Store: StoreConfig{
			NotesPath: GetStringEnv("NOTES_FILE", "./data/notes.jsonl"),
		},
		Clipper: ClipperConfig{
			RequestTimeout: GetDurationEnv("CLIPPER_TIMEOUT", 15*time.Second),
			UserAgent:      GetStringEnv("CLIPPER_USER_AGENT", "paia-notes/1.0"),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
