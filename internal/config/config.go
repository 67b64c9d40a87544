package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const appDir = ".tutordesk"

// Config holds user preferences
type Config struct {
	ConfirmDelete  bool `yaml:"confirm_delete" json:"confirm_delete"`     // Ask before removing a client or task
	SeedSampleData bool `yaml:"seed_sample_data" json:"seed_sample_data"` // Start each session with demo clients and a task

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	logPath := ""
	if dir, err := Dir(); err == nil {
		logPath = filepath.Join(dir, "logs", "tutordesk.log")
	}

	return &Config{
		ConfirmDelete:  true,
		SeedSampleData: getEnvBool("TUTORDESK_SEED", true),
		LogLevel:       getEnv("TUTORDESK_LOG_LEVEL", "INFO"),
		LogFile:        getEnv("TUTORDESK_LOG_FILE", logPath),
		LogConsole:     getEnvBool("TUTORDESK_LOG_CONSOLE", false),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// Dir returns ~/.tutordesk
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDir), nil
}

// Path returns ~/.tutordesk/config.yaml
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load loads config from ~/.tutordesk/config.yaml
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads config from path, returning defaults when it does not exist
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves config to ~/.tutordesk/config.yaml
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config as YAML, creating parent directories
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
