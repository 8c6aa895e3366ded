package config

import (
	"os"
	"strconv"
	"time"

	"ifcfg-agent/internal/domain/errors"
)

// Config holds the agent configuration.
type Config struct {
	Database DatabaseConfig
	Agent    AgentConfig
	Health   HealthConfig
}

// DatabaseConfig holds the declaration database configuration. Only
// used in daemon mode.
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// AgentConfig holds the agent behaviour configuration.
type AgentConfig struct {
	NodeName        string
	PollInterval    time.Duration
	MaxPollInterval time.Duration
	CommandTimeout  time.Duration
	BackupDirectory string
}

// HealthConfig holds the health endpoint configuration.
type HealthConfig struct {
	Port string
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	Load() (*Config, error)
}

// EnvironmentConfigLoader loads configuration from environment
// variables.
type EnvironmentConfigLoader struct{}

// NewEnvironmentConfigLoader creates a new EnvironmentConfigLoader.
func NewEnvironmentConfigLoader() ConfigLoader {
	return &EnvironmentConfigLoader{}
}

// Load reads configuration from the environment, applying defaults.
func (l *EnvironmentConfigLoader) Load() (*Config, error) {
	hostname, _ := os.Hostname()

	config := &Config{
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			User:         getEnvOrDefault("DB_USER", "root"),
			Password:     getEnvOrDefault("DB_PASSWORD", ""),
			Database:     getEnvOrDefault("DB_NAME", "ifcfg"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvDurationOrDefault("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Agent: AgentConfig{
			NodeName:        getEnvOrDefault("NODE_NAME", hostname),
			PollInterval:    getEnvDurationOrDefault("POLL_INTERVAL", 30*time.Second),
			MaxPollInterval: getEnvDurationOrDefault("MAX_POLL_INTERVAL", 5*time.Minute),
			CommandTimeout:  getEnvDurationOrDefault("COMMAND_TIMEOUT", 30*time.Second),
			BackupDirectory: getEnvOrDefault("BACKUP_DIR", "/var/lib/ifcfg-agent/backups"),
		},
		Health: HealthConfig{
			Port: getEnvOrDefault("HEALTH_PORT", "8080"),
		},
	}

	if err := l.validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks the configuration.
func (l *EnvironmentConfigLoader) validate(config *Config) error {
	if config.Database.Host == "" {
		return errors.NewValidationError("database host not configured", nil)
	}
	if config.Database.Port == "" {
		return errors.NewValidationError("database port not configured", nil)
	}
	if config.Database.Database == "" {
		return errors.NewValidationError("database name not configured", nil)
	}

	if config.Agent.NodeName == "" {
		return errors.NewValidationError("node name not configured", nil)
	}
	if config.Agent.PollInterval <= 0 {
		return errors.NewValidationError("invalid polling interval", nil)
	}
	if config.Agent.MaxPollInterval < config.Agent.PollInterval {
		return errors.NewValidationError("max polling interval smaller than base interval", nil)
	}

	if config.Health.Port == "" {
		return errors.NewValidationError("health check port not configured", nil)
	}

	return nil
}

// Environment variable helpers

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
