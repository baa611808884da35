package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DB     DBConfig
	Server ServerConfig
	Seeder SeederConfig
}

// DBType represents the storage backend type
type DBType string

const (
	DBTypeMongo  DBType = "mongo"
	DBTypeMemory DBType = "memory"
)

// DBConfig holds document store configuration
type DBConfig struct {
	Type     DBType
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	// Bounded startup retry loop
	ConnectAttempts int
	ConnectDelay    time.Duration
	// When true the process aborts if the store cannot be reached at
	// startup; otherwise it serves in degraded mode and every API call
	// answers 503.
	Required bool
}

// URI returns the connection string without credentials; auth is passed
// through client options
func (c DBConfig) URI() string {
	return fmt.Sprintf("mongodb://%s:%s", c.Host, c.Port)
}

// MigrateURL returns the database URL for golang-migrate, which needs
// the database name and credentials embedded
func (c DBConfig) MigrateURL() string {
	if c.Username != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
			url.QueryEscape(c.Username), url.QueryEscape(c.Password), c.Host, c.Port, c.Name)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", c.Host, c.Port, c.Name)
}

// IsMemory returns true if using the in-memory backend
func (c DBConfig) IsMemory() bool {
	return c.Type == DBTypeMemory
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
}

// SeederConfig holds settings for sample data import
type SeederConfig struct {
	DataDir  string
	AutoSeed bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbType := DBType(getEnv("DB_TYPE", "mongo"))
	if dbType != DBTypeMongo && dbType != DBTypeMemory {
		dbType = DBTypeMongo
	}

	config := &Config{
		DB: DBConfig{
			Type:            dbType,
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "27017"),
			Username:        getEnv("DB_USERNAME", ""),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "travel-sample"),
			ConnectAttempts: getEnvAsInt("DB_CONNECT_ATTEMPTS", 3),
			ConnectDelay:    time.Duration(getEnvAsInt("DB_CONNECT_DELAY_SECONDS", 2)) * time.Second,
			Required:        getEnvAsBool("DB_REQUIRED", false),
		},
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "8080"),
		},
		Seeder: SeederConfig{
			DataDir:  getEnv("SEEDER_DATA_DIR", "data"),
			AutoSeed: getEnvAsBool("AUTO_SEED", true),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
