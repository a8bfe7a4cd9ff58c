// Package config loads the todo configuration from YAML, .env and the environment
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backend names accepted in storage.backend
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

// ID schemes accepted in id_scheme
const (
	IDSchemeTimestamp = "timestamp"
	IDSchemeUUID      = "uuid"
)

// Config represents the application configuration
type Config struct {
	Storage Storage `yaml:"storage"`
	Log     Log     `yaml:"log"`

	// IDScheme selects how new entity IDs are generated ("timestamp" or "uuid")
	IDScheme string `yaml:"id_scheme"`

	// LooseReferences disables list/tag existence checks when tasks are written
	LooseReferences bool `yaml:"loose_references"`

	Theme Theme `yaml:"theme"`
}

// Storage selects and configures the persistence backend
type Storage struct {
	Backend    string         `yaml:"backend"`
	SQLitePath string         `yaml:"sqlite_path"` // Empty means ~/.todo/todo.db
	Redis      RedisConfig    `yaml:"redis"`
	Mongo      MongoConfig    `yaml:"mongo"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

// RedisConfig configures the redis backend
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// MongoConfig configures the mongo backend
type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// PostgresConfig configures the postgres backend
type PostgresConfig struct {
	DSN   string `yaml:"dsn"`
	Table string `yaml:"table"`
}

// Log configures the file logger
type Log struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TODO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TODO_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme Theme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Theme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// A .env file in the working directory is read first; environment
// variables override file values. Returns defaults if no file exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, err
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	loadThemeFile(&config)
	config.applyEnv()
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todo", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todo", "config.yaml"), nil
}

// applyEnv overrides file values with TODO_* environment variables
func (c *Config) applyEnv() {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&c.Storage.Backend, "TODO_BACKEND")
	setString(&c.Storage.SQLitePath, "TODO_SQLITE_PATH")
	setString(&c.Storage.Redis.Addr, "TODO_REDIS_ADDR")
	setString(&c.Storage.Redis.Password, "TODO_REDIS_PASSWORD")
	setString(&c.Storage.Mongo.URI, "TODO_MONGO_URI")
	setString(&c.Storage.Postgres.DSN, "TODO_POSTGRES_DSN")
	setString(&c.Log.Level, "TODO_LOG_LEVEL")
	setString(&c.IDScheme, "TODO_ID_SCHEME")

	if v := os.Getenv("TODO_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Storage.Redis.DB = n
		}
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.Redis.Addr == "" {
		c.Storage.Redis.Addr = "localhost:6379"
	}
	if c.Storage.Redis.Prefix == "" {
		c.Storage.Redis.Prefix = "todo:"
	}
	if c.Storage.Mongo.URI == "" {
		c.Storage.Mongo.URI = "mongodb://localhost:27017"
	}
	if c.Storage.Mongo.Database == "" {
		c.Storage.Mongo.Database = "todo"
	}
	if c.Storage.Mongo.Collection == "" {
		c.Storage.Mongo.Collection = "kv"
	}
	if c.Storage.Postgres.Table == "" {
		c.Storage.Postgres.Table = "todo_kv"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.IDScheme == "" {
		c.IDScheme = IDSchemeTimestamp
	}
	c.Theme.ApplyDefaults()
}
