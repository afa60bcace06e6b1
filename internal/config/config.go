package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
	UserName string `yaml:"user_name"`

	StoreDriver string `yaml:"store_driver"`
	StorePath   string `yaml:"store_path"`

	DBHost     string `yaml:"db_host"`
	DBPort     int    `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`

	GroqAPIKey  string `yaml:"groq_api_key"`
	GroqModel   string `yaml:"groq_model"`
	GroqBaseURL string `yaml:"groq_base_url"`

	CORSOrigins []string `yaml:"cors_origins"`
}

func defaults() *Config {
	return &Config{
		Addr:        ":8000",
		LogLevel:    "info",
		StoreDriver: StoreFile,
		StorePath:   "database.json",
		DBPort:      5432,
		CORSOrigins: []string{"*"},
	}
}

// Load reads the optional YAML file at path and then applies the
// environment on top. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Addr, "COACH_ADDR")
	setString(&c.LogLevel, "COACH_LOG_LEVEL")
	setString(&c.UserName, "COACH_USER_NAME")
	setString(&c.StoreDriver, "COACH_STORE_DRIVER")
	setString(&c.StorePath, "COACH_STORE_PATH")

	setString(&c.DBHost, "DB_HOST")
	setString(&c.DBUser, "DB_USER")
	setString(&c.DBPassword, "DB_PASSWORD")
	setString(&c.DBName, "DB_NAME")

	// a bad DB_PORT keeps the previous value
	if port, err := strconv.Atoi(os.Getenv("DB_PORT")); err == nil {
		c.DBPort = port
	}

	setString(&c.GroqAPIKey, "GROQ_API_KEY")
	setString(&c.GroqModel, "GROQ_MODEL")
	setString(&c.GroqBaseURL, "GROQ_BASE_URL")

	if v := os.Getenv("COACH_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORSOrigins = origins
	}
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreFile, StoreSQLite, StorePostgres:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.StoreDriver != StorePostgres && c.StorePath == "" {
		return errors.New("store path is required")
	}
	return nil
}

func (c *Config) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
