package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrMissingDatabaseID is returned when no target database is configured.
// It is reported before any network access.
var ErrMissingDatabaseID = errors.New("NOTION_DATABASE_ID is required")

type Alpaca struct {
	APIKey    string `yaml:"api_key"`
	SecretKey string `yaml:"secret_key"`
	DataURL   string `yaml:"data_url" validate:"required,url"`
	StockFeed string `yaml:"stock_feed" validate:"required"`
	CryptoLoc string `yaml:"crypto_loc" validate:"required"`
}

type Notion struct {
	APIKey        string `yaml:"api_key"`
	DatabaseID    string `yaml:"database_id"`
	BaseURL       string `yaml:"base_url" validate:"required,url"`
	Version       string `yaml:"version" validate:"required"`
	NameProperty  string `yaml:"name_property" validate:"required"`
	TypeProperty  string `yaml:"type_property" validate:"required"`
	PriceProperty string `yaml:"price_property" validate:"required"`
}

type Config struct {
	Alpaca            Alpaca `yaml:"alpaca"`
	Notion            Notion `yaml:"notion"`
	RequestTimeoutSec int    `yaml:"request_timeout_sec" validate:"gt=0"`
	LogLevel          string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

func Default() Config {
	return Config{
		Alpaca: Alpaca{
			DataURL:   "https://data.alpaca.markets",
			StockFeed: "iex",
			CryptoLoc: "us",
		},
		Notion: Notion{
			BaseURL:       "https://api.notion.com",
			Version:       "2022-06-28",
			NameProperty:  "Name",
			TypeProperty:  "Type",
			PriceProperty: "Current Price",
		},
		RequestTimeoutSec: 15,
		LogLevel:          "info",
	}
}

// Load reads an optional YAML config file and applies environment overrides.
// If path is empty and pricesync.yaml exists in the working directory, it is used.
// Call Validate once flag overrides have been applied.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("pricesync.yaml"); err == nil {
			path = "pricesync.yaml"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

var validate = validator.New()

// ValidationError lists every invalid field.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Validate checks the database ID first, then the remaining fields.
// Credentials are not required; missing ones surface as auth errors upstream.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Notion.DatabaseID) == "" {
		return ErrMissingDatabaseID
	}
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.Problems = append(ve.Problems, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return ve
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		cfg.Alpaca.APIKey = v
	}
	if v := os.Getenv("ALPACA_SECRET_KEY"); v != "" {
		cfg.Alpaca.SecretKey = v
	}
	if v := os.Getenv("ALPACA_DATA_URL"); v != "" {
		cfg.Alpaca.DataURL = v
	}
	if v := os.Getenv("ALPACA_STOCK_FEED"); v != "" {
		cfg.Alpaca.StockFeed = v
	}
	if v := os.Getenv("ALPACA_CRYPTO_LOC"); v != "" {
		cfg.Alpaca.CryptoLoc = v
	}
	if v := os.Getenv("NOTION_API_KEY"); v != "" {
		cfg.Notion.APIKey = v
	}
	if v := os.Getenv("NOTION_DATABASE_ID"); v != "" {
		cfg.Notion.DatabaseID = v
	}
	if v := os.Getenv("NOTION_BASE_URL"); v != "" {
		cfg.Notion.BaseURL = v
	}
	if v := os.Getenv("NOTION_VERSION"); v != "" {
		cfg.Notion.Version = v
	}
	if v := os.Getenv("NOTION_NAME_PROPERTY"); v != "" {
		cfg.Notion.NameProperty = v
	}
	if v := os.Getenv("NOTION_TYPE_PROPERTY"); v != "" {
		cfg.Notion.TypeProperty = v
	}
	if v := os.Getenv("NOTION_PRICE_PROPERTY"); v != "" {
		cfg.Notion.PriceProperty = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		if x, err := strconv.Atoi(v); err == nil && x > 0 {
			cfg.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}
