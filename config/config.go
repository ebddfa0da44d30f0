package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings holds process configuration. Values come from the yaml file,
// overridden by environment variables where one is named below.
type Settings struct {
	Mode string `yaml:"mode"` // "dev" or "prod"
	Addr string `yaml:"addr"`

	DatabasePath string `yaml:"database_path"`
	ProductsCSV  string `yaml:"products_csv"`
	OrdersCSV    string `yaml:"orders_csv"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	SecretKey string `yaml:"secret_key"`

	OpenAIBaseURL string  `yaml:"openai_base_url"`
	OpenAIAPIKey  string  `yaml:"openai_api_key"`
	OpenAIModel   string  `yaml:"openai_model"`
	MinConfidence float64 `yaml:"min_confidence"`

	// HistoryLimit caps the per-session turn cache in redis.
	HistoryLimit int `yaml:"history_limit"`
}

func defaults() Settings {
	return Settings{
		Mode:          "dev",
		Addr:          ":8080",
		DatabasePath:  "customer_service.db",
		ProductsCSV:   "data/gear-store.csv",
		OrdersCSV:     "data/orders.csv",
		RedisAddr:     "localhost:6379",
		OpenAIBaseURL: "https://api.openai.com",
		OpenAIModel:   "gpt-3.5-turbo",
		MinConfidence: 0.7,
		HistoryLimit:  50,
	}
}

// Load reads settings from path. A missing file is not an error: defaults
// plus environment overrides are returned.
func Load(path string) (*Settings, error) {
	s := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&s)
	return &s, nil
}

func applyEnv(s *Settings) {
	if v := os.Getenv("MODE"); v != "" {
		s.Mode = v
	}
	if v := os.Getenv("ADDR"); v != "" {
		s.Addr = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		s.DatabasePath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		s.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		s.RedisPassword = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		s.SecretKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		s.OpenAIAPIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		s.OpenAIBaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		s.OpenAIModel = v
	}
	if v := os.Getenv("MIN_CONFIDENCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.MinConfidence = f
		}
	}
}
