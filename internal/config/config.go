package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Auth struct {
		SigningKey      string `yaml:"signing_key"`
		AccessTTLHours  int    `yaml:"access_ttl_hours"`
		RefreshTTLHours int    `yaml:"refresh_ttl_hours"`
	} `yaml:"auth"`
	Catalog struct {
		PageSize int `yaml:"page_size"`
	} `yaml:"catalog"`
	// Promo maps a creator code to a discount percentage. Unknown codes resolve to 0.
	Promo map[string]int `yaml:"promo_codes"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	if url := os.Getenv("DB_URL"); url != "" {
		cfg.Database.URL = url
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if key := os.Getenv("JWT_SIGNING_KEY"); key != "" {
		cfg.Auth.SigningKey = key
	}
	if cfg.Catalog.PageSize < 1 {
		cfg.Catalog.PageSize = 20
	}
	return cfg
}
