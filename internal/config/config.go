package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	API      APIConfig      `envPrefix:"API_"`
	Firebase FirebaseConfig `envPrefix:"FIREBASE_"`
	Storage  StorageConfig  `envPrefix:"STORAGE_"`
}

type APIConfig struct {
	BaseURL       string        `env:"BASE_URL" envDefault:"https://api.reelmates.app/v1"`
	Timeout       time.Duration `env:"TIMEOUT" envDefault:"30s"`
	TMDBImageBase string        `env:"TMDB_IMAGE_BASE" envDefault:"https://image.tmdb.org/t/p/"`
}

type FirebaseConfig struct {
	ProjectID string `env:"PROJECT_ID" envDefault:"reelmates"`
}

type StorageConfig struct {
	// Path of the sqlite session store. When the file cannot be opened the
	// app falls back to an in-memory store and loses persistence only.
	Path string `env:"PATH" envDefault:"reelmates.db"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
