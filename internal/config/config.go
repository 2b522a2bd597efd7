package config

import (
	"fmt"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env-default:"info"`
	SaveSlot string  `yaml:"save-slot" env-default:"autosave"`
	Board    Board   `yaml:"board"`
	Bot      Bot     `yaml:"bot"`
	Storage  Storage `yaml:"storage"`
}

type Board struct {
	Side    int `yaml:"side" env-default:"8"`
	Players int `yaml:"players" env-default:"2"`
}

type Bot struct {
	Enabled bool `yaml:"enabled" env-default:"true"`
	Player  int  `yaml:"player" env-default:"2"`
}

type Storage struct {
	Driver     string `yaml:"driver" env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite-path"`
	Redis      Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GetSQLitePath returns the configured database path, falling back to the
// XDG data directory.
func (that *Storage) GetSQLitePath() (string, error) {
	if that.SQLitePath != "" {
		return that.SQLitePath, nil
	}

	path, err := xdg.DataFile("reversi/saves.db")
	if err != nil {
		return "", fmt.Errorf("failed to resolve save database path: %w", err)
	}

	return path, nil
}
