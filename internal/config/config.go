package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	ColorMode string `yaml:"color-mode" env:"TTT_COLOR_MODE" env-default:"auto"`
	ShowMoves bool   `yaml:"show-moves" env:"TTT_SHOW_MOVES" env-default:"true"`
}

// MustLoad - load all configurations from config.yml file. The file is
// optional for a terminal game; without it the defaults and the
// environment decide.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
