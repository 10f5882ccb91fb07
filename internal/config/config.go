package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	Games    Games  `yaml:"games"`
}

type Games struct {
	CoinFlipDelay time.Duration `yaml:"coin-flip-delay" env-default:"500ms"`
	MinDiceSides  int           `yaml:"min-dice-sides" env-default:"2"`
}

// MustLoad - load all configurations in config.yml file.
// A missing file is fine, the defaults apply.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load default config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
