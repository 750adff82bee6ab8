package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort  string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	WordsFile string        `yaml:"words-file" env:"WORDS_FILE" env-default:""`
	GameTTL   time.Duration `yaml:"game-ttl" env:"GAME_TTL" env-default:"24h"`
	Redis     Redis         `yaml:"redis"`
	Engine    Engine        `yaml:"engine"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Engine struct {
	MinSize         int    `yaml:"min-size" env:"ENGINE_MIN_SIZE" env-default:"12"`
	MaxSize         int    `yaml:"max-size" env:"ENGINE_MAX_SIZE" env-default:"100"`
	MaxAttempts     int    `yaml:"max-attempts" env:"ENGINE_MAX_ATTEMPTS" env-default:"500"`
	Alphabet        string `yaml:"alphabet" env:"ENGINE_ALPHABET" env-default:"ABCDEFGHIJKLMNOPQRSTUVWXYZ"`
	StrictPlacement bool   `yaml:"strict-placement" env:"ENGINE_STRICT_PLACEMENT" env-default:"false"`
}

// Load reads path when it exists and falls back to environment variables and defaults otherwise.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}

		return config, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read config from environment: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
