package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultBackendURL = "http://localhost:8080"
	DefaultLogLevel   = "info"
	DefaultLogOutput  = "stderr"
)

type Config struct {
	BackendURL     string        `env:"ADMIN_BACKEND_URL" envDefault:"http://localhost:8080"`
	Token          string        `env:"ADMIN_TOKEN"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogOutput      string        `env:"LOG_OUTPUT" envDefault:"stderr"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	NoticeTimeout  time.Duration `env:"NOTICE_TIMEOUT" envDefault:"3s"`
}

// InitConfig reads the optional dotenv files and then the process environment.
// Variables already present in the environment win over dotenv values.
func InitConfig(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}

	for _, file := range dotenvFiles {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error while loading dotenv file %s: %w", file, err)
		}
	}

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("error while parsing config: %w", err)
	}

	return config, nil
}
