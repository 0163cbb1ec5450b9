package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Mongo      Mongo      `yaml:"mongo"`
	JWT        JWT        `yaml:"jwt"`
}

type HTTPServer struct {
	Port        string        `yaml:"port" env:"PORT" env-default:"3000"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Mongo struct {
	URI    string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	DBName string `yaml:"dbname" env:"DB_NAME" env-default:"blog"`
}

type JWT struct {
	// AccessSecret and RefreshSecret are distinct on purpose: leaking one
	// must not allow forging the other token class.
	AccessSecret  string        `yaml:"token_secret" env:"TOKEN_SECRET" env-required:"true"`
	RefreshSecret string        `yaml:"refresh_token_secret" env:"REFRESH_TOKEN_SECRET" env-required:"true"`
	AccessTTL     time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"1h"`
	// RefreshTTL of 0 means refresh tokens never expire on their own and are
	// revoked only by rotation or logout.
	RefreshTTL time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"0"`
}

// MustLoad reads configuration from the yaml file named by CONFIG_PATH when
// set, falling back to plain environment variables otherwise.
func MustLoad() *Config {
	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("Config file not exist: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("Can not read config file %s", err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("Can not read config from environment: %s", err)
	}

	return &cfg
}
