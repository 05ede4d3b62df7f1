package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	Jaeger    string          `yaml:"jaeger" env:"JAEGER" env-default:"jaeger"`
	Log       LogConfig       `yaml:"log"`
	HTTP      HTTPConfig      `yaml:"http"`
	BiletAPI  BiletAPIConfig  `yaml:"bilet_api"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`
	Search    SearchConfig    `yaml:"search"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type BiletAPIConfig struct {
	Endpoint string        `yaml:"endpoint" env:"BILET_API_ENDPOINT" env-default:"https://www.bilet.com/otobus-bileti/ara"`
	Timeout  time.Duration `yaml:"timeout" env:"BILET_API_TIMEOUT" env-default:"15s"`
	Retries  int           `yaml:"retries" env:"BILET_API_RETRIES" env-default:"2"`
}

type RateLimitConfig struct {
	MaxRequests int           `yaml:"max_requests" env:"RATE_LIMIT_MAX_REQUESTS" env-default:"60"`
	Window      time.Duration `yaml:"window" env:"RATE_LIMIT_WINDOW" env-default:"60s"`
}

type CacheConfig struct {
	TTL      time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"2m"`
	Capacity int           `yaml:"capacity" env:"CACHE_CAPACITY" env-default:"100"`
	// RedisAddr switches the ticket cache from in-memory to Redis when set.
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB" env-default:"0"`
}

type SearchConfig struct {
	MinConnection      time.Duration `yaml:"min_connection" env:"SEARCH_MIN_CONNECTION" env-default:"1h"`
	MaxResults         int           `yaml:"max_results" env:"SEARCH_MAX_RESULTS" env-default:"7"`
	TransferCandidates int           `yaml:"transfer_candidates" env:"SEARCH_TRANSFER_CANDIDATES" env-default:"6"`
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exists: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read the config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}
