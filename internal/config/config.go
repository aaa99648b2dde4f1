package config

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrDatabaseURLNotSet = errors.New("DATABASE_URL environment variable not set")

type DBConfig struct {
	URL        string
	MaxConns   int32
	AutoSchema bool
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type CacheConfig struct {
	Driver          string
	ClearOnShutdown bool
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type Config struct {
	DB              DBConfig
	Server          ServerConfig
	Cache           CacheConfig
	RateLimit       RateLimitConfig
	AllowedOrigins  []string
	RedisAddr       string
	RabbitMQConnStr string
	IngestSecret    string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8000")
	v.SetDefault("client.origins", []string{"*"})
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.rate_limit_rps", 0)
	v.SetDefault("server.rate_limit_burst", 20)
	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.clear_on_shutdown", false)
	v.SetDefault("db.max_conns", 0)
	v.SetDefault("db.auto_schema", true)
}

// Load reads .env and app.yaml from dir. Both files are optional; only
// DATABASE_URL is required and its absence is reported as
// ErrDatabaseURLNotSet.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigType("yaml")
	v.SetConfigName("app")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		return nil, ErrDatabaseURLNotSet
	}

	return &Config{
		DB: DBConfig{
			URL:        dbURL,
			MaxConns:   v.GetInt32("db.max_conns"),
			AutoSchema: v.GetBool("db.auto_schema"),
		},
		Server: ServerConfig{
			Port:           v.GetString("app.port"),
			MaxHeaderBytes: 1 << 20,
			ReadTimeout:    v.GetDuration("server.read_timeout"),
			WriteTimeout:   v.GetDuration("server.write_timeout"),
		},
		Cache: CacheConfig{
			Driver:          v.GetString("cache.driver"),
			ClearOnShutdown: v.GetBool("cache.clear_on_shutdown"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("server.rate_limit_rps"),
			Burst: v.GetInt("server.rate_limit_burst"),
		},
		AllowedOrigins:  v.GetStringSlice("client.origins"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RabbitMQConnStr: os.Getenv("RABBITMQ_CONN_STRING"),
		IngestSecret:    os.Getenv("INGEST_SECRET"),
	}, nil
}
