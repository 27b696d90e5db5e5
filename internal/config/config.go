package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Site struct {
		URL            string   `yaml:"url"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"site"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql, sqlite
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	Identity struct {
		URL        string `yaml:"url"`
		AnonKey    string `yaml:"anon_key"`
		JWTSecret  string `yaml:"jwt_secret"`
		TimeoutSec int    `yaml:"timeout_sec"`
		RetryCount int    `yaml:"retry_count"`
	} `yaml:"identity"`

	Session struct {
		CookieSecure bool `yaml:"cookie_secure"`
	} `yaml:"session"`

	Completion struct {
		CacheTTLSec int `yaml:"cache_ttl_sec"`
	} `yaml:"completion"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		// TemplatesDir - каталог с *.html, переопределяющими встроенные письма
		TemplatesDir string `yaml:"templates_dir"`
	} `yaml:"email"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию в AppConfig.
// Порядок: .env -> config.yaml (если есть) -> переменные окружения.
func LoadConfig() error {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// Load читает конфигурацию из файла path (по умолчанию config/config.yaml)
// и накладывает поверх переменные окружения. Отсутствие файла не ошибка.
func Load(path string) (*Config, error) {
	// .env опционален, в проде переменные приходят из окружения
	_ = godotenv.Load()

	cfg := defaults()

	if path == "" {
		path = "config/config.yaml"
	}
	if err := loadFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.Env = "development"
	cfg.Site.URL = "http://localhost:8080"
	cfg.Database.Driver = "postgres"
	cfg.Identity.TimeoutSec = 10
	cfg.Identity.RetryCount = 2
	cfg.Completion.CacheTTLSec = 30
	cfg.Email.SMTPPort = 587
	cfg.Email.FromName = "NetworkNode"
	return &cfg
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Env, "SERVER_ENV")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Site.URL, "SITE_URL")
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.Site.AllowedOrigins = strings.Split(v, ",")
	}

	setString(&cfg.Database.Driver, "DATABASE_DRIVER")
	setString(&cfg.Database.DSN, "DATABASE_URL")

	setString(&cfg.Identity.URL, "SUPABASE_URL")
	setString(&cfg.Identity.AnonKey, "SUPABASE_ANON_KEY")
	setString(&cfg.Identity.JWTSecret, "SUPABASE_JWT_SECRET")

	setString(&cfg.Email.SMTPHost, "SMTP_HOST")
	setInt(&cfg.Email.SMTPPort, "SMTP_PORT")
	setString(&cfg.Email.SMTPUsername, "SMTP_USER")
	setString(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	setString(&cfg.Email.FromEmail, "SMTP_FROM")
	setString(&cfg.Email.TemplatesDir, "EMAIL_TEMPLATES_DIR")

	if cfg.Server.Env == "production" {
		cfg.Session.CookieSecure = true
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// Validate проверяет обязательные параметры.
// Без адреса и ключа провайдера аутентификации сервис не запускается.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Identity.URL) == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if strings.TrimSpace(c.Identity.AnonKey) == "" {
		missing = append(missing, "SUPABASE_ANON_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// IdentityTimeout - таймаут HTTP-запросов к провайдеру аутентификации
func (c *Config) IdentityTimeout() time.Duration {
	return time.Duration(c.Identity.TimeoutSec) * time.Second
}

// CompletionCacheTTL - время жизни кэша статуса профиля
func (c *Config) CompletionCacheTTL() time.Duration {
	return time.Duration(c.Completion.CacheTTLSec) * time.Second
}
