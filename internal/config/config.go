package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver       string `yaml:"driver"` // postgres, mysql, sqlite
		DSN          string `yaml:"url"`
		MaxOpenConns int    `yaml:"max_open_conns"`
		MaxIdleConns int    `yaml:"max_idle_conns"`
	} `yaml:"database"`

	// Два уровня доступа: публичный anon key и service key
	// (последний открывает только POST /opportunities)
	Auth struct {
		JWTSecret     string `yaml:"jwt_secret"`
		JWTTTLMinutes int    `yaml:"jwt_ttl_minutes"`
		AnonKey       string `yaml:"anon_key"`
		ServiceKey    string `yaml:"service_key"`
	} `yaml:"auth"`

	Email struct {
		Enabled      bool   `yaml:"enabled"`
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	Storage struct {
		Type      string `yaml:"type"`      // local, s3
		BasePath  string `yaml:"base_path"` // local
		BaseURL   string `yaml:"base_url"`  // публичный префикс URL
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Endpoint  string `yaml:"endpoint"` // R2, MinIO и другие S3-совместимые
	} `yaml:"storage"`

	Upload struct {
		MaxAvatarSize int64    `yaml:"max_avatar_size"`
		AllowedTypes  []string `yaml:"allowed_types"`
	} `yaml:"upload"`

	Feed struct {
		Limit        int `yaml:"limit"`
		PreviewLimit int `yaml:"preview_limit"`
	} `yaml:"feed"`

	// Первый админ создается при старте, если указан email
	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		FullName string `yaml:"full_name"`
	} `yaml:"admin"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

var AppConfig *Config

// LoadConfig читает конфиг. Если задан DATABASE_URL, конфиг целиком
// собирается из переменных окружения (тесты, контейнеры), иначе из YAML
// по пути CONFIG_PATH (по умолчанию config/config.yaml).
func LoadConfig() (*Config, error) {
	var cfg *Config

	if os.Getenv("DATABASE_URL") == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}
		log.Printf("Загрузка конфигурации из %s", configPath)

		fileCfg, err := LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	} else {
		log.Println("Загрузка конфигурации из переменных окружения")
		cfg = fromEnv()
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = cfg
	return cfg, nil
}

// LoadFile декодирует YAML-файл без дефолтов и валидации
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return &cfg, nil
}

func fromEnv() *Config {
	var cfg Config

	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Database.Driver = os.Getenv("DATABASE_DRIVER")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.Auth.AnonKey = os.Getenv("ANON_KEY")
	cfg.Auth.ServiceKey = os.Getenv("SERVICE_KEY")
	cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/uploads"

	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Auth.JWTTTLMinutes == 0 {
		c.Auth.JWTTTLMinutes = 60 * 24
	}
	if c.Storage.Type == "" {
		c.Storage.Type = "local"
	}
	if c.Storage.BasePath == "" {
		c.Storage.BasePath = "./uploads"
	}
	if c.Upload.MaxAvatarSize == 0 {
		c.Upload.MaxAvatarSize = 2 * 1024 * 1024 // 2MB
	}
	if len(c.Upload.AllowedTypes) == 0 {
		c.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}
	}
	if c.Feed.Limit == 0 {
		c.Feed.Limit = 20
	}
	if c.Feed.PreviewLimit == 0 {
		c.Feed.PreviewLimit = 12
	}
	if c.Admin.FullName == "" {
		c.Admin.FullName = "Platform Admin"
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("database.url is required"))
	}
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("unsupported database.driver %q", c.Database.Driver))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	if c.Auth.ServiceKey != "" && c.Auth.ServiceKey == c.Auth.AnonKey {
		errs = append(errs, errors.New("auth.service_key must differ from auth.anon_key"))
	}
	if c.Storage.Type == "s3" && c.Storage.Bucket == "" {
		errs = append(errs, errors.New("storage.bucket is required for s3 storage"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// GetConfig возвращает загруженный конфиг, при необходимости загружая его
func GetConfig() *Config {
	if AppConfig == nil {
		cfg, err := LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		AppConfig = cfg
	}
	return AppConfig
}
