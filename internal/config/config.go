package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Допустимые значения драйверов
const (
	RowStoreREST     = "rest"
	RowStorePostgres = "postgres"

	BlobDriverSupabase = "supabase"
	BlobDriverS3       = "s3"
	BlobDriverMinio    = "minio"
)

const defaultBaseURL = "localhost:3000"

// Config: настройки сервера шлюза.
type Config struct {
	// Hosted backend
	SupabaseURL       string `env:"SUPABASE_URL"`
	SupabaseKey       string `env:"SUPABASE_KEY"`
	SupabaseJWTSecret string `env:"SUPABASE_JWT_SECRET"`

	// HTTP server
	BaseURL  string `env:"BASE_URL"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Row store
	RowStore      string `env:"ROW_STORE" envDefault:"rest"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	ItemsTable    string `env:"ITEMS_TABLE" envDefault:"tabela1"`
	ProfilesTable string `env:"PROFILES_TABLE" envDefault:"usuario"`

	// Blob store
	BlobDriver        string `env:"BLOB_DRIVER" envDefault:"supabase"`
	BlobBucket        string `env:"BLOB_BUCKET" envDefault:"fotos"`
	S3Region          string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint        string `env:"S3_ENDPOINT"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	S3UsePathStyle    bool   `env:"S3_USE_PATH_STYLE"`
	S3UseSSL          bool   `env:"S3_USE_SSL" envDefault:"true"`

	// CORS: по умолчанию allow-list, allow-all только явно
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3000"`
	CORSAllowAll       bool     `env:"CORS_ALLOW_ALL"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// старые имена переменных фронтенда
	if cfg.SupabaseURL == "" {
		cfg.SupabaseURL = os.Getenv("VITE_SUPABASE_URL")
	}
	if cfg.SupabaseKey == "" {
		cfg.SupabaseKey = os.Getenv("VITE_SUPABASE_ANON_KEY")
	}

	// flags перекрывают значения из env
	flag.StringVar(&cfg.SupabaseURL, "supabase-url", cfg.SupabaseURL, "URL сервиса Supabase")
	flag.StringVar(&cfg.SupabaseKey, "supabase-key", cfg.SupabaseKey, "ключ доступа Supabase")
	flag.StringVar(&cfg.SupabaseJWTSecret, "jwt-secret", cfg.SupabaseJWTSecret, "JWT secret проекта (локальная проверка токенов)")
	flag.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "адрес сервера host:port")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "уровень логирования (debug|info|warn|error)")
	flag.StringVar(&cfg.RowStore, "row-store", cfg.RowStore, "хранилище строк: rest|postgres")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (row-store=postgres)")
	flag.StringVar(&cfg.BlobDriver, "blob-driver", cfg.BlobDriver, "хранилище файлов: supabase|s3|minio")
	flag.StringVar(&cfg.BlobBucket, "bucket", cfg.BlobBucket, "bucket с фотографиями")
	flag.BoolVar(&cfg.CORSAllowAll, "cors-allow-all", cfg.CORSAllowAll, "разрешить запросы с любых origin")

	flag.Parse()

	// Defaults
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.SupabaseURL = strings.TrimRight(strings.TrimSpace(cfg.SupabaseURL), "/")
	cfg.RowStore = strings.ToLower(strings.TrimSpace(cfg.RowStore))
	cfg.BlobDriver = strings.ToLower(strings.TrimSpace(cfg.BlobDriver))

	origins := cfg.CORSAllowedOrigins[:0]
	for _, o := range cfg.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.CORSAllowedOrigins = origins

	return cfg
}

// Validate проверяет обязательные параметры. Вызывается при старте процесса,
// чтобы не получать невнятные ошибки от бэкенда позже.
func (c *Config) Validate() error {
	var errs []error
	if c.SupabaseURL == "" {
		errs = append(errs, errors.New("SUPABASE_URL is required"))
	}
	if c.SupabaseKey == "" {
		errs = append(errs, errors.New("SUPABASE_KEY is required"))
	}

	switch c.RowStore {
	case RowStoreREST:
	case RowStorePostgres:
		if c.DatabaseDSN == "" {
			errs = append(errs, errors.New("DATABASE_URI is required when ROW_STORE=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown ROW_STORE %q", c.RowStore))
	}

	switch c.BlobDriver {
	case BlobDriverSupabase, BlobDriverS3:
	case BlobDriverMinio:
		if c.S3Endpoint == "" {
			errs = append(errs, errors.New("S3_ENDPOINT is required when BLOB_DRIVER=minio"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown BLOB_DRIVER %q", c.BlobDriver))
	}
	if c.BlobBucket == "" {
		errs = append(errs, errors.New("BLOB_BUCKET must not be empty"))
	}

	if !c.CORSAllowAll && len(c.CORSAllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS is empty and CORS_ALLOW_ALL is off"))
	}

	return errors.Join(errs...)
}
