package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

// unsetEnv удаляет переменные окружения; t.Setenv восстановит исходные значения после теста
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

var allKeys = []string{
	"SUPABASE_URL", "SUPABASE_KEY", "SUPABASE_JWT_SECRET", "VITE_SUPABASE_URL", "VITE_SUPABASE_ANON_KEY",
	"BASE_URL", "LOG_LEVEL", "ROW_STORE", "DATABASE_URI", "ITEMS_TABLE", "PROFILES_TABLE",
	"BLOB_DRIVER", "BLOB_BUCKET", "S3_REGION", "S3_ENDPOINT", "S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY",
	"S3_USE_PATH_STYLE", "S3_USE_SSL", "CORS_ALLOWED_ORIGINS", "CORS_ALLOW_ALL", "GATEWAY_URL",
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	unsetEnv(t, allKeys...)

	resetFlagSet(t)
	cfg := NewConfig()

	assert.Equal(t, "localhost:3000", cfg.BaseURL)
	assert.Equal(t, RowStoreREST, cfg.RowStore)
	assert.Equal(t, BlobDriverSupabase, cfg.BlobDriver)
	assert.Equal(t, "tabela1", cfg.ItemsTable)
	assert.Equal(t, "usuario", cfg.ProfilesTable)
	assert.Equal(t, "fotos", cfg.BlobBucket)
	assert.True(t, cfg.S3UseSSL)
	assert.False(t, cfg.CORSAllowAll)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSAllowedOrigins)

	// без URL и ключа стартовать нельзя
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_URL")
	assert.Contains(t, err.Error(), "SUPABASE_KEY")
}

func TestNewConfig_NoClientFlags(t *testing.T) {
	unsetEnv(t, allKeys...)

	resetFlagSet(t)
	_ = NewConfig()

	assert.Nil(t, flag.Lookup("gateway"))
	assert.Nil(t, flag.Lookup("version"))
	assert.NotNil(t, flag.Lookup("supabase-url"))
}

func TestNewClientConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		unsetEnv(t, allKeys...)

		resetFlagSet(t)
		cfg := NewClientConfig()

		assert.Equal(t, "http://localhost:3000", cfg.GatewayURL)
		assert.False(t, cfg.Version)
		assert.Nil(t, flag.Lookup("supabase-url"), "server flags must not leak into itemctl")
	})

	t.Run("from env", func(t *testing.T) {
		unsetEnv(t, allKeys...)
		t.Setenv("GATEWAY_URL", " https://gw.example/ ")

		resetFlagSet(t)
		cfg := NewClientConfig()

		assert.Equal(t, "https://gw.example", cfg.GatewayURL)
	})
}

func TestNewConfig_FromEnv(t *testing.T) {
	unsetEnv(t, allKeys...)
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co/")
	t.Setenv("SUPABASE_KEY", "service-key")
	t.Setenv("BASE_URL", "0.0.0.0:8080")
	t.Setenv("BLOB_DRIVER", "S3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	resetFlagSet(t)
	cfg := NewConfig()

	assert.Equal(t, "https://proj.supabase.co", cfg.SupabaseURL, "trailing slash must be trimmed")
	assert.Equal(t, "service-key", cfg.SupabaseKey)
	assert.Equal(t, "0.0.0.0:8080", cfg.BaseURL)
	assert.Equal(t, BlobDriverS3, cfg.BlobDriver)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_ViteFallback(t *testing.T) {
	unsetEnv(t, allKeys...)
	t.Setenv("VITE_SUPABASE_URL", "https://legacy.supabase.co")
	t.Setenv("VITE_SUPABASE_ANON_KEY", "anon")

	resetFlagSet(t)
	cfg := NewConfig()

	assert.Equal(t, "https://legacy.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, "anon", cfg.SupabaseKey)
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	unsetEnv(t, allKeys...)
	// Невалидный BASE_URL (со схемой) должен откатиться на значение по умолчанию
	t.Setenv("BASE_URL", "http://bad:8080")

	resetFlagSet(t)
	cfg := NewConfig()

	assert.Equal(t, "localhost:3000", cfg.BaseURL)
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			SupabaseURL:        "https://proj.supabase.co",
			SupabaseKey:        "k",
			RowStore:           RowStoreREST,
			BlobDriver:         BlobDriverSupabase,
			BlobBucket:         "fotos",
			CORSAllowedOrigins: []string{"http://localhost:5173"},
		}
	}

	t.Run("ok", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		c := base()
		c.RowStore = RowStorePostgres
		assert.ErrorContains(t, c.Validate(), "DATABASE_URI")
	})

	t.Run("unknown row store", func(t *testing.T) {
		c := base()
		c.RowStore = "mongo"
		assert.ErrorContains(t, c.Validate(), "ROW_STORE")
	})

	t.Run("minio without endpoint", func(t *testing.T) {
		c := base()
		c.BlobDriver = BlobDriverMinio
		assert.ErrorContains(t, c.Validate(), "S3_ENDPOINT")
	})

	t.Run("unknown blob driver", func(t *testing.T) {
		c := base()
		c.BlobDriver = "ftp"
		assert.ErrorContains(t, c.Validate(), "BLOB_DRIVER")
	})

	t.Run("no cors origins", func(t *testing.T) {
		c := base()
		c.CORSAllowedOrigins = nil
		assert.ErrorContains(t, c.Validate(), "CORS")

		c.CORSAllowAll = true
		assert.NoError(t, c.Validate())
	})
}
