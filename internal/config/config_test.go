package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no .env is picked up.
func inTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverMySQL, cfg.Driver())
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "springnext", cfg.MongoDatabase)
	assert.Empty(t, cfg.AdminJWTSecret)
	assert.False(t, cfg.EventsEnabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, map[string]bool{"GET": true}, cfg.Cache.MethodSet())
}

func TestLoad_FromEnv(t *testing.T) {
	inTempDir(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.Driver())
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, cfg.Cache.MethodSet())
	assert.Equal(t, "cache:6380", cfg.Redis.Address())
}

func TestLoad_DotEnv(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile(".env", []byte("APP_ENV=staging\nADMIN_JWT_SECRET=from-file\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("APP_ENV")
		_ = os.Unsetenv("ADMIN_JWT_SECRET")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, "from-file", cfg.AdminJWTSecret)
}

func TestValidate(t *testing.T) {
	base := Config{Port: "8080", StoreDriver: "mysql", BcryptCost: 10}
	require.NoError(t, base.Validate())

	bad := base
	bad.StoreDriver = "postgres"
	assert.Error(t, bad.Validate())

	bad = base
	bad.BcryptCost = 99
	assert.Error(t, bad.Validate())

	bad = base
	bad.Port = ""
	assert.Error(t, bad.Validate())
}

func TestRedisAddress(t *testing.T) {
	assert.Equal(t, "localhost:6379", RedisConfig{Addr: "localhost:6379"}.Address())
	assert.Equal(t, "h:1", RedisConfig{Host: "h", Port: "1", Addr: "x:2"}.Address())
	assert.Nil(t, NewRedisClient(RedisConfig{Enabled: false}))
}
