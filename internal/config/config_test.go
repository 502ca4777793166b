package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendFile, cfg.StorageBackend)
	require.Equal(t, "mukhtar_school_site_db", cfg.StorageKey)
	require.Equal(t, "data", cfg.StorageDir)
	require.Equal(t, "school:notifications", cfg.NotifyChannel)
	require.Equal(t, "timestamp", cfg.IDMode)
	require.Equal(t, "fail", cfg.Recovery)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("SCHOOL_STORAGE_BACKEND", "mongodb")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRedisBackendRequiresURL(t *testing.T) {
	t.Setenv("SCHOOL_STORAGE_BACKEND", "redis")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("SCHOOL_REDIS_URL", "redis://localhost:6379/0")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendRedis, cfg.StorageBackend)
	require.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoadRejectsUnknownIDMode(t *testing.T) {
	t.Setenv("SCHOOL_ID_MODE", "sequence")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsUnknownRecovery(t *testing.T) {
	t.Setenv("SCHOOL_RECOVERY", "panic")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadNormalizesCase(t *testing.T) {
	t.Setenv("SCHOOL_STORAGE_BACKEND", "MEMORY")
	t.Setenv("SCHOOL_RECOVERY", "Reseed")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendMemory, cfg.StorageBackend)
	require.Equal(t, "reseed", cfg.Recovery)
}
