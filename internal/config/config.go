package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backend names accepted by Config.StorageBackend.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config holds runtime configuration for the site store.
type Config struct {
	AppName        string
	AppEnv         string
	StorageBackend string
	StorageKey     string
	StorageDir     string
	SQLitePath     string
	RedisURL       string
	NATSURL        string
	NotifyChannel  string
	AdminRecipient string
	IDMode         string
	Recovery       string
}

// Load reads configuration values from environment variables and an
// optional .env file. Every value has a usable default.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SCHOOL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Al-Mukhtar Site Store")
	v.SetDefault("app.env", "development")
	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.key", "mukhtar_school_site_db")
	v.SetDefault("storage.dir", "data")
	v.SetDefault("sqlite.path", "data/sitestore.db")
	v.SetDefault("notify.channel", "school:notifications")
	v.SetDefault("admin.recipient", "admin@mukhtarschool.edu.sy")
	v.SetDefault("id.mode", "timestamp")
	v.SetDefault("recovery", "fail")

	cfg := Config{
		AppName:        v.GetString("app.name"),
		AppEnv:         v.GetString("app.env"),
		StorageBackend: strings.ToLower(v.GetString("storage.backend")),
		StorageKey:     v.GetString("storage.key"),
		StorageDir:     v.GetString("storage.dir"),
		SQLitePath:     v.GetString("sqlite.path"),
		RedisURL:       v.GetString("redis.url"),
		NATSURL:        v.GetString("nats.url"),
		NotifyChannel:  v.GetString("notify.channel"),
		AdminRecipient: v.GetString("admin.recipient"),
		IDMode:         strings.ToLower(v.GetString("id.mode")),
		Recovery:       strings.ToLower(v.GetString("recovery")),
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendFile, BackendRedis, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	if cfg.StorageBackend == BackendRedis && cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("redis backend requires SCHOOL_REDIS_URL")
	}

	switch cfg.IDMode {
	case "timestamp", "uuid":
	default:
		return Config{}, fmt.Errorf("unknown id mode %q", cfg.IDMode)
	}

	switch cfg.Recovery {
	case "fail", "reseed":
	default:
		return Config{}, fmt.Errorf("unknown recovery policy %q", cfg.Recovery)
	}

	return cfg, nil
}
