package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rpattn/dinaquery/internal/domain"
)

// EnvPrefix prefixes environment overrides, e.g. DINAQ_DATABASE_HOST.
const EnvPrefix = "DINAQ"

// Load reads config.yaml from configPath, applies environment overrides and
// returns the merged settings. A missing file is not an error.
func Load(configPath string, logger *zap.Logger) (Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Start with default
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{
		"server.addr", "server.read_timeout", "server.write_timeout", "server.idle_timeout",
		"server.allowed_origins",
		"database.host", "database.port", "database.user", "database.password",
		"database.dbname", "database.sslmode",
		"search.hierarchy_rank", "search.strict_uuid",
		"log.level", "log.development",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		logger.Info("no config.yaml found, using defaults and env vars", zap.String("path", configPath))
	} else {
		logger.Info("loaded config", zap.String("file", v.ConfigFileUsed()))
	}

	applyOverrides(v, &cfg)

	if v.IsSet("dynamic_fields") {
		var fields []domain.DynamicField
		if err := v.UnmarshalKey("dynamic_fields", &fields); err != nil {
			return Config{}, fmt.Errorf("failed to decode dynamic_fields: %w", err)
		}
		cfg.DynamicFields = fields
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Override defaults if values exist
func applyOverrides(v *viper.Viper, cfg *Config) {
	if v.IsSet("server.addr") {
		cfg.Server.Addr = v.GetString("server.addr")
	}
	if v.IsSet("server.read_timeout") {
		cfg.Server.ReadTimeout = v.GetDuration("server.read_timeout")
	}
	if v.IsSet("server.write_timeout") {
		cfg.Server.WriteTimeout = v.GetDuration("server.write_timeout")
	}
	if v.IsSet("server.idle_timeout") {
		cfg.Server.IdleTimeout = v.GetDuration("server.idle_timeout")
	}
	if v.IsSet("server.allowed_origins") {
		cfg.Server.AllowedOrigins = v.GetStringSlice("server.allowed_origins")
	}

	if v.IsSet("database.host") {
		cfg.Database.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.Database.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.Database.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.Database.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.Database.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.Database.SSLMode = v.GetString("database.sslmode")
	}

	if v.IsSet("search.hierarchy_rank") {
		cfg.Search.HierarchyRank = v.GetInt("search.hierarchy_rank")
	}
	if v.IsSet("search.strict_uuid") {
		cfg.Search.StrictUUID = v.GetBool("search.strict_uuid")
	}

	if v.IsSet("log.level") {
		cfg.Log.Level = v.GetString("log.level")
	}
	if v.IsSet("log.development") {
		cfg.Log.Development = v.GetBool("log.development")
	}
}
