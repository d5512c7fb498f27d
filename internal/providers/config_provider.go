package providers

import (
	"fmt"
	"folio/internal/structures"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("store.dsn", "data/folio.db")
	v.SetDefault("store.timeout", 5*time.Second)
	v.SetDefault("preferences.filePath", "data/preferences.json")
	v.SetDefault("auth.sessionTTL", 24*time.Hour)
	v.SetDefault("auth.cacheSize", 1)
	v.SetDefault("cache.ttl", time.Minute)

	_ = v.BindEnv("logger.level", "FOLIO_LOG_LEVEL")
	_ = v.BindEnv("store.apiKey", "FOLIO_STORE_API_KEY")
	_ = v.BindEnv("store.projectId", "FOLIO_STORE_PROJECT_ID")
	_ = v.BindEnv("store.dsn", "FOLIO_STORE_DSN")
	_ = v.BindEnv("auth.ownerEmail", "FOLIO_OWNER_EMAIL")
	_ = v.BindEnv("auth.passwordHash", "FOLIO_OWNER_PASSWORD_HASH")
	_ = v.BindEnv("content.refreshInterval", "FOLIO_REFRESH_INTERVAL")
	_ = v.BindEnv("cache.enabled", "FOLIO_CACHE_ENABLED")
	_ = v.BindEnv("cache.size", "FOLIO_CACHE_SIZE")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "folio"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
