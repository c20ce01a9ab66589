// Package config loads command line settings from an optional YAML file
// and FPAT_* environment variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kolkov/fpat"
)

// Settings are the command line settings. Environment variables take
// precedence over the config file, e.g. FPAT_ENGINE=linear.
type Settings struct {
	Engine               string `mapstructure:"engine"`
	Shorthand            bool   `mapstructure:"shorthand"`
	LogLevel             string `mapstructure:"log_level"`
	Color                bool   `mapstructure:"color"`
	TranslationCacheSize int    `mapstructure:"translation_cache_size"`
	EngineCacheSize      int    `mapstructure:"engine_cache_size"`
}

// Load reads the settings. An empty path skips the config file.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetDefault("engine", "backtrack")
	v.SetDefault("shorthand", true)
	v.SetDefault("log_level", "warn")
	v.SetDefault("color", true)
	v.SetDefault("translation_cache_size", fpat.DefaultTranslationCacheSize)
	v.SetDefault("engine_cache_size", fpat.DefaultEngineCacheSize)

	v.SetEnvPrefix("FPAT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding config: %w", err)
	}
	return s, nil
}

// Level parses LogLevel.
func (s Settings) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(s.LogLevel)
}

// Logger builds a console logger writing to stderr at LogLevel.
func (s Settings) Logger() (*zap.Logger, error) {
	level, err := s.Level()
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// Config converts the settings into an Env configuration.
func (s Settings) Config(log *zap.Logger) (*fpat.Config, error) {
	kind, err := fpat.ParseEngineKind(s.Engine)
	if err != nil {
		return nil, err
	}
	shorthand := s.Shorthand
	return &fpat.Config{
		Shorthand:            &shorthand,
		Engine:               kind,
		TranslationCacheSize: s.TranslationCacheSize,
		EngineCacheSize:      s.EngineCacheSize,
		Logger:               log,
	}, nil
}
