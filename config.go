package fpat

import (
	"go.uber.org/zap"

	"github.com/kolkov/fpat/internal/engine"
)

// EngineKind selects the regular-expression engine that executes patterns.
type EngineKind = engine.Kind

const (
	// EngineBacktrack supports the full translated syntax: lookaround,
	// atomic and conditional groups, backreferences and inline comments.
	EngineBacktrack = engine.Backtrack

	// EngineLinear guarantees linear-time matching but rejects the
	// constructs that need backtracking.
	EngineLinear = engine.Linear
)

// ParseEngineKind converts an engine name ("backtrack" or "linear") into
// an EngineKind.
func ParseEngineKind(s string) (EngineKind, error) {
	return engine.ParseKind(s)
}

const (
	// DefaultTranslationCacheSize is the default bound of the shorthand
	// translation cache.
	DefaultTranslationCacheSize = 4096

	// DefaultEngineCacheSize is the default bound of the compiled engine cache.
	DefaultEngineCacheSize = engine.DefaultCacheSize
)

// Config holds configuration options for an Env.
type Config struct {
	// Shorthand is the shorthand setting of patterns whose flag suffix
	// has neither f nor u. Nil means on.
	Shorthand *bool

	// Engine selects the engine used to execute patterns
	// (default: EngineBacktrack).
	Engine EngineKind

	// TranslationCacheSize bounds the number of cached shorthand
	// translations. Zero selects DefaultTranslationCacheSize; a negative
	// value disables eviction.
	TranslationCacheSize int

	// EngineCacheSize bounds the number of cached compiled engines.
	// Zero selects DefaultEngineCacheSize; a negative value disables eviction.
	EngineCacheSize int

	// Logger receives cache and engine diagnostics. If nil, output is
	// discarded.
	Logger *zap.Logger
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Shorthand == nil {
		on := true
		c.Shorthand = &on
	}
	if c.TranslationCacheSize == 0 {
		c.TranslationCacheSize = DefaultTranslationCacheSize
	}
	if c.EngineCacheSize == 0 {
		c.EngineCacheSize = DefaultEngineCacheSize
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}
