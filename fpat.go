package fpat

import (
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/kolkov/fpat/internal/cache"
	"github.com/kolkov/fpat/internal/compiler"
	"github.com/kolkov/fpat/internal/engine"
)

// Version is the fpat version string.
const Version = "0.1.0"

// Env owns the caches patterns compile through. It is safe for concurrent
// use; patterns compiled by one Env never observe another Env's caches.
type Env struct {
	shorthand    bool
	kind         EngineKind
	translations *cache.Memo[string, string]
	engines      *engine.Cache
	log          *zap.Logger
}

// NewEnv creates an Env. If config is nil, default configuration is used.
func NewEnv(config *Config) *Env {
	var c Config
	if config != nil {
		c = *config
	}
	c.applyDefaults()

	return &Env{
		shorthand:    *c.Shorthand,
		kind:         c.Engine,
		translations: cache.New[string, string](c.TranslationCacheSize),
		engines:      engine.NewCache(c.EngineCacheSize, c.Logger),
		log:          c.Logger,
	}
}

var defaultEnv = sync.OnceValue(func() *Env { return NewEnv(nil) })

// Default returns the Env used by the package-level functions.
func Default() *Env {
	return defaultEnv()
}

// Engine returns the engine kind patterns of this Env execute with.
func (e *Env) Engine() EngineKind {
	return e.kind
}

// Compile parses raw into a Pattern. raw may end with a flag suffix of
// the form "; flags", where flags is any combination of
//
//	i, c  ignore case on, off
//	m, s  multiline on, off
//	f, u  shorthand on, off
//
// in any order and case; the last letter of a pair wins. Unset options
// default to off, except shorthand which defaults to the Env setting.
// Compile only fails on shorthand that cannot be translated; engine
// faults surface when the pattern is first executed.
//
// Example:
//
//	p, err := env.Compile(`^ /d+ $; i`)
func (e *Env) Compile(raw string) (*Pattern, error) {
	body, flags := splitFlags(raw)
	p := &Pattern{env: e, raw: body, text: body, shorthand: e.shorthand}
	for _, f := range strings.ToLower(flags) {
		switch f {
		case 'i':
			p.opts.IgnoreCase = true
		case 'c':
			p.opts.IgnoreCase = false
		case 'm':
			p.opts.Multiline = true
		case 's':
			p.opts.Multiline = false
		case 'f':
			p.shorthand = true
		case 'u':
			p.shorthand = false
		}
	}
	if !p.shorthand {
		return p, nil
	}

	text, err := e.Translate(body)
	if err != nil {
		return nil, err
	}
	p.text = text
	return p, nil
}

// MustCompile is like Compile but panics if raw cannot be compiled.
// It simplifies initialization of global pattern variables.
func (e *Env) MustCompile(raw string) *Pattern {
	p, err := e.Compile(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Translate converts a shorthand body without flag suffix into standard
// syntax. Results are cached by body.
func (e *Env) Translate(body string) (string, error) {
	text, hit, err := e.translations.Get(body, func() (string, error) {
		return compiler.Compile(body)
	})
	if err != nil {
		var ce *compiler.Error
		if errors.As(err, &ce) {
			cerr := &CompileError{
				Pattern:   ce.Source,
				Offset:    ce.Offset,
				Remainder: ce.Remainder,
				Err:       err,
			}
			if ce.Near.IsTopLevel() {
				cerr.Construct = ce.Near.String()
			}
			return "", cerr
		}
		return "", err
	}
	if !hit {
		e.log.Debug("translation cache miss",
			zap.String("shorthand", body),
			zap.String("text", text))
	}
	return text, nil
}

// ClearCaches drops every cached translation and engine.
func (e *Env) ClearCaches() {
	e.translations.Clear()
	e.engines.Clear()
}

func (e *Env) regex(text string, opts Options) (engine.Regex, error) {
	return e.engines.Get(engine.Key{Text: text, Options: opts, Kind: e.kind})
}

// splitFlags separates a trailing "; flags" suffix from raw. A suffix that
// contains anything but flag letters is part of the body.
func splitFlags(raw string) (body, flags string) {
	i := strings.LastIndex(raw, "; ")
	if i < 0 {
		return raw, ""
	}
	flags = strings.TrimRight(raw[i+2:], " \t")
	if flags == "" || strings.TrimLeft(flags, "icmsfuICMSFU") != "" {
		return raw, ""
	}
	return raw[:i], flags
}

// Compile parses raw with the default Env.
func Compile(raw string) (*Pattern, error) {
	return Default().Compile(raw)
}

// MustCompile is like Compile but panics if raw cannot be compiled.
func MustCompile(raw string) *Pattern {
	return Default().MustCompile(raw)
}
