package engine

import (
	"go.uber.org/zap"

	"github.com/kolkov/fpat/internal/cache"
)

// DefaultCacheSize is the default number of compiled engines kept resident.
const DefaultCacheSize = 1000

// Key identifies a compiled engine. Patterns with equal keys share one
// engine instance while it is resident.
type Key struct {
	Text    string
	Options Options
	Kind    Kind
}

// Cache memoizes compiled engines by Key. It is safe for concurrent use.
type Cache struct {
	memo *cache.Memo[Key, Regex]
	log  *zap.Logger
}

// NewCache creates an engine cache holding at most maxSize engines.
// A maxSize <= 0 disables eviction. A nil logger discards output.
func NewCache(maxSize int, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{memo: cache.New[Key, Regex](maxSize), log: log}
}

// Get returns the engine for key, compiling it on first use.
func (c *Cache) Get(key Key) (Regex, error) {
	re, hit, err := c.memo.Get(key, func() (Regex, error) {
		return Compile(key.Text, key.Options, key.Kind)
	})
	if err != nil {
		c.log.Warn("engine compile failed",
			zap.String("text", key.Text),
			zap.Stringer("engine", key.Kind),
			zap.Error(err))
		return nil, err
	}
	if !hit {
		c.log.Debug("engine cache miss",
			zap.String("text", key.Text),
			zap.String("options", key.Options.String()),
			zap.Stringer("engine", key.Kind))
	}
	return re, nil
}

// Len returns the number of resident engines.
func (c *Cache) Len() int {
	return c.memo.Len()
}

// Clear removes all resident engines.
func (c *Cache) Clear() {
	c.memo.Clear()
}
