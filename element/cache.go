package element

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type cacheKey struct {
	kind  CellKind
	order int
}

func (k cacheKey) String() string { return fmt.Sprintf("%v/%d", k.kind, k.order) }

// Cache holds one RefElement per (kind, order). Concurrent requests for a
// missing key wait on a single construction. Failed constructions are not
// stored, so a later request retries.
type Cache struct {
	group    singleflight.Group
	mu       sync.RWMutex
	elements map[cacheKey]*RefElement
	logger   *zap.Logger
	build    func(CellKind, int) (*RefElement, error)
}

// NewCache returns an empty cache; a nil logger discards
func NewCache(logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		elements: make(map[cacheKey]*RefElement),
		logger:   logger,
		build:    New,
	}
}

func (c *Cache) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.mu.Lock()
	c.logger = logger
	c.mu.Unlock()
}

func (c *Cache) lookup(k cacheKey) (el *RefElement, logger *zap.Logger) {
	c.mu.RLock()
	el, logger = c.elements[k], c.logger
	c.mu.RUnlock()
	return
}

// Get returns the shared element for (kind, order), building it on first use
func (c *Cache) Get(kind CellKind, order int) (*RefElement, error) {
	k := cacheKey{kind, order}
	if el, _ := c.lookup(k); el != nil {
		return el, nil
	}
	v, err, _ := c.group.Do(k.String(), func() (interface{}, error) {
		el, logger := c.lookup(k)
		if el != nil {
			return el, nil
		}
		start := time.Now()
		el, err := c.build(kind, order)
		if err != nil {
			logger.Debug("reference element construction failed",
				zap.Stringer("kind", kind), zap.Int("order", order), zap.Error(err))
			return nil, err
		}
		c.mu.Lock()
		c.elements[k] = el
		c.mu.Unlock()
		logger.Debug("built reference element",
			zap.Stringer("kind", kind),
			zap.Int("order", order),
			zap.Int("np", el.Np),
			zap.Duration("elapsed", time.Since(start)))
		return el, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*RefElement), nil
}

// Len is the number of stored elements
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.elements)
}

var defaultCache = NewCache(nil)

// Lookup returns the element for (kind, order) from the process wide cache
func Lookup(kind CellKind, order int) (*RefElement, error) {
	return defaultCache.Get(kind, order)
}

// SetLogger sets the logger of the process wide cache
func SetLogger(logger *zap.Logger) { defaultCache.SetLogger(logger) }
