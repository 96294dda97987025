// Package langcache caches language lookups in front of a LanguageStore.
//
// Languages change rarely and are read on every matrix render, so lookups by
// code are served from an in-memory LRU. Missing codes are not cached.
package langcache

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/karlseguin/ccache/v3"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
)

const (
	defaultMaxSize      = 1000
	defaultItemsToPrune = 50
	defaultTTL          = 10 * time.Minute
)

// Cache is a read-through language cache. It is safe for concurrent use.
type Cache struct {
	store storage.LanguageStore
	items *ccache.Cache[storage.Language]
	ttl   time.Duration
}

var _ storage.LanguageStore = (*Cache)(nil)

// New wraps store with an LRU cache. A non-positive ttl selects the default.
func New(store storage.LanguageStore, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{
		store: store,
		items: ccache.New(ccache.Configure[storage.Language]().MaxSize(defaultMaxSize).ItemsToPrune(defaultItemsToPrune)),
		ttl:   ttl,
	}
}

// GetLanguageByCode returns the cached language or loads it from the store.
func (c *Cache) GetLanguageByCode(ctx context.Context, code string) (storage.Language, error) {
	if c == nil || c.store == nil {
		return storage.Language{}, errors.New("language cache is not configured")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return storage.Language{}, storage.ErrNotFound
	}
	item, err := c.items.Fetch(code, c.ttl, func() (storage.Language, error) {
		return c.store.GetLanguageByCode(ctx, code)
	})
	if err != nil {
		return storage.Language{}, err
	}
	return item.Value(), nil
}

// ListLanguagesByCodes resolves each code through the cache and returns the
// known languages ordered by name.
func (c *Cache) ListLanguagesByCodes(ctx context.Context, codes []string) ([]storage.Language, error) {
	languages := make([]storage.Language, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		language, err := c.GetLanguageByCode(ctx, code)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		languages = append(languages, language)
	}
	sort.SliceStable(languages, func(i, j int) bool {
		if languages[i].Name != languages[j].Name {
			return languages[i].Name < languages[j].Name
		}
		return languages[i].Code < languages[j].Code
	})
	return languages, nil
}

// Stop releases the cache's background worker.
func (c *Cache) Stop() {
	if c == nil {
		return
	}
	c.items.Stop()
}
