// Package catalogcache puts a Redis cache-aside layer in front of the two
// hot upstream fetches (full product list, full category list). Any cache
// failure degrades to a direct upstream call; the cache never makes a page
// fail that would otherwise render.
package catalogcache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/kydtrai11/dambody-storefront/internal/catalog"
)

// Catalog is the read surface shared by the upstream client and this cache.
type Catalog interface {
	Products(ctx context.Context, search, category string) ([]catalog.Product, error)
	Product(ctx context.Context, id string) (catalog.Product, error)
	Categories(ctx context.Context) ([]catalog.Category, error)
	Category(ctx context.Context, id string) (catalog.Category, error)
}

const (
	productsKey   = "catalog:products"
	categoriesKey = "catalog:categories"
)

type Cache struct {
	next Catalog
	rdb  *redis.Client
	ttl  time.Duration
}

func New(next Catalog, rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Cache{next: next, rdb: rdb, ttl: ttl}
}

// Products caches only the unfiltered list; search and category queries go
// straight upstream.
func (c *Cache) Products(ctx context.Context, search, category string) ([]catalog.Product, error) {
	if search != "" || category != "" {
		return c.next.Products(ctx, search, category)
	}
	var cached []catalog.Product
	if c.lookup(ctx, productsKey, &cached) {
		return cached, nil
	}
	fresh, err := c.next.Products(ctx, "", "")
	if err != nil {
		return nil, err
	}
	c.store(ctx, productsKey, fresh)
	return fresh, nil
}

func (c *Cache) Product(ctx context.Context, id string) (catalog.Product, error) {
	return c.next.Product(ctx, id)
}

func (c *Cache) Categories(ctx context.Context) ([]catalog.Category, error) {
	var cached []catalog.Category
	if c.lookup(ctx, categoriesKey, &cached) {
		return cached, nil
	}
	fresh, err := c.next.Categories(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, categoriesKey, fresh)
	return fresh, nil
}

func (c *Cache) Category(ctx context.Context, id string) (catalog.Category, error) {
	return c.next.Category(ctx, id)
}

func (c *Cache) lookup(ctx context.Context, key string, out interface{}) bool {
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("catalog cache get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		// stale format from an older build; drop it
		c.rdb.Del(ctx, key)
		return false
	}
	return true
}

func (c *Cache) store(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("catalog cache set %s: %v", key, err)
	}
}
