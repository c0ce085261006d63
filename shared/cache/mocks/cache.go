package mocks

import (
	"context"

	"github.com/minhquach8/hotel-booking/shared/cache"
)

type noopCache struct {
}

// Get implements cache.RedisCache. It always misses.
func (c *noopCache) Get(_ context.Context, _ string, _ any) error {
	return cache.Nil
}

// Save implements cache.RedisCache.
func (c *noopCache) Save(_ context.Context, _ string, _ any, _ int) error {
	return nil
}

// Delete implements cache.RedisCache.
func (c *noopCache) Delete(_ context.Context, _ string) error {
	return nil
}

// Clear implements cache.RedisCache.
func (c *noopCache) Clear(_ context.Context, _ string) error {
	return nil
}

func NewCache() cache.RedisCache {
	return &noopCache{}
}
