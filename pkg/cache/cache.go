package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRUCache ограниченный по размеру кэш с временем жизни записей.
// Просроченные записи вычищаются самой библиотекой в фоне.
//
// Каждое удаление увеличивает эпоху. Читатель, который заполняет кэш из
// базы, запоминает эпоху до чтения и пишет через SetIfEpoch: если за это
// время что-то инвалидировали, устаревшее значение в кэш не попадёт.
type LRUCache[K comparable, V any] struct {
	lru *expirable.LRU[K, V]

	mu    sync.Mutex
	epoch uint64
}

func NewLRUCache[K comparable, V any](capacity int, ttl time.Duration) *LRUCache[K, V] {
	return &LRUCache[K, V]{
		lru: expirable.NewLRU[K, V](capacity, nil, ttl),
	}
}

func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	return c.lru.Get(key)
}

func (c *LRUCache[K, V]) Set(key K, value V) {
	c.lru.Add(key, value)
}

func (c *LRUCache[K, V]) Epoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}

// SetIfEpoch записывает значение, только если с момента epoch не было
// инвалидаций.
func (c *LRUCache[K, V]) SetIfEpoch(key K, value V, epoch uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return false
	}
	c.lru.Add(key, value)
	return true
}

func (c *LRUCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.lru.Remove(key)
}

// RemoveFunc удаляет записи, для которых fn вернула true, и возвращает
// их количество.
func (c *LRUCache[K, V]) RemoveFunc(fn func(key K, value V) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++

	removed := 0
	for _, key := range c.lru.Keys() {
		value, ok := c.lru.Peek(key)
		if ok && fn(key, value) {
			c.lru.Remove(key)
			removed++
		}
	}
	return removed
}

func (c *LRUCache[K, V]) Size() int {
	return c.lru.Len()
}

// Start очищает кэш при остановке приложения.
func (c *LRUCache[K, V]) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		c.mu.Lock()
		defer c.mu.Unlock()
		c.epoch++
		c.lru.Purge()
	}()
	return nil
}
