package cache

import (
	"context"
	"testing"
	"time"
)

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache[int64, string], t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[int64, string], t *testing.T) {
				c.Set(1, "a")
				if v, ok := c.Get(1); !ok || v != "a" {
					t.Errorf("expected value=a, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[int64, string], t *testing.T) {
				c.Set(1, "a")
				time.Sleep(time.Millisecond * 80)
				if _, ok := c.Get(1); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[int64, string], t *testing.T) {
				c.Set(1, "a")
				c.Set(2, "b")
				c.Set(3, "c")
				if _, ok := c.Get(1); ok {
					t.Errorf("expected key 1 to be evicted")
				}
				if v, ok := c.Get(2); !ok || v != "b" {
					t.Errorf("expected 2=b, got %v", v)
				}
				if v, ok := c.Get(3); !ok || v != "c" {
					t.Errorf("expected 3=c, got %v", v)
				}
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[int64, string], t *testing.T) {
				c.Set(1, "a")
				c.Delete(1)
				if _, ok := c.Get(1); ok {
					t.Errorf("expected key 1 to be deleted")
				}
				if c.Size() != 0 {
					t.Errorf("expected empty cache, got size %d", c.Size())
				}
			},
		},
		{
			name:     "set if epoch skips after invalidation",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[int64, string], t *testing.T) {
				epoch := c.Epoch()
				c.Delete(1)
				if c.SetIfEpoch(1, "stale", epoch) {
					t.Errorf("expected write with old epoch to be rejected")
				}
				if _, ok := c.Get(1); ok {
					t.Errorf("expected key 1 to stay empty")
				}
				if !c.SetIfEpoch(1, "fresh", c.Epoch()) {
					t.Errorf("expected write with current epoch to succeed")
				}
				if v, ok := c.Get(1); !ok || v != "fresh" {
					t.Errorf("expected 1=fresh, got %v", v)
				}
			},
		},
		{
			name:     "remove func evicts matching keys",
			capacity: 4,
			ttl:      time.Second,
			actions: func(c *LRUCache[int64, string], t *testing.T) {
				c.Set(1, "ahmet")
				c.Set(2, "mehmet")
				c.Set(3, "ahmet")
				epoch := c.Epoch()

				removed := c.RemoveFunc(func(_ int64, v string) bool { return v == "ahmet" })
				if removed != 2 {
					t.Errorf("expected 2 removed, got %d", removed)
				}
				if _, ok := c.Get(1); ok {
					t.Errorf("expected key 1 to be removed")
				}
				if v, ok := c.Get(2); !ok || v != "mehmet" {
					t.Errorf("expected 2=mehmet, got %v", v)
				}
				if c.Epoch() == epoch {
					t.Errorf("expected epoch to change")
				}
			},
		},
		{
			name:     "purge on stop",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[int64, string], t *testing.T) {
				ctx, cancel := context.WithCancel(context.Background())
				if err := c.Start(ctx); err != nil {
					t.Fatalf("start: %v", err)
				}
				c.Set(1, "a")
				cancel()

				deadline := time.Now().Add(time.Second)
				for c.Size() != 0 && time.Now().Before(deadline) {
					time.Sleep(5 * time.Millisecond)
				}
				if c.Size() != 0 {
					t.Errorf("expected cache to be purged")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRUCache[int64, string](tt.capacity, tt.ttl)
			tt.actions(c, t)
		})
	}
}
