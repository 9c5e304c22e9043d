package font

import (
	"sync"
	"testing"
)

// TestCacheBasicOperations tests basic Get/Set operations.
func TestCacheBasicOperations(t *testing.T) {
	cache := NewCache[string, int](0) // Unlimited

	if _, ok := cache.Get("key1"); ok {
		t.Error("Expected Get to return false for non-existent key")
	}

	cache.Set("key1", 42)
	if val, ok := cache.Get("key1"); !ok || val != 42 {
		t.Errorf("Expected Get to return (42, true), got (%v, %v)", val, ok)
	}

	cache.Set("key1", 100)
	if val, ok := cache.Get("key1"); !ok || val != 100 {
		t.Errorf("Expected Get to return (100, true), got (%v, %v)", val, ok)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

// TestCacheEviction tests that the least recently used entries go first.
func TestCacheEviction(t *testing.T) {
	cache := NewCache[int, int](4)
	for i := range 4 {
		cache.Set(i, i)
	}
	// Touch 0 so that 1 becomes the oldest.
	cache.Get(0)
	cache.Set(4, 4)

	if cache.Len() != 3 {
		t.Fatalf("Len() after eviction = %d, want 3", cache.Len())
	}
	for _, k := range []int{0, 4} {
		if _, ok := cache.Get(k); !ok {
			t.Errorf("recently used key %d was evicted", k)
		}
	}
	if _, ok := cache.Get(1); ok {
		t.Error("least recently used key 1 survived eviction")
	}
}

func TestCacheClear(t *testing.T) {
	cache := NewCache[string, int](0)
	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", cache.Len())
	}
	if _, ok := cache.Get("a"); ok {
		t.Error("Get after Clear() found an entry")
	}
}

// TestCacheConcurrentAccess tests thread-safety.
func TestCacheConcurrentAccess(t *testing.T) {
	cache := NewCache[int, int](64)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				cache.Set(g*1000+i, i)
				cache.Get(g*1000 + i/2)
			}
		}()
	}
	wg.Wait()

	if cache.Len() > 64 {
		t.Errorf("Len() = %d exceeds soft limit", cache.Len())
	}
}

func TestCoverage(t *testing.T) {
	c := newCoverage()

	if _, checked := c.get('a'); checked {
		t.Error("unset rune reported as checked")
	}

	for _, r := range []rune{'a', 'b', '\u4E2D', '\U0001F600'} {
		c.set(r, r != 'b')
	}
	tests := []struct {
		r       rune
		covered bool
	}{
		{'a', true},
		{'b', false},
		{'\u4E2D', true},
		{'\U0001F600', true},
	}
	for _, tt := range tests {
		covered, checked := c.get(tt.r)
		if !checked || covered != tt.covered {
			t.Errorf("get(%U) = (%v, %v), want (%v, true)", tt.r, covered, checked, tt.covered)
		}
	}

	// Overwriting clears the covered bit.
	c.set('a', false)
	if covered, _ := c.get('a'); covered {
		t.Error("set(false) did not clear coverage")
	}
	if _, checked := c.get('c'); checked {
		t.Error("neighbouring rune reported as checked")
	}
}
