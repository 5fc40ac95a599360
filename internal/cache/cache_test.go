package cache

import (
	"sync"
	"testing"
)

// fill adds the keys to c with their own value.
func fill(c *Cache[int, int], keys ...int) {
	for _, k := range keys {
		c.GetOrCreate(k, func() int { return k })
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[int, int](0)
	calls := 0
	create := func() int {
		calls++
		return 42
	}
	for range 3 {
		if v := c.GetOrCreate(7, create); v != 42 {
			t.Fatalf("GetOrCreate = %d, want 42", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats hits/misses = %d/%d, want 2/1", s.Hits, s.Misses)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	fill(c, 1, 2, 3)

	// Touch 1 so 2 becomes the oldest.
	fill(c, 1, 4)

	if oldest, _ := c.order.Oldest(); oldest != 3 {
		t.Errorf("oldest = %d, want 3", oldest)
	}
	for _, k := range []int{1, 3, 4} {
		if _, ok := c.entries[k]; !ok {
			t.Errorf("entry %d was evicted", k)
		}
	}
	if _, ok := c.entries[2]; ok {
		t.Error("entry 2 survived eviction")
	}
	s := c.Stats()
	if s.Evictions != 1 || s.Capacity != 3 {
		t.Errorf("Stats evictions/capacity = %d/%d, want 1/3", s.Evictions, s.Capacity)
	}
}

func TestCacheDeleteFunc(t *testing.T) {
	c := New[int, int](0)
	fill(c, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	if n := c.DeleteFunc(func(k int) bool { return k%2 == 0 }); n != 5 {
		t.Errorf("DeleteFunc removed %d, want 5", n)
	}
	if c.Len() != 5 || c.order.Len() != 5 {
		t.Errorf("Len() = %d, order %d, want 5", c.Len(), c.order.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	if _, ok := c.order.Oldest(); ok {
		t.Error("order list not empty after Clear")
	}
	if s := c.Stats(); s.Misses != 10 {
		t.Errorf("Misses after Clear = %d, want 10", s.Misses)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				c.GetOrCreate((g*7+i)%32, func() int { return i })
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d exceeds limit", c.Len())
	}
	if c.order.Len() != c.Len() {
		t.Errorf("order length %d != entries %d", c.order.Len(), c.Len())
	}
}
