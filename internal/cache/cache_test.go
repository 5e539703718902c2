package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](4)

	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache reported a hit")
	}

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3)

	if v, ok := c.Get("a"); !ok || v != 3 {
		t.Errorf("Get(a) = %d, %v; want 3, true", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Limit != 4 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	for i := range 3 {
		c.Set(i, i)
	}

	c.Get(0) // 1 is now the oldest
	c.Set(3, 3)

	if _, ok := c.Get(1); ok {
		t.Error("key 1 should have been evicted")
	}
	for _, k := range []int{0, 2, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("key %d missing", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestCacheUpdateRefreshesRecency(t *testing.T) {
	c := New[int, string](2)
	c.Set(1, "a")
	c.Set(2, "b")
	c.Set(1, "c")
	c.Set(3, "d")

	if _, ok := c.Get(2); ok {
		t.Error("key 2 should have been evicted")
	}
	if v, _ := c.Get(1); v != "c" {
		t.Errorf("Get(1) = %q, want %q", v, "c")
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	for i := range 1000 {
		c.Set(i, i)
	}
	if c.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", c.Len())
	}
	if New[int, int](-5).Stats().Limit != 0 {
		t.Error("negative limit should mean unlimited")
	}
}

func TestCacheDeleteClear(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}

	// The deleted key no longer occupies a slot.
	c.Set("c", 3)
	if _, ok := c.Get("b"); !ok {
		t.Error("key b evicted after a delete freed a slot")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.Set("d", 4)
	c.Set("e", 5)
	c.Set("f", 6)
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				k := (g*31 + i) % 40
				c.Set(k, i)
				c.Get(k)
			}
		}()
	}
	wg.Wait()

	if c.Len() > 16 {
		t.Errorf("Len() = %d exceeds limit", c.Len())
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[string, int](1000)
	for i := range 100 {
		c.Set(strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("50")
	}
}

func BenchmarkCacheSetEvict(b *testing.B) {
	c := New[int, int](64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(i, i)
	}
}

func TestCachePeek(t *testing.T) {
	c := New[int, int](2)
	c.Set(1, 10)
	c.Set(2, 20)

	if v, ok := c.Peek(1); !ok || v != 10 {
		t.Errorf("Peek(1) = %d, %v", v, ok)
	}
	if _, ok := c.Peek(3); ok {
		t.Error("Peek(3) reported a hit")
	}

	// Peek does not refresh 1, so it is still the oldest.
	c.Set(3, 30)
	if _, ok := c.Peek(1); ok {
		t.Error("key 1 should have been evicted")
	}
	if st := c.Stats(); st.Hits != 0 || st.Misses != 0 {
		t.Errorf("Peek changed counters: %+v", st)
	}
}
