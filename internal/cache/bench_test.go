package cache

import "testing"

func BenchmarkCacheGetOrCreateHit(b *testing.B) {
	c := New[int, int](1000)
	for i := range 100 {
		c.GetOrCreate(i, func() int { return i })
	}

	for b.Loop() {
		c.GetOrCreate(50, func() int { return 0 })
	}
}

func BenchmarkCacheGetOrCreateEvicting(b *testing.B) {
	c := New[int, int](64)

	i := 0
	for b.Loop() {
		c.GetOrCreate(i%128, func() int { return i })
		i++
	}
}
