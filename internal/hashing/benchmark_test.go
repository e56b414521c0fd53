package hashing

import "testing"

func BenchmarkZobrist(b *testing.B) {
	board := initialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Zobrist(board)
	}
}

func BenchmarkPerftCacheParallel(b *testing.B) {
	cache := NewPerftCache(0)
	b.RunParallel(func(pb *testing.PB) {
		var k Key
		for pb.Next() {
			cache.Put(k, 1, 1)
			cache.Get(k, 1)
			k++
		}
	})
}
