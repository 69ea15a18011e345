package qtree

import (
	"math/rand"
	"testing"
)

func benchTree(b *testing.B, points int) *Tree[float64, int] {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	qt := New[float64, int](0, 0, 10000, 10000)
	for i := 0; i != points; i++ {
		_ = qt.Insert(rng.Float64()*10000, rng.Float64()*10000, i)
	}
	return qt
}

func BenchmarkInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	qt := New[float64, int](0, 0, 10000, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = qt.Insert(rng.Float64()*10000, rng.Float64()*10000, i)
	}
}

func BenchmarkSearch(b *testing.B) {
	qt := benchTree(b, 100000)
	rng := rand.New(rand.NewSource(2))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		qt.Search(rng.Float64()*10000, rng.Float64()*10000, 50)
	}
}

func BenchmarkFindNearest(b *testing.B) {
	qt := benchTree(b, 100000)
	rng := rand.New(rand.NewSource(3))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		qt.FindNearest(rng.Float64()*10000, rng.Float64()*10000, 50)
	}
}

func BenchmarkSyncTreeParallelSearch(b *testing.B) {
	s := Synchronized(benchTree(b, 100000))
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		rng := rand.New(rand.NewSource(rand.Int63()))
		for pb.Next() {
			s.Search(rng.Float64()*10000, rng.Float64()*10000, 50)
		}
	})
}
