package search_test

import (
	"testing"

	"github.com/katalvlaran/snakebox/search"
)

func BenchmarkSearch_Q5(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := search.Search(5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Q6Pruned(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := search.Search(6, search.WithMemoryLimit(1<<18))
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearchParallel_Q6Pruned(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := search.SearchParallel(6,
			search.WithWorkers(4),
			search.WithMemoryLimit(1<<18),
		)
		if err != nil {
			b.Fatal(err)
		}
	}
}
