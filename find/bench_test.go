package find_test

import (
	"fmt"
	"testing"

	"github.com/jonwraymond/itemsearch/find"
)

func benchNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("node_%d_worker", i)
	}
	return names
}

func BenchmarkOne(b *testing.B) {
	names := benchNames(1000)
	target := names[500]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = find.One(names, func(s string) bool { return s == target })
	}
}

func BenchmarkSimilarString(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("items_%d", size), func(b *testing.B) {
			names := benchNames(size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = find.SimilarString("node_5_wrker", names)
			}
		})
	}
}

func BenchmarkSimilarOneByKeys(b *testing.B) {
	type entry struct{ name, ns string }
	items := make([]entry, 100)
	for i := range items {
		items[i] = entry{name: fmt.Sprintf("node_%d", i), ns: "/robot/"}
	}
	keys := func(e entry) map[string]string {
		return map[string]string{"name": e.name, "namespace": e.ns}
	}
	target := map[string]string{"name": "node_5O", "namespace": "/robot/"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = find.SimilarOneByKeys(target, items, keys)
	}
}
