package floydwarshall_test

import (
	"math/rand"
	"testing"

	"github.com/maraskyne/waypath/core"
	"github.com/maraskyne/waypath/floydwarshall"
)

// benchmarkAllPairs runs the engine on a random directed graph with
// n vertices and roughly 4n edges.
func benchmarkAllPairs(b *testing.B, n int) {
	rnd := rand.New(rand.NewSource(42))
	edges := make([]core.Edge, 0, 4*n)
	for i := 0; i < 4*n; i++ {
		edges = append(edges, core.Edge{
			From:   rnd.Intn(n),
			To:     rnd.Intn(n),
			Weight: 1 + rnd.Float64()*9,
		})
	}
	g, err := core.NewMatrix(n, edges, core.WithDirected(true))
	if err != nil {
		b.Fatalf("build graph: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = floydwarshall.FloydWarshall(g); err != nil {
			b.Fatalf("run: %v", err)
		}
	}
}

func BenchmarkFloydWarshall_128(b *testing.B)  { benchmarkAllPairs(b, 128) }
func BenchmarkFloydWarshall_512(b *testing.B)  { benchmarkAllPairs(b, 512) }
func BenchmarkFloydWarshall_1024(b *testing.B) { benchmarkAllPairs(b, 1024) }
