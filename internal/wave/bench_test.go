package wave

import "testing"

func benchmarkSolve(b *testing.B, length float64) {
	p := Params{
		Length: length, Spacing: 10, TimeStep: 1,
		UpstreamDepth: 1, UpstreamDischarge: 10,
		DownstreamDepth: 0.5,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve100(b *testing.B)   { benchmarkSolve(b, 1000) }
func BenchmarkSolve1000(b *testing.B)  { benchmarkSolve(b, 10000) }
func BenchmarkSolve10000(b *testing.B) { benchmarkSolve(b, 100000) }
