package life

import (
	"sort"
	"testing"
)

var benchSeeds = map[string][]Coordinate{
	"glider":     BuiltinTemplates()["glider"].Cells(),
	"testSample": BuiltinTemplates()["testSample"].Cells(),
	"soup":       RandomSoup(50, 50, 400),
}

func seedNames() (names []string) {
	names = make([]string, 0, len(benchSeeds))
	for k := range benchSeeds {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

func Benchmark_AdvanceOne(b *testing.B) {
	for _, name := range seedNames() {
		b.Run(name, func(b *testing.B) {
			e := NewEngine(benchSeeds[name])
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e.AdvanceOne()
			}
		})
	}
}

func Benchmark_AdvanceTo(b *testing.B) {
	seed := benchSeeds["testSample"]
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := NewEngine(seed)
		e.AdvanceTo(50)
	}
}
