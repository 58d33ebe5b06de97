// Profiling:
// go build ./profile/extract
// ./extract
// go tool pprof -http=":8000" -nodefraction=0.001 ./extract mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/edwinsyarief/bundle"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type record struct {
	Comp1 comp1
	Comp2 comp2
	Comp3 comp3
}

func main() {
	count := 50
	iters := 10000
	records := 100
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, records)
	p.Stop()
}

func run(rounds, iters, numRecords int) {
	for range rounds {
		recs := make([]record, numRecords)
		for range iters {
			for i := range recs {
				rec := bundle.Of(&recs[i])
				c3, c1, _ := bundle.GetMutComponents2[comp3, comp1](rec)
				c2 := bundle.Component[comp2](rec)
				c1.V += c2.V + 1
				c3.W += c1.V
			}
		}
	}
}
