package main

import (
	"math/rand"
	"runtime"
	"sync"
)

// SimulateOne runs n independent continuations of the tournament on a
// single goroutine, starting from a private copy of standings, and returns
// the resulting tally. Each trial plays rounds start..final-1 with the
// deterministic factor-pair schedule (nrl capped at floor(P/2), and the last
// rank given a bye when P is odd), records the final order, then resets
// to the checkpoint for the next trial. RNG state persists across trials
// within a single call (consistent with §5: "a single stream of
// pseudorandom integers is consumed by the round player").
func SimulateOne(standings Standings, startRound, finalRound, n int, rng *rand.Rand) *Tally {
	work := standings.Clone()
	tally := NewTally(len(work))

	for trial := 0; trial < n; trial++ {
		for round := startRound; round < finalRound; round++ {
			nrl := finalRound - round
			if half := len(work) / 2; nrl > half {
				nrl = half
			}
			pairings := factorPairOdd(len(work), nrl)
			PlayRound(pairings, work, rng, noForcedWin)
		}
		tally.Record(work)
		work.ResetAll()
		work.Sort()
	}

	return tally
}

// Simulate runs N independent continuations of the tournament, sharding
// trials across workers goroutines the way the teacher's Simulation.Run
// shards Monte Carlo batches: each worker gets its own *rand.Rand (seeded
// from a master source so the whole run is reproducible from a single
// seed) and its own standings checkpoint copy, and partial tallies are
// summed after a WaitGroup barrier — tally merging is commutative, so
// shard order never affects the result.
func Simulate(standings Standings, startRound, finalRound, n, workers int, masterRand *rand.Rand) *Tally {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	batchSize := n / workers
	remainder := n % workers

	var wg sync.WaitGroup
	partials := make([]*Tally, workers)

	for w := 0; w < workers; w++ {
		size := batchSize
		if w < remainder {
			size++
		}
		if size == 0 {
			continue
		}
		seed := masterRand.Int63()
		wg.Add(1)
		go func(idx, size int, seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			partials[idx] = SimulateOne(standings, startRound, finalRound, size, rng)
		}(w, size, seed)
	}
	wg.Wait()

	total := NewTally(len(standings))
	for _, p := range partials {
		if p != nil {
			total.Merge(p)
		}
	}
	return total
}

// DefaultWorkers mirrors the teacher's `-k` flag default of runtime.NumCPU().
func DefaultWorkers() int {
	return runtime.NumCPU()
}
