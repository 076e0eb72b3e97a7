package main

import "testing"

func TestHopefulnessOutOfRangeIsZero(t *testing.T) {
	schedule := []float64{0, 0, 0.1}
	if got := hopefulness(schedule, -1); got != 0 {
		t.Errorf("hopefulness(-1) = %v, want 0", got)
	}
	if got := hopefulness(schedule, 10); got != 0 {
		t.Errorf("hopefulness(10) = %v, want 0", got)
	}
	if got := hopefulness(schedule, 2); got != 0.1 {
		t.Errorf("hopefulness(2) = %v, want 0.1", got)
	}
}

func TestLowestPlacersMonotonicWithZeroHopefulness(t *testing.T) {
	standings := freshStandings(4)
	tally := NewTally(4)
	// Every trial finishes in the same order: rank i always finishes i.
	for trial := 0; trial < 10; trial++ {
		tally.Record(standings)
	}

	// remainingRounds well beyond the schedule forces h=0, so every place k
	// should resolve to the highest rank ever observed there: k itself.
	lowest := LowestPlacers(standings, tally, 99, DefaultHopefulness)
	for k, r := range lowest {
		if r != k {
			t.Errorf("lowest[%d] = %d, want %d", k, r, k)
		}
	}
}

func TestLowestPlacersIgnoresRareOutcomesBelowThreshold(t *testing.T) {
	standings := freshStandings(3)
	tally := NewTally(3)

	// 99 trials where rank order never changes, plus 1 trial where rank 2
	// grabs place 0 — a single-trial fluke that should not move lowest[0]
	// once a hopefulness threshold is in effect.
	for i := 0; i < 99; i++ {
		tally.Record(standings)
	}
	flukeOrder := Standings{standings[2], standings[0], standings[1]}
	tally.Record(flukeOrder)

	schedule := []float64{0, 0, 0.05}
	lowest := LowestPlacers(standings, tally, 2, schedule)
	if lowest[0] != 0 {
		t.Errorf("lowest[0] = %d, want 0 (fluke below threshold)", lowest[0])
	}
}
