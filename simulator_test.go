package main

import (
	"math/rand"
	"testing"
)

// These tests use a 4-player field with more remaining rounds than
// floor(P/2), so SimulateOne's nrl cap is exercised.
func evenStandings() Standings {
	standings, _ := NewStandings([]PlayerScores{
		{Name: "Alice", Index: 0, OpponentIndexes: []int{1}, Scores: []int{420}},
		{Name: "Bob", Index: 1, OpponentIndexes: []int{0}, Scores: []int{390}},
		{Name: "Carol", Index: 2, OpponentIndexes: []int{3}, Scores: []int{400}},
		{Name: "Dave", Index: 3, OpponentIndexes: []int{2}, Scores: []int{410}},
	})
	return standings
}

func TestSimulateOneRecordsEveryTrial(t *testing.T) {
	standings := evenStandings()
	rng := rand.New(rand.NewSource(42))

	tally := SimulateOne(standings, 1, 4, 50, rng)
	if tally.Trials() != 50 {
		t.Errorf("Trials() = %d, want 50", tally.Trials())
	}
}

func TestSimulateOneDoesNotMutateInput(t *testing.T) {
	standings := evenStandings()
	wantWins := standings[0].Wins
	rng := rand.New(rand.NewSource(42))

	SimulateOne(standings, 1, 4, 20, rng)

	if standings[0].Wins != wantWins {
		t.Errorf("SimulateOne mutated caller's standings: wins=%d, want %d", standings[0].Wins, wantWins)
	}
}

func TestSimulateShardsSumToRequestedTrials(t *testing.T) {
	standings := evenStandings()
	master := rand.New(rand.NewSource(7))

	tally := Simulate(standings, 1, 5, 97, 4, master)
	if tally.Trials() != 97 {
		t.Errorf("Trials() = %d, want 97", tally.Trials())
	}
}

func TestSimulateSingleWorkerMatchesWorkerCountClamp(t *testing.T) {
	standings := evenStandings()
	master := rand.New(rand.NewSource(7))

	// More workers than trials should not panic and should still record
	// exactly n trials.
	tally := Simulate(standings, 1, 5, 2, 16, master)
	if tally.Trials() != 2 {
		t.Errorf("Trials() = %d, want 2", tally.Trials())
	}
}
