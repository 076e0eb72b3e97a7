package main

import (
	"math/rand"
	"testing"
)

func TestForcedWinProbabilitiesSkipsLeader(t *testing.T) {
	standings := freshStandings(6)
	rng := rand.New(rand.NewSource(9))

	results := ForcedWinProbabilities(standings, 0, 4, 20, rng)
	for _, r := range results {
		if r.CurrentRank == 0 {
			t.Fatalf("leader (rank 0) should never appear as a candidate")
		}
	}
}

func TestForcedWinProbabilitiesStopsAtMathematicalElimination(t *testing.T) {
	standings := freshStandings(6)
	// Give the leader an insurmountable lead: nobody else can catch up in
	// the single remaining round.
	standings[0].Wins = 20
	standings.Sort()
	rng := rand.New(rand.NewSource(9))

	results := ForcedWinProbabilities(standings, 3, 4, 10, rng)
	if len(results) != 0 {
		t.Fatalf("expected no contenders once mathematically eliminated, got %d", len(results))
	}
}

func TestForcedWinTrialAlwaysWinsWhenUnopposed(t *testing.T) {
	standings := freshStandings(2)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 20; i++ {
		won := forcedWinTrial(standings, 1, 0, 1, rng)
		if !won {
			t.Fatalf("forced-win candidate failed to win a 2-player single-round trial")
		}
	}
}

func TestFindRankPanicsWhenPlayerMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when player index is absent from standings")
		}
	}()
	findRank(freshStandings(3), 99)
}

func TestFactorPairMinusPlayerPanicsWhenLeaderNotRankZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when leaderRank != 0")
		}
	}()
	factorPairMinusPlayer(6, 1, 3, 2)
}

func TestFactorPairMinusPlayerPairsLeaderWithCandidate(t *testing.T) {
	pairings := factorPairMinusPlayer(8, 0, 3, 3)
	if pairings[0].First != 0 || pairings[0].Second != 3 {
		t.Errorf("first pairing = %+v, want {0 3}", pairings[0])
	}

	seen := make(map[int]bool)
	for _, p := range pairings {
		seen[p.First] = true
		if p.Second != BYE {
			seen[p.Second] = true
		}
	}
	if len(seen) != 8 {
		t.Errorf("covered %d players, want 8", len(seen))
	}
}
