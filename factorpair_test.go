package main

import "testing"

func TestFactorPairCoversEveryPlayerOnce(t *testing.T) {
	numPlayers := 10
	pairings := FactorPair(numPlayers, 3)

	seen := make(map[int]bool)
	for _, p := range pairings {
		if seen[p.First] || seen[p.Second] {
			t.Fatalf("player appears twice in pairing: %+v", p)
		}
		seen[p.First] = true
		seen[p.Second] = true
	}
	if len(seen) != numPlayers {
		t.Fatalf("covered %d players, want %d", len(seen), numPlayers)
	}
}

func TestFactorPairLookaheadLeader(t *testing.T) {
	// With nrl=3 and 8 players, rank 0 should face rank 3.
	pairings := FactorPair(8, 3)
	if pairings[0].First != 0 || pairings[0].Second != 3 {
		t.Errorf("leader pairing = %+v, want {0 3}", pairings[0])
	}
}

func TestFactorPairOddAssignsBye(t *testing.T) {
	pairings := factorPairOdd(7, 2)

	byeCount := 0
	seen := make(map[int]bool)
	for _, p := range pairings {
		if p.Second == BYE {
			byeCount++
		} else {
			seen[p.Second] = true
		}
		seen[p.First] = true
	}
	if byeCount != 1 {
		t.Fatalf("bye count = %d, want 1", byeCount)
	}
	if len(seen) != 7 {
		t.Fatalf("covered %d players, want 7", len(seen))
	}
}

func TestFactorPairOddEvenHasNoBye(t *testing.T) {
	pairings := factorPairOdd(6, 2)
	for _, p := range pairings {
		if p.Second == BYE {
			t.Fatalf("even player count should not produce a bye: %+v", p)
		}
	}
}
