package main

import "testing"

func sampleHistory() []PlayerScores {
	// Three players, two rounds already played, each row scored against the
	// opponent's score in the same round: 0 beat 1 and drew 2, 1 lost to 0
	// and beat 2, 2 beat 1 and drew 0.
	return []PlayerScores{
		{Name: "Alice", Index: 0, OpponentIndexes: []int{1, 2}, Scores: []int{420, 400}},
		{Name: "Bob", Index: 1, OpponentIndexes: []int{0, 2}, Scores: []int{390, 450}},
		{Name: "Carol", Index: 2, OpponentIndexes: []int{1, 0}, Scores: []int{420, 400}},
	}
}

func TestNewStandingsWinsAndSpread(t *testing.T) {
	standings, repeats := NewStandings(sampleHistory())

	if len(standings) != 3 {
		t.Fatalf("expected 3 standings, got %d", len(standings))
	}

	var bob *Standing
	for _, st := range standings {
		if st.Player.Name == "Bob" {
			bob = st
		}
	}
	if bob == nil {
		t.Fatal("Bob not found in standings")
	}
	// Bob: round1 390-420=-30 (loss), round2 450-400=50 (win) => wins=2, spread=20
	if bob.Wins != 2 {
		t.Errorf("Bob wins = %d, want 2", bob.Wins)
	}
	if bob.Spread != 20 {
		t.Errorf("Bob spread = %d, want 20", bob.Spread)
	}

	if got := repeats.TimesPlayed(0, 1); got != 1 {
		t.Errorf("TimesPlayed(0,1) = %d, want 1", got)
	}
	if got := repeats.TimesPlayed(0, 2); got != 1 {
		t.Errorf("TimesPlayed(0,2) = %d, want 1", got)
	}
}

func TestStandingsSortOrderInvariant(t *testing.T) {
	standings, _ := NewStandings(sampleHistory())
	for i := 1; i < len(standings); i++ {
		a, b := standings[i-1], standings[i]
		if a.Wins < b.Wins {
			t.Fatalf("rank %d has fewer wins than rank %d", i-1, i)
		}
		if a.Wins == b.Wins && a.Spread < b.Spread {
			t.Fatalf("rank %d has lower spread than rank %d at equal wins", i-1, i)
		}
	}
}

func TestStandingsResetAllRestoresCheckpoint(t *testing.T) {
	standings, _ := NewStandings(sampleHistory())
	var wantWins []int
	var wantSpread []int
	for _, st := range standings {
		wantWins = append(wantWins, st.Wins)
		wantSpread = append(wantSpread, st.Spread)
	}

	for _, st := range standings {
		st.Wins += 99
		st.Spread += 99
	}
	standings.ResetAll()

	for i, st := range standings {
		if st.Wins != wantWins[i] || st.Spread != wantSpread[i] {
			t.Fatalf("standing %d did not reset: wins=%d spread=%d, want wins=%d spread=%d",
				i, st.Wins, st.Spread, wantWins[i], wantSpread[i])
		}
	}
}

func TestStandingsCloneIsIndependent(t *testing.T) {
	standings, _ := NewStandings(sampleHistory())
	clone := standings.Clone()

	clone[0].Wins = 1000
	if standings[0].Wins == 1000 {
		t.Fatal("mutating the clone mutated the original")
	}
}

func TestRepeatCountsSymmetric(t *testing.T) {
	r := make(RepeatCounts)
	r.bump(3, 7)
	r.bump(7, 3)
	r.halve()
	if got := r.TimesPlayed(3, 7); got != 1 {
		t.Errorf("TimesPlayed(3,7) = %d, want 1", got)
	}
	if got := r.TimesPlayed(7, 3); got != 1 {
		t.Errorf("TimesPlayed(7,3) = %d, want 1", got)
	}
}
