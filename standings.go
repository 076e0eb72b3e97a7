package main

import "sort"

// Player is an immutable tournament participant: a display name and a
// stable 0-based index assigned at load time.
type Player struct {
	Name  string
	Index int
}

// Standing is a single player's mutable tournament record plus the
// checkpoint it was built from. Wins are tracked in half-wins (a match win
// is +2, a draw +1, a loss +0) so that draws never require floating point.
type Standing struct {
	Player Player

	Wins   int
	Spread int

	startWins   int
	startSpread int
}

// reset restores Wins/Spread to the checkpoint captured when the standing
// was first built from history.
func (s *Standing) reset() {
	s.Wins = s.startWins
	s.Spread = s.startSpread
}

// Standings is the ordered list of every player's tournament record. The
// ordering invariant — (Wins desc, Spread desc) — must hold after every
// operation that can perturb it; callers enforce this by calling Sort.
type Standings []*Standing

// PlayerScores is one player's per-round opponent index and game score
// history, as parsed from a tournament history file (see history.go).
type PlayerScores struct {
	Name            string
	Index           int
	OpponentIndexes []int
	Scores          []int
}

// NewStandings builds the initial Standings and the repeat-count table from
// a full tournament history. For each player it walks the rounds computing
// game_spread = own_score - opponent_score, incrementing Wins by 2/1/0 on
// positive/zero/negative and accumulating Spread. The same pass tallies how
// many times each unordered pair has met; history records each pairing from
// both sides, so the raw count is halved before being returned.
func NewStandings(history []PlayerScores) (Standings, RepeatCounts) {
	standings := make(Standings, len(history))
	repeats := make(RepeatCounts)

	for _, ps := range history {
		wins := 0
		spread := 0
		for round, score := range ps.Scores {
			oppIdx := ps.OpponentIndexes[round]
			gameSpread := score - history[oppIdx].Scores[round]
			switch {
			case gameSpread > 0:
				wins += 2
			case gameSpread == 0:
				wins++
			}
			spread += gameSpread
			repeats.bump(ps.Index, oppIdx)
		}
		standings[ps.Index] = &Standing{
			Player:      Player{Name: ps.Name, Index: ps.Index},
			Wins:        wins,
			Spread:      spread,
			startWins:   wins,
			startSpread: spread,
		}
	}

	repeats.halve()
	standings.Sort()
	return standings, repeats
}

// Sort enforces the ordering invariant: (Wins desc, Spread desc). Ties
// beyond spread fall back to player index so that ordering is stable
// across a single run.
func (s Standings) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		a, b := s[i], s[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Spread != b.Spread {
			return a.Spread > b.Spread
		}
		return a.Player.Index < b.Player.Index
	})
}

// ResetAll restores every standing to its checkpoint. This is the standard
// path between simulation trials; callers must re-sort afterward since
// reset does not preserve rank order.
func (s Standings) ResetAll() {
	for _, st := range s {
		st.reset()
	}
}

// Clone makes an independent copy of the standings slice, duplicating the
// underlying *Standing values so a worker goroutine can mutate its own copy
// without disturbing another's (see simulator.go).
func (s Standings) Clone() Standings {
	out := make(Standings, len(s))
	for i, st := range s {
		cp := *st
		out[i] = &cp
	}
	return out
}

// RepeatCounts is an unordered mapping from an unordered pair of player
// indices to how many times they have already met. Read-only once
// constructed by NewStandings.
type RepeatCounts map[[2]int]int

func repeatKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func (r RepeatCounts) bump(a, b int) {
	r[repeatKey(a, b)]++
}

func (r RepeatCounts) halve() {
	for k, v := range r {
		r[k] = v / 2
	}
}

// TimesPlayed returns how many times players at indices a and b have met.
func (r RepeatCounts) TimesPlayed(a, b int) int {
	return r[repeatKey(a, b)]
}
