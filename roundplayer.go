package main

import "math/rand"

// BYE is the sentinel second element of a Pairing denoting a bye partner.
const BYE = -1

// byeSpread and byeWins are what a bye is worth: a full win plus 50 points
// of spread, per the standard bye-scoring convention.
const (
	byeSpread = 50
	byeWins   = 2
)

// spreadHalfWidth bounds the symmetric uniform spread draw: spread is drawn
// from {-200, ..., 200} (401 possible outcomes). Matching the source's
// `200 - randint(0, 401)`, idiomatically `200 - rng.Intn(401)`.
const spreadHalfWidth = 200

// Pairing is one pair of standings-rank positions. Second is BYE when the
// first position draws a bye for the round.
type Pairing struct {
	First  int
	Second int
}

// noForcedWin indicates no player in this round is being coerced to win
// (see PlayRound's forcedWinPlayer parameter).
const noForcedWin = -1

// PlayRound applies a drawn outcome to every pairing and re-sorts
// standings afterward. If forcedWinPlayer is >= 0 and participates in a
// pairing, that pairing's spread is coerced so forcedWinPlayer wins by at
// least one point — used by the forced-win simulator (C7); pass
// noForcedWin from ordinary simulation.
func PlayRound(pairings []Pairing, standings Standings, rng *rand.Rand, forcedWinPlayer int) {
	for _, p := range pairings {
		if p.Second == BYE {
			standings[p.First].Spread += byeSpread
			standings[p.First].Wins += byeWins
			continue
		}

		spread := spreadHalfWidth - rng.Intn(2*spreadHalfWidth+1)

		if forcedWinPlayer >= 0 {
			switch forcedWinPlayer {
			case p.First:
				spread = abs(spread) + 1
			case p.Second:
				spread = -(abs(spread) + 1)
			}
		}

		firstWins, secondWins := 1, 1
		switch {
		case spread > 0:
			firstWins, secondWins = 2, 0
		case spread < 0:
			firstWins, secondWins = 0, 2
		}

		standings[p.First].Spread += spread
		standings[p.First].Wins += firstWins
		standings[p.Second].Spread -= spread
		standings[p.Second].Wins += secondWins
	}

	standings.Sort()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
