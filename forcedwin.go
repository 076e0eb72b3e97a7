package main

import "math/rand"

// ForcedWinResult is one contender's estimated probability of winning the
// tournament outright under the "always paired with the leader, always
// wins" policy.
type ForcedWinResult struct {
	Player      Player
	CurrentRank int
	WinRate     float64
}

// ForcedWinProbabilities estimates, for each player X currently ranked 1
// upward (rank 0 is the leader and is never a candidate), P(X ends rank 0)
// under the policy that X is always paired against the current leader and
// always wins that pairing. Ranks are scanned from the top down; the first
// mathematically eliminated candidate — (leader.Wins-X.Wins)/2 exceeds
// remaining rounds plus one — stops the scan, since every lower-ranked
// player is eliminated too.
func ForcedWinProbabilities(standings Standings, startRound, finalRound, n int, rng *rand.Rand) []ForcedWinResult {
	remainingRounds := finalRound - startRound
	leaderWins := standings[0].Wins

	var results []ForcedWinResult
	for rank := 1; rank < len(standings); rank++ {
		candidate := standings[rank]
		if float64(leaderWins-candidate.Wins)/2 > float64(remainingRounds+1) {
			break
		}

		wins := 0
		for trial := 0; trial < n; trial++ {
			if forcedWinTrial(standings, candidate.Player.Index, startRound, finalRound, rng) {
				wins++
			}
		}

		results = append(results, ForcedWinResult{
			Player:      candidate.Player,
			CurrentRank: rank,
			WinRate:     float64(wins) / float64(n),
		})
	}
	return results
}

// forcedWinTrial plays a single trial of the forced-win policy for the
// player with the given index, returning true if that player finishes the
// trial at rank 0.
func forcedWinTrial(standings Standings, playerIndex, startRound, finalRound int, rng *rand.Rand) bool {
	work := standings.Clone()

	for round := startRound; round < finalRound; round++ {
		nrl := finalRound - round
		xRank := findRank(work, playerIndex)
		pairings := factorPairMinusPlayer(len(work), 0, xRank, nrl)
		PlayRound(pairings, work, rng, xRank)

		if findRank(work, playerIndex) == 0 {
			return true
		}
	}
	return false
}

// findRank returns the current position of the player with the given
// stable index within standings, which must be sorted.
func findRank(standings Standings, playerIndex int) int {
	for i, st := range standings {
		if st.Player.Index == playerIndex {
			return i
		}
	}
	panic("forcedwin: player not present in standings")
}

// factorPairMinusPlayer removes the leader (assumed to be at rank 0, per
// the standings ordering invariant — see DESIGN.md Open Question 2) and the
// candidate at xRank, factor-pairs the remainder with nrl capped at
// floor(P'/2), and prepends the (leader, candidate) pair. Pairings are
// expressed in the original (pre-removal) rank indices, so no reinsertion
// step is needed: positions are never actually reordered.
func factorPairMinusPlayer(numPlayers, leaderRank, xRank, nrl int) []Pairing {
	if leaderRank != 0 {
		panic("factorPairMinusPlayer: leader must be at rank 0")
	}

	remaining := make([]int, 0, numPlayers-2)
	for i := 0; i < numPlayers; i++ {
		if i == leaderRank || i == xRank {
			continue
		}
		remaining = append(remaining, i)
	}

	pPrime := len(remaining)
	nrlAdj := nrl
	if half := pPrime / 2; nrlAdj > half {
		nrlAdj = half
	}

	subPairs := factorPairOdd(pPrime, nrlAdj)
	pairings := make([]Pairing, 0, len(subPairs)+1)
	pairings = append(pairings, Pairing{First: leaderRank, Second: xRank})
	for _, sp := range subPairs {
		second := BYE
		if sp.Second != BYE {
			second = remaining[sp.Second]
		}
		pairings = append(pairings, Pairing{First: remaining[sp.First], Second: second})
	}
	return pairings
}
