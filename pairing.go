package main

import "math/rand"

// payoutPenalty is the prohibitive weight added when a payout-relevant
// leader would be paired against a player with no plausible shot at that
// leader's place.
const payoutPenalty = 1_000_000

// OptimizerConfig bundles the optimizer's tunables so callers (and tests)
// don't have to thread every parameter through by hand.
type OptimizerConfig struct {
	StartRound         int
	FinalRound         int
	Simulations        int
	Workers            int
	LowestRankedPayout int
	Hopefulness        []float64
}

// NextPairing produces the next-round pairing: it runs the simulator (C5),
// the contender analyzer (C6), builds the weighted complete graph described
// in spec §4.8, and solves a minimum-weight perfect matching over it. The
// result is an ordered list of (rank_i, rank_j) with rank_i < rank_j,
// sorted ascending by rank_i.
func NextPairing(standings Standings, repeats RepeatCounts, cfg OptimizerConfig, masterRand *rand.Rand) ([]Pairing, *Tally, []int) {
	numPlayers := len(standings)

	tally := Simulate(standings, cfg.StartRound, cfg.FinalRound, cfg.Simulations, cfg.Workers, masterRand)
	lowestPlacers := LowestPlacers(standings, tally, cfg.FinalRound-cfg.StartRound, cfg.Hopefulness)

	graphSize := numPlayers
	byeVertex := -1
	if numPlayers%2 == 1 {
		byeVertex = numPlayers
		graphSize = numPlayers + 1
	}

	var edges []matchEdge
	for i := 0; i < numPlayers; i++ {
		for j := i + 1; j < numPlayers; j++ {
			edges = append(edges, matchEdge{i: i, j: j, w: -pairingWeight(standings, repeats, lowestPlacers, cfg.LowestRankedPayout, i, j)})
		}
	}
	if byeVertex != -1 {
		for i := 0; i < numPlayers; i++ {
			edges = append(edges, matchEdge{i: i, j: byeVertex, w: 0})
		}
	}

	mate := maxWeightMatching(graphSize, edges, true)

	seen := make([]bool, graphSize)
	var pairings []Pairing
	for v := 0; v < graphSize; v++ {
		if seen[v] {
			continue
		}
		m := mate[v]
		if m == -1 {
			panic("pairing optimizer: matching is not perfect")
		}
		seen[v] = true
		seen[m] = true

		first, second := v, m
		if first > second {
			first, second = second, first
		}
		// byeVertex, when present, is numbered numPlayers — strictly larger
		// than every real rank — so it always sorts into `second`.
		if second == byeVertex {
			second = BYE
		}
		pairings = append(pairings, Pairing{First: first, Second: second})
	}

	sortPairingsByFirst(pairings)
	return pairings, tally, lowestPlacers
}

// pairingWeight computes the weight for the edge between ranks i<j, per
// spec §4.8 step 3.
func pairingWeight(standings Standings, repeats RepeatCounts, lowestPlacers []int, lowestRankedPayout, i, j int) int64 {
	numPlayers := len(standings)

	timesPlayed := repeats.TimesPlayed(standings[i].Player.Index, standings[j].Player.Index)
	repeat := int64(2*timesPlayed) * cube(int64(numPlayers)/3)

	rankDiff := cube(int64(j - i))

	var pairWithPlacer int64
	switch {
	case i > lowestRankedPayout:
		pairWithPlacer = 0
	case j <= lowestPlacers[i]:
		pairWithPlacer = 2 * cube(int64(lowestPlacers[i]-j))
	default:
		pairWithPlacer = payoutPenalty
	}

	return repeat + rankDiff + pairWithPlacer
}

func cube(x int64) int64 {
	return x * x * x
}

func sortPairingsByFirst(pairings []Pairing) {
	for i := 1; i < len(pairings); i++ {
		for j := i; j > 0 && pairings[j-1].First > pairings[j].First; j-- {
			pairings[j-1], pairings[j] = pairings[j], pairings[j-1]
		}
	}
}
