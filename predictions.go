package main

// generateAllPartitions generates all ways to partition a set of indexes
// into groups of the specified sizes, in order. If maxCount > 0, generation
// stops after maxCount partitions.
//
// Through allPairings, this is used by the matching solver's tests to
// exhaustively enumerate every possible round pairing for small player
// counts (grouping indexes into pairs, size 2 throughout) so the solver's
// output can be checked against a brute-force maximum rather than trusted
// blindly.
func generateAllPartitions(indexes []int, groupSizes []int, maxCount int) [][][]int {
	var partitions [][][]int

	var recurse func(remaining []int, sizes []int, current [][]int)
	recurse = func(remaining []int, sizes []int, current [][]int) {
		if len(sizes) == 0 {
			if len(remaining) == 0 {
				part := make([][]int, len(current))
				for i, g := range current {
					gcopy := make([]int, len(g))
					copy(gcopy, g)
					part[i] = gcopy
				}
				partitions = append(partitions, part)
			}
			return
		}
		if maxCount > 0 && len(partitions) >= maxCount {
			return
		}
		size := sizes[0]
		n := len(remaining)
		if size > n {
			return
		}
		indices := make([]int, size)
		for i := range indices {
			indices[i] = i
		}
		for {
			group := make([]int, size)
			for i, idx := range indices {
				group[i] = remaining[idx]
			}
			chosen := make(map[int]bool)
			for _, v := range group {
				chosen[v] = true
			}
			newRemaining := make([]int, 0, n-size)
			for _, v := range remaining {
				if !chosen[v] {
					newRemaining = append(newRemaining, v)
				}
			}
			recurse(newRemaining, sizes[1:], append(current, group))

			if maxCount > 0 && len(partitions) >= maxCount {
				return
			}
			i := size - 1
			for ; i >= 0; i-- {
				if indices[i] != i+n-size {
					break
				}
			}
			if i < 0 {
				break
			}
			indices[i]++
			for j := i + 1; j < size; j++ {
				indices[j] = indices[j-1] + 1
			}
		}
	}

	recurse(indexes, groupSizes, nil)
	return partitions
}

// allPairings enumerates every perfect pairing of numPlayers indexes
// (0..numPlayers-1), including a bye slot (represented as -1) when
// numPlayers is odd, by partitioning into groups of two via
// generateAllPartitions.
func allPairings(numPlayers int) [][]Pairing {
	indexes := make([]int, numPlayers)
	for i := range indexes {
		indexes[i] = i
	}

	groupSizes := make([]int, numPlayers/2)
	for i := range groupSizes {
		groupSizes[i] = 2
	}

	working := indexes
	if numPlayers%2 == 1 {
		// Pull one player out to sit with the bye; the rest partition into pairs.
		var all [][]Pairing
		for byeIdx := 0; byeIdx < numPlayers; byeIdx++ {
			rest := make([]int, 0, numPlayers-1)
			for _, v := range indexes {
				if v != byeIdx {
					rest = append(rest, v)
				}
			}
			for _, part := range generateAllPartitions(rest, groupSizes, 0) {
				pairings := make([]Pairing, 0, len(part)+1)
				for _, g := range part {
					pairings = append(pairings, Pairing{First: g[0], Second: g[1]})
				}
				pairings = append(pairings, Pairing{First: byeIdx, Second: BYE})
				all = append(all, pairings)
			}
		}
		return all
	}

	var out [][]Pairing
	for _, part := range generateAllPartitions(working, groupSizes, 0) {
		pairings := make([]Pairing, 0, len(part))
		for _, g := range part {
			pairings = append(pairings, Pairing{First: g[0], Second: g[1]})
		}
		out = append(out, pairings)
	}
	return out
}
