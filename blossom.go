package main

// matchEdge is an internal edge representation for the min/max-weight
// matching solver: an undirected edge between vertices i and j carrying an
// integer weight.
type matchEdge struct {
	i, j int
	w    int64
}

// maxWeightMatching computes a maximum-weight matching on a general graph
// using the classic O(V^3) blossom-shrinking primal-dual algorithm
// (Edmonds/Gabow/Galil), in the structure widely ported from J. van
// Rantwijk's reference implementation. Per §9's design note ("Target
// languages without a stdlib implementation should embed a standard
// Blossom V or Kolmogorov port"), this is that embedded port — no pack
// dependency exposes a general min/max-weight-perfect-matching API (see
// DESIGN.md), so it is implemented directly here.
//
// When maxCardinality is true, the result is additionally required to have
// the maximum possible number of matched vertices — on the optimizer's
// complete graph (pairing.go) this always yields a perfect matching.
//
// Returns mate, where mate[v] is the vertex v is matched to, or -1 if v
// is unmatched.
func maxWeightMatching(nvertex int, edges []matchEdge, maxCardinality bool) []int {
	mate := make([]int, nvertex)
	for v := range mate {
		mate[v] = -1
	}
	if nvertex == 0 || len(edges) == 0 {
		return mate
	}

	nedge := len(edges)

	// Scale all weights by 2 so every dual-variable step below (some of
	// which would otherwise need half-integers) stays an exact integer.
	weight := make([]int64, nedge)
	var maxweight int64
	for k, e := range edges {
		weight[k] = 2 * e.w
		if weight[k] > maxweight {
			maxweight = weight[k]
		}
	}

	endpoint := make([]int, 2*nedge)
	neighbend := make([][]int, nvertex)
	for k, e := range edges {
		endpoint[2*k] = e.i
		endpoint[2*k+1] = e.j
		neighbend[e.i] = append(neighbend[e.i], 2*k+1)
		neighbend[e.j] = append(neighbend[e.j], 2*k)
	}

	// label: 0 = free, 1 = S (outer), 2 = T (inner); bit 4 is a scratch
	// "visited" breadcrumb used only inside scanBlossom.
	label := make([]int, 2*nvertex)
	labelend := make([]int, 2*nvertex)
	inblossom := make([]int, nvertex)
	for v := 0; v < nvertex; v++ {
		inblossom[v] = v
	}
	blossomparent := make([]int, 2*nvertex)
	for i := range blossomparent {
		blossomparent[i] = -1
	}
	blossomchilds := make([][]int, 2*nvertex)
	blossombase := make([]int, 2*nvertex)
	for v := 0; v < nvertex; v++ {
		blossombase[v] = v
	}
	for b := nvertex; b < 2*nvertex; b++ {
		blossombase[b] = -1
	}
	blossomendps := make([][]int, 2*nvertex)
	bestedge := make([]int, 2*nvertex)
	for i := range bestedge {
		bestedge[i] = -1
	}
	blossombestedges := make([][]int, 2*nvertex)

	unusedblossoms := make([]int, 0, nvertex)
	for b := 2*nvertex - 1; b >= nvertex; b-- {
		unusedblossoms = append(unusedblossoms, b)
	}

	dualvar := make([]int64, 2*nvertex)
	for v := 0; v < nvertex; v++ {
		dualvar[v] = maxweight
	}

	allowedge := make([]bool, nedge)
	var queue []int

	slack := func(k int) int64 {
		i, j := endpoint[2*k], endpoint[2*k+1]
		return dualvar[i] + dualvar[j] - weight[k]
	}

	var blossomLeaves func(b int, out []int) []int
	blossomLeaves = func(b int, out []int) []int {
		if b < nvertex {
			return append(out, b)
		}
		for _, c := range blossomchilds[b] {
			out = blossomLeaves(c, out)
		}
		return out
	}

	var assignLabel func(w, t, p int)
	assignLabel = func(w, t, p int) {
		b := inblossom[w]
		label[w] = t
		label[b] = t
		labelend[w] = p
		labelend[b] = p
		bestedge[w] = -1
		bestedge[b] = -1
		if t == 1 {
			queue = blossomLeaves(b, queue)
		} else if t == 2 {
			base := blossombase[b]
			assignLabel(endpoint[mate[base]], 1, mate[base]^1)
		}
	}

	scanBlossom := func(v, w int) int {
		var path []int
		base := -1
		for v != -1 || w != -1 {
			b := inblossom[v]
			if label[b]&4 != 0 {
				base = blossombase[b]
				break
			}
			path = append(path, b)
			label[b] |= 4
			if labelend[b] == -1 {
				v = -1
			} else {
				v = endpoint[labelend[b]]
				b = inblossom[v]
				v = endpoint[labelend[b]]
			}
			if w != -1 {
				v, w = w, v
			}
		}
		for _, b := range path {
			label[b] &^= 4
		}
		return base
	}

	var addBlossom func(base, k int)
	var expandBlossom func(b int, endstage bool)
	var augmentBlossom func(b, v int)

	addBlossom = func(base, k int) {
		v := endpoint[2*k]
		w := endpoint[2*k+1]
		bb := inblossom[base]
		bv := inblossom[v]
		bw := inblossom[w]

		b := unusedblossoms[len(unusedblossoms)-1]
		unusedblossoms = unusedblossoms[:len(unusedblossoms)-1]

		blossombase[b] = base
		blossomparent[b] = -1
		blossomparent[bb] = b

		path := []int{}
		endps := []int{}
		for bv != bb {
			blossomparent[bv] = b
			path = append(path, bv)
			endps = append(endps, labelend[bv])
			v = endpoint[labelend[bv]]
			bv = inblossom[v]
		}
		path = append(path, bb)
		reverseInts(path)
		reverseInts(endps)
		endps = append(endps, 2*k)

		for bw != bb {
			blossomparent[bw] = b
			path = append(path, bw)
			endps = append(endps, labelend[bw]^1)
			w = endpoint[labelend[bw]]
			bw = inblossom[w]
		}

		blossomchilds[b] = path
		blossomendps[b] = endps
		label[b] = 1
		labelend[b] = labelend[bb]
		dualvar[b] = 0

		for _, leaf := range blossomLeaves(b, nil) {
			if label[inblossom[leaf]] == 2 {
				queue = append(queue, leaf)
			}
			inblossom[leaf] = b
		}

		bestedgeto := make([]int, 2*nvertex)
		for i := range bestedgeto {
			bestedgeto[i] = -1
		}
		for _, bv := range path {
			var nblists [][]int
			if len(blossombestedges[bv]) == 0 {
				var lst []int
				for _, leaf := range blossomLeaves(bv, nil) {
					for _, p := range neighbend[leaf] {
						lst = append(lst, p/2)
					}
				}
				nblists = [][]int{lst}
			} else {
				nblists = [][]int{blossombestedges[bv]}
			}
			for _, nblist := range nblists {
				for _, k := range nblist {
					i, j := endpoint[2*k], endpoint[2*k+1]
					if inblossom[j] == b {
						i, j = j, i
					}
					bj := inblossom[j]
					if bj != b && label[bj] == 1 {
						if bestedgeto[bj] == -1 || slack(k) < slack(bestedgeto[bj]) {
							bestedgeto[bj] = k
						}
					}
				}
			}
			blossombestedges[bv] = nil
			bestedge[bv] = -1
		}
		var newbestedges []int
		for _, k := range bestedgeto {
			if k != -1 {
				newbestedges = append(newbestedges, k)
			}
		}
		blossombestedges[b] = newbestedges
		bestedge[b] = -1
		for _, k := range blossombestedges[b] {
			if bestedge[b] == -1 || slack(k) < slack(bestedge[b]) {
				bestedge[b] = k
			}
		}
	}

	expandBlossom = func(b int, endstage bool) {
		for _, s := range blossomchilds[b] {
			blossomparent[s] = -1
			if s < nvertex {
				inblossom[s] = s
			} else if endstage && dualvar[s] == 0 {
				expandBlossom(s, endstage)
			} else {
				for _, leaf := range blossomLeaves(s, nil) {
					inblossom[leaf] = s
				}
			}
		}

		if !endstage && label[b] == 2 {
			entrychild := inblossom[endpoint[labelend[b]^1]]
			j := indexOf(blossomchilds[b], entrychild)
			var jstep int
			var endptrick int
			if j&1 != 0 {
				j -= len(blossomchilds[b])
				jstep = 1
				endptrick = 0
			} else {
				jstep = -1
				endptrick = 1
			}
			p := labelend[b]
			for j != 0 {
				label[endpoint[p^1]] = 0
				idx := mod(j-endptrick, len(blossomendps[b]))
				label[endpoint[blossomendps[b][idx]^endptrick^1]] = 0
				assignLabel(endpoint[p^1], 2, p)
				allowedge[blossomendps[b][idx]/2] = true
				j += jstep
				idxp := mod(j-endptrick, len(blossomendps[b]))
				p = blossomendps[b][idxp] ^ endptrick
				allowedge[p/2] = true
				j += jstep
			}
			bv := blossomchilds[b][mod(j, len(blossomchilds[b]))]
			label[endpoint[p^1]] = 2
			label[bv] = 2
			labelend[endpoint[p^1]] = p
			labelend[bv] = p
			bestedge[bv] = -1
			j += jstep
			for blossomchilds[b][mod(j, len(blossomchilds[b]))] != entrychild {
				bv = blossomchilds[b][mod(j, len(blossomchilds[b]))]
				if label[bv] == 1 {
					j += jstep
					continue
				}
				var v int
				found := false
				for _, leaf := range blossomLeaves(bv, nil) {
					if label[leaf] != 0 {
						v = leaf
						found = true
						break
					}
				}
				if found {
					label[v] = 0
					label[endpoint[mate[blossombase[bv]]]] = 0
					assignLabel(v, 2, labelend[v])
				}
				j += jstep
			}
		}

		label[b] = -1
		labelend[b] = -1
		blossomchilds[b] = nil
		blossomendps[b] = nil
		blossombase[b] = -1
		blossombestedges[b] = nil
		bestedge[b] = -1
		unusedblossoms = append(unusedblossoms, b)
	}

	augmentBlossom = func(b, v int) {
		t := v
		for blossomparent[t] != b {
			t = blossomparent[t]
		}
		if t >= nvertex {
			augmentBlossom(t, v)
		}

		i := indexOf(blossomchilds[b], t)
		j := i
		var jstep int
		var endptrick int
		n := len(blossomchilds[b])
		if i&1 != 0 {
			j -= n
			jstep = 1
			endptrick = 0
		} else {
			jstep = -1
			endptrick = 1
		}
		for j != 0 {
			j += jstep
			t = blossomchilds[b][mod(j, n)]
			idx := mod(j-endptrick, n)
			p := blossomendps[b][idx] ^ endptrick
			if t >= nvertex {
				augmentBlossom(t, endpoint[p])
			}
			j += jstep
			t = blossomchilds[b][mod(j, n)]
			if t >= nvertex {
				augmentBlossom(t, endpoint[p^1])
			}
			mate[endpoint[p]] = p ^ 1
			mate[endpoint[p^1]] = p
		}
		rotated := append(append([]int{}, blossomchilds[b][i:]...), blossomchilds[b][:i]...)
		blossomchilds[b] = rotated
		rotatedEndps := append(append([]int{}, blossomendps[b][i:]...), blossomendps[b][:i]...)
		blossomendps[b] = rotatedEndps
		blossombase[b] = blossombase[blossomchilds[b][0]]
	}

	var augmentMatching func(k int)
	augmentMatching = func(k int) {
		v := endpoint[2*k]
		w := endpoint[2*k+1]
		for _, pair := range [][2]int{{v, 2*k + 1}, {w, 2 * k}} {
			s, p := pair[0], pair[1]
			for {
				bs := inblossom[s]
				if bs >= nvertex {
					augmentBlossom(bs, s)
				}
				mate[s] = p
				if labelend[bs] == -1 {
					break
				}
				t := endpoint[labelend[bs]]
				bt := inblossom[t]
				s = endpoint[labelend[bt]]
				j := endpoint[labelend[bt]^1]
				if bt >= nvertex {
					augmentBlossom(bt, j)
				}
				mate[j] = labelend[bt]
				p = labelend[bt] ^ 1
			}
		}
	}

	maxcardinality := maxCardinality

	for t := 0; t < nvertex; t++ {
		label = make([]int, 2*nvertex)
		bestedge = make([]int, 2*nvertex)
		for i := range bestedge {
			bestedge[i] = -1
		}
		for b := nvertex; b < 2*nvertex; b++ {
			blossombestedges[b] = nil
		}
		for k := range allowedge {
			allowedge[k] = false
		}
		queue = queue[:0]

		for v := 0; v < nvertex; v++ {
			if mate[v] == -1 && label[inblossom[v]] == 0 {
				assignLabel(v, 1, -1)
			}
		}

		augmented := false
		for {
			for len(queue) > 0 && !augmented {
				v := queue[len(queue)-1]
				queue = queue[:len(queue)-1]

				for _, p := range neighbend[v] {
					k := p / 2
					w := endpoint[p]
					if inblossom[v] == inblossom[w] {
						continue
					}
					var kslack int64
					if !allowedge[k] {
						kslack = slack(k)
						if kslack <= 0 {
							allowedge[k] = true
						}
					}
					if allowedge[k] {
						if label[inblossom[w]] == 0 {
							assignLabel(w, 2, p^1)
						} else if label[inblossom[w]] == 1 {
							base := scanBlossom(v, w)
							if base >= 0 {
								addBlossom(base, k)
							} else {
								augmentMatching(k)
								augmented = true
								break
							}
						} else if label[w] == 0 {
							label[w] = 2
							labelend[w] = p ^ 1
						}
					} else if label[inblossom[w]] == 1 {
						bv := inblossom[v]
						if bestedge[bv] == -1 || kslack < slack(bestedge[bv]) {
							bestedge[bv] = k
						}
					} else if label[w] == 0 {
						if bestedge[w] == -1 || kslack < slack(bestedge[w]) {
							bestedge[w] = k
						}
					}
				}
			}
			if augmented {
				break
			}

			deltatype := -1
			var delta int64
			var deltaedge, deltablossom int

			if !maxcardinality {
				deltatype = 1
				delta = maxInt64(0, minPositiveVertexDual(dualvar, nvertex))
			}

			for v := 0; v < nvertex; v++ {
				if label[inblossom[v]] == 0 && bestedge[v] != -1 {
					d := slack(bestedge[v])
					if deltatype == -1 || d < delta {
						delta = d
						deltatype = 2
						deltaedge = bestedge[v]
					}
				}
			}

			for b := 0; b < 2*nvertex; b++ {
				if blossomparent[b] == -1 && label[b] == 1 && bestedge[b] != -1 {
					kslack := slack(bestedge[b])
					d := kslack / 2
					if deltatype == -1 || d < delta {
						delta = d
						deltatype = 3
						deltaedge = bestedge[b]
					}
				}
			}

			for b := nvertex; b < 2*nvertex; b++ {
				if blossombase[b] >= 0 && blossomparent[b] == -1 && label[b] == 2 {
					if deltatype == -1 || dualvar[b] < delta {
						delta = dualvar[b]
						deltatype = 4
						deltablossom = b
					}
				}
			}

			if deltatype == -1 {
				deltatype = 1
				delta = maxInt64(minPositiveVertexDual(dualvar, nvertex), 0)
			}

			for v := 0; v < nvertex; v++ {
				switch label[inblossom[v]] {
				case 1:
					dualvar[v] -= delta
				case 2:
					dualvar[v] += delta
				}
			}
			for b := nvertex; b < 2*nvertex; b++ {
				if blossombase[b] >= 0 && blossomparent[b] == -1 {
					if label[b] == 1 {
						dualvar[b] += delta
					} else if label[b] == 2 {
						dualvar[b] -= delta
					}
				}
			}

			switch deltatype {
			case 1:
				// No further progress possible; end this stage.
				goto stageDone
			case 2:
				allowedge[deltaedge] = true
				i := endpoint[2*deltaedge]
				if label[inblossom[i]] == 0 {
					i = endpoint[2*deltaedge+1]
				}
				queue = append(queue, i)
			case 3:
				allowedge[deltaedge] = true
				queue = append(queue, endpoint[2*deltaedge])
			case 4:
				expandBlossom(deltablossom, false)
			}
		}
	stageDone:
		if !augmented {
			break
		}

		for b := nvertex; b < 2*nvertex; b++ {
			if blossomparent[b] == -1 && blossombase[b] >= 0 && label[b] == 1 && dualvar[b] == 0 {
				expandBlossom(b, true)
			}
		}
	}

	for v := 0; v < nvertex; v++ {
		if mate[v] != -1 {
			mate[v] = endpoint[mate[v]]
		}
	}
	return mate
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func minPositiveVertexDual(dualvar []int64, nvertex int) int64 {
	min := dualvar[0]
	for v := 1; v < nvertex; v++ {
		if dualvar[v] < min {
			min = dualvar[v]
		}
	}
	return min
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
