package hypergraph

import (
	"cmp"
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Footprint returns an order-insensitive hash of a member multiset. Two
// hyperedges listing the same members (with the same multiplicities) in any
// order share a footprint.
func Footprint(members []int) uint64 {
	sorted := slices.Clone(members)
	slices.Sort(sorted)

	d := xxhash.New()
	var buf [8]byte
	for _, m := range sorted {
		binary.LittleEndian.PutUint64(buf[:], uint64(m))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// DuplicateEdges reports groups of hyperedges whose member multisets are
// identical. Each group lists edge IDs in ascending order, and groups are
// ordered by their first ID. Returns nil if every edge is structurally unique.
//
// Duplicates are legal; this is a diagnostic only.
func (g *Hypergraph) DuplicateEdges() [][]int {
	buckets := make(map[uint64][][]int)
	for _, id := range g.EdgeIDs() {
		fp := Footprint(g.edges[id].Members)
		groups := buckets[fp]
		placed := false
		for i, grp := range groups {
			// Footprints can collide; confirm against the group's first edge.
			if sameMembers(g.edges[grp[0]].Members, g.edges[id].Members) {
				groups[i] = append(grp, id)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []int{id})
		}
		buckets[fp] = groups
	}

	var dups [][]int
	for _, groups := range buckets {
		for _, grp := range groups {
			if len(grp) > 1 {
				dups = append(dups, grp)
			}
		}
	}
	slices.SortFunc(dups, func(a, b []int) int { return cmp.Compare(a[0], b[0]) })
	return dups
}

func sameMembers(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := slices.Clone(a), slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}
