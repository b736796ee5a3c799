// Package safety implements the safety/ladder oracle (spec.md C6): Benson
// unconditional life, an alternate-safety region extension, and a ladder
// reader, grounded on Fuego's GoSafetyUtil.cpp and GoUctDefaultRootFilter.cpp
// (original_source/tags/VERSION_0_2_2/go/GoSafetyUtil.cpp,
// original_source/branches/OLYMPIAD2008/gouct/GoUctDefaultRootFilter.cpp).
//
// The full region/miai machinery in GoSafetyUtil.cpp (481 lines, covering
// dame points, eye shapes and miai-path territory proofs) is not ported
// verbatim; unconditionalSafe is the textbook Benson's-algorithm
// formulation — vital regions and chain pruning to a fixed point — using
// the same terms the source uses (safe, vital, anchors) without its
// GoRegionBoard machinery. See DESIGN.md.
package safety

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/point"
)

// regionNodeBase offsets region node IDs away from chain anchors, whose
// IDs are point.Point values (small positive ints); regions never reach
// this many per board.
const regionNodeBase = int64(1 << 30)

// region is a maximal set of connected empty points, with bookkeeping
// for Benson's algorithm: which chains of the color under test border
// it, and whether any opponent stone borders it at all.
type region struct {
	points          []point.Point
	anchors         map[point.Point]bool
	opponentBorders bool
}

// vitalFor reports whether every point of r has a neighboring stone
// belonging to the chain anchored at anchor — i.e. that chain alone
// surrounds the whole region, not just part of it.
func (r *region) vitalFor(b *board.Board, g *point.Geometry, color point.Color, anchor point.Point) bool {
	for _, p := range r.points {
		covered := false
		for _, n := range g.CardinalNeighbors(p) {
			if b.Color(n) == color && b.BlockAnchor(n) == anchor {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// findRegions flood-fills every maximal empty region on the board,
// recording which color-c chains border each one and whether any
// opponent stone does too.
func findRegions(b *board.Board, g *point.Geometry, color point.Color) []*region {
	opp := color.Opponent()
	visited := make(map[point.Point]bool)
	var regions []*region
	for _, p := range g.AllPoints() {
		if visited[p] || !b.IsEmpty(p) {
			continue
		}
		r := &region{anchors: make(map[point.Point]bool)}
		queue := []point.Point{p}
		visited[p] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			r.points = append(r.points, cur)
			for _, n := range g.CardinalNeighbors(cur) {
				switch b.Color(n) {
				case point.Empty:
					if !visited[n] {
						visited[n] = true
						queue = append(queue, n)
					}
				case color:
					r.anchors[b.BlockAnchor(n)] = true
				case opp:
					r.opponentBorders = true
				}
			}
		}
		regions = append(regions, r)
	}
	return regions
}

// UnconditionalSafe computes the Benson-safe point set for color: chains
// with at least two vital, pure regions (vital to that chain, bordered
// by no opponent stone), iterated to a fixed point by repeatedly
// discarding chains that fall below two such regions once other chains
// are discarded (spec.md §4.4 "unconditionalSafe[c]").
func UnconditionalSafe(b *board.Board, color point.Color) map[point.Point]bool {
	g := b.Geometry()
	regions := findRegions(b, g, color)

	candidates := make(map[point.Point]bool)
	for _, p := range g.AllPoints() {
		if b.Color(p) == color {
			candidates[b.BlockAnchor(p)] = true
		}
	}

	for {
		graph := simple.NewUndirectedGraph()
		for a := range candidates {
			graph.AddNode(simple.Node(int64(a)))
		}
		for i, r := range regions {
			if r.opponentBorders {
				continue
			}
			allCandidates := true
			for a := range r.anchors {
				if !candidates[a] {
					allCandidates = false
					break
				}
			}
			if !allCandidates {
				continue
			}
			regionID := regionNodeBase + int64(i)
			for a := range r.anchors {
				if r.vitalFor(b, g, color, a) {
					graph.SetEdge(simple.Edge{F: simple.Node(int64(a)), T: simple.Node(regionID)})
				}
			}
		}

		changed := false
		for a := range candidates {
			if graph.From(int64(a)).Len() < 2 {
				delete(candidates, a)
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	safe := make(map[point.Point]bool)
	for _, p := range g.AllPoints() {
		if b.Color(p) == color && candidates[b.BlockAnchor(p)] {
			safe[p] = true
		}
	}
	for _, r := range regions {
		if r.opponentBorders {
			continue
		}
		vital := false
		for a := range r.anchors {
			if candidates[a] && r.vitalFor(b, g, color, a) {
				vital = true
				break
			}
		}
		if vital {
			for _, p := range r.points {
				safe[p] = true
			}
		}
	}
	return safe
}
