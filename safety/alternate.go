package safety

import (
	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/point"
)

// AlternateSafe extends unconditionalSafe into alternateSafe[c]: points
// provably safe assuming both sides play optimally, grounded on
// Find2Conn/Find2ConnForAll in GoSafetyUtil.cpp. A not-yet-safe chain of
// color is added once at least two of its liberties lie in the pool of
// empty points bordering the already-safe region; its stones join the
// safe set and its own liberties join the pool, growing outward one
// chain at a time until nothing more connects.
//
// The source's territory/miai proof that follows Find2ConnForAll's
// connection loop (MightMakeLife, Find2Libs over the remaining interior)
// is not ported: this extension stops once no more chains can connect,
// without also proving the interior empty points themselves can't
// become opponent territory. See DESIGN.md.
func AlternateSafe(b *board.Board, color point.Color, unconditional map[point.Point]bool) map[point.Point]bool {
	g := b.Geometry()
	safe := make(map[point.Point]bool, len(unconditional))
	for p := range unconditional {
		safe[p] = true
	}

	pool := make(map[point.Point]bool)
	for p := range safe {
		for _, n := range g.CardinalNeighbors(p) {
			if b.IsEmpty(n) {
				pool[n] = true
			}
		}
	}

	safeAnchor := make(map[point.Point]bool)
	for p := range safe {
		if b.Color(p) == color {
			safeAnchor[b.BlockAnchor(p)] = true
		}
	}

	var unsafeAnchors []point.Point
	seen := make(map[point.Point]bool)
	for _, p := range g.AllPoints() {
		if b.Color(p) == color {
			a := b.BlockAnchor(p)
			if !safeAnchor[a] && !seen[a] {
				seen[a] = true
				unsafeAnchors = append(unsafeAnchors, a)
			}
		}
	}

	for {
		changed := false
		remaining := unsafeAnchors[:0]
		for _, a := range unsafeAnchors {
			libs := b.Liberties(a)
			var found []point.Point
			for _, lib := range libs {
				if pool[lib] {
					found = append(found, lib)
					if len(found) >= 2 {
						break
					}
				}
			}
			if len(found) >= 2 {
				for _, s := range b.Stones(a) {
					safe[s] = true
				}
				for _, lib := range libs {
					pool[lib] = true
				}
				delete(pool, found[0])
				delete(pool, found[1])
				safeAnchor[a] = true
				changed = true
				continue
			}
			remaining = append(remaining, a)
		}
		unsafeAnchors = remaining
		if !changed || len(unsafeAnchors) == 0 {
			break
		}
	}

	return safe
}
