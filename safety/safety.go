package safety

import (
	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/point"
)

// Result bundles the per-color safety sets a root filter needs (spec.md
// §4.4). Both UnconditionalSafe and AlternateSafe are disjoint between
// Black and White; their union may not cover the whole board.
type Result struct {
	UnconditionalSafe  map[point.Color]map[point.Point]bool
	AlternateSafe      map[point.Color]map[point.Point]bool
	IsAllAlternateSafe bool
}

// FindSafePoints runs the Benson solver and its alternate-safety
// extension for both colors on b.
func FindSafePoints(b *board.Board) Result {
	g := b.Geometry()

	unconditional := map[point.Color]map[point.Point]bool{
		point.Black: UnconditionalSafe(b, point.Black),
		point.White: UnconditionalSafe(b, point.White),
	}
	alternate := map[point.Color]map[point.Point]bool{
		point.Black: AlternateSafe(b, point.Black, unconditional[point.Black]),
		point.White: AlternateSafe(b, point.White, unconditional[point.White]),
	}

	all := true
	for _, p := range g.AllPoints() {
		if !alternate[point.Black][p] && !alternate[point.White][p] {
			all = false
			break
		}
	}

	return Result{
		UnconditionalSafe:  unconditional,
		AlternateSafe:      alternate,
		IsAllAlternateSafe: all,
	}
}
