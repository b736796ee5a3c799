package board

import "github.com/liushiwei/fuego/point"

// IsLegal reports whether p is a legal move for player: a pass, or an
// on-board empty point that is not suicide and not forbidden by simple
// ko (spec.md §4.1 "Legality").
func (b *Board) IsLegal(p point.Point, player point.Color) bool {
	g := b.geom
	if p == g.Pass {
		return true
	}
	if !g.InBoardRange(p) || g.IsBorder(p) || b.color[p] != point.Empty {
		return false
	}
	if b.isSuicide(p, player) {
		return false
	}
	if p == b.koPoint && b.toPlay == player {
		return false
	}
	return true
}

// IsSuicide reports whether playing p as player would leave its own new
// stone/block with no liberties, independent of ko. Exposed separately
// from IsLegal so callers that classify moves (e.g. prior knowledge's
// self-atari-or-suicide check) can test it without the ko restriction.
func (b *Board) IsSuicide(p point.Point, player point.Color) bool {
	return b.isSuicide(p, player)
}

// isSuicide uses only cached neighbor counts, no block walk: a move is
// suicide iff it has no empty neighbor, no friendly neighbor with at
// least 2 liberties, and no opponent neighbor with exactly 1 liberty.
func (b *Board) isSuicide(p point.Point, player point.Color) bool {
	g := b.geom
	if b.nuEmpty[p] > 0 {
		return false
	}
	opp := player.Opponent()
	if b.nuNeighbors[colorIndex(player)][p] > 0 {
		for _, n := range g.CardinalNeighbors(p) {
			if b.color[n] == player && b.blocks[b.blockIdx[n]].numLiberties() >= 2 {
				return false
			}
		}
	}
	if b.nuNeighbors[colorIndex(opp)][p] > 0 {
		for _, n := range g.CardinalNeighbors(p) {
			if b.color[n] == opp && b.blocks[b.blockIdx[n]].numLiberties() == 1 {
				return false
			}
		}
	}
	return true
}
