package uct

import (
	"sync/atomic"

	"github.com/chewxy/math32"

	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/point"
	"github.com/liushiwei/fuego/prior"
	"github.com/liushiwei/fuego/rootfilter"
)

// Worker runs the full MCTS loop against a shared Tree (spec.md §5
// "Scheduling model"): descend, optionally expand a leaf with prior
// knowledge, simulate on its own playout board, propagate the result
// back up. Per spec.md §5 "Shared vs. per-worker state", everything
// held by a Worker except the Tree pointer is exclusive to that worker;
// running one Worker per goroutine against a shared Tree is what makes
// the design race-free outside the Tree's own lock-free operations.
type Worker struct {
	ID     int
	Tree   *Tree
	Board  *board.Board
	Policy prior.Policy
	Prior  *prior.DefaultPriorKnowledge

	// RootFilter, if non-nil, is applied only when expanding the tree's
	// own root (spec.md §4.4 "Root filter output" is scoped to the root
	// move set, never an internal node): moves it excludes are left out
	// of the root's children entirely rather than merely deprioritized.
	RootFilter *rootfilter.Filter

	// ExplorationConstant weights the UCT exploration term; RaveBias
	// controls how quickly the RAVE estimate is replaced by direct
	// statistics as a child accumulates visits (the RAVE blending
	// formula used throughout the example pack's MCTS trees: beta
	// shrinks toward 0 as moveCount grows).
	ExplorationConstant float32
	RaveBias            float32

	// MaxPlayoutMoves bounds a single simulation so a pathological
	// position cannot hang a worker; a safety bound, not a tuning knob
	// real play depends on.
	MaxPlayoutMoves int
}

// NewWorker wires together one worker's private state: a playout board
// of the given size, a policy driving that same board, and a
// prior-knowledge engine driven by the policy. newPolicy must build a
// Policy bound to the board it is given (as prior.NewSimplePolicy
// does) — prior knowledge and the rollout below both read and play
// moves on that same instance.
func NewWorker(id int, tree *Tree, size int, newPolicy func(*board.Board) prior.Policy) (*Worker, error) {
	b, err := board.New(size)
	if err != nil {
		return nil, err
	}
	policy := newPolicy(b)
	pk, err := prior.NewDefaultPriorKnowledge(b, policy)
	if err != nil {
		return nil, err
	}
	return &Worker{
		ID:                  id,
		Tree:                tree,
		Board:               b,
		Policy:              policy,
		Prior:               pk,
		ExplorationConstant: math32.Sqrt(2),
		RaveBias:            1e-4,
		MaxPlayoutMoves:     size * size * 3,
	}, nil
}

// NewWorkerFromConfig is NewWorker plus config-driven knobs: the
// exploration constant and, when cfg.CheckLadders is set, a root filter
// built with cfg.MinLadderLength (spec.md §4.5's "SearchConfig" thread).
func NewWorkerFromConfig(id int, tree *Tree, cfg SearchConfig, newPolicy func(*board.Board) prior.Policy) (*Worker, error) {
	w, err := NewWorker(id, tree, cfg.BoardSize, newPolicy)
	if err != nil {
		return nil, err
	}
	if cfg.ExplorationConst > 0 {
		w.ExplorationConstant = cfg.ExplorationConst
	}
	if cfg.CheckLadders {
		f := rootfilter.New()
		f.MinLadderLength = cfg.MinLadderLength
		w.RootFilter = f
	}
	return w, nil
}

// RunBatch plays numSimulations games starting from reference, stopping
// early if stop becomes non-zero (spec.md §5 "Cancellation": cooperative,
// checked between simulations — an in-flight simulation always runs to
// completion).
func (w *Worker) RunBatch(reference board.ReferenceBoard, numSimulations int, stop *int32) error {
	for i := 0; i < numSimulations; i++ {
		if atomic.LoadInt32(stop) != 0 {
			return nil
		}
		if err := w.Board.Init(reference); err != nil {
			return err
		}
		w.simulateOnce()
	}
	return nil
}

// simulateOnce descends the tree from the root, expands at most one
// leaf, rolls out a random game on the playout board from there, and
// propagates the result back up the path it descended.
func (w *Worker) simulateOnce() {
	node := w.Tree.Root()
	path := []*Node{node}

	for node.HasChildren() {
		node = w.selectChild(node)
		w.Board.Play(node.Move(), w.Board.ToPlay())
		path = append(path, node)
	}

	w.tryExpand(node)
	blackWinProb := w.rollout()

	for i, n := range path {
		var father *Node
		if i > 0 {
			father = path[i-1]
		}
		w.Tree.AddGameResult(n, father, leafEval(blackWinProb, i))
		w.Tree.AddRaveValue(n, leafEval(blackWinProb, i))
	}
}

// leafEval flips the simulation result's sign by tree depth, since each
// ply alternates whose move is being evaluated (win probability for the
// mover at that node, where i=0 is the root with Black notionally to
// move, so odd depths hold Black's moves and even depths White's).
func leafEval(blackWinProb float32, depth int) float32 {
	if depth%2 == 1 {
		return blackWinProb
	}
	return 1 - blackWinProb
}

// tryExpand creates node's children from every legal move of the side
// to play (plus pass), seeding their statistics from prior knowledge
// exactly as ProcessPosition computed it (spec.md §4.3 "Output").
func (w *Worker) tryExpand(node *Node) {
	if node.HasChildren() {
		return
	}
	g := w.Board.Geometry()
	toPlay := w.Board.ToPlay()
	moves := make([]point.Point, 0, g.Size()*g.Size()+1)
	for _, p := range g.AllPoints() {
		if w.Board.IsLegal(p, toPlay) {
			moves = append(moves, p)
		}
	}
	moves = append(moves, g.Pass)

	if node == w.Tree.Root() && w.RootFilter != nil {
		excluded := make(map[point.Point]bool)
		for _, p := range w.RootFilter.Compute(w.Board) {
			excluded[p] = true
		}
		filtered := moves[:0:0]
		for _, m := range moves {
			if !excluded[m] {
				filtered = append(filtered, m)
			}
		}
		moves = filtered
	}
	if len(moves) == 0 {
		return
	}

	if !w.Tree.CreateChildren(w.ID, node, moves) {
		return
	}

	w.Prior.ProcessPosition()
	for i := int32(0); i < node.NumChildren(); i++ {
		child := w.Tree.Child(node, i)
		e := w.Prior.Get(child.Move())
		if e.Count > 0 {
			w.Tree.InitializeValue(node, child, e.Value, uint64(e.Count))
			w.Tree.InitializeRaveValue(child, e.Value, uint64(e.Count))
		}
	}
}

// selectChild picks the child maximizing a RAVE-blended UCT score,
// matching the formula used throughout the pack's MCTS trees: a convex
// combination of the direct mean and the RAVE mean, weighted by
// beta = raveCount / (raveCount + moveCount + 4*raveCount*moveCount*RaveBias),
// plus the standard UCT exploration bonus sqrt(ln(posCount)/moveCount).
// Unvisited children are tried before any blended comparison.
func (w *Worker) selectChild(node *Node) *Node {
	n := node.NumChildren()
	posCount := float32(node.PosCount())
	if posCount < 1 {
		posCount = 1
	}
	logPos := math32.Log(posCount)

	var best *Node
	bestScore := math32.Inf(-1)
	for i := int32(0); i < n; i++ {
		child := w.Tree.Child(node, i)
		score := w.uctScore(child, logPos)
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

func (w *Worker) uctScore(child *Node, logPos float32) float32 {
	moveCount := float32(child.MoveCount())
	if moveCount == 0 {
		return math32.Inf(1)
	}
	raveCount := float32(child.RaveCount())
	beta := raveCount / (raveCount + moveCount + 4*raveCount*moveCount*w.RaveBias)
	blended := beta*child.RaveMean() + (1-beta)*child.Mean()
	exploration := w.ExplorationConstant * math32.Sqrt(logPos/moveCount)
	return blended + exploration
}

// rollout plays a policy-driven game to completion (two consecutive
// passes) or MaxPlayoutMoves on w.Board from its current position, and
// returns Black's estimated win probability via simple area counting:
// 1 if Black has more area, 0 if White does, 0.5 on a tie (grounded on
// the teacher's playRandomGame/getEasyScore).
func (w *Worker) rollout() float32 {
	g := w.Board.Geometry()
	passes := 0
	for i := 0; i < w.MaxPlayoutMoves && passes < 2; i++ {
		w.Policy.StartPlayout()
		move := w.Policy.GenerateMove()
		w.Board.Play(move, w.Board.ToPlay())
		w.Policy.EndPlayout()
		if move == g.Pass {
			passes++
		} else {
			passes = 0
		}
	}
	switch score := areaScore(w.Board, g); {
	case score > 0:
		return 1
	case score < 0:
		return 0
	default:
		return 0.5
	}
}

// areaScore returns Black's area-scored point count minus White's: each
// stone counts for its own color, and each empty point counts for
// whichever single color borders it exclusively (a point bordered by
// both, or neither, scores for nobody). Grounded on the teacher's
// board.getEasyScore, generalized from its four-direction bitmask to
// CardinalNeighbors.
func areaScore(b *board.Board, g *point.Geometry) int {
	var black, white int
	for _, p := range g.AllPoints() {
		switch b.Color(p) {
		case point.Black:
			black++
		case point.White:
			white++
		case point.Empty:
			var sawBlack, sawWhite bool
			for _, n := range g.CardinalNeighbors(p) {
				switch b.Color(n) {
				case point.Black:
					sawBlack = true
				case point.White:
					sawWhite = true
				}
			}
			switch {
			case sawBlack && !sawWhite:
				black++
			case sawWhite && !sawBlack:
				white++
			}
		}
	}
	return black - white
}
