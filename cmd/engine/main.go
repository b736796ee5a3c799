// Command engine is CLI glue around the search packages: run a fixed
// number of MCTS simulations from an empty board and report the move
// with the most visits, analogous to the teacher's own main.go
// (sample-count argument, plain stderr error reporting) but wired to
// this repo's own Config/Worker/Tree stack instead of gongo's GTP loop,
// since a GTP front end is explicitly out of scope (SPEC_FULL.md §1).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"

	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/point"
	"github.com/liushiwei/fuego/prior"
	"github.com/liushiwei/fuego/refboard"
	"github.com/liushiwei/fuego/render"
	"github.com/liushiwei/fuego/uct"
)

func main() {
	size := flag.Int("size", 9, "board size")
	workers := flag.Int("workers", 4, "number of search workers")
	simulations := flag.Int("simulations", 10000, "total simulations across all workers")
	arenaCapacity := flag.Int("arena-capacity", 1<<16, "node capacity per worker arena")
	dotPath := flag.String("dot", "", "if set, dump the search tree as Graphviz DOT to this path")
	pngPath := flag.String("png", "", "if set, dump the final board position as PNG to this path")
	flag.Parse()

	if err := run(*size, *workers, *simulations, *arenaCapacity, *dotPath, *pngPath); err != nil {
		fmt.Fprintf(os.Stderr, "engine: %v\n", err)
		os.Exit(1)
	}
}

func run(size, workers, simulations, arenaCapacity int, dotPath, pngPath string) error {
	logger := log.New(os.Stderr, "[engine] ", log.Ltime)

	cfg := uct.NewSearchConfig(size, workers, arenaCapacity)
	cfg.Log = logger
	if err := cfg.Validate(); err != nil {
		return err
	}

	reference, err := refboard.New(size)
	if err != nil {
		return err
	}
	reference.SetLogger(logger)

	tree := uct.NewTree(workers, arenaCapacity)

	var wg sync.WaitGroup
	var stop int32
	perWorker := simulations / workers
	for id := 0; id < workers; id++ {
		w, err := uct.NewWorkerFromConfig(id, tree, cfg, func(b *board.Board) prior.Policy { return prior.NewSimplePolicy(b) })
		if err != nil {
			return err
		}
		wg.Add(1)
		go func(w *uct.Worker) {
			defer wg.Done()
			if err := w.RunBatch(reference, perWorker, &stop); err != nil {
				logger.Printf("worker %d: %v", w.ID, err)
				atomic.StoreInt32(&stop, 1)
			}
		}(w)
	}
	wg.Wait()

	root := tree.Root()
	best := bestChild(tree, root)
	if best == nil {
		logger.Print("search produced no children; passing")
	} else {
		g := reference.Geometry()
		logger.Printf("best move %s: visits=%d mean=%.3f", moveLabel(g, best.Move()), best.MoveCount(), best.Mean())
	}

	if dotPath != "" {
		if err := os.WriteFile(dotPath, []byte(tree.DumpDOT(root, 3)), 0o644); err != nil {
			return err
		}
	}
	if pngPath != "" {
		f, err := os.Create(pngPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := render.WritePNG(f, reference, reference.Geometry(), render.DefaultOptions()); err != nil {
			return err
		}
	}
	return nil
}

func bestChild(tree *uct.Tree, root *uct.Node) *uct.Node {
	var best *uct.Node
	var bestVisits uint64
	it := uct.NewChildIterator(tree, root)
	for it.Valid() {
		child := it.Node()
		if best == nil || child.MoveCount() > bestVisits {
			best = child
			bestVisits = child.MoveCount()
		}
		it.Next()
	}
	return best
}

// moveLabel renders a point as a conventional Go coordinate (skipping
// "I" to avoid confusion with "1"), or "pass" for the pass move.
func moveLabel(g *point.Geometry, p point.Point) string {
	if p == g.Pass {
		return "pass"
	}
	x, y := g.XY(p)
	letters := "ABCDEFGHJKLMNOPQRSTUVWXYZ"
	if x-1 < 0 || x-1 >= len(letters) {
		return "?"
	}
	return fmt.Sprintf("%c%d", letters[x-1], y)
}
