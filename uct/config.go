package uct

import (
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// SearchConfig threads every knob a search run needs (spec.md §4.5/§5),
// generalizing the teacher's own Config (robot.go's board size/komi/log
// fields) to this engine's worker-pool model. The zero value is not
// ready to use; build one with NewSearchConfig or fill in the required
// fields and call Validate.
type SearchConfig struct {
	BoardSize        int
	NumWorkers       int
	ArenaCapacity    int
	MinLadderLength  int
	CheckLadders     bool
	ExplorationConst float32
	Log              *log.Logger
}

// NewSearchConfig returns a SearchConfig with the teacher/rootfilter's
// own defaults (MinLadderLength 6, CheckLadders true) and a prefixed
// stderr logger, following robot.go's Config defaulting.
func NewSearchConfig(boardSize, numWorkers, arenaCapacity int) SearchConfig {
	return SearchConfig{
		BoardSize:       boardSize,
		NumWorkers:      numWorkers,
		ArenaCapacity:   arenaCapacity,
		MinLadderLength: 6,
		CheckLadders:    true,
		Log:             log.New(os.Stderr, "[uct] ", log.Ltime),
	}
}

// Validate reports every invalid field at once (following
// Elvenson-alphabeth/agent.go's multierror.Append accumulation) rather
// than stopping at the first problem, since a caller assembling a
// SearchConfig by hand benefits from seeing every mistake in one error.
func (c SearchConfig) Validate() error {
	var errs error
	if c.BoardSize < 2 || c.BoardSize > 25 {
		errs = multierror.Append(errs, errors.Errorf("board size %d out of range [2,25]", c.BoardSize))
	}
	if c.NumWorkers < 1 {
		errs = multierror.Append(errs, errors.Errorf("num workers %d must be >= 1", c.NumWorkers))
	}
	if c.ArenaCapacity < 1 {
		errs = multierror.Append(errs, errors.Errorf("arena capacity %d must be >= 1", c.ArenaCapacity))
	}
	if c.MinLadderLength < 0 {
		errs = multierror.Append(errs, errors.Errorf("min ladder length %d must be >= 0", c.MinLadderLength))
	}
	return errs
}

func (c SearchConfig) logger() *log.Logger {
	if c.Log != nil {
		return c.Log
	}
	return log.New(os.Stderr, "[uct] ", log.Ltime)
}
