package minimax

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/montplusa/quixo-battle-game/pkg/game"
)

// Options configures a MinimaxAI.
type Options struct {
	Depth     int
	Evaluator Evaluator
	// Label is appended to the agent name, e.g. to tell evaluators apart.
	Label string
}

// DefaultOptions searches DefaultDepth plies with LineEvaluator.
func DefaultOptions() Options {
	return Options{Depth: DefaultDepth, Evaluator: LineEvaluator{}}
}

// MinimaxAI plays the move found by alpha-beta search, always evaluating
// from the perspective of the player whose turn it is.
type MinimaxAI struct {
	searcher *Searcher
	label    string
}

// New returns a MinimaxAI. Zero fields of opts fall back to DefaultOptions.
func New(opts Options) *MinimaxAI {
	if opts.Depth <= 0 {
		opts.Depth = DefaultDepth
	}
	return &MinimaxAI{
		searcher: NewSearcher(opts.Depth, opts.Evaluator),
		label:    opts.Label,
	}
}

func (ai *MinimaxAI) Name() string {
	if ai.label != "" {
		return fmt.Sprintf("minimax-%s(depth=%d)", ai.label, ai.searcher.Depth)
	}
	return fmt.Sprintf("minimax(depth=%d)", ai.searcher.Depth)
}

// SelectMove implements game.AI.
func (ai *MinimaxAI) SelectMove(state *game.GameState) (game.Move, error) {
	start := time.Now()
	res, err := ai.searcher.Search(state.Board, state.Current)
	if err != nil {
		return game.Move{}, fmt.Errorf("minimax search: %w", err)
	}
	log.Debug().
		Int("player", int(state.Current)).
		Stringer("move", res.Move).
		Float64("value", res.Value).
		Int("nodes", res.Stats.Nodes).
		Int("leaves", res.Stats.Leaves).
		Int("cutoffs", res.Stats.Cutoffs).
		Dur("elapsed", time.Since(start)).
		Msg("minimax-move")
	return res.Move, nil
}
