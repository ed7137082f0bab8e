package minimax

import (
	"errors"
	"fmt"
	"math"

	"github.com/montplusa/quixo-battle-game/pkg/game"
)

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 2

var (
	// ErrNoLegalMove is returned when the root player has nothing to play.
	ErrNoLegalMove = game.ErrNoLegalMove
	// ErrGameOver is returned when asked to search a decided board.
	ErrGameOver = errors.New("game already decided")
)

// Stats counts the work done by one search.
type Stats struct {
	Nodes   int `json:"nodes"`
	Leaves  int `json:"leaves"`
	Cutoffs int `json:"cutoffs"`
	Illegal int `json:"illegal"`
}

// Result is the outcome of a search. Value is expressed from the root
// player's point of view.
type Result struct {
	Move  game.Move
	Value float64
	Stats Stats
}

// Searcher runs depth-limited negamax with alpha-beta pruning. A Searcher
// is not safe for concurrent use; give each goroutine its own.
type Searcher struct {
	Depth int
	Eval  Evaluator

	root  game.PlayerID
	stats Stats
}

// NewSearcher returns a searcher with the given depth and evaluator. A nil
// evaluator selects LineEvaluator.
func NewSearcher(depth int, eval Evaluator) *Searcher {
	if eval == nil {
		eval = LineEvaluator{}
	}
	return &Searcher{Depth: depth, Eval: eval}
}

// Search picks the best move for root on b. Moves are tried in Candidates
// order and then game.Directions order; among equally valued moves the
// first one found is kept.
func (s *Searcher) Search(b game.Board, root game.PlayerID) (Result, error) {
	if s.Depth < 1 {
		return Result{}, fmt.Errorf("search depth %d: must be at least 1", s.Depth)
	}
	if s.Eval == nil {
		s.Eval = LineEvaluator{}
	}
	if _, ok := b.Winner(); ok {
		return Result{Value: s.Eval.Evaluate(b, root)}, ErrGameOver
	}

	s.root = root
	s.stats = Stats{}
	value, move, found := s.negamax(b, s.Depth, math.Inf(-1), math.Inf(1), root)
	res := Result{Move: move, Value: value, Stats: s.stats}
	if !found {
		return res, ErrNoLegalMove
	}
	return res, nil
}

// negamax returns the value of b for mover, the move achieving it and
// whether any legal move existed. Leaves are scored from the root's
// perspective and negated when mover is the opponent.
func (s *Searcher) negamax(b game.Board, depth int, alpha, beta float64, mover game.PlayerID) (float64, game.Move, bool) {
	s.stats.Nodes++
	if depth == 0 {
		return s.leaf(b, mover), game.Move{}, false
	}
	if _, ok := b.Winner(); ok {
		return s.leaf(b, mover), game.Move{}, false
	}

	best := math.Inf(-1)
	var bestMove game.Move
	found := false

positions:
	for _, p := range Candidates(b, mover) {
		for _, d := range game.Directions {
			child, ok := Simulate(b, p, d, mover)
			if !ok {
				s.stats.Illegal++
				continue
			}
			v, _, _ := s.negamax(child, depth-1, -beta, -alpha, mover.Opponent())
			v = -v
			if !found || v > best {
				best = v
				bestMove = game.Move{Position: p, Direction: d}
				found = true
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				s.stats.Cutoffs++
				break positions
			}
		}
	}

	// no legal move: score the position as it stands
	if !found {
		return s.leaf(b, mover), game.Move{}, false
	}
	return best, bestMove, true
}

func (s *Searcher) leaf(b game.Board, mover game.PlayerID) float64 {
	s.stats.Leaves++
	v := s.Eval.Evaluate(b, s.root)
	if mover != s.root {
		return -v
	}
	return v
}
