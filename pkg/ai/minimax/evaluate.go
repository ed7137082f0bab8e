package minimax

import "github.com/montplusa/quixo-battle-game/pkg/game"

const (
	// WinScore is returned for boards the root player has won.
	WinScore = 1.0
	// LossScore is returned for boards the opponent has won.
	LossScore = -1.0
)

// Evaluator scores a board from root's point of view. Implementations
// return exactly WinScore or LossScore on decided boards and a value strictly
// between them otherwise.
type Evaluator interface {
	Evaluate(b game.Board, root game.PlayerID) float64
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(b game.Board, root game.PlayerID) float64

func (f EvaluatorFunc) Evaluate(b game.Board, root game.PlayerID) float64 { return f(b, root) }

// LineEvaluator scores undecided boards by the root player's longest
// partial line: the highest number of root marks in any row, column or
// diagonal, divided by the board size. The opponent's pieces are ignored,
// which makes the agent favour building its own lines over blocking.
type LineEvaluator struct{}

// Evaluate implements Evaluator.
func (LineEvaluator) Evaluate(b game.Board, root game.PlayerID) float64 {
	if w, ok := b.Winner(); ok {
		if w == root {
			return WinScore
		}
		return LossScore
	}
	return float64(LongestLine(b, root)) / game.Size
}

// LongestLine returns the highest count of player's marks over the 5 rows,
// 5 columns and 2 diagonals.
func LongestLine(b game.Board, player game.PlayerID) int {
	mark := int8(player)
	best := 0
	var diag, anti int
	for i := 0; i < game.Size; i++ {
		var row, col int
		for j := 0; j < game.Size; j++ {
			if b[i][j] == mark {
				row++
			}
			if b[j][i] == mark {
				col++
			}
		}
		best = max(best, row, col)
		if b[i][i] == mark {
			diag++
		}
		if b[i][game.Size-1-i] == mark {
			anti++
		}
	}
	return max(best, diag, anti)
}
