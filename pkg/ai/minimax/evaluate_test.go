package minimax

import (
	"math/rand"
	"testing"

	"github.com/montplusa/quixo-battle-game/pkg/game"
)

func TestLineEvaluatorDecidedBoards(t *testing.T) {
	xWins := mustParse(t, `
		X . . . O
		. X . O .
		. . X . .
		. O . X .
		O . . . X`)
	oWins := mustParse(t, `
		. . O . X
		X . O . .
		. X O . .
		. . O X .
		. . O . .`)

	tests := []struct {
		name  string
		board game.Board
		root  game.PlayerID
		want  float64
	}{
		{"root 0 wins on diagonal", xWins, 0, WinScore},
		{"root 1 loses on diagonal", xWins, 1, LossScore},
		{"root 1 wins on column", oWins, 1, WinScore},
		{"root 0 loses on column", oWins, 0, LossScore},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := (LineEvaluator{}).Evaluate(tc.board, tc.root); got != tc.want {
				t.Errorf("Evaluate = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLineEvaluatorHeuristic(t *testing.T) {
	tests := []struct {
		name  string
		board string
		root  game.PlayerID
		want  float64
	}{
		{"empty", `
			. . . . .
			. . . . .
			. . . . .
			. . . . .
			. . . . .`, 0, 0},
		{"row of three", `
			. . . . .
			X X . X .
			. . . . .
			. . . . .
			. . . . .`, 0, 0.6},
		{"column of four", `
			. . . X .
			. . . X .
			. O . . .
			. . . X .
			. . . X .`, 0, 0.8},
		{"anti-diagonal", `
			. . . . O
			. . . O .
			. . O . .
			. . . . .
			O . . . .`, 1, 0.8},
		{"opponent marks ignored", `
			O O O O .
			X . . . .
			X . . . .
			. . . . .
			. . . . .`, 0, 0.4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustParse(t, tc.board)
			if got := (LineEvaluator{}).Evaluate(b, tc.root); got != tc.want {
				t.Errorf("Evaluate = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLineEvaluatorRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		b, _ := randomBoard(rng, rng.Intn(40))
		for _, root := range []game.PlayerID{0, 1} {
			v := LineEvaluator{}.Evaluate(b, root)
			if v < 0 || v >= 1 {
				t.Fatalf("heuristic %v outside [0, 1) on undecided board\n%s", v, b)
			}
			if want := float64(LongestLine(b, root)) / game.Size; v != want {
				t.Fatalf("heuristic %v, want %v", v, want)
			}
		}
	}
}
