package game

import (
	"errors"
	"testing"
)

func TestNewGameState(t *testing.T) {
	gs := NewGameState()
	if gs.Current != 0 || gs.Turn != 0 {
		t.Errorf("got player %d turn %d, want 0/0", gs.Current, gs.Turn)
	}
	if got := len(gs.LegalMoves()); got != 44 {
		t.Errorf("empty board has %d legal moves, want 44", got)
	}
}

func TestApplyMovePassesTurn(t *testing.T) {
	gs := NewGameState()
	if err := gs.ApplyMove(Move{Position{0, 0}, Bottom}); err != nil {
		t.Fatal(err)
	}
	if gs.Current != 1 || gs.Turn != 1 {
		t.Errorf("got player %d turn %d, want 1/1", gs.Current, gs.Turn)
	}
	if owner, ok := gs.Board.Owner(Position{0, 4}); !ok || owner != 0 {
		t.Errorf("slid piece not at the bottom of column 0:\n%s", gs.Board)
	}

	// player 1 may not take player 0's piece
	err := gs.ApplyMove(Move{Position{0, 4}, Top})
	if !errors.Is(err, ErrIllegalMove) {
		t.Errorf("got %v, want ErrIllegalMove", err)
	}
	if gs.Current != 1 || gs.Turn != 1 {
		t.Error("illegal move changed the turn")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	gs := NewGameState()
	c := gs.Clone()
	if err := c.ApplyMove(Move{Position{2, 0}, Bottom}); err != nil {
		t.Fatal(err)
	}
	if gs.Board != NewBoard() || gs.Current != 0 {
		t.Error("move on the clone leaked into the original")
	}
}

func TestLegalMovesExcludeOpponentPieces(t *testing.T) {
	gs := NewGameState()
	gs.Board = mustParse(t, `
		O O O O .
		O . . . .
		O . . . .
		O . . . .
		. . . . .`)
	for _, m := range gs.LegalMoves() {
		if owner, ok := gs.Board.Owner(m.Position); ok && owner != gs.Current {
			t.Errorf("legal move %s takes an opponent piece", m)
		}
	}
}

func TestDirectionText(t *testing.T) {
	for _, d := range Directions {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Direction
		if err := back.UnmarshalText(text); err != nil || back != d {
			t.Errorf("%s round-tripped to %s (%v)", d, back, err)
		}
	}
	var d Direction
	if err := d.UnmarshalText([]byte("up")); err == nil {
		t.Error("UnmarshalText accepted an unknown direction")
	}
}
