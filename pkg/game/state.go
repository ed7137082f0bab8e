package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned when a move is rejected by the board rules.
var ErrIllegalMove = errors.New("illegal move")

// GameState holds the board and whose turn it is.
type GameState struct {
	Board   Board    `json:"board"`
	Current PlayerID `json:"current"` // player to act: 0 or 1
	Turn    int      `json:"turn"`    // number of moves played so far
}

// NewGameState returns an empty board with player 0 to move.
func NewGameState() *GameState {
	return &GameState{Board: NewBoard()}
}

// Clone returns an independent copy of gs.
func (gs *GameState) Clone() *GameState {
	c := *gs
	return &c
}

// Winner reports the winner of the current board, if any.
func (gs *GameState) Winner() (PlayerID, bool) { return gs.Board.Winner() }

// LegalMoves returns every legal move for the player to act, in border
// order and then direction order.
func (gs *GameState) LegalMoves() []Move {
	var moves []Move
	for _, p := range BorderPositions {
		for _, d := range Directions {
			if _, ok := gs.Board.Apply(p, d, gs.Current); ok {
				moves = append(moves, Move{Position: p, Direction: d})
			}
		}
	}
	return moves
}

// ApplyMove plays m for the current player and passes the turn.
func (gs *GameState) ApplyMove(m Move) error {
	next, ok := gs.Board.Apply(m.Position, m.Direction, gs.Current)
	if !ok {
		return fmt.Errorf("player %d %s: %w", gs.Current, m, ErrIllegalMove)
	}
	gs.Board = next
	gs.Current = gs.Current.Opponent()
	gs.Turn++
	return nil
}
