package minimax

import "github.com/montplusa/quixo-battle-game/pkg/game"

// Simulate plays one take-and-slide on a copy of b. ok is false when the
// board rules reject the move; b is never modified either way.
func Simulate(b game.Board, p game.Position, dir game.Direction, player game.PlayerID) (child game.Board, ok bool) {
	return b.Apply(p, dir, player)
}
