package minimax

import "github.com/montplusa/quixo-battle-game/pkg/game"

// Candidates returns the border cells player may extract, in the fixed
// clockwise order of game.BorderPositions. Empty cells and the player's own
// pieces qualify; the opponent's pieces do not.
func Candidates(b game.Board, player game.PlayerID) []game.Position {
	opp := int8(player.Opponent())
	ps := make([]game.Position, 0, len(game.BorderPositions))
	for _, p := range game.BorderPositions {
		if b.At(p) != opp {
			ps = append(ps, p)
		}
	}
	return ps
}
