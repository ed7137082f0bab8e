package random

import (
	"lukechampine.com/frand"

	"github.com/montplusa/quixo-battle-game/pkg/game"
)

// RandomAI picks uniformly among the legal moves.
type RandomAI struct {
	rng *frand.RNG
}

// New returns a RandomAI seeded from the system entropy source.
func New() *RandomAI { return &RandomAI{rng: frand.New()} }

// NewSeeded returns a RandomAI whose choices are fully determined by seed.
func NewSeeded(seed [32]byte) *RandomAI {
	return &RandomAI{rng: frand.NewCustom(seed[:], 1024, 12)}
}

func (r *RandomAI) Name() string { return "random" }

// SelectMove implements game.AI.
func (r *RandomAI) SelectMove(state *game.GameState) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, game.ErrNoLegalMove
	}
	return moves[r.rng.Intn(len(moves))], nil
}
