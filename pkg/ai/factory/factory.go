// Package factory builds agents by name for the command-line tools.
package factory

import (
	"encoding/binary"
	"fmt"

	"github.com/montplusa/quixo-battle-game/pkg/ai/minimax"
	"github.com/montplusa/quixo-battle-game/pkg/ai/neural"
	"github.com/montplusa/quixo-battle-game/pkg/ai/random"
	"github.com/montplusa/quixo-battle-game/pkg/game"
)

// Agent kinds understood by New.
const (
	Minimax = "minimax"
	Random  = "random"
	Neural  = "neural"
)

// Kinds lists the accepted agent names.
var Kinds = []string{Minimax, Random, Neural}

// Spec describes an agent to build.
type Spec struct {
	Kind  string
	Depth int
	// Network is required for Neural.
	Network *neural.NetworkConfig
	// Seed makes Random deterministic when non-zero.
	Seed int64
}

// New builds a fresh agent. Agents are not shared between games, so call it
// once per game.
func New(spec Spec) (game.AI, error) {
	switch spec.Kind {
	case Minimax:
		return minimax.New(minimax.Options{Depth: spec.Depth, Evaluator: minimax.LineEvaluator{}}), nil
	case Random:
		if spec.Seed == 0 {
			return random.New(), nil
		}
		var seed [32]byte
		binary.LittleEndian.PutUint64(seed[:], uint64(spec.Seed))
		return random.NewSeeded(seed), nil
	case Neural:
		if spec.Network == nil {
			return nil, fmt.Errorf("agent %q needs network weights", spec.Kind)
		}
		net, err := neural.New(*spec.Network)
		if err != nil {
			return nil, err
		}
		return minimax.New(minimax.Options{Depth: spec.Depth, Evaluator: net, Label: net.Name()}), nil
	}
	return nil, fmt.Errorf("unknown agent %q (want one of %v)", spec.Kind, Kinds)
}
