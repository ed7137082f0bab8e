package neural

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/patrikeh/go-deep"

	"github.com/montplusa/quixo-battle-game/pkg/ai/minimax"
	"github.com/montplusa/quixo-battle-game/pkg/game"
)

// FeatureSize is the input width: one "mine" and one "theirs" plane over
// the 25 cells.
const FeatureSize = 2 * game.Size * game.Size

// maxPrediction keeps network output strictly inside the decided scores so a
// real win or loss always dominates.
const maxPrediction = 0.99

// NetworkConfig describes the value network and carries its weights.
type NetworkConfig struct {
	Name         string        `json:"name"`
	HiddenLayers []int         `json:"hidden_layers"`
	LearningRate float64       `json:"learning_rate"`
	Weights      [][][]float64 `json:"weights,omitempty"`
}

// DefaultNetworkConfig returns an untrained two-layer network.
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Name:         "default",
		HiddenLayers: []int{64, 32},
		LearningRate: 0.01,
	}
}

// LoadConfig reads a NetworkConfig written by SaveConfig.
func LoadConfig(path string) (NetworkConfig, error) {
	var config NetworkConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read network config: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("decode network config %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig writes config as JSON to path.
func SaveConfig(path string, config NetworkConfig) error {
	data, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("encode network config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write network config: %w", err)
	}
	return nil
}

// ValueNet is a minimax.Evaluator backed by a regression network. It is not
// safe for concurrent use.
type ValueNet struct {
	network *deep.Neural
	config  NetworkConfig
}

var _ minimax.Evaluator = (*ValueNet)(nil)

// New builds the network described by config, applying its weights when
// present.
func New(config NetworkConfig) (*ValueNet, error) {
	if len(config.HiddenLayers) == 0 {
		return nil, fmt.Errorf("network %q: no hidden layers", config.Name)
	}
	layout := append(append([]int{}, config.HiddenLayers...), 1)

	network := deep.NewNeural(&deep.Config{
		Inputs:     FeatureSize,
		Layout:     layout,
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeRegression,
		Weight:     deep.NewNormal(0.1, 0.0),
		Bias:       true,
	})
	if config.Weights != nil {
		if err := checkWeights(config.Weights, layout); err != nil {
			return nil, fmt.Errorf("network %q: %w", config.Name, err)
		}
		network.ApplyWeights(config.Weights)
	}
	return &ValueNet{network: network, config: config}, nil
}

// checkWeights guards ApplyWeights, which panics on a shape mismatch.
func checkWeights(weights [][][]float64, layout []int) error {
	if len(weights) != len(layout) {
		return fmt.Errorf("weights have %d layers, want %d", len(weights), len(layout))
	}
	for i, layer := range weights {
		if len(layer) != layout[i] {
			return fmt.Errorf("layer %d has %d neurons, want %d", i, len(layer), layout[i])
		}
	}
	return nil
}

// Name returns the configured network name.
func (v *ValueNet) Name() string { return v.config.Name }

// Config returns the network configuration with the current weights.
func (v *ValueNet) Config() NetworkConfig {
	c := v.config
	c.Weights = v.network.Weights()
	return c
}

// Evaluate implements minimax.Evaluator.
func (v *ValueNet) Evaluate(b game.Board, root game.PlayerID) float64 {
	if w, ok := b.Winner(); ok {
		if w == root {
			return minimax.WinScore
		}
		return minimax.LossScore
	}
	return v.Predict(b, root)
}

// Predict returns the raw network estimate for b from player's side,
// clamped to [-0.99, 0.99].
func (v *ValueNet) Predict(b game.Board, player game.PlayerID) float64 {
	out := v.network.Predict(Features(b, player))[0]
	return max(min(out, maxPrediction), -maxPrediction)
}

// Features encodes b from player's side: the first 25 inputs flag player's
// marks, the next 25 the opponent's.
func Features(b game.Board, player game.PlayerID) []float64 {
	f := make([]float64, FeatureSize)
	mine, theirs := int8(player), int8(player.Opponent())
	for y := 0; y < game.Size; y++ {
		for x := 0; x < game.Size; x++ {
			i := y*game.Size + x
			switch b[y][x] {
			case mine:
				f[i] = 1
			case theirs:
				f[game.Size*game.Size+i] = 1
			}
		}
	}
	return f
}
