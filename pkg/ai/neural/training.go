package neural

import (
	"context"
	"fmt"
	"time"

	"github.com/patrikeh/go-deep/training"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/montplusa/quixo-battle-game/pkg/ai/minimax"
	"github.com/montplusa/quixo-battle-game/pkg/ai/random"
	"github.com/montplusa/quixo-battle-game/pkg/game"
)

// TrainingConfig specifies a self-play training run.
type TrainingConfig struct {
	Episodes       int           // number of games to play
	BatchSize      int           // positions collected before each update
	ReportInterval int           // episodes between progress reports
	SaveInterval   int           // episodes between checkpoints; 0 saves only at the end
	Output         string        // checkpoint path; empty disables saving
	Depth          int           // search depth of the learning agent
	RandomOpening  int           // random plies played before the agents take over
	MaxTurns       int           // draw limit per game
	Network        NetworkConfig // initial network
	Opponent       game.AI       // nil means a random agent
}

// DefaultTrainingConfig returns a short run against the random agent.
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Episodes:       100,
		BatchSize:      256,
		ReportInterval: 10,
		Depth:          1,
		RandomOpening:  2,
		MaxTurns:       200,
		Network:        DefaultNetworkConfig(),
	}
}

// TrainingStats tracks results from the learner's side.
type TrainingStats struct {
	Wins       int
	Losses     int
	Draws      int
	TotalTurns int
	Updates    int
	StartTime  time.Time
}

// WinRate returns the share of games won so far.
func (s TrainingStats) WinRate() float64 {
	games := s.Wins + s.Losses + s.Draws
	if games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(games)
}

// Train runs self-play and returns the trained network.
func Train(ctx context.Context, config TrainingConfig) (*ValueNet, TrainingStats, error) {
	stats := TrainingStats{StartTime: time.Now()}
	if config.Episodes <= 0 {
		return nil, stats, fmt.Errorf("episodes must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return nil, stats, fmt.Errorf("report interval must be greater than 0")
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 1
	}
	if config.MaxTurns <= 0 {
		config.MaxTurns = game.DefaultMaxTurns
	}

	net, err := New(config.Network)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to create network: %w", err)
	}
	learner := minimax.New(minimax.Options{Depth: config.Depth, Evaluator: net, Label: config.Network.Name})
	opponent := config.Opponent
	if opponent == nil {
		opponent = random.New()
	}

	log.Info().
		Str("opponent", opponent.Name()).
		Int("episodes", config.Episodes).
		Int("batch", config.BatchSize).
		Float64("lr", config.Network.LearningRate).
		Msg("self-play-training")

	trainer := training.NewTrainer(training.NewSGD(config.Network.LearningRate, 0.5, 0.0, false), 0)
	var examples training.Examples

	for episode := 0; episode < config.Episodes; episode++ {
		if ctx.Err() != nil {
			return net, stats, interrupted(ctx, config.Output, net)
		}

		// alternate seats so the network sees both sides
		seat := game.PlayerID(episode % 2)
		agents := [2]game.AI{learner, opponent}
		if seat == 1 {
			agents = [2]game.AI{opponent, learner}
		}
		runner := game.NewGameRunner(agents[0], agents[1])
		runner.Start = randomOpening(config.RandomOpening)
		runner.MaxTurns = config.MaxTurns
		result := runner.Run(ctx)
		if result.Reason == game.ReasonCanceled {
			// the unfinished game has no outcome to learn from
			return net, stats, interrupted(ctx, config.Output, net)
		}

		switch result.Winner {
		case int(seat):
			stats.Wins++
		case -1:
			stats.Draws++
		default:
			stats.Losses++
		}
		stats.TotalTurns += len(result.Moves)
		examples = append(examples, labelPositions(result)...)

		if len(examples) >= config.BatchSize {
			examples.Shuffle()
			trainer.Train(net.network, examples, nil, len(examples)/config.BatchSize+1)
			stats.Updates++
			examples = nil
		}

		if (episode+1)%config.ReportInterval == 0 || episode == config.Episodes-1 {
			log.Info().
				Int("episode", episode+1).
				Float64("win_rate", stats.WinRate()).
				Int("wins", stats.Wins).
				Int("losses", stats.Losses).
				Int("draws", stats.Draws).
				Float64("avg_turns", float64(stats.TotalTurns)/float64(episode+1)).
				Dur("elapsed", time.Since(stats.StartTime).Round(time.Second)).
				Msg("training-progress")
		}
		if config.Output != "" && config.SaveInterval > 0 && (episode+1)%config.SaveInterval == 0 {
			if err := SaveConfig(config.Output, net.Config()); err != nil {
				return net, stats, err
			}
		}
	}

	if len(examples) > 0 {
		examples.Shuffle()
		trainer.Train(net.network, examples, nil, 1)
		stats.Updates++
	}
	if config.Output != "" {
		if err := SaveConfig(config.Output, net.Config()); err != nil {
			return net, stats, err
		}
		log.Info().Str("path", config.Output).Msg("network-saved")
	}
	return net, stats, nil
}

// interrupted saves the network trained so far to output, if set, and
// returns the context error.
func interrupted(ctx context.Context, output string, net *ValueNet) error {
	if output != "" {
		if err := SaveConfig(output, net.Config()); err != nil {
			return err
		}
		log.Info().Str("path", output).Msg("network-saved")
	}
	return ctx.Err()
}

// labelPositions replays a finished game and tags every position with the
// final outcome for the player about to move: 1 win, -1 loss, 0 draw.
func labelPositions(result game.BattleResult) training.Examples {
	state := result.InitialState.Clone()
	examples := make(training.Examples, 0, len(result.Moves))
	for _, m := range result.Moves {
		reward := 0.0
		if result.Winner >= 0 {
			reward = -1.0
			if game.PlayerID(result.Winner) == state.Current {
				reward = 1.0
			}
		}
		examples = append(examples, training.Example{
			Input:    Features(state.Board, state.Current),
			Response: []float64{reward},
		})
		if err := state.ApplyMove(m); err != nil {
			break
		}
	}
	return examples
}

// randomOpening plays plies random legal moves from the empty board.
func randomOpening(plies int) *game.GameState {
	state := game.NewGameState()
	for i := 0; i < plies; i++ {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			break
		}
		_ = state.ApplyMove(moves[frand.Intn(len(moves))])
	}
	return state
}
