package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/montplusa/quixo-battle-game/pkg/game/debug"
)

const (
	// DefaultMaxTurns ends a game as a draw after this many moves.
	DefaultMaxTurns = 400
	// DefaultMaxRetries is how many illegal proposals an agent may make in a
	// single turn before it forfeits.
	DefaultMaxRetries = 100
)

// ErrNoLegalMove is returned by agents that cannot find any legal move.
var ErrNoLegalMove = errors.New("no legal move")

// Reasons a battle ended.
const (
	ReasonLine     = "line"
	ReasonForfeit  = "forfeit"
	ReasonMaxTurns = "max-turns"
	ReasonCanceled = "canceled"
)

// BattleResult records one finished game.
type BattleResult struct {
	Players      [2]string  `json:"players"`
	InitialState *GameState `json:"initial_state"`
	Moves        []Move     `json:"moves"`
	FinalState   *GameState `json:"final_state"`
	Winner       int        `json:"winner"` // -1 for a draw
	Reason       string     `json:"reason"`
	Err          string     `json:"error,omitempty"`
}

// GameRunner alternates two agents on one game.
type GameRunner struct {
	agents [2]AI

	// Start is the position to play from; nil means an empty board with
	// player 0 to move.
	Start      *GameState
	MaxTurns   int
	MaxRetries int
}

// NewGameRunner sets up a game where a0 plays as player 0 and moves first.
func NewGameRunner(a0, a1 AI) *GameRunner {
	return &GameRunner{
		agents:     [2]AI{a0, a1},
		MaxTurns:   DefaultMaxTurns,
		MaxRetries: DefaultMaxRetries,
	}
}

// Run plays until a line is completed, an agent forfeits, MaxTurns is
// reached or ctx is done.
func (gr *GameRunner) Run(ctx context.Context) BattleResult {
	state := NewGameState()
	if gr.Start != nil {
		state = gr.Start.Clone()
	}

	result := BattleResult{
		Players:      [2]string{gr.agents[0].Name(), gr.agents[1].Name()},
		InitialState: state.Clone(),
		Moves:        make([]Move, 0),
		Winner:       -1,
	}
	finish := func(winner int, reason string) BattleResult {
		result.FinalState = state.Clone()
		result.Winner = winner
		result.Reason = reason
		debug.Log("game over after %d moves: winner=%d reason=%s", len(result.Moves), winner, reason)
		return result
	}

	if w, ok := state.Winner(); ok {
		return finish(int(w), ReasonLine)
	}

	for len(result.Moves) < gr.MaxTurns {
		if err := ctx.Err(); err != nil {
			result.Err = err.Error()
			return finish(-1, ReasonCanceled)
		}

		player := state.Current
		m, err := gr.nextMove(state)
		if err != nil {
			debug.Log("player %d forfeits: %v", player, err)
			result.Err = err.Error()
			return finish(int(player.Opponent()), ReasonForfeit)
		}
		result.Moves = append(result.Moves, m)
		debug.Log("turn %d: player %d plays %s", state.Turn, player, m)

		if w, ok := state.Winner(); ok {
			return finish(int(w), ReasonLine)
		}
	}
	return finish(-1, ReasonMaxTurns)
}

// nextMove asks the acting agent for a move and applies it, retrying on
// illegal proposals.
func (gr *GameRunner) nextMove(state *GameState) (Move, error) {
	agent := gr.agents[state.Current]
	retries := gr.MaxRetries
	if retries < 1 {
		retries = 1
	}
	var lastErr error
	for i := 0; i < retries; i++ {
		m, err := agent.SelectMove(state.Clone())
		if err != nil {
			return Move{}, fmt.Errorf("%s: %w", agent.Name(), err)
		}
		if err := state.ApplyMove(m); err != nil {
			lastErr = err
			continue
		}
		return m, nil
	}
	return Move{}, fmt.Errorf("%s gave up after %d attempts: %w", agent.Name(), retries, lastErr)
}
