package game

import (
	"context"
	"strings"
	"testing"
)

// scriptedAI plays the first legal move, or a fixed move when set.
type scriptedAI struct {
	name  string
	fixed *Move
	err   error
	calls int
}

func (s *scriptedAI) Name() string { return s.name }

func (s *scriptedAI) SelectMove(state *GameState) (Move, error) {
	s.calls++
	if s.err != nil {
		return Move{}, s.err
	}
	if s.fixed != nil {
		return *s.fixed, nil
	}
	return state.LegalMoves()[0], nil
}

func TestRunnerDetectsLine(t *testing.T) {
	start := NewGameState()
	start.Board = mustParse(t, `
		. . . . .
		. . . . .
		X X X X .
		. O . . .
		. O . . .`)
	win := Move{Position{4, 2}, Left}
	a0 := &scriptedAI{name: "a0", fixed: &win}
	a1 := &scriptedAI{name: "a1"}

	gr := NewGameRunner(a0, a1)
	gr.Start = start
	res := gr.Run(context.Background())

	if res.Winner != 0 || res.Reason != ReasonLine {
		t.Fatalf("winner %d reason %q, want 0 %q", res.Winner, res.Reason, ReasonLine)
	}
	if len(res.Moves) != 1 || res.Moves[0] != win {
		t.Errorf("moves %v, want [%s]", res.Moves, win)
	}
	if res.InitialState.Board != start.Board {
		t.Error("initial state not recorded")
	}
	if res.Players != [2]string{"a0", "a1"} {
		t.Errorf("players %v", res.Players)
	}
}

func TestRunnerForfeitsAfterIllegalRetries(t *testing.T) {
	bad := Move{Position{2, 2}, Top}
	a0 := &scriptedAI{name: "stubborn", fixed: &bad}
	a1 := &scriptedAI{name: "a1"}

	gr := NewGameRunner(a0, a1)
	gr.MaxRetries = 3
	res := gr.Run(context.Background())

	if res.Winner != 1 || res.Reason != ReasonForfeit {
		t.Fatalf("winner %d reason %q, want 1 %q", res.Winner, res.Reason, ReasonForfeit)
	}
	if a0.calls != 3 {
		t.Errorf("agent asked %d times, want 3", a0.calls)
	}
	if !strings.Contains(res.Err, ErrIllegalMove.Error()) {
		t.Errorf("error %q does not mention the illegal move", res.Err)
	}
}

func TestRunnerForfeitsOnAgentError(t *testing.T) {
	a0 := &scriptedAI{name: "a0"}
	a1 := &scriptedAI{name: "stuck", err: ErrNoLegalMove}

	res := NewGameRunner(a0, a1).Run(context.Background())
	if res.Winner != 0 || res.Reason != ReasonForfeit {
		t.Fatalf("winner %d reason %q, want 0 %q", res.Winner, res.Reason, ReasonForfeit)
	}
	if len(res.Moves) != 1 {
		t.Errorf("%d moves played, want 1", len(res.Moves))
	}
}

func TestRunnerMaxTurnsIsDraw(t *testing.T) {
	// both sides shuffle their own corner piece back and forth
	a0 := &scriptedAI{name: "a0"}
	a1 := &scriptedAI{name: "a1"}
	gr := NewGameRunner(a0, a1)
	gr.MaxTurns = 6
	res := gr.Run(context.Background())

	if _, ok := res.FinalState.Winner(); ok {
		t.Skipf("scripted game ended with a line:\n%s", res.FinalState.Board)
	}
	if res.Winner != -1 || res.Reason != ReasonMaxTurns {
		t.Fatalf("winner %d reason %q, want -1 %q", res.Winner, res.Reason, ReasonMaxTurns)
	}
	if len(res.Moves) != 6 || res.FinalState.Turn != 6 {
		t.Errorf("%d moves, final turn %d; want 6", len(res.Moves), res.FinalState.Turn)
	}
}

func TestRunnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := NewGameRunner(&scriptedAI{name: "a0"}, &scriptedAI{name: "a1"}).Run(ctx)
	if res.Reason != ReasonCanceled || res.Winner != -1 {
		t.Fatalf("winner %d reason %q, want -1 %q", res.Winner, res.Reason, ReasonCanceled)
	}
	if !strings.Contains(res.Err, context.Canceled.Error()) {
		t.Errorf("error %q", res.Err)
	}
}

func TestRunnerDoesNotLeakStateToAgents(t *testing.T) {
	a0 := &mutatingAI{}
	res := NewGameRunner(a0, &scriptedAI{name: "a1"}).Run(context.Background())
	if len(res.Moves) == 0 {
		t.Fatal("no moves played")
	}
	if res.Reason == ReasonForfeit {
		t.Fatalf("unexpected forfeit: %s", res.Err)
	}
	if res.InitialState.Board != NewBoard() {
		t.Error("agent mutated the recorded initial state")
	}
}

// mutatingAI scribbles on the state it is given before answering.
type mutatingAI struct{}

func (*mutatingAI) Name() string { return "mutating" }

func (*mutatingAI) SelectMove(state *GameState) (Move, error) {
	m := state.LegalMoves()[0]
	state.Board = mustParseNoT(`
		O O O O O
		. . . . .
		. . . . .
		. . . . .
		. . . . .`)
	state.Current = 1
	return m, nil
}

func mustParseNoT(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}
