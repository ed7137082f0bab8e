package factory

import (
	"testing"

	"github.com/montplusa/quixo-battle-game/pkg/ai/neural"
	"github.com/montplusa/quixo-battle-game/pkg/game"
)

func TestNew(t *testing.T) {
	network := neural.DefaultNetworkConfig()
	network.Name = "v1"

	tests := []struct {
		spec    Spec
		want    string
		wantErr bool
	}{
		{spec: Spec{Kind: Minimax, Depth: 3}, want: "minimax(depth=3)"},
		{spec: Spec{Kind: Minimax}, want: "minimax(depth=2)"},
		{spec: Spec{Kind: Random}, want: "random"},
		{spec: Spec{Kind: Random, Seed: 9}, want: "random"},
		{spec: Spec{Kind: Neural, Depth: 1, Network: &network}, want: "minimax-v1(depth=1)"},
		{spec: Spec{Kind: Neural, Depth: 1}, wantErr: true},
		{spec: Spec{Kind: "alphazero"}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.spec.Kind, func(t *testing.T) {
			ai, err := New(tc.spec)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got agent %q", ai.Name())
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if ai.Name() != tc.want {
				t.Errorf("name %q, want %q", ai.Name(), tc.want)
			}
		})
	}
}

func TestSeededRandomIsReproducible(t *testing.T) {
	play := func() []game.Move {
		ai, err := New(Spec{Kind: Random, Seed: 42})
		if err != nil {
			t.Fatal(err)
		}
		state := game.NewGameState()
		var moves []game.Move
		for i := 0; i < 8; i++ {
			m, err := ai.SelectMove(state)
			if err != nil {
				t.Fatal(err)
			}
			if err := state.ApplyMove(m); err != nil {
				t.Fatal(err)
			}
			moves = append(moves, m)
		}
		return moves
	}
	a, b := play(), play()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("move %d differs: %s vs %s", i, a[i], b[i])
		}
	}
}
