//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"syscall/js"

	"github.com/montplusa/quixo-battle-game/pkg/ai/minimax"
	"github.com/montplusa/quixo-battle-game/pkg/ai/random"
	"github.com/montplusa/quixo-battle-game/pkg/game"
)

// runBattle plays minimax (first argument: depth, default 2) against the
// random agent and returns the BattleResult as JSON.
func runBattle(this js.Value, args []js.Value) interface{} {
	depth := minimax.DefaultDepth
	if len(args) > 0 && args[0].Type() == js.TypeNumber {
		depth = args[0].Int()
	}
	ai1 := minimax.New(minimax.Options{Depth: depth})
	ai2 := random.New()

	gr := game.NewGameRunner(ai1, ai2)
	result := gr.Run(context.Background())

	b, err := json.Marshal(result)
	if err != nil {
		return js.Global().Get("Error").New(err.Error())
	}
	return string(b)
}

func main() {
	js.Global().Set("runBattle", js.FuncOf(runBattle))
	select {}
}
