package game

// AI is the interface every agent implements.
type AI interface {
	// Name identifies the agent in logs and battle results.
	Name() string
	// SelectMove picks a move for state.Current. The state must not be
	// modified.
	SelectMove(state *GameState) (Move, error)
}
