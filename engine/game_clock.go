package engine

import "time"

// GameClock integrates scaled game time from real frame deltas
// It is the host time multiplier: register it as a ScaleSink so it follows the controller
type GameClock struct {
	scale float64

	// Elapsed is the total game time since creation
	Elapsed time.Duration
	// Delta is the game time added by the last Advance
	Delta time.Duration
}

// NewGameClock creates a game clock running at scale 1
func NewGameClock() *GameClock {
	return &GameClock{scale: 1}
}

// SetTimeScale implements ScaleSink
func (g *GameClock) SetTimeScale(scale float64) {
	g.scale = scale
}

// Scale returns the multiplier currently applied to real time
func (g *GameClock) Scale() float64 {
	return g.scale
}

// Advance adds real scaled by the current multiplier and returns the game delta
func (g *GameClock) Advance(real time.Duration) time.Duration {
	g.Delta = time.Duration(float64(real) * g.scale)
	g.Elapsed += g.Delta
	return g.Delta
}

// DeltaSeconds returns the last game delta in seconds, for motion integration
func (g *GameClock) DeltaSeconds() float64 {
	return g.Delta.Seconds()
}
