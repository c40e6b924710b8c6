// Package demo holds a small ECS world of bouncing sprites driven by scaled game time
package demo

import (
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"
)

// Position in cells, origin top-left
type Position struct {
	X, Y float64
}

// Velocity in cells per second of game time
type Velocity struct {
	X, Y float64
}

// Glyph is the rune drawn for a sprite
type Glyph struct {
	Rune rune
}

const glyphs = "abcdefghijklmnopqrstuvwxyz0123456789*+#@"

// Field bounces sprites inside a width x height rectangle
type Field struct {
	world   ecs.World
	spawner *ecs.Map3[Position, Velocity, Glyph]
	movers  *ecs.Filter2[Position, Velocity]
	sprites *ecs.Filter2[Position, Glyph]

	width, height float64
}

// NewField creates an empty field
func NewField(width, height int) *Field {
	f := &Field{world: ecs.NewWorld()}
	f.spawner = ecs.NewMap3[Position, Velocity, Glyph](&f.world)
	f.movers = ecs.NewFilter2[Position, Velocity](&f.world)
	f.sprites = ecs.NewFilter2[Position, Glyph](&f.world)
	f.Resize(width, height)
	return f
}

// Populate spawns count sprites at random positions with random velocities
func (f *Field) Populate(count int, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		pos := Position{X: rng.Float64() * f.width, Y: rng.Float64() * f.height}
		vel := Velocity{X: (rng.Float64()*2 - 1) * 12, Y: (rng.Float64()*2 - 1) * 6}
		f.Spawn(pos, vel, rune(glyphs[rng.Intn(len(glyphs))]))
	}
}

// Spawn adds one sprite
func (f *Field) Spawn(pos Position, vel Velocity, r rune) ecs.Entity {
	return f.spawner.NewEntity(&pos, &vel, &Glyph{Rune: r})
}

// Resize changes the bounds; sprites outside are pulled back in on the next Update
func (f *Field) Resize(width, height int) {
	f.width = float64(max(width, 1))
	f.height = float64(max(height, 1))
}

// Update moves every sprite by dt of game time, reflecting off the walls
// A paused game passes dt == 0 and nothing moves
func (f *Field) Update(dt time.Duration) {
	secs := dt.Seconds()
	query := f.movers.Query()
	for query.Next() {
		pos, vel := query.Get()
		pos.X, vel.X = bounce(pos.X+vel.X*secs, vel.X, f.width-1)
		pos.Y, vel.Y = bounce(pos.Y+vel.Y*secs, vel.Y, f.height-1)
	}
}

// Each calls fn with the rounded cell of every sprite
func (f *Field) Each(fn func(x, y int, r rune)) {
	query := f.sprites.Query()
	for query.Next() {
		pos, g := query.Get()
		fn(int(pos.X+0.5), int(pos.Y+0.5), g.Rune)
	}
}

// Len returns the number of sprites
func (f *Field) Len() int {
	n := 0
	query := f.sprites.Query()
	for query.Next() {
		n++
	}
	return n
}

// bounce folds p back into [0, limit] and flips v on each reflection
func bounce(p, v, limit float64) (float64, float64) {
	if limit <= 0 {
		return 0, v
	}
	for p < 0 || p > limit {
		if p < 0 {
			p = -p
		} else {
			p = 2*limit - p
		}
		v = -v
	}
	return p, v
}
