// Package particle provides the particle record, its per-kind payloads and the
// recycling pool shared by every reward animation.
//
// A Particle is a plain mutable record. It is created by an animation type's
// factory, advanced once per frame by the physics step, described to a
// rendering surface, and finally handed back to the Pool when its animation
// instance is torn down.
package particle

import "github.com/decker502/rewardfx/pkg/config"

const (
	// DecayRate is subtracted from Life once per frame. Duration is frame
	// counted: a burst lasts Lifetime/DecayRate frames whatever the frame rate.
	DecayRate = 1.2

	// OpacityScale normalizes Life into the default opacity (Life/100).
	OpacityScale = 100.0

	// DefaultColor is used whenever a color must be picked from an empty list.
	DefaultColor = "#ffd700"
)

// Particle is a single simulated visual unit.
//
// Life counts down by a fixed amount per frame; a particle with Life <= 0 is
// terminal and must not be stepped or rendered again.
type Particle struct {
	// ID is minted by the pool when the record is first allocated and is kept
	// across reuse.
	ID string

	// Position (屏幕坐标)
	X, Y float64

	// Velocity (像素/帧)
	VX, VY float64

	// Lifecycle (生命值, 100 = fully opaque)
	Life float64

	// Visual properties
	Opacity  float64
	Size     float64
	Rotation float64
	Color    string // hex color, or the literal glyph for emoji/symbol types

	// Kind carries multi-stage state (shell, trail, burst). nil means plain.
	Kind Kind

	// Aux holds named per-particle metadata used by renderers and effects.
	Aux Aux

	// Config is the effective configuration the particle was created with.
	Config *config.RewardConfig

	pooled bool
}

// Active reports whether the particle still has life left.
func (p *Particle) Active() bool {
	return p.Life > 0
}

// Reset zeroes every field except the ID. Spawn sites call it right after
// Acquire, before filling in the new state.
func (p *Particle) Reset() {
	id := p.ID
	*p = Particle{ID: id}
}

// Pooled reports whether the record currently sits in a pool's free list.
func (p *Particle) Pooled() bool {
	return p.pooled
}

// Aux is the auxiliary per-particle state that animation types need to carry
// between frames (sub-phase, shape variant, private frame counter).
type Aux struct {
	Phase        float64 // per-particle oscillation phase (radians)
	Variant      int     // shape or glyph variant index
	Frame        int     // frames this particle has been stepped
	LockRotation bool    // generic step must leave Rotation untouched
	StartLife    float64 // Life at spawn time, for relative fade curves
	Angle        float64 // launch angle (radians), used by radial steering
}

// Kind is the tagged union of multi-stage particle payloads.
// The concrete variants are Plain, Shell, Trail and Burst.
type Kind interface {
	kind()
}

// Plain is a particle with no special behavior.
type Plain struct{}

// Shell rises until ExplodeAtFrame, then bursts into BurstCount children.
type Shell struct {
	ExplodeAtFrame int
	BurstCount     int
	Exploded       bool
}

// Trail is a short-lived particle left behind by a moving shell.
type Trail struct{}

// Burst is a child spawned by an exploding shell.
type Burst struct {
	Generation int
}

func (Plain) kind()  {}
func (*Shell) kind() {}
func (Trail) kind()  {}
func (Burst) kind()  {}

// PickColor returns colors[i % len(colors)], or DefaultColor when the list is
// empty.
func PickColor(colors []string, i int) string {
	if len(colors) == 0 {
		return DefaultColor
	}
	if i < 0 {
		i = -i
	}
	return colors[i%len(colors)]
}
