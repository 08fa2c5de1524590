package particle

import (
	"math"
	"math/rand"
)

// Keyframe is a single point on a value curve.
type Keyframe struct {
	Time  float64 // normalized time (0-1)
	Value float64 // value at this keyframe
}

// Interpolation modes understood by EvaluateKeyframes.
const (
	InterpLinear  = "Linear"
	InterpEaseIn  = "EaseIn"
	InterpEaseOut = "EaseOut"
	InterpSmooth  = "Smooth"
)

// EvaluateKeyframes returns the curve value at normalized time t.
//
// Keyframes must be sorted by Time. t is clamped to [0, 1]; values before the
// first keyframe and after the last one hold the nearest keyframe's value.
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = math.Max(0, math.Min(1, t))

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]

		if t >= k0.Time && t <= k1.Time {
			duration := k1.Time - k0.Time
			if duration <= 0 {
				return k0.Value
			}
			ratio := (t - k0.Time) / duration

			switch interpolation {
			case InterpEaseIn:
				ratio = ratio * ratio
			case InterpEaseOut:
				ratio = 1 - (1-ratio)*(1-ratio)
			case InterpSmooth:
				ratio = ratio * ratio * (3 - 2*ratio)
			}
			return k0.Value + ratio*(k1.Value-k0.Value)
		}
	}

	return keyframes[len(keyframes)-1].Value
}

// RandomInRange returns a uniformly distributed value in [min, max).
// If min >= max, min is returned. A nil rng uses the global source.
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	if rng == nil {
		return min + rand.Float64()*(max-min)
	}
	return min + rng.Float64()*(max-min)
}
