package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/types"
)

func radialParticles(n int) []*particle.Particle {
	ps := make([]*particle.Particle, n)
	for i := range ps {
		ps[i] = &particle.Particle{Life: 100}
	}
	return ps
}

// angleDiff 返回两个角度（度）之间的最小差值
func angleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return math.Min(d, 360-d)
}

// TestRadialBurst_CircularSpacing 测试圆形模式的均匀角度分布
func TestRadialBurst_CircularSpacing(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		variation float64
	}{
		{"无抖动", 12, 0},
		{"5 度抖动", 25, 5},
		{"单个粒子", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			radial := config.DefaultRadialConfig
			radial.Enabled = true
			radial.AngleVariation = tt.variation
			cfg := &config.RewardConfig{StartVelocity: 10, Radial: radial}
			ps := radialParticles(tt.n)

			ApplyRadialBurst(ps, cfg, rand.New(rand.NewSource(3)))

			step := 360 / float64(tt.n)
			for i, p := range ps {
				got := math.Atan2(p.VY, p.VX) / degToRad
				want := float64(i) * step
				if d := angleDiff(got, want); d > tt.variation+1e-6 {
					t.Errorf("Particle %d: angle %.3f, expected %.3f ± %.1f", i, got, want, tt.variation)
				}
				if d := angleDiff(p.Aux.Angle/degToRad, got); d > 1e-6 {
					t.Errorf("Particle %d: Aux.Angle does not match velocity direction", i)
				}
				speed := math.Hypot(p.VX, p.VY)
				if speed < 8-1e-9 || speed > 12+1e-9 {
					t.Errorf("Particle %d: speed %.3f outside ±20%% of 10", i, speed)
				}
			}
		})
	}
}

func TestRadialBurst_ConeWithinSpread(t *testing.T) {
	radial := config.DefaultRadialConfig
	radial.Enabled = true
	radial.Pattern = types.RadialCone
	cfg := &config.RewardConfig{StartVelocity: 10, Spread: 60, Radial: radial}
	ps := radialParticles(10)

	ApplyRadialBurst(ps, cfg, rand.New(rand.NewSource(3)))

	for i, p := range ps {
		got := math.Atan2(p.VY, p.VX) / degToRad
		if d := angleDiff(got, -90); d > 30+1e-6 {
			t.Errorf("Particle %d: angle %.2f more than 30° from straight up", i, got)
		}
	}
}

func TestRadialBurst_AllPatternsProduceMotion(t *testing.T) {
	patterns := []types.RadialPattern{
		types.RadialCircular, types.RadialCone, types.RadialRandom,
		types.RadialSpiral, types.RadialVortex, types.RadialPinwheel,
	}
	for _, pattern := range patterns {
		t.Run(pattern.String(), func(t *testing.T) {
			radial := config.DefaultRadialConfig
			radial.Enabled = true
			radial.Pattern = pattern
			cfg := &config.RewardConfig{StartVelocity: 6, Spread: 90, Radial: radial}
			ps := radialParticles(16)

			ApplyRadialBurst(ps, cfg, rand.New(rand.NewSource(11)))
			for i, p := range ps {
				if math.Hypot(p.VX, p.VY) == 0 || math.IsNaN(p.VX) || math.IsNaN(p.VY) {
					t.Errorf("Particle %d: invalid velocity (%v, %v)", i, p.VX, p.VY)
				}
			}
		})
	}

	ApplyRadialBurst(nil, &config.RewardConfig{}, nil)
}

// TestSteerRadial 测试飞行中转向
func TestSteerRadial(t *testing.T) {
	origin := types.Point{X: 0, Y: 0}

	t.Run("spiral 保持速率", func(t *testing.T) {
		r := config.RadialConfig{Pattern: types.RadialSpiral, RotationSpeed: 0.1}
		p := &particle.Particle{VX: 3, VY: 4}
		SteerRadial(p, origin, r)
		if s := math.Hypot(p.VX, p.VY); math.Abs(s-5) > 1e-9 {
			t.Errorf("Expected speed 5 preserved, got %v", s)
		}
		if p.VX == 3 {
			t.Error("Expected velocity direction to rotate")
		}
	})

	t.Run("vortex 向中心牵引", func(t *testing.T) {
		near := config.RadialConfig{Pattern: types.RadialVortex, VortexPull: 0.1}
		a := &particle.Particle{X: 50}
		b := &particle.Particle{X: 200}
		SteerRadial(a, origin, near)
		SteerRadial(b, origin, near)
		if a.VX >= 0 || b.VX >= 0 {
			t.Errorf("Expected pull toward origin, got vx %v and %v", a.VX, b.VX)
		}
		if math.Abs(b.VX) <= math.Abs(a.VX) {
			t.Errorf("Expected stronger pull further out: %v vs %v", b.VX, a.VX)
		}
	})

	t.Run("pinwheel 切向推力", func(t *testing.T) {
		r := config.RadialConfig{Pattern: types.RadialPinwheel, RotationSpeed: 0.1}
		p := &particle.Particle{X: 10}
		SteerRadial(p, origin, r)
		if p.VX != 0 || p.VY <= 0 {
			t.Errorf("Expected thrust perpendicular to radius, got (%v, %v)", p.VX, p.VY)
		}
	})

	t.Run("circular 不转向", func(t *testing.T) {
		p := &particle.Particle{X: 10, VX: 1}
		SteerRadial(p, origin, config.RadialConfig{Pattern: types.RadialCircular})
		if p.VX != 1 || p.VY != 0 {
			t.Error("Circular pattern must not steer")
		}
	})
}
