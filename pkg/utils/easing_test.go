package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 所有缓动函数必须满足 f(0)=0, f(1)=1
func TestEasingEndpoints(t *testing.T) {
	for name, fn := range easings {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); math.Abs(got) > 1e-9 {
				t.Errorf("%s(0) = %v, 期望 0", name, got)
			}
			if got := fn(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(1) = %v, 期望 1", name, got)
			}
		})
	}
}

func TestEasingMidpoints(t *testing.T) {
	tests := []struct {
		name     string
		fn       Easing
		input    float64
		expected float64
	}{
		{"线性中点", EaseLinear, 0.5, 0.5},
		{"缓出中点", EaseOutCubic, 0.5, 0.875}, // 1 - 0.5³
		{"缓入中点", EaseInCubic, 0.5, 0.125},
		{"缓入缓出中点", EaseInOutCubic, 0.5, 0.5},
		{"缓入缓出四分之一", EaseInOutCubic, 0.25, 0.0625}, // 4 * 0.25³
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("f(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestEaseOutBackOvershoots 回弹曲线在终点前越过 1
func TestEaseOutBackOvershoots(t *testing.T) {
	peak := 0.0
	for p := 0.0; p <= 1.0; p += 0.01 {
		peak = math.Max(peak, EaseOutBack(p))
	}
	if peak <= 1.0 {
		t.Errorf("EaseOutBack 峰值 %v 应该大于 1", peak)
	}
	if peak > 1.15 {
		t.Errorf("EaseOutBack 峰值 %v 越界过多", peak)
	}
}

func TestEasingByName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		probe  float64
		want   float64
	}{
		{"小写", "outcubic", true, 0.5, 0.875},
		{"连字符与大小写", "In-Cubic", true, 0.5, 0.125},
		{"未知名称回落线性", "bounce", false, 0.3, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := EasingByName(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("EasingByName(%q) ok = %v, 期望 %v", tt.input, ok, tt.wantOK)
			}
			if got := fn(tt.probe); math.Abs(got-tt.want) > 0.001 {
				t.Errorf("f(%v) = %v, 期望 %v", tt.probe, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 100, 200, 0, 100},
		{"终点", 100, 200, 1, 200},
		{"中点", 100, 200, 0.5, 150},
		{"反向", 200, 100, 0.25, 175},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.expected)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.4) != 0.4 {
		t.Error("Clamp01 结果错误")
	}
}
