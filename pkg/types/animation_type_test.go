package types

import "testing"

func TestAnimationType_RoundTripNames(t *testing.T) {
	for _, a := range AllAnimationTypes() {
		got, ok := ParseAnimationType(a.String())
		if !ok {
			t.Errorf("ParseAnimationType(%q) failed", a.String())
			continue
		}
		if got != a {
			t.Errorf("ParseAnimationType(%q) = %v, want %v", a.String(), got, a)
		}
	}
}

func TestParseAnimationType(t *testing.T) {
	tests := []struct {
		name   string
		want   AnimationType
		wantOK bool
	}{
		{"confetti", AnimationConfetti, true},
		{"  Fireworks ", AnimationFireworks, true},
		{"GALAXY", AnimationGalaxy, true},
		{"lasers", -1, false},
		{"", -1, false},
	}

	for _, tt := range tests {
		got, ok := ParseAnimationType(tt.name)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseAnimationType(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAnimationType_String_OutOfRange(t *testing.T) {
	if got := NumAnimationTypes.String(); got != "unknown" {
		t.Errorf("Expected 'unknown', got %q", got)
	}
	if AnimationType(-1).Valid() {
		t.Error("Expected -1 to be invalid")
	}
}

func TestParseRadialPattern(t *testing.T) {
	tests := []struct {
		name   string
		want   RadialPattern
		wantOK bool
	}{
		{"", RadialCircular, true},
		{"spiral", RadialSpiral, true},
		{"Pinwheel", RadialPinwheel, true},
		{"zigzag", RadialCircular, false},
	}

	for _, tt := range tests {
		got, ok := ParseRadialPattern(tt.name)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseRadialPattern(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}

	if !RadialVortex.Steered() || RadialCone.Steered() {
		t.Error("Expected only spiral, vortex and pinwheel to be steered")
	}
}

func TestRect_Center(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 40}
	c := r.Center()
	if c.X != 60 || c.Y != 40 {
		t.Errorf("Expected center (60, 40), got (%v, %v)", c.X, c.Y)
	}
	if !r.Contains(110, 60) || r.Contains(111, 60) {
		t.Error("Contains boundary check failed")
	}
}
