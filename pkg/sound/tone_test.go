package sound

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/rewardfx/pkg/types"
)

func TestNoteFor_DistinctPerType(t *testing.T) {
	seen := make(map[float64]types.AnimationType)
	for _, at := range types.AllAnimationTypes() {
		f := NoteFor(at)
		if f <= 0 {
			t.Errorf("%s: expected positive frequency, got %v", at, f)
		}
		if prev, dup := seen[f]; dup {
			t.Errorf("%s and %s share frequency %v", prev, at, f)
		}
		seen[f] = at
	}

	if NoteFor(types.AnimationType(-1)) != NoteFor(types.AnimationConfetti) {
		t.Error("invalid type must fall back to the first note")
	}
}

func TestTone_Envelope(t *testing.T) {
	tone := NewTone(440, 1, 1000, 100*time.Millisecond)
	if tone.Len() != 100 {
		t.Fatalf("expected 100 samples, got %d", tone.Len())
	}

	tests := []struct {
		name string
		pos  int
		want float64
	}{
		{"起音开始", 0, 0},
		{"起音中点", 4, 0.5},
		{"起音结束", 8, 1},
		{"衰减中点", 54, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tone.envelope(tt.pos); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("envelope(%d) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestTone_NextStops(t *testing.T) {
	tone := NewTone(440, 0.5, 8000, 10*time.Millisecond)
	n := 0
	for {
		v, ok := tone.Next()
		if !ok {
			break
		}
		if math.Abs(v) > 0.5+1e-9 {
			t.Fatalf("sample %d = %v exceeds volume", n, v)
		}
		n++
	}
	if n != tone.Len() {
		t.Errorf("expected %d samples, got %d", tone.Len(), n)
	}
	if _, ok := tone.Next(); ok {
		t.Error("exhausted tone must keep returning false")
	}
}

func TestTone_PCM16(t *testing.T) {
	tone := NewTone(880, 1, 8000, 20*time.Millisecond)
	buf := tone.PCM16()

	if len(buf) != tone.Len()*4 {
		t.Fatalf("expected %d bytes, got %d", tone.Len()*4, len(buf))
	}
	// 左右声道相同
	for i := 0; i+3 < len(buf); i += 4 {
		if buf[i] != buf[i+2] || buf[i+1] != buf[i+3] {
			t.Fatalf("frame %d: left/right channels differ", i/4)
		}
	}
	if len(tone.PCM16()) != 0 {
		t.Error("second render of an exhausted tone must be empty")
	}
}

func TestNewTone_ClampsVolume(t *testing.T) {
	if NewTone(440, 3, 0, NoteDuration).volume != 1 {
		t.Error("volume above 1 must clamp")
	}
	if NewTone(440, -1, 0, NoteDuration).rate != DefaultSampleRate {
		t.Error("zero sample rate must use the default")
	}
}
