package particle

import (
	"testing"

	"github.com/decker502/rewardfx/pkg/config"
)

// TestPool_AcquireAllocatesWhenEmpty tests that an empty pool always allocates
func TestPool_AcquireAllocatesWhenEmpty(t *testing.T) {
	pool := NewPool(10)

	a := pool.Acquire()
	b := pool.Acquire()

	if a == b {
		t.Fatal("Expected two distinct records from an empty pool")
	}
	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Errorf("Expected unique non-empty IDs, got %q and %q", a.ID, b.ID)
	}
	if pool.Created() != 2 {
		t.Errorf("Expected created = 2, got %d", pool.Created())
	}
	if a.Pooled() {
		t.Error("Acquired record must not be marked pooled")
	}
}

// TestPool_LIFOReuse tests that released records come back in reverse order
func TestPool_LIFOReuse(t *testing.T) {
	const n = 8
	pool := NewPool(n)

	records := make([]*Particle, n)
	for i := range records {
		records[i] = pool.Acquire()
	}
	for _, p := range records {
		pool.Release(p)
	}

	if pool.Len() != n {
		t.Fatalf("Expected %d pooled records, got %d", n, pool.Len())
	}

	for i := n - 1; i >= 0; i-- {
		got := pool.Acquire()
		if got != records[i] {
			t.Errorf("Acquire #%d: expected record %s, got %s", n-1-i, records[i].ID, got.ID)
		}
	}

	if pool.Created() != n {
		t.Errorf("Reuse must not allocate: expected created = %d, got %d", n, pool.Created())
	}
}

// TestPool_ReleaseBeyondMaxSize tests the capacity ceiling
func TestPool_ReleaseBeyondMaxSize(t *testing.T) {
	pool := NewPool(3)

	records := make([]*Particle, 5)
	for i := range records {
		records[i] = pool.Acquire()
	}
	pool.ReleaseAll(records)

	if pool.Len() != 3 {
		t.Errorf("Expected pool to hold maxSize = 3 records, got %d", pool.Len())
	}
	if pool.Created() != 5 {
		t.Errorf("Expected created = 5, got %d", pool.Created())
	}
	if records[3].Pooled() || records[4].Pooled() {
		t.Error("Records dropped at capacity must not be marked pooled")
	}
}

// TestPool_ReleaseClearsTransientFieldsOnly tests what Release resets
func TestPool_ReleaseClearsTransientFieldsOnly(t *testing.T) {
	pool := NewPool(4)
	cfg := &config.RewardConfig{ParticleCount: 3}

	p := pool.Acquire()
	p.X, p.Y = 12.5, -7
	p.VX, p.VY = 1, 2
	p.Life = 40
	p.Size = 9
	p.Rotation = 33
	p.Color = "#ff0000"
	p.Kind = &Shell{ExplodeAtFrame: 10, BurstCount: 5}
	p.Config = cfg

	pool.Release(p)

	if p.Kind != nil {
		t.Error("Release must clear Kind")
	}
	if p.Config != nil {
		t.Error("Release must clear Config")
	}
	if p.X != 12.5 || p.Y != -7 || p.VX != 1 || p.VY != 2 {
		t.Errorf("Release must not reset motion, got pos (%v,%v) vel (%v,%v)", p.X, p.Y, p.VX, p.VY)
	}
	if p.Life != 40 || p.Size != 9 || p.Rotation != 33 || p.Color != "#ff0000" {
		t.Error("Release must not reset life, size, rotation or color")
	}
}

// TestPool_DoubleReleaseIgnored tests idempotent release
func TestPool_DoubleReleaseIgnored(t *testing.T) {
	pool := NewPool(4)
	p := pool.Acquire()

	pool.Release(p)
	pool.Release(p)
	pool.Release(nil)

	if pool.Len() != 1 {
		t.Errorf("Expected a single pooled entry after double release, got %d", pool.Len())
	}

	first := pool.Acquire()
	second := pool.Acquire()
	if first != p {
		t.Error("Expected the released record back")
	}
	if second == p {
		t.Error("A record released twice must not be handed out twice")
	}
}

func TestPool_Clear(t *testing.T) {
	pool := NewPool(4)
	pool.Release(pool.Acquire())
	pool.Release(pool.Acquire())

	pool.Clear()
	if pool.Len() != 0 {
		t.Errorf("Expected empty pool after Clear, got %d", pool.Len())
	}

	p := pool.Acquire()
	if p.Pooled() {
		t.Error("Fresh record after Clear must not be pooled")
	}
	if pool.Created() != 2 {
		t.Errorf("Expected created = 2 (first record reused, then cleared), got %d", pool.Created())
	}
}

func TestNewPool_DefaultSize(t *testing.T) {
	if got := NewPool(0).MaxSize(); got != DefaultPoolSize {
		t.Errorf("Expected default max size %d, got %d", DefaultPoolSize, got)
	}
}

func TestPickColor(t *testing.T) {
	if got := PickColor(nil, 3); got != DefaultColor {
		t.Errorf("Expected default color for empty list, got %q", got)
	}
	colors := []string{"#a", "#b", "#c"}
	if got := PickColor(colors, 4); got != "#b" {
		t.Errorf("Expected #b, got %q", got)
	}
	if got := PickColor(colors, -1); got != "#b" {
		t.Errorf("Expected #b for negative index, got %q", got)
	}
}
