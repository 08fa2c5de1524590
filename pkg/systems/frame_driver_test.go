package systems

import (
	"testing"
	"time"
)

func TestFrameQueue_RunsOncePerRequest(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	q.RequestFrame(func(time.Time) { calls++ })

	if q.Pending() != 1 {
		t.Fatalf("Expected 1 pending request, got %d", q.Pending())
	}
	if ran := q.Step(time.Now()); ran != 1 {
		t.Errorf("Expected 1 callback run, got %d", ran)
	}
	q.Step(time.Now())
	if calls != 1 {
		t.Errorf("Expected callback to fire exactly once, got %d", calls)
	}
}

// TestFrameQueue_RequestDuringStep 测试回调中注册的请求延迟到下一次 Step
func TestFrameQueue_RequestDuringStep(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	var loop func(time.Time)
	loop = func(time.Time) {
		calls++
		q.RequestFrame(loop)
	}
	q.RequestFrame(loop)

	q.Step(time.Now())
	if calls != 1 {
		t.Fatalf("Expected 1 call after first step, got %d", calls)
	}
	if q.Pending() != 1 {
		t.Errorf("Expected re-request to be pending, got %d", q.Pending())
	}
	q.Step(time.Now())
	if calls != 2 {
		t.Errorf("Expected 2 calls after second step, got %d", calls)
	}
}

func TestFrameQueue_Cancel(t *testing.T) {
	q := NewFrameQueue()
	fired := map[string]bool{}

	a := q.RequestFrame(func(time.Time) { fired["a"] = true })
	var c FrameHandle
	q.RequestFrame(func(time.Time) {
		fired["b"] = true
		q.CancelFrame(c)
	})
	c = q.RequestFrame(func(time.Time) { fired["c"] = true })

	q.CancelFrame(a)
	q.CancelFrame(9999)

	if ran := q.Step(time.Now()); ran != 1 {
		t.Errorf("Expected only b to run, got %d callbacks", ran)
	}
	if fired["a"] || fired["c"] || !fired["b"] {
		t.Errorf("Unexpected callbacks fired: %v", fired)
	}
	if q.Pending() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Pending())
	}
}
