package systems

import "time"

// FrameHandle identifies a pending frame request. The zero value is never
// issued.
type FrameHandle uint64

// FrameDriver is the host's per-frame callback mechanism.
//
// A request fires at most once, on the host's next frame. Callbacks run on
// the goroutine that drives the host frame.
type FrameDriver interface {
	RequestFrame(fn func(now time.Time)) FrameHandle
	CancelFrame(h FrameHandle)
}

type frameRequest struct {
	handle FrameHandle
	fn     func(now time.Time)
}

// FrameQueue 由宿主循环驱动的帧回调队列
//
// The host calls Step once per host frame (ebiten's Update, or the terminal
// demo's ticker). Requests made while Step is running are deferred to the
// next Step.
type FrameQueue struct {
	next    FrameHandle
	pending []frameRequest
	running []frameRequest // 当前 Step 正在执行的批次
}

// NewFrameQueue 创建空的帧队列
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame 注册下一帧回调
func (q *FrameQueue) RequestFrame(fn func(now time.Time)) FrameHandle {
	q.next++
	q.pending = append(q.pending, frameRequest{handle: q.next, fn: fn})
	return q.next
}

// CancelFrame 取消尚未执行的回调，未知或已执行的句柄被忽略
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	for i, r := range q.pending {
		if r.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// 同一批次中较早的回调可能取消后面的回调
	for i := range q.running {
		if q.running[i].handle == h {
			q.running[i].fn = nil
			return
		}
	}
}

// Step 执行当前所有待处理回调，返回执行数量
func (q *FrameQueue) Step(now time.Time) int {
	if len(q.pending) == 0 {
		return 0
	}
	q.running = q.pending
	q.pending = nil
	defer func() { q.running = nil }()

	ran := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn(now)
		ran++
	}
	return ran
}

// Pending 返回待执行回调数量
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
