package systems

import (
	"context"
	"errors"
	"sync"
)

// ErrCanceled is returned by Completion.Wait when the burst was torn down by
// a replay or by the controller being destroyed.
var ErrCanceled = errors.New("reward animation canceled")

// Completion 一次奖励动画的完成信号
//
// Exactly one of Done or Canceled is eventually closed, at most once. It is
// the only type in this package that may be observed from other goroutines.
type Completion struct {
	mu       sync.Mutex
	settled  bool
	done     chan struct{}
	canceled chan struct{}
}

func newCompletion() *Completion {
	return &Completion{
		done:     make(chan struct{}),
		canceled: make(chan struct{}),
	}
}

// resolvedCompletion 返回一个已完成的信号（锚点缺失、类型未知等快速失败路径）
func resolvedCompletion() *Completion {
	c := newCompletion()
	c.resolve()
	return c
}

// Done is closed when the burst's last particle has expired.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Canceled is closed when the burst was dropped without finishing.
func (c *Completion) Canceled() <-chan struct{} {
	return c.canceled
}

// Resolved reports whether Done has been closed.
func (c *Completion) Resolved() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the completion settles or ctx ends.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-c.canceled:
		return ErrCanceled
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Completion) resolve() bool {
	return c.settle(c.done)
}

func (c *Completion) cancel() bool {
	return c.settle(c.canceled)
}

func (c *Completion) settle(ch chan struct{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.settled {
		return false
	}
	c.settled = true
	close(ch)
	return true
}
