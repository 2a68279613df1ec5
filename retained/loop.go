package retained

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
)

var (
	// ErrLoopStopped is returned when work is submitted to a stopped loop.
	ErrLoopStopped = errors.New("retained: loop is stopped")

	// ErrLoopAlreadyRunning is returned when Run is called twice.
	ErrLoopAlreadyRunning = errors.New("retained: loop is already running")
)

// LoopConfig configures the loop behavior.
type LoopConfig struct {
	// TargetFPS is the desired frames per second for Run (default: 60).
	TargetFPS int

	// Clock returns the current time. Tests substitute a fake clock.
	// Default: time.Now.
	Clock func() time.Time

	// Logger receives panics recovered from callbacks. The zero value
	// discards.
	Logger logr.Logger
}

// DefaultLoopConfig returns sensible defaults.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		TargetFPS: 60,
		Clock:     time.Now,
		Logger:    logr.Discard(),
	}
}

// TimerID identifies a scheduled timer. The zero value is never issued.
type TimerID uint64

type timer struct {
	id   TimerID
	when time.Time
	seq  uint64 // tie-breaker so equal deadlines fire in scheduling order
	fn   func()
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].when.Equal(h[j].when) {
		return h[i].seq < h[j].seq
	}
	return h[i].when.Before(h[j].when)
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) {
	*h = append(*h, x.(*timer))
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Loop is the main execution context for widgets. Widget state, timers and
// animations are only touched from the goroutine calling Tick (or Run).
// Other goroutines hand work over with Submit.
type Loop struct {
	config     LoopConfig
	clock      func() time.Time
	log        logr.Logger
	animations *AnimationRegistry

	// Timers (loop goroutine only)
	timers    timerHeap
	cancelled map[TimerID]struct{}
	pending   map[TimerID]struct{}
	nextTimer TimerID
	timerSeq  uint64

	// Ingress from other goroutines
	ingressMu sync.Mutex
	ingress   []func()

	running    atomic.Bool
	stopped    atomic.Bool
	frameCount atomic.Uint64
}

// NewLoop creates a loop. Zero config fields take their defaults.
func NewLoop(config LoopConfig) *Loop {
	defaults := DefaultLoopConfig()
	if config.TargetFPS <= 0 {
		config.TargetFPS = defaults.TargetFPS
	}
	if config.Clock == nil {
		config.Clock = defaults.Clock
	}

	return &Loop{
		config:     config,
		clock:      config.Clock,
		log:        config.Logger,
		animations: newAnimationRegistry(config.Clock),
		cancelled:  make(map[TimerID]struct{}),
		pending:    make(map[TimerID]struct{}),
	}
}

// Animations returns the loop's animation registry.
func (l *Loop) Animations() *AnimationRegistry {
	return l.animations
}

// Now returns the loop clock's current time.
func (l *Loop) Now() time.Time {
	return l.clock()
}

// After schedules fn to run on the loop once d has elapsed.
func (l *Loop) After(d time.Duration, fn func()) TimerID {
	l.nextTimer++
	l.timerSeq++
	t := &timer{
		id:   l.nextTimer,
		when: l.clock().Add(d),
		seq:  l.timerSeq,
		fn:   fn,
	}
	heap.Push(&l.timers, t)
	l.pending[t.id] = struct{}{}
	return t.id
}

// CancelTimer prevents a scheduled timer from firing. Returns false if the
// timer already fired or was never scheduled.
func (l *Loop) CancelTimer(id TimerID) bool {
	if _, ok := l.pending[id]; !ok {
		return false
	}
	delete(l.pending, id)
	l.cancelled[id] = struct{}{}
	return true
}

// PendingTimers returns the number of timers that have not fired yet.
func (l *Loop) PendingTimers() int {
	return len(l.pending)
}

// Submit queues fn to run on the loop goroutine during the next tick.
// Safe to call from any goroutine.
func (l *Loop) Submit(fn func()) error {
	if l.stopped.Load() {
		return ErrLoopStopped
	}
	l.ingressMu.Lock()
	l.ingress = append(l.ingress, fn)
	l.ingressMu.Unlock()
	return nil
}

// Tick runs one loop iteration: submitted work, due timers, then animations.
// Returns true while timers or animations are still pending.
func (l *Loop) Tick() bool {
	now := l.clock()

	l.ingressMu.Lock()
	queued := l.ingress
	l.ingress = nil
	l.ingressMu.Unlock()
	for _, fn := range queued {
		l.safeExecute(fn)
	}

	l.runTimers(now)

	hasActiveAnimations := l.animations.Tick(now)
	l.frameCount.Add(1)

	return hasActiveAnimations || len(l.pending) > 0
}

func (l *Loop) runTimers(now time.Time) {
	for len(l.timers) > 0 {
		next := l.timers[0]
		if next.when.After(now) {
			return
		}
		heap.Pop(&l.timers)
		if _, skip := l.cancelled[next.id]; skip {
			delete(l.cancelled, next.id)
			continue
		}
		delete(l.pending, next.id)
		l.safeExecute(next.fn)
	}
}

func (l *Loop) safeExecute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error(fmt.Errorf("panic: %v", r), "recovered panic in loop callback")
		}
	}()
	fn()
}

// Run ticks the loop at TargetFPS until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopAlreadyRunning
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(time.Second / time.Duration(l.config.TargetFPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-ticker.C:
			l.Tick()
		}
	}
}

// Stop rejects further Submit calls.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

// IsRunning returns whether Run is active.
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}

// Stats returns loop statistics.
func (l *Loop) Stats() LoopStats {
	return LoopStats{
		FrameCount:       l.frameCount.Load(),
		PendingTimers:    len(l.pending),
		ActiveAnimations: l.animations.Count(),
		TargetFPS:        l.config.TargetFPS,
	}
}

// LoopStats contains loop counters.
type LoopStats struct {
	FrameCount       uint64
	PendingTimers    int
	ActiveAnimations int
	TargetFPS        int
}
