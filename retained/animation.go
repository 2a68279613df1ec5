package retained

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// AnimationID uniquely identifies an animation.
type AnimationID uint64

var nextAnimationID atomic.Uint64

func newAnimationID() AnimationID {
	return AnimationID(nextAnimationID.Add(1))
}

// EasingFunc defines how animation progress maps to value progress.
// Input t is 0-1 (time progress), output is 0-1 (value progress).
type EasingFunc func(t float64) float64

// Common easing functions
var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseInQuad - accelerate from zero
	EaseInQuad EasingFunc = func(t float64) float64 { return t * t }

	// EaseOutQuad - decelerate to zero
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseInOutQuad - accelerate then decelerate
	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}

	// EaseOutCubic - smooth deceleration (good for UI)
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// EaseInOutCubic - smooth acceleration and deceleration
	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	}
)

// EasingByName returns the easing function for a given name.
// Returns nil if the name is unknown.
func EasingByName(name string) EasingFunc {
	switch name {
	case "linear":
		return EaseLinear
	case "ease-in":
		return EaseInQuad
	case "ease-out":
		return EaseOutQuad
	case "ease", "ease-in-out":
		return EaseInOutQuad
	case "cubic":
		return EaseInOutCubic
	case "ease-out-cubic":
		return EaseOutCubic
	default:
		return nil
	}
}

// AnimationKey names an animatable property of a widget. Starting a new
// animation on a key that is already animating interrupts the old one and
// continues from the value it reached.
type AnimationKey string

const (
	KeyContentInset  AnimationKey = "contentInset"
	KeyContentOffset AnimationKey = "contentOffset"
	KeyRotation      AnimationKey = "rotation"
	KeyOpacity       AnimationKey = "opacity"
)

type animationSlot struct {
	widget WidgetID
	key    AnimationKey
}

// Animation represents an active animation on a widget.
type Animation struct {
	id         AnimationID
	widget     *Widget
	key        AnimationKey
	startTime  time.Time
	duration   time.Duration
	update     func(progress float64) // Called each frame with eased progress 0-1
	onComplete func(finished bool)    // finished is false when cancelled or interrupted
	easing     EasingFunc
	loop       bool // If true, animation repeats forever
	cancelled  atomic.Bool
}

// ID returns the animation's unique identifier.
func (a *Animation) ID() AnimationID {
	return a.id
}

// Cancel stops the animation. Its completion runs on the next tick with
// finished=false.
func (a *Animation) Cancel() {
	a.cancelled.Store(true)
}

// IsCancelled returns whether the animation was cancelled.
func (a *Animation) IsCancelled() bool {
	return a.cancelled.Load()
}

// AnimationRegistry manages active animations.
type AnimationRegistry struct {
	mu         sync.RWMutex
	animations map[AnimationID]*Animation
	slots      map[animationSlot]*Animation
	now        func() time.Time

	// Callback when animation state changes (for loop to know when to switch modes)
	onActiveChange func(hasActive bool)
}

// NewAnimationRegistry creates a new animation registry using the wall clock.
func NewAnimationRegistry() *AnimationRegistry {
	return newAnimationRegistry(time.Now)
}

func newAnimationRegistry(now func() time.Time) *AnimationRegistry {
	return &AnimationRegistry{
		animations: make(map[AnimationID]*Animation),
		slots:      make(map[animationSlot]*Animation),
		now:        now,
	}
}

// OnActiveChange sets the callback for when animations become active/inactive.
func (r *AnimationRegistry) OnActiveChange(fn func(hasActive bool)) {
	r.mu.Lock()
	r.onActiveChange = fn
	r.mu.Unlock()
}

// Add registers a new animation. A keyed animation replaces any running
// animation with the same widget and key; the replaced one is cancelled.
func (r *AnimationRegistry) Add(anim *Animation) {
	r.mu.Lock()
	wasEmpty := len(r.animations) == 0
	r.animations[anim.id] = anim
	if anim.key != "" && anim.widget != nil {
		slot := animationSlot{widget: anim.widget.ID(), key: anim.key}
		if prev := r.slots[slot]; prev != nil && prev != anim {
			prev.Cancel()
		}
		r.slots[slot] = anim
	}
	callback := r.onActiveChange
	r.mu.Unlock()

	// Notify if we went from no animations to having animations
	if wasEmpty && callback != nil {
		callback(true)
	}
}

// Running returns the animation currently bound to a widget key, if any.
func (r *AnimationRegistry) Running(w *Widget, key AnimationKey) *Animation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	anim := r.slots[animationSlot{widget: w.ID(), key: key}]
	if anim == nil || anim.IsCancelled() {
		return nil
	}
	return anim
}

// HasActive returns true if there are any running animations.
func (r *AnimationRegistry) HasActive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.animations) > 0
}

// Count returns the number of active animations.
func (r *AnimationRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.animations)
}

type completion struct {
	fn       func(bool)
	finished bool
}

// Tick updates all animations and removes completed ones.
// Called once per frame by the loop. Returns true if any animations are still active.
func (r *AnimationRegistry) Tick(now time.Time) bool {
	r.mu.Lock()

	var toRemove []*Animation
	var done []completion
	var updates []func()

	for _, anim := range r.animations {
		if anim.cancelled.Load() {
			toRemove = append(toRemove, anim)
			if anim.onComplete != nil {
				done = append(done, completion{fn: anim.onComplete, finished: false})
			}
			continue
		}

		elapsed := now.Sub(anim.startTime)

		if elapsed >= anim.duration {
			if anim.loop && anim.duration > 0 {
				// Reset for next loop iteration
				anim.startTime = now
				elapsed = 0
			} else {
				toRemove = append(toRemove, anim)
				if anim.update != nil {
					update, easing := anim.update, anim.easing
					updates = append(updates, func() { update(easing(1.0)) })
				}
				if anim.onComplete != nil {
					done = append(done, completion{fn: anim.onComplete, finished: true})
				}
				continue
			}
		}

		// Calculate progress and apply easing
		t := float64(elapsed) / float64(anim.duration)
		progress := anim.easing(clamp(t, 0, 1))
		if anim.update != nil {
			update := anim.update
			updates = append(updates, func() { update(progress) })
		}
	}

	for _, anim := range toRemove {
		delete(r.animations, anim.id)
		if anim.key != "" && anim.widget != nil {
			slot := animationSlot{widget: anim.widget.ID(), key: anim.key}
			if r.slots[slot] == anim {
				delete(r.slots, slot)
			}
		}
	}

	hasActive := len(r.animations) > 0
	callback := r.onActiveChange
	r.mu.Unlock()

	// Property updates and completions run outside the lock so they may
	// start new animations.
	for _, fn := range updates {
		fn()
	}
	for _, c := range done {
		c.fn(c.finished)
	}

	// Notify if all animations finished
	if len(toRemove) > 0 && !hasActive && callback != nil {
		callback(false)
	}

	return r.HasActive()
}

// ============================================================================
// Animation Builder API
// ============================================================================

// AnimationBuilder provides a fluent API for creating animations.
type AnimationBuilder struct {
	widget     *Widget
	registry   *AnimationRegistry
	key        AnimationKey
	duration   time.Duration
	easing     EasingFunc
	loop       bool
	onComplete func(finished bool)
}

// Animate starts building an animation for this widget.
func (w *Widget) Animate(registry *AnimationRegistry) *AnimationBuilder {
	return &AnimationBuilder{
		widget:   w,
		registry: registry,
		duration: 300 * time.Millisecond, // Default duration
		easing:   EaseOutCubic,           // Default easing (smooth UI feel)
	}
}

// Duration sets how long the animation runs.
func (b *AnimationBuilder) Duration(d time.Duration) *AnimationBuilder {
	b.duration = d
	return b
}

// Easing sets the easing function.
func (b *AnimationBuilder) Easing(fn EasingFunc) *AnimationBuilder {
	b.easing = fn
	return b
}

// Key binds the animation to a widget property so a later animation on the
// same property interrupts it.
func (b *AnimationBuilder) Key(key AnimationKey) *AnimationBuilder {
	b.key = key
	return b
}

// Loop makes the animation repeat forever until cancelled.
func (b *AnimationBuilder) Loop() *AnimationBuilder {
	b.loop = true
	return b
}

// OnComplete sets a callback for when the animation ends. finished is false
// when the animation was cancelled or interrupted.
func (b *AnimationBuilder) OnComplete(fn func(finished bool)) *AnimationBuilder {
	b.onComplete = fn
	return b
}

// Opacity animates opacity from current to target (0.0 - 1.0).
func (b *AnimationBuilder) Opacity(to float32) *Animation {
	from := b.widget.Opacity()
	if b.key == "" {
		b.key = KeyOpacity
	}
	return b.Custom(func(progress float64) {
		b.widget.SetOpacity(lerp(from, to, float32(progress)))
	})
}

// Custom creates an animation with a custom update function.
// The update function receives progress from 0-1.
func (b *AnimationBuilder) Custom(update func(progress float64)) *Animation {
	anim := &Animation{
		id:         newAnimationID(),
		widget:     b.widget,
		key:        b.key,
		startTime:  b.registry.now(),
		duration:   b.duration,
		easing:     b.easing,
		loop:       b.loop,
		onComplete: b.onComplete,
		update:     update,
	}

	b.registry.Add(anim)
	return anim
}

// StartSpinAnimation rotates the widget 360 degrees continuously until the
// returned animation is cancelled.
func StartSpinAnimation(w *Widget, registry *AnimationRegistry, period time.Duration) *Animation {
	return w.Animate(registry).
		Key(KeyRotation).
		Duration(period).
		Easing(EaseLinear).
		Loop().
		Custom(func(progress float64) {
			w.SetRotation(float32(progress * 2 * math.Pi))
		})
}

// ============================================================================
// Helper Functions
// ============================================================================

// lerp linearly interpolates between two float32 values.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// clamp restricts a value to a range.
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
