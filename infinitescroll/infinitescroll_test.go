package infinitescroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/infinitescroll/retained"
)

func TestAttachDetachLeavesNoResidue(t *testing.T) {
	h := newHarness(t)
	sv := h.scrollView(1000)
	baseline := attachedCount()

	for i := 0; i < 5; i++ {
		Attach(sv, func(Host) {})
		require.True(t, IsAttached(sv))
		assert.Equal(t, baseline+1, attachedCount())
		assert.Equal(t, 2, sv.ObserverCount())
		assert.Equal(t, 1, sv.PanGesture().TargetCount())

		Begin(sv, false)
		h.advance(50 * time.Millisecond)
		Detach(sv)

		assert.False(t, IsAttached(sv))
		assert.Equal(t, baseline, attachedCount())
		assert.Zero(t, sv.ObserverCount(), "cycle %d left observers", i)
		assert.Zero(t, sv.PanGesture().TargetCount(), "cycle %d left gesture targets", i)
		assert.Zero(t, sv.View().ChildCount(), "cycle %d left subviews", i)
		assert.Equal(t, retained.Insets{}, sv.ContentInset())
	}

	h.advance(time.Second)
	assert.Zero(t, h.loop.PendingTimers())
	assert.Equal(t, retained.Insets{}, sv.PresentationContentInset())
}

func TestReattachReplacesState(t *testing.T) {
	h := newHarness(t)
	sv := h.scrollView(1000)

	first, second := 0, 0
	Attach(sv, func(Host) { first++ }, WithTriggerOffset(10))
	Begin(sv, false)

	Attach(sv, func(Host) { second++ })
	t.Cleanup(func() { Detach(sv) })

	assert.Equal(t, float32(0), TriggerOffset(sv))
	assert.False(t, IsLoading(sv), "replaced state starts idle")
	assert.Equal(t, retained.Insets{}, sv.ContentInset(), "old reservation released")
	assert.Equal(t, 2, sv.ObserverCount())

	h.advance(time.Second)
	assert.Zero(t, first, "old handler never fires")
	assert.Zero(t, second)
}

func TestDetachWhenNotAttached(t *testing.T) {
	h := newHarness(t)
	sv := h.scrollView(1000)

	assert.NotPanics(t, func() {
		Detach(sv)
		Detach(nil)
		Begin(sv, true)
		Finish(sv, nil)
	})
	assert.Nil(t, IndicatorView(sv))
	assert.Equal(t, PhaseIdle, CurrentPhase(sv))
}

func TestLateHandlerAfterDetachIsInert(t *testing.T) {
	h := newHarness(t)
	sv := h.scrollView(1000)
	calls := h.attach(sv)

	Begin(sv, false)
	Detach(sv)
	h.advance(time.Second)
	assert.Zero(t, *calls)
	assert.Zero(t, h.loop.PendingTimers())
}

func TestStaleHandlerTimerIsInert(t *testing.T) {
	h := newHarness(t)
	sv := h.scrollView(1000)
	calls := h.attach(sv)

	Begin(sv, false)
	// Drop the registry entry without going through Detach, so the timer
	// survives and must notice on its own.
	stale := unregister(sv)
	require.NotNil(t, stale)
	h.advance(time.Second)

	assert.Zero(t, *calls)
	stale.detach()
}

func TestDetachDuringReleaseKeepsRestoredInset(t *testing.T) {
	h := newHarness(t)
	sv := h.scrollView(1000)
	sv.SetContentInset(retained.Insets{Bottom: 8})
	h.attach(sv)

	Begin(sv, false)
	h.advance(DefaultAnimationDuration)

	done := false
	Finish(sv, func(Host) { done = true })
	Detach(sv)
	h.advance(time.Second)

	assert.True(t, done, "release completion still runs")
	assert.Equal(t, retained.Insets{Bottom: 8}, sv.ContentInset())
	assert.Equal(t, retained.Insets{Bottom: 8}, sv.PresentationContentInset())
}

func TestIndicatorViewReattaches(t *testing.T) {
	h := newHarness(t)
	sv := h.scrollView(1000)
	h.attach(sv)

	ind := IndicatorView(sv)
	require.NotNil(t, ind)
	assert.Same(t, sv.View(), ind.View().Parent())

	ind.View().RemoveFromParent()
	again := IndicatorView(sv)
	assert.Same(t, ind, again)
	assert.Same(t, sv.View(), again.View().Parent())
}

func TestSetIndicatorView(t *testing.T) {
	h := newHarness(t)
	sv := h.scrollView(1000)
	h.attach(sv)

	old := IndicatorView(sv)
	custom := newRecordingIndicator(24)
	SetIndicatorView(sv, custom)

	assert.Nil(t, old.View().Parent(), "replaced indicator leaves the hierarchy")
	assert.False(t, custom.View().Visible())

	Begin(sv, false)
	assert.Equal(t, 1, custom.starts)
	assert.Equal(t, retained.Insets{Bottom: 46}, sv.ContentInset())

	replacement := newRecordingIndicator(24)
	SetIndicatorView(sv, replacement)
	assert.Equal(t, 1, custom.stops)
	assert.True(t, replacement.View().Visible(), "replacing mid load keeps the indicator shown")
	assert.Equal(t, 1, replacement.starts)
}

func TestSetIndicatorStyle(t *testing.T) {
	h := newHarness(t)
	sv := h.scrollView(1000)
	h.attach(sv, WithIndicatorStyle(StyleGray))

	assert.Equal(t, StyleGray, IndicatorStyleOf(sv))
	first := IndicatorView(sv).(*ActivityIndicator)
	assert.Equal(t, StyleGray, first.Style())

	SetIndicatorStyle(sv, StyleWhiteLarge)
	large := IndicatorView(sv).(*ActivityIndicator)
	assert.NotSame(t, first, large)
	assert.Equal(t, StyleWhiteLarge, large.Style())

	w, hgt := large.View().Size()
	assert.Equal(t, float32(37), w)
	assert.Equal(t, float32(37), hgt)

	Begin(sv, false)
	assert.Equal(t, retained.Insets{Bottom: 59}, sv.ContentInset())
}

func TestAccessors(t *testing.T) {
	h := newHarness(t)
	sv := h.scrollView(1000)

	// Defaults when not attached.
	assert.Equal(t, Vertical, DirectionOf(sv))
	assert.Equal(t, DefaultIndicatorMargin, IndicatorMargin(sv))
	assert.Equal(t, StyleWhite, IndicatorStyleOf(sv))
	assert.False(t, IsLoading(sv))

	h.attach(sv)

	SetTriggerOffset(sv, 80)
	assert.Equal(t, float32(80), TriggerOffset(sv))

	SetIndicatorMargin(sv, 4)
	assert.Equal(t, float32(4), IndicatorMargin(sv))

	SetDirection(sv, Horizontal)
	assert.Equal(t, Horizontal, DirectionOf(sv))

	SetLoading(sv, true)
	assert.True(t, IsLoading(sv))
	SetDirection(sv, Vertical)
	assert.Equal(t, Horizontal, DirectionOf(sv), "axis is fixed while loading")

	Begin(sv, false)
	assert.Equal(t, retained.Insets{}, sv.ContentInset(), "forced loading flag blocks begin")

	SetLoading(sv, false)
	SetDirection(sv, Vertical)
	assert.Equal(t, Vertical, DirectionOf(sv))
}
