package infinitescroll

import (
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr/testr"

	"github.com/agiangrant/infinitescroll/retained"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// harness drives a loop frame by frame on a fake clock.
type harness struct {
	t     *testing.T
	clock *fakeClock
	loop  *retained.Loop
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return &harness{
		t:     t,
		clock: clock,
		loop:  retained.NewLoop(retained.LoopConfig{Clock: clock.Now}),
	}
}

const frame = 10 * time.Millisecond

// advance ticks the loop every frame until d has elapsed.
func (h *harness) advance(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		h.clock.Advance(frame)
		h.loop.Tick()
	}
}

// scrollView returns a 320x400 vertical scroll view with the given content
// height.
func (h *harness) scrollView(contentHeight float32) *retained.ScrollView {
	sv := retained.NewScrollView(h.loop, 320, 400)
	sv.SetContentSize(retained.Size{Width: 320, Height: contentHeight})
	return sv
}

// listView returns a 320x400 list of 50pt rows.
func (h *harness) listView(rows int) *retained.ListView {
	list := retained.NewListView(h.loop, 320, 400)
	heights := make([]float32, rows)
	for i := range heights {
		heights[i] = 50
	}
	list.AppendRows(heights...)
	return list
}

// attach installs infinite scroll with a counting handler and test logging,
// and detaches when the test ends.
func (h *harness) attach(host Host, opts ...Option) *int {
	h.t.Helper()
	calls := new(int)
	opts = append([]Option{WithLogger(testr.NewWithOptions(h.t, testr.Options{Verbosity: 2}))}, opts...)
	Attach(host, func(Host) { *calls++ }, opts...)
	h.t.Cleanup(func() { Detach(host) })
	return calls
}

// recordingIndicator is an Indicator that counts animation calls.
type recordingIndicator struct {
	view   *retained.Widget
	starts int
	stops  int
}

func newRecordingIndicator(side float32) *recordingIndicator {
	w := retained.NewWidget(retained.KindCustom)
	w.SetSize(side, side)
	return &recordingIndicator{view: w}
}

func (r *recordingIndicator) View() *retained.Widget { return r.view }
func (r *recordingIndicator) StartAnimating()        { r.starts++ }
func (r *recordingIndicator) StopAnimating()         { r.stops++ }
