package demo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"

	"github.com/agiangrant/infinitescroll/infinitescroll"
	"github.com/agiangrant/infinitescroll/retained"
)

// Rows are one terminal line tall; flicks move a few lines per key press.
const (
	rowHeight     float32 = 1
	flickDistance float32 = 3
	flickVelocity float32 = 600
	headerLines           = 2
	frameInterval         = time.Second / 60
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	rowStyle     = lipgloss.NewStyle()
	altRowStyle  = lipgloss.NewStyle().Faint(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"})
	faintStyle   = lipgloss.NewStyle().Faint(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
)

// Options configure the demo program.
type Options struct {
	Demo   Config
	Scroll []infinitescroll.Option
	Logger logr.Logger
	// Clock drives the retained loop; nil means the wall clock.
	Clock func() time.Time
}

type frameMsg time.Time

// Model is the bubbletea model. The retained loop is ticked from Update, so
// bubbletea's goroutine is the loop goroutine.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	log    logr.Logger

	loop      *retained.Loop
	list      *retained.ListView
	indicator *SpinnerIndicator
	feed      *Feed

	items     []Item
	exhausted bool
	loads     int
	err       error

	width, height int
}

// NewModel builds the list, attaches infinite scroll and prepares the feed.
func NewModel(opts Options) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	loop := retained.NewLoop(retained.LoopConfig{Clock: opts.Clock, Logger: opts.Logger})

	m := &Model{
		ctx:       ctx,
		cancel:    cancel,
		log:       opts.Logger,
		loop:      loop,
		list:      retained.NewListView(loop, 80, 20),
		indicator: NewSpinnerIndicator(),
		feed:      NewFeed(opts.Demo),
	}

	scrollOpts := append([]infinitescroll.Option{
		infinitescroll.WithLogger(opts.Logger.WithName("infinitescroll")),
	}, opts.Scroll...)
	// Rows are terminal lines, so the spinner sits on the line right after
	// the last row.
	scrollOpts = append(scrollOpts,
		infinitescroll.WithIndicatorMargin(0),
		infinitescroll.WithIndicator(m.indicator),
	)

	infinitescroll.Attach(m.list, m.loadMore, scrollOpts...)
	infinitescroll.SetShouldShow(m.list, func(infinitescroll.Host) bool { return !m.exhausted })
	return m
}

// Run starts the demo and blocks until the user quits.
func Run(opts Options) error {
	m := NewModel(opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}
	return nil
}

// Close detaches infinite scroll and cancels in-flight fetches.
func (m *Model) Close() {
	m.cancel()
	infinitescroll.Detach(m.list)
	m.loop.Stop()
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init kicks off the frame clock, the spinner and the first page.
func (m *Model) Init() tea.Cmd {
	infinitescroll.Begin(m.list, true)
	return tea.Batch(frameTick(), m.indicator.Tick)
}

// loadMore runs on the loop. The fetch happens elsewhere and the result hops
// back through Submit.
func (m *Model) loadMore(host infinitescroll.Host) {
	offset := len(m.items)
	m.log.V(1).Info("fetching page", "offset", offset)

	go func() {
		items, err := m.feed.Fetch(m.ctx, offset)
		if submitErr := m.loop.Submit(func() { m.appendPage(host, items, err) }); submitErr != nil {
			m.log.V(1).Info("dropping page after shutdown", "offset", offset)
		}
	}()
}

func (m *Model) appendPage(host infinitescroll.Host, items []Item, err error) {
	if err != nil {
		m.err = err
		infinitescroll.Finish(host, nil)
		return
	}
	if len(items) == 0 {
		m.exhausted = true
	}

	heights := make([]float32, len(items))
	for i := range heights {
		heights[i] = rowHeight
	}
	m.list.PerformBatchUpdates(func() {
		m.items = append(m.items, items...)
		m.list.AppendRows(heights...)
	})
	m.loads++

	infinitescroll.Finish(host, func(infinitescroll.Host) {
		m.log.V(1).Info("page shown", "rows", len(m.items), "exhausted", m.exhausted)
	})
}

// flick simulates a short drag followed by a release. A negative distance
// moves toward the end of the list.
func (m *Model) flick(distance float32) {
	velocity := flickVelocity
	if distance < 0 {
		velocity = -velocity
	}
	m.list.Drag(retained.Point{Y: distance}, retained.Point{Y: velocity})
	m.list.EndDragging(retained.Point{Y: velocity})

	// Bounce back into the resting range unless a load owns the offset.
	if !infinitescroll.IsLoading(m.list) {
		if clamped := m.list.ClampOffset(m.list.ContentOffset()); clamped != m.list.ContentOffset() {
			m.list.SetContentOffset(clamped, true)
		}
	}
}

// Update handles keys, resizes and the frame clock.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "down", "j":
			m.flick(-flickDistance)
		case "up", "k":
			m.flick(flickDistance)
		case "pgdown", " ":
			m.flick(-float32(m.viewportLines()))
		case "pgup":
			m.flick(float32(m.viewportLines()))
		case "g", "home":
			m.list.SetContentOffset(m.list.MinContentOffset(), true)
		case "r":
			m.err = nil
			infinitescroll.Begin(m.list, true)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(float32(msg.Width), float32(m.viewportLines()))
		return m, nil

	case frameMsg:
		m.loop.Tick()
		return m, frameTick()

	case spinner.TickMsg:
		return m, m.indicator.Update(msg)
	}
	return m, nil
}

func (m *Model) viewportLines() int {
	return max(m.height-headerLines, 1)
}

// View renders the visible slice of the list and the indicator row.
func (m *Model) View() string {
	var b strings.Builder

	status := fmt.Sprintf("%d rows · %d loads · %s", len(m.items), m.loads, infinitescroll.CurrentPhase(m.list))
	if m.exhausted {
		status += " · end of feed"
	}
	b.WriteString(titleStyle.Render("Infinite scroll") + "  " + faintStyle.Render(status) + "\n")
	if m.err != nil {
		b.WriteString(errStyle.Render("Error: "+m.err.Error()+" (r to retry)") + "\n")
	} else {
		b.WriteString(faintStyle.Render("j/k scroll · space page · g top · r load · q quit") + "\n")
	}

	top := int(m.list.ContentOffset().Y)
	indicatorView := m.indicator.View()
	indicatorLine := -1
	if indicatorView.Visible() {
		indicatorLine = int(indicatorView.Frame().Y)
	}

	for line := 0; line < m.viewportLines(); line++ {
		y := top + line
		switch {
		case y >= 0 && y < len(m.items):
			style := rowStyle
			if y%2 == 1 {
				style = altRowStyle
			}
			b.WriteString(style.Render(m.items[y].Title))
		case y == indicatorLine:
			b.WriteString(m.indicator.Frame() + faintStyle.Render(" loading"))
		}
		if line < m.viewportLines()-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
