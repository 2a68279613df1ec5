package demo

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agiangrant/infinitescroll/infinitescroll"
	"github.com/agiangrant/infinitescroll/retained"
)

// SpinnerIndicator is an infinite scroll indicator drawn as a one-line
// terminal spinner.
type SpinnerIndicator struct {
	widget *retained.Widget
	model  spinner.Model
	active bool
}

var _ infinitescroll.Indicator = (*SpinnerIndicator)(nil)

// NewSpinnerIndicator creates a hidden spinner one cell tall.
func NewSpinnerIndicator() *SpinnerIndicator {
	w := retained.NewWidget(retained.KindActivityIndicator)
	w.SetSize(1, 1)
	w.SetVisible(false)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return &SpinnerIndicator{widget: w, model: s}
}

func (s *SpinnerIndicator) View() *retained.Widget { return s.widget }

// StartAnimating makes the spinner advance on its ticks.
func (s *SpinnerIndicator) StartAnimating() { s.active = true }

// StopAnimating freezes the spinner.
func (s *SpinnerIndicator) StopAnimating() { s.active = false }

// Active reports whether the spinner is animating.
func (s *SpinnerIndicator) Active() bool { return s.active }

// Tick is the command that keeps the spinner running.
func (s *SpinnerIndicator) Tick() tea.Msg { return s.model.Tick() }

// Update advances the frame on spinner ticks. Ticks keep flowing while the
// indicator is hidden, so StartAnimating needs no new command.
func (s *SpinnerIndicator) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(tick)
	return cmd
}

// Frame renders the current spinner frame.
func (s *SpinnerIndicator) Frame() string { return s.model.View() }
