package retained

// ============================================================================
// List View
// ============================================================================

// RowPosition selects where a row lands when scrolled into view.
type RowPosition int

const (
	RowPositionTop RowPosition = iota
	RowPositionBottom
)

// ListView is a vertical scroll view of stacked rows. Its content size is
// derived from its rows and only refreshed when rows change outside a batch
// or when RecomputeContentSize is called.
type ListView struct {
	*ScrollView

	rows    []*Widget
	batch   int
	pending bool
}

// NewListView creates an empty list with the given viewport size.
func NewListView(loop *Loop, width, height float32) *ListView {
	return &ListView{
		ScrollView: newScrollView(loop, KindList, width, height),
	}
}

// NumberOfRows returns the row count.
func (l *ListView) NumberOfRows() int {
	return len(l.rows)
}

// Row returns the row widget at index, or nil when out of range.
func (l *ListView) Row(index int) *Widget {
	if index < 0 || index >= len(l.rows) {
		return nil
	}
	return l.rows[index]
}

// AppendRows adds rows of the given heights below the existing ones and
// returns their widgets.
func (l *ListView) AppendRows(heights ...float32) []*Widget {
	width := l.Bounds().Width
	y := l.rowsHeight()
	added := make([]*Widget, 0, len(heights))
	for _, h := range heights {
		row := NewWidget(KindRow)
		row.SetFrame(0, y, width, h)
		l.Widget.AddChild(row)
		l.rows = append(l.rows, row)
		added = append(added, row)
		y += h
	}
	l.rowsChanged()
	return added
}

// Reload replaces all rows.
func (l *ListView) Reload(heights ...float32) []*Widget {
	var added []*Widget
	l.PerformBatchUpdates(func() {
		for _, row := range l.rows {
			l.Widget.RemoveChild(row)
		}
		l.rows = nil
		added = l.AppendRows(heights...)
	})
	return added
}

// PerformBatchUpdates runs fn with content-size refreshes deferred, then
// applies a single refresh without animation.
func (l *ListView) PerformBatchUpdates(fn func()) {
	l.batch++
	if fn != nil {
		fn()
	}
	l.batch--
	if l.batch == 0 && l.pending {
		l.pending = false
		l.RecomputeContentSize()
	}
}

func (l *ListView) rowsChanged() {
	if l.batch > 0 {
		l.pending = true
		return
	}
	l.RecomputeContentSize()
}

func (l *ListView) rowsHeight() float32 {
	var total float32
	for _, row := range l.rows {
		_, h := row.Size()
		total += h
	}
	return total
}

// SizeThatFits returns the content size needed to show every row at the
// given width.
func (l *ListView) SizeThatFits(width float32) Size {
	return Size{Width: width, Height: l.rowsHeight()}
}

// RecomputeContentSize measures the rows and updates the content size.
func (l *ListView) RecomputeContentSize() {
	l.SetContentSize(l.SizeThatFits(l.Bounds().Width))
}

// ScrollToRow scrolls so the row sits at the top or bottom of the viewport,
// clamped to the resting offset range.
func (l *ListView) ScrollToRow(index int, position RowPosition, animated bool) bool {
	row := l.Row(index)
	if row == nil {
		return false
	}

	frame := row.Frame()
	adj := l.AdjustedContentInset()
	bounds := l.Bounds()

	var targetY float32
	switch position {
	case RowPositionTop:
		targetY = frame.Y - adj.Top
	case RowPositionBottom:
		targetY = frame.Y + frame.Height - bounds.Height + adj.Bottom
	}

	offset := l.ClampOffset(Point{X: l.ContentOffset().X, Y: targetY})
	l.SetContentOffset(offset, animated)
	return true
}

// ScrollToLastRow scrolls the final row into position. Returns false when
// the list is empty.
func (l *ListView) ScrollToLastRow(position RowPosition, animated bool) bool {
	return l.ScrollToRow(len(l.rows)-1, position, animated)
}
