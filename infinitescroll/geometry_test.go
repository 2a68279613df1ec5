package infinitescroll

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agiangrant/infinitescroll/retained"
)

func TestClampedContentLength(t *testing.T) {
	bounds := retained.Size{Width: 300, Height: 400}

	tests := []struct {
		name        string
		content     retained.Size
		inset       retained.Insets
		originalEnd float32
		dir         Direction
		want        float32
	}{
		{"long content", retained.Size{Height: 1000}, retained.Insets{}, 0, Vertical, 1000},
		{"empty content", retained.Size{}, retained.Insets{}, 0, Vertical, 400},
		{"short content with insets", retained.Size{Height: 100}, retained.Insets{Top: 20}, 30, Vertical, 350},
		{"horizontal", retained.Size{Width: 50}, retained.Insets{Left: 10}, 0, Horizontal, 290},
		{"horizontal long", retained.Size{Width: 900}, retained.Insets{}, 0, Horizontal, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampedContentLength(tt.content, bounds, tt.inset, tt.originalEnd, tt.dir)
			if got != tt.want {
				t.Errorf("ClampedContentLength() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampedContentLengthNeverBelowViewport(t *testing.T) {
	bounds := retained.Size{Width: 320, Height: 480}
	inset := retained.Insets{Top: 64, Bottom: 34}

	for _, length := range []float32{0, 1, 100, 381, 382, 383, 5000} {
		for _, originalEnd := range []float32{0, 34, 100} {
			got := ClampedContentLength(retained.Size{Height: length}, bounds, inset, originalEnd, Vertical)
			floor := bounds.Height - inset.Top - originalEnd
			if got < floor {
				t.Errorf("length %v, originalEnd %v: got %v, below floor %v", length, originalEnd, got, floor)
			}
			if got < length {
				t.Errorf("length %v: got %v, below content length", length, got)
			}
		}
	}
}

func TestIndicatorCenter(t *testing.T) {
	content := retained.Size{Width: 320, Height: 1000}

	if diff := cmp.Diff(retained.Point{X: 160, Y: 1021}, IndicatorCenter(content, 1000, 42, Vertical)); diff != "" {
		t.Errorf("vertical center mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(retained.Point{X: 1021, Y: 500}, IndicatorCenter(content, 1000, 42, Horizontal)); diff != "" {
		t.Errorf("horizontal center mismatch (-want +got):\n%s", diff)
	}
}

func TestIndicatorRowSize(t *testing.T) {
	if got := IndicatorRowSize(20, DefaultIndicatorMargin); got != 42 {
		t.Errorf("IndicatorRowSize(20, 11) = %v, want 42", got)
	}
	if got := IndicatorRowSize(37, 0); got != 37 {
		t.Errorf("IndicatorRowSize(37, 0) = %v, want 37", got)
	}
}

func TestOriginalEndInset(t *testing.T) {
	inset := retained.Insets{Bottom: 500, Right: 7}
	if got := OriginalEndInset(inset, 400, 42, Vertical); got != 58 {
		t.Errorf("vertical OriginalEndInset() = %v, want 58", got)
	}
	if got := OriginalEndInset(inset, 0, 0, Horizontal); got != 7 {
		t.Errorf("horizontal OriginalEndInset() = %v, want 7", got)
	}
}

func TestTriggerBoundary(t *testing.T) {
	boundary := TriggerBoundary(1000, 400, 0, 50)
	if boundary != 550 {
		t.Fatalf("TriggerBoundary() = %v, want 550", boundary)
	}

	tests := []struct {
		offset   float32
		velocity float32
		want     bool
	}{
		{560, -100, true},
		{560, 0, true},
		{540, -100, false},
		{560, 100, false},
		{550, -100, false},
	}
	for _, tt := range tests {
		got := tt.offset > boundary && tt.velocity <= 0
		if got != tt.want {
			t.Errorf("offset %v velocity %v: trigger = %v, want %v", tt.offset, tt.velocity, got, tt.want)
		}
	}
}

func TestRevealRange(t *testing.T) {
	lo, hi := RevealRange(1000, 400, 20, 42)
	if lo != 620 || hi != 662 {
		t.Errorf("RevealRange() = (%v, %v), want (620, 662)", lo, hi)
	}
}

func TestAddEndInset(t *testing.T) {
	base := retained.Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}

	if diff := cmp.Diff(retained.Insets{Top: 1, Left: 2, Bottom: 45, Right: 4}, addEndInset(base, Vertical, 42)); diff != "" {
		t.Errorf("vertical mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(retained.Insets{Top: 1, Left: 2, Bottom: 3, Right: -38}, addEndInset(base, Horizontal, -42)); diff != "" {
		t.Errorf("horizontal mismatch (-want +got):\n%s", diff)
	}
}
