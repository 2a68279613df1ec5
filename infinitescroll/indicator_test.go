package infinitescroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agiangrant/infinitescroll/retained"
)

func TestActivityIndicatorStyles(t *testing.T) {
	tests := []struct {
		style IndicatorStyle
		side  float32
		color uint32
	}{
		{StyleWhite, 20, 0xFFFFFFFF},
		{StyleGray, 20, 0x808080FF},
		{StyleWhiteLarge, 37, 0xFFFFFFFF},
	}

	h := newHarness(t)
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			ind := NewActivityIndicator(h.loop, tt.style)
			w, hgt := ind.View().Size()
			if w != tt.side || hgt != tt.side {
				t.Errorf("size = %vx%v, want %vx%v", w, hgt, tt.side, tt.side)
			}
			color, ok := ind.View().BackgroundColor()
			if !ok || color != tt.color {
				t.Errorf("color = %#x, want %#x", color, tt.color)
			}
			if ind.View().Visible() {
				t.Error("new indicator should start hidden")
			}
			if ind.View().Kind() != retained.KindActivityIndicator {
				t.Errorf("kind = %v", ind.View().Kind())
			}
		})
	}
}

func TestActivityIndicatorSpin(t *testing.T) {
	h := newHarness(t)
	ind := NewActivityIndicator(h.loop, StyleWhite)

	ind.StartAnimating()
	ind.StartAnimating()
	assert.True(t, ind.IsAnimating())
	assert.Equal(t, 1, h.loop.Animations().Count(), "start is idempotent")

	h.advance(250 * time.Millisecond)
	assert.NotZero(t, ind.View().Rotation())

	ind.StopAnimating()
	assert.False(t, ind.IsAnimating())
	assert.Zero(t, ind.View().Rotation())

	h.advance(frame)
	assert.Zero(t, h.loop.Animations().Count())
	assert.Zero(t, ind.View().Rotation(), "no frame lands after stop")
}
