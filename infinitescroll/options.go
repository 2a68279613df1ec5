package infinitescroll

import (
	"time"

	"github.com/go-logr/logr"
)

const (
	// DefaultAnimationDuration is how long inset reservation and release
	// animate.
	DefaultAnimationDuration = 350 * time.Millisecond

	// DefaultHandlerDelay separates the start of a load from the loader
	// callback.
	DefaultHandlerDelay = 100 * time.Millisecond

	// DefaultIndicatorMargin is the space kept on both sides of the indicator.
	DefaultIndicatorMargin float32 = 11
)

// Options configure an attachment. The zero value is not valid; start from
// DefaultOptions.
type Options struct {
	Logger            logr.Logger
	Direction         Direction
	IndicatorStyle    IndicatorStyle
	IndicatorMargin   float32
	TriggerOffset     float32
	AnimationDuration time.Duration
	HandlerDelay      time.Duration
	// Indicator replaces the default ActivityIndicator when set.
	Indicator Indicator
}

// DefaultOptions returns the defaults used by Attach.
func DefaultOptions() Options {
	return Options{
		Logger:            logr.Discard(),
		Direction:         Vertical,
		IndicatorStyle:    StyleWhite,
		IndicatorMargin:   DefaultIndicatorMargin,
		AnimationDuration: DefaultAnimationDuration,
		HandlerDelay:      DefaultHandlerDelay,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithLogger routes lifecycle and decision logs to logger.
func WithLogger(logger logr.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithDirection sets the scroll axis.
func WithDirection(d Direction) Option {
	return func(o *Options) { o.Direction = d }
}

// WithIndicatorStyle sets the style of the default indicator.
func WithIndicatorStyle(style IndicatorStyle) Option {
	return func(o *Options) { o.IndicatorStyle = style }
}

// WithIndicatorMargin sets the space on both sides of the indicator.
func WithIndicatorMargin(margin float32) Option {
	return func(o *Options) { o.IndicatorMargin = margin }
}

// WithTriggerOffset starts loads this far before the content end.
func WithTriggerOffset(offset float32) Option {
	return func(o *Options) { o.TriggerOffset = offset }
}

// WithAnimationDuration sets the inset animation duration. Zero disables
// animation.
func WithAnimationDuration(d time.Duration) Option {
	return func(o *Options) { o.AnimationDuration = d }
}

// WithHandlerDelay sets the delay between load start and the loader call.
func WithHandlerDelay(d time.Duration) Option {
	return func(o *Options) { o.HandlerDelay = d }
}

// WithIndicator installs a custom indicator.
func WithIndicator(ind Indicator) Option {
	return func(o *Options) { o.Indicator = ind }
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.AnimationDuration < 0 {
		o.AnimationDuration = 0
	}
	if o.HandlerDelay < 0 {
		o.HandlerDelay = 0
	}
	return o
}
