package player

// Option configures a Player.
type Option func(*options)

type options struct {
	looping   bool
	speed     float64
	animation string
}

func defaultOptions() options {
	return options{speed: 1}
}

// WithLooping makes animations restart after their last frame.
func WithLooping(looping bool) Option {
	return func(o *options) {
		o.looping = looping
	}
}

// WithSpeed sets the playback speed multiplier. Non-positive values are
// ignored.
func WithSpeed(speed float64) Option {
	return func(o *options) {
		if speed > 0 {
			o.speed = speed
		}
	}
}

// WithAnimation selects the animation played first. By default the whole
// timeline plays.
func WithAnimation(name string) Option {
	return func(o *options) {
		o.animation = name
	}
}
