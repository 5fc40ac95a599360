package display

// Option configures NewRoot.
type Option func(*options)

type options struct {
	as3 bool
}

// WithAS3 overrides the ActionScript 3 flag of the movie header. When
// set, PlaceObject tags run after the children of a clip have entered
// the frame.
func WithAS3(as3 bool) Option {
	return func(o *options) {
		o.as3 = as3
	}
}
