package library

// PreloadOption configures Preload and New.
type PreloadOption func(*options)

type options struct {
	maxNesting      int
	bitmapCacheSize int
	morphCacheSize  int
}

// Defaults for the preload options.
const (
	DefaultMaxNesting      = 64
	DefaultBitmapCacheSize = 64
	DefaultMorphCacheSize  = 512
)

func defaultOptions() options {
	return options{
		maxNesting:      DefaultMaxNesting,
		bitmapCacheSize: DefaultBitmapCacheSize,
		morphCacheSize:  DefaultMorphCacheSize,
	}
}

// WithMaxNesting limits how deeply DefineSprite tags are followed. Sprites
// nested deeper are registered with an empty timeline.
func WithMaxNesting(n int) PreloadOption {
	return func(o *options) {
		if n > 0 {
			o.maxNesting = n
		}
	}
}

// WithBitmapCacheSize sets how many decoded bitmaps are kept.
func WithBitmapCacheSize(n int) PreloadOption {
	return func(o *options) {
		if n > 0 {
			o.bitmapCacheSize = n
		}
	}
}

// WithMorphCacheSize sets how many interpolated morph frames are kept.
func WithMorphCacheSize(n int) PreloadOption {
	return func(o *options) {
		if n > 0 {
			o.morphCacheSize = n
		}
	}
}
