package pixart

// PipelineOption configures LoadSprite.
//
// Example:
//
//	// Decode, key and crop only
//	s, err := pixart.LoadSprite(data)
//
//	// Scale the cropped sprite to 48 px tall
//	s, err := pixart.LoadSprite(data, pixart.WithTargetHeight(48))
type PipelineOption func(*pipelineOptions)

// pipelineOptions holds optional configuration for LoadSprite.
type pipelineOptions struct {
	targetHeight int
	key          bool
}

// defaultPipelineOptions returns the default pipeline options.
func defaultPipelineOptions() pipelineOptions {
	return pipelineOptions{
		targetHeight: 0, // no resize
		key:          true,
	}
}

// WithTargetHeight scales the cropped sprite to h pixels tall with
// ResizeNearest. A non-positive h disables resizing.
func WithTargetHeight(h int) PipelineOption {
	return func(o *pipelineOptions) {
		o.targetHeight = h
	}
}

// WithoutKeying skips background keying. Use it for assets that already
// carry an alpha channel.
func WithoutKeying() PipelineOption {
	return func(o *pipelineOptions) {
		o.key = false
	}
}

// ComposerOption configures a Composer during creation.
type ComposerOption func(*composerOptions)

// composerOptions holds optional configuration for NewComposer.
type composerOptions struct {
	cacheSize int
	selection Color
}

const defaultComposerCacheSize = 64

// defaultComposerOptions returns the default composer options.
func defaultComposerOptions() composerOptions {
	return composerOptions{
		cacheSize: defaultComposerCacheSize,
		selection: Hex("#ffd640"),
	}
}

// WithCacheSize bounds the number of scaled sprite variants the composer
// keeps. Values below 1 are raised to 1.
func WithCacheSize(n int) ComposerOption {
	return func(o *composerOptions) {
		o.cacheSize = max(n, 1)
	}
}

// WithSelectionColor sets the base color of the selection ring.
func WithSelectionColor(c Color) ComposerOption {
	return func(o *composerOptions) {
		o.selection = c.Opaque()
	}
}
