package texel

import "log/slog"

// LoadOption configures how a texture is loaded.
// Use functional options to customize Load and Decode.
//
// Example:
//
//	// Default decoder and package logger
//	tex, err := texel.Load("sky.png")
//
//	// Custom decoder (dependency injection)
//	tex, err := texel.Load("sky.exr", texel.WithDecoder(exrDecoder))
type LoadOption func(*loadOptions)

// loadOptions holds optional configuration for texture loading.
type loadOptions struct {
	decoder Decoder
	logger  *slog.Logger
}

// defaultLoadOptions returns the default load options.
func defaultLoadOptions() loadOptions {
	return loadOptions{
		decoder: DefaultDecoder,
		logger:  nil, // Package logger at the time of the call
	}
}

// WithDecoder sets the decoder that turns encoded bytes into an RGB raster.
// A nil decoder restores DefaultDecoder.
//
// Example:
//
//	dec := texel.DecoderFunc(func(r io.Reader) (texel.Raster, error) {
//	    return myformat.Decode(r)
//	})
//	tex, err := texel.Load("texture.myf", texel.WithDecoder(dec))
func WithDecoder(d Decoder) LoadOption {
	return func(o *loadOptions) {
		if d == nil {
			d = DefaultDecoder
		}
		o.decoder = d
	}
}

// WithLogger sets the logger used for this load instead of the package logger.
func WithLogger(l *slog.Logger) LoadOption {
	return func(o *loadOptions) {
		o.logger = l
	}
}

func resolveLoadOptions(opts []LoadOption) loadOptions {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}
