package tableset

import (
	"fmt"
	"runtime"

	"github.com/arloliu/runetab/format"
	"github.com/arloliu/runetab/internal/options"
)

type config struct {
	compression format.CompressionType
	bigEndian   bool
	concurrency int
}

func defaultConfig() *config {
	return &config{
		compression: format.CompressionNone,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// Option configures a Builder or Marshal.
type Option = options.Option[*config]

// WithCompression sets the payload compression.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if !c.IsValid() {
			return fmt.Errorf("invalid payload compression: %s", c)
		}
		cfg.compression = c

		return nil
	})
}

// WithLittleEndian stores multi-byte fields little-endian (the default).
func WithLittleEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.bigEndian = false
	})
}

// WithBigEndian stores multi-byte fields big-endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.bigEndian = true
	})
}

// WithConcurrency bounds the number of tables encoded at once.
// It defaults to GOMAXPROCS.
func WithConcurrency(n int) Option {
	return options.New(func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("concurrency must be positive, got %d", n)
		}
		cfg.concurrency = n

		return nil
	})
}

func newConfig(opts ...Option) (*config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
