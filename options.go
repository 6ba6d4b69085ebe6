package unisplit

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/unisplit/internal/boundary"
)

// DefaultParallelThreshold is the minimum iteration length at which work is
// spread over several goroutines.
const DefaultParallelThreshold = 256

type options struct {
	logger            *Logger
	metricsCollector  MetricsCollector
	defaultLocale     string
	factory           SegmenterFactory
	parallelism       int
	parallelThreshold int
	recyclingWarnings bool
}

// Option configures a Splitter.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:            NoopLogger(),
		metricsCollector:  NoopMetricsCollector{},
		parallelism:       1,
		parallelThreshold: DefaultParallelThreshold,
		recyclingWarnings: true,
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// WithLogger configures the logger. Pass nil to disable logging.
//
// Example:
//
//	s := unisplit.New(unisplit.WithLogger(unisplit.NewJSONLogger(slog.LevelDebug)))
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithLogLevel installs a text logger writing to stderr at the given level.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &unisplit.BasicMetricsCollector{}
//	s := unisplit.New(unisplit.WithMetricsCollector(metrics))
//	// ... split ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithDefaultLocale sets the locale used for elements whose locale is the
// empty string. The identifier is validated when the first call resolves it.
// When unset, the process-wide default (LC_ALL, LC_CTYPE, LANG) applies.
func WithDefaultLocale(id string) Option {
	return func(o *options) {
		o.defaultLocale = id
	}
}

// WithSegmenterFactory replaces the segmentation service used for boundary
// splitting. Pass nil to use the built-in uniseg rules.
func WithSegmenterFactory(f SegmenterFactory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// WithParallelism sets the number of workers used for long inputs.
// n <= 0 selects runtime.GOMAXPROCS(0). The default is 1 (sequential).
func WithParallelism(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.parallelism = n
	}
}

// WithParallelThreshold sets the minimum iteration length for parallel
// execution.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		o.parallelThreshold = n
	}
}

// WithRecyclingWarnings toggles the warning logged when vectors of different
// but compatible lengths are recycled.
func WithRecyclingWarnings(enabled bool) Option {
	return func(o *options) {
		o.recyclingWarnings = enabled
	}
}

// SegmenterFactory builds segmenters for a boundary kind and locale.
type SegmenterFactory = boundary.Factory

// Segmenter is a stateful boundary iterator produced by a SegmenterFactory.
type Segmenter = boundary.Segmenter
