package bitfield

import "log/slog"

// OverlapPolicy selects how field registrations are checked against each other.
type OverlapPolicy int

const (
	// OverlapPosition rejects a registration only when a field already starts at
	// the same position. Ranges that merely intersect are accepted.
	OverlapPosition OverlapPolicy = iota

	// OverlapRange rejects any registration whose [pos, pos+width) intersects
	// the range of a field registered at a different position.
	OverlapRange
)

func (p OverlapPolicy) String() string {
	switch p {
	case OverlapPosition:
		return "position"
	case OverlapRange:
		return "range"
	default:
		return "unknown"
	}
}

// WritePolicy selects how Insert combines a value with the current storage.
type WritePolicy int

const (
	// WriteMerge ORs the shifted value into storage. Bits already set in the
	// target range stay set.
	WriteMerge WritePolicy = iota

	// WriteReplace clears the target range first and writes the value masked to
	// the field width.
	WriteReplace
)

func (p WritePolicy) String() string {
	switch p {
	case WriteMerge:
		return "merge"
	case WriteReplace:
		return "replace"
	default:
		return "unknown"
	}
}

type options struct {
	overlap    OverlapPolicy
	write      WritePolicy
	checkValue bool
	logger     *Logger
	metrics    MetricsCollector
}

// Option configures a Set at construction.
type Option func(*options)

// WithOverlapPolicy configures overlap detection. Default: OverlapPosition.
func WithOverlapPolicy(p OverlapPolicy) Option {
	return func(o *options) {
		o.overlap = p
	}
}

// WithWritePolicy configures how Insert writes bits. Default: WriteMerge.
func WithWritePolicy(p WritePolicy) Option {
	return func(o *options) {
		o.write = p
	}
}

// WithValueCheck makes Insert reject values that need more than width bits
// with ErrDataTooLarge. The coarse source-type size check always applies.
func WithValueCheck(enabled bool) Option {
	return func(o *options) {
		o.checkValue = enabled
	}
}

// WithStrict enables range overlap detection, replacing writes and value
// checking in one step.
//
// Example:
//
//	s, _ := bitfield.New(16, bitfield.WithStrict())
func WithStrict() Option {
	return func(o *options) {
		o.overlap = OverlapRange
		o.write = WriteReplace
		o.checkValue = true
	}
}

// WithLogger configures structured logging of successful mutations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitfield.NewJSONLogger(slog.LevelDebug)
//	s, _ := bitfield.New(8, bitfield.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures metrics collection.
// Pass nil to disable metrics.
//
// Example:
//
//	metrics := &bitfield.BasicMetricsCollector{}
//	s, _ := bitfield.New(8, bitfield.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		overlap: OverlapPosition,
		write:   WriteMerge,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	return o
}
