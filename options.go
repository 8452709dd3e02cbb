package vecdist

type options struct {
	isa    string
	logger *Logger
}

// Option configures a Calculator.
type Option func(*options)

// WithISA pins the kernel family by name ("generic", "portable", "avx").
//
// An empty name keeps the kernel selected at start-up. New fails with
// ErrUnsupportedISA if the name is unknown or the kernel is unavailable.
func WithISA(name string) Option {
	return func(o *options) {
		o.isa = name
	}
}

// WithLogger sets the logger for failed calls and construction.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
