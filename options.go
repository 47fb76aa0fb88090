package jsonschema

// Logger is the optional diagnostic sink for the Compiler and Validator.
// Implementations typically wrap a structured logging library. A nil Logger
// passed to WithCompilerLogger, WithValidatorLogger, or WithLoaderLogger is
// ignored and the no-op default is kept.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

// noopLogger discards everything; it is the default so Compiler/Validator
// never need a nil check at the call site.
type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Warnf(string, ...any)  {}

// CompilerOptions configures a Compiler. The zero value is not meant to be
// constructed directly; use defaultCompilerOptions and CompilerOption
// functions.
type CompilerOptions struct {
	logger Logger
}

func defaultCompilerOptions() CompilerOptions {
	return CompilerOptions{logger: noopLogger{}}
}

func (o CompilerOptions) logf(format string, args ...any) {
	o.logger.Debugf(format, args...)
}

// CompilerOption configures a Compiler built with NewCompiler.
type CompilerOption func(*CompilerOptions)

// WithCompilerLogger attaches a Logger to a Compiler's diagnostic output.
func WithCompilerLogger(l Logger) CompilerOption {
	return func(o *CompilerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// defaultMaxDepth bounds Validator recursion before ErrRecursionLimitExceeded
// is raised, per §5's recommendation that implementers provide a
// configurable recursion-depth cap.
const defaultMaxDepth = 256

// ValidatorOptions configures a Validator. Use defaultValidatorOptions and
// ValidatorOption functions rather than constructing this directly.
type ValidatorOptions struct {
	logger   Logger
	maxDepth int
}

func defaultValidatorOptions() ValidatorOptions {
	return ValidatorOptions{logger: noopLogger{}, maxDepth: defaultMaxDepth}
}

func (o ValidatorOptions) logf(format string, args ...any) {
	o.logger.Debugf(format, args...)
}

func (o ValidatorOptions) warnf(format string, args ...any) {
	o.logger.Warnf(format, args...)
}

// ValidatorOption configures a Validator built with NewValidator.
type ValidatorOption func(*ValidatorOptions)

// WithValidatorLogger attaches a Logger to a Validator's diagnostic output.
func WithValidatorLogger(l Logger) ValidatorOption {
	return func(o *ValidatorOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxDepth overrides the recursion-depth cap a Validator enforces on
// every nested schema it enters, through $ref or any other applicator. A
// non-positive value is ignored.
func WithMaxDepth(n int) ValidatorOption {
	return func(o *ValidatorOptions) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}
