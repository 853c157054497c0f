package procenv

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Config holds configuration derived from options.
// Zero-valued override fields mean "use the host primitive".
type Config struct {
	Vocabulary Vocabulary
	Logger     *log.Logger
	Args       []string  // nil: read from the host
	Stdout     io.Writer // nil: host standard output
	Stderr     io.Writer // nil: host standard error
	ExitFunc   func(int) // nil: host exit
	TargetOS   TargetOS  // OSUnknown: detect
}

// Option defines a functional option for constructing a Process.
type Option func(*Config)

// NewConfig applies opts over the defaults: the full vocabulary and a logger that
// discards everything.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		Vocabulary: FullVocabulary,
	}

	for _, o := range opts {
		o(&cfg)
	}

	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	return cfg
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config cannot be nil")
	}

	if c.Vocabulary.Empty() {
		return errors.New("vocabulary cannot be empty")
	}

	return nil
}

// HasOverrides reports whether any host primitive has been replaced.
func (c *Config) HasOverrides() bool {
	return c.Args != nil || c.Stdout != nil || c.Stderr != nil || c.ExitFunc != nil
}

// WithVocabulary sets the accepted signal set.
func WithVocabulary(v Vocabulary) Option {
	return func(c *Config) {
		c.Vocabulary = v
	}
}

// WithLogger sets the logger used for debug tracing. Library code never logs above debug.
func WithLogger(l *log.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithArgs replaces the host argument list. args must already exclude the program path.
func WithArgs(args ...string) Option {
	return func(c *Config) {
		c.Args = append([]string{}, args...)
	}
}

// WithArgLine replaces the host argument list with a shell-quoted command line.
// A line that fails to parse is kept as a single argument.
func WithArgLine(line string) Option {
	return func(c *Config) {
		args, err := ParseCommandLine(line)
		if err != nil {
			args = []string{line}
		}

		c.Args = args
	}
}

// WithStdout redirects standard output writes to w.
func WithStdout(w io.Writer) Option {
	return func(c *Config) {
		c.Stdout = w
	}
}

// WithStderr redirects standard error writes to w.
func WithStderr(w io.Writer) Option {
	return func(c *Config) {
		c.Stderr = w
	}
}

// WithExitFunc replaces the host exit primitive. Intended for tests.
func WithExitFunc(fn func(int)) Option {
	return func(c *Config) {
		c.ExitFunc = fn
	}
}

// WithTargetOS overrides OS detection.
func WithTargetOS(os TargetOS) Option {
	return func(c *Config) {
		c.TargetOS = os
	}
}

// RejectOverrides returns an ErrNotSupported error if cfg replaces any host primitive.
// Providers that are bound to their host's globals call it from their constructor.
func RejectOverrides(family Family, cfg Config) error {
	if cfg.HasOverrides() {
		return fmt.Errorf("%s provider cannot replace host primitives: %w", family, ErrNotSupported)
	}

	return nil
}
