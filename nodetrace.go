package nodetrace

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/nodetrace/internal/logging"
	"github.com/aretw0/nodetrace/pkg/domain"
	"github.com/aretw0/nodetrace/pkg/metrics"
	"github.com/aretw0/nodetrace/pkg/sink"
	"github.com/aretw0/nodetrace/pkg/toggles"
)

// Tracer is the high-level entry point of the library.
// It owns the toggle registry and the log sink; both live until Close.
type Tracer struct {
	toggles *toggles.Registry
	sink    *sink.Sink
	logger  *slog.Logger
	metrics *metrics.Collector
	now     func() time.Time

	initial domain.ToggleSet
	anchor  string
	logDir  string
	console io.Writer
	noFile  bool
}

// Option defines a functional option for configuring the Tracer.
type Option func(*Tracer)

// WithToggles sets the initial toggles (default: everything enabled).
func WithToggles(ts domain.ToggleSet) Option {
	return func(t *Tracer) {
		t.initial = ts
	}
}

// WithLogger sets the diagnostic logger used for nodetrace's own failures.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracer) {
		t.logger = logger
	}
}

// WithConsole replaces os.Stdout as the console sink.
func WithConsole(w io.Writer) Option {
	return func(t *Tracer) {
		t.console = w
	}
}

// WithDir sets the anchor directory under which the log directory is created
// (default: the working directory at New).
func WithDir(dir string) Option {
	return func(t *Tracer) {
		t.anchor = dir
	}
}

// WithLogDir overrides the log directory name relative to the anchor (default: "logs").
func WithLogDir(name string) Option {
	return func(t *Tracer) {
		t.logDir = name
	}
}

// WithClock sets the time source for timestamps and the log file name.
func WithClock(now func() time.Time) Option {
	return func(t *Tracer) {
		t.now = now
	}
}

// WithMetrics records emitted events, written lines and node durations.
func WithMetrics(c *metrics.Collector) Option {
	return func(t *Tracer) {
		t.metrics = c
	}
}

// WithoutFile disables the log file; events only reach the console.
func WithoutFile() Option {
	return func(t *Tracer) {
		t.noFile = true
	}
}

// New initializes a Tracer. The toggle registry is built first, then the sink.
// The log file itself is only created by the first emitted event (or LogPath).
func New(opts ...Option) (*Tracer, error) {
	t := &Tracer{
		initial: domain.DefaultToggles(),
		logDir:  toggles.DefaultLogDir,
		console: os.Stdout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.logger == nil {
		t.logger = logging.NewNop()
	}

	if t.anchor == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		t.anchor = wd
	}
	anchor, err := filepath.Abs(t.anchor)
	if err != nil {
		return nil, fmt.Errorf("invalid anchor directory: %w", err)
	}
	t.anchor = anchor

	t.toggles = toggles.NewRegistry(t.initial)

	var file *sink.File
	if !t.noFile {
		file = sink.NewFile(filepath.Join(t.anchor, t.logDir),
			sink.WithClock(t.now),
			sink.WithFileLogger(t.logger),
		)
	}
	t.sink = sink.New(file,
		sink.WithConsole(t.console),
		sink.WithMetrics(t.metrics),
	)

	return t, nil
}

// Toggles returns the registry; changes apply to the next emitted event.
func (t *Tracer) Toggles() *toggles.Registry {
	return t.toggles
}

// IsEnabled reports whether events of category c are currently emitted.
func (t *Tracer) IsEnabled(c domain.Category) bool {
	return t.toggles.IsEnabled(c)
}

// LogPath returns the absolute path of the log file, creating it if needed.
func (t *Tracer) LogPath() (string, error) {
	return t.sink.Path()
}

// Logger returns the diagnostic logger.
func (t *Tracer) Logger() *slog.Logger {
	return t.logger
}

// Close closes the log file. The Tracer stays usable: the next event opens a new file.
func (t *Tracer) Close() error {
	return t.sink.Close()
}

func (t *Tracer) emit(ev domain.Event) {
	t.sink.WriteBlock(ev.Lines)
	t.metrics.EventEmitted(ev.Kind)
}
