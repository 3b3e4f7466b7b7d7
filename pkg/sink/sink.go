package sink

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/nodetrace/pkg/domain"
	"github.com/aretw0/nodetrace/pkg/metrics"
)

// Sink fans every block of lines out to the console and the log file.
type Sink struct {
	mu      sync.Mutex
	console io.Writer
	file    *File
	metrics *metrics.Collector
}

// Option configures a Sink.
type Option func(*Sink)

// WithConsole replaces os.Stdout as the console destination.
func WithConsole(w io.Writer) Option {
	return func(s *Sink) {
		s.console = w
	}
}

// WithMetrics records written lines and failures on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Sink) {
		s.metrics = c
	}
}

// New creates a Sink over file. A nil file means console-only output.
func New(file *File, opts ...Option) *Sink {
	s := &Sink{
		console: os.Stdout,
		file:    file,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WriteBlock writes lines, each terminated by a newline, to both destinations.
// The same bytes go to both, and no other block can interleave with them.
// Failures are recorded, never returned.
func (s *Sink) WriteBlock(lines []string) {
	if len(lines) == 0 {
		return
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	p := []byte(b.String())

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.console.Write(p); err != nil {
		s.metrics.SinkError(metrics.SinkConsole)
	} else {
		s.metrics.LinesWritten(metrics.SinkConsole, len(lines))
	}

	if s.file == nil {
		return
	}
	if _, err := s.file.Write(p); err != nil {
		s.metrics.SinkError(metrics.SinkFile)
		return
	}
	s.metrics.LinesWritten(metrics.SinkFile, len(lines))
}

// Path returns the log file path, opening the file if needed.
func (s *Sink) Path() (string, error) {
	if s.file == nil {
		return "", domain.ErrSinkUnavailable
	}
	return s.file.Path()
}

// Close closes the log file.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
