package sink

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/nodetrace/internal/logging"
	"github.com/aretw0/nodetrace/pkg/domain"
)

// FileNameLayout is the time layout of the log file name.
const FileNameLayout = "20060102_150405"

// FileName returns the log file name for the moment of first use.
func FileName(t time.Time) string {
	return "debug_" + t.Format(FileNameLayout) + ".log"
}

// File is the append-only, lazily opened log file.
type File struct {
	mu     sync.Mutex
	dir    string
	now    func() time.Time
	logger *slog.Logger

	f      *os.File
	w      *bufio.Writer
	path   string
	opened time.Time
	last   time.Time
	failed error
}

// FileOption configures a File.
type FileOption func(*File)

// WithClock sets the time source used to name the file.
func WithClock(now func() time.Time) FileOption {
	return func(f *File) {
		f.now = now
	}
}

// WithFileLogger sets the diagnostic logger.
func WithFileLogger(logger *slog.Logger) FileOption {
	return func(f *File) {
		f.logger = logger
	}
}

// NewFile creates a File writing under dir. Nothing touches the disk until the first use.
func NewFile(dir string, opts ...FileOption) *File {
	f := &File{
		dir:    dir,
		now:    time.Now,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the absolute path of the log file, creating it on the first call.
// It returns the same path until Close.
func (f *File) Path() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.openLocked(); err != nil {
		return "", err
	}
	return f.path, nil
}

// Write appends p and flushes. Once the file failed, writes are dropped until Close.
func (f *File) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.openLocked(); err != nil {
		return 0, err
	}

	n, err := f.w.Write(p)
	if err == nil {
		err = f.w.Flush()
	}
	if err != nil {
		f.failLocked(fmt.Errorf("%w: write %s: %v", domain.ErrSinkUnavailable, f.path, err))
		return n, f.failed
	}
	return n, nil
}

// Close flushes and closes the handle. The next use opens a new file named after that moment,
// at least one second later than the closed one so the names never collide.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failed = nil
	if f.f == nil {
		return nil
	}

	err := f.w.Flush()
	if cerr := f.f.Close(); err == nil {
		err = cerr
	}
	f.f, f.w, f.path = nil, nil, ""
	f.last = f.opened
	return err
}

func (f *File) openLocked() error {
	if f.failed != nil {
		return f.failed
	}
	if f.f != nil {
		return nil
	}

	dir, err := filepath.Abs(f.dir)
	if err != nil {
		f.failLocked(fmt.Errorf("%w: resolve %s: %v", domain.ErrSinkUnavailable, f.dir, err))
		return f.failed
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		f.failLocked(fmt.Errorf("%w: create dir: %v", domain.ErrSinkUnavailable, err))
		return f.failed
	}

	ts := f.now()
	if !f.last.IsZero() && !ts.Truncate(time.Second).After(f.last.Truncate(time.Second)) {
		ts = f.last.Truncate(time.Second).Add(time.Second)
	}
	path := filepath.Join(dir, FileName(ts))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		f.failLocked(fmt.Errorf("%w: open: %v", domain.ErrSinkUnavailable, err))
		return f.failed
	}

	f.f = file
	f.w = bufio.NewWriter(file)
	f.path = path
	f.opened = ts
	return nil
}

// failLocked switches the file to the failed state. Only the first failure is logged.
func (f *File) failLocked(err error) {
	f.logger.Error("trace log file disabled, continuing on console only", "error", err)
	if f.f != nil {
		_ = f.f.Close()
	}
	f.f, f.w = nil, nil
	f.failed = err
}
