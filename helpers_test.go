package nodetrace_test

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/nodetrace"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a goroutine-safe console for tests.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Lines() []string {
	s := strings.TrimSuffix(b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// stepClock advances one second per reading so every opened file gets a distinct name.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(time.Second)
	return t
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
}

func newTracer(t *testing.T, opts ...nodetrace.Option) (*nodetrace.Tracer, *syncBuffer) {
	t.Helper()
	console := &syncBuffer{}
	base := []nodetrace.Option{
		nodetrace.WithDir(t.TempDir()),
		nodetrace.WithConsole(console),
		nodetrace.WithClock(fixedClock),
	}
	tracer, err := nodetrace.New(append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { tracer.Close() })
	return tracer, console
}

func readLogFile(t *testing.T, tracer *nodetrace.Tracer) string {
	t.Helper()
	path, err := tracer.LogPath()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
