package sink

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aretw0/nodetrace/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// safeBuffer guards a bytes.Buffer for tests that read it after concurrent writes.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func readLog(t *testing.T, s *Sink) string {
	t.Helper()
	path, err := s.Path()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSink_ConsoleAndFileIdentical(t *testing.T) {
	var console safeBuffer
	s := New(NewFile(t.TempDir()), WithConsole(&console))
	defer s.Close()

	s.WriteBlock([]string{"====", "node start: a", "===="})
	s.WriteBlock([]string{"[ts] ℹ️ [INFO] hello"})
	s.WriteBlock(nil)

	assert.Equal(t, "====\nnode start: a\n====\n[ts] ℹ️ [INFO] hello\n", console.String())
	assert.Equal(t, console.String(), readLog(t, s))
}

func TestSink_DegradesToConsole(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	var console safeBuffer
	s := New(NewFile(filepath.Join(blocker, "logs")), WithConsole(&console), WithMetrics(m))

	s.WriteBlock([]string{"still visible"})
	s.WriteBlock([]string{"again"})

	assert.Equal(t, "still visible\nagain\n", console.String())
	count, err := testutil.GatherAndCount(reg, "nodetrace_sink_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSink_ConsoleOnly(t *testing.T) {
	var console safeBuffer
	s := New(nil, WithConsole(&console))

	s.WriteBlock([]string{"x"})
	assert.Equal(t, "x\n", console.String())
	_, err := s.Path()
	assert.Error(t, err)
	assert.NoError(t, s.Close())
}

func TestSink_BlocksNeverInterleave(t *testing.T) {
	var console safeBuffer
	s := New(NewFile(t.TempDir()), WithConsole(&console))
	defer s.Close()

	const writers, blocks, size = 8, 50, 5
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for b := 0; b < blocks; b++ {
				lines := make([]string, size)
				for i := range lines {
					lines[i] = fmt.Sprintf("w%d-b%d-l%d", w, b, i)
				}
				s.WriteBlock(lines)
			}
		}(w)
	}
	wg.Wait()

	for _, out := range []string{console.String(), readLog(t, s)} {
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, writers*blocks*size)
		for i := 0; i < len(lines); i += size {
			prefix := lines[i][:strings.LastIndex(lines[i], "-l")]
			for j := 0; j < size; j++ {
				assert.Equal(t, fmt.Sprintf("%s-l%d", prefix, j), lines[i+j])
			}
		}
	}
	assert.Equal(t, console.String(), readLog(t, s))
}
