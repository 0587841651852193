package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "render.txt")
	l := NewAt(path)
	l.Log("first")
	l.Logf("warp to %s", "earth")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "["))
	assert.True(t, strings.HasSuffix(lines[0], "] first"))
	assert.True(t, strings.HasSuffix(lines[1], "] warp to earth"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n", string(data))
}

func TestMemoryOnly(t *testing.T) {
	l := NewAt("")
	l.Log("x")
	assert.Len(t, l.Lines(), 1)
}

func TestWriteSplitsLines(t *testing.T) {
	l := NewAt("")
	n, err := l.Write([]byte("a\r\n\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "] a"))
	assert.True(t, strings.HasSuffix(lines[1], "] b"))
}

func TestTail(t *testing.T) {
	l := NewAt("")
	for _, s := range []string{"1", "2", "3"} {
		l.Log(s)
	}
	tail := l.Tail(2)
	require.Len(t, tail, 2)
	assert.True(t, strings.HasSuffix(tail[1], "] 3"))
	assert.Len(t, l.Tail(10), 3)
	assert.Empty(t, l.Tail(0))
}

func TestSlog(t *testing.T) {
	l := NewAt("")
	l.Slog().Info("warp", "target", "earth")
	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "level=INFO msg=warp target=earth")
	assert.NotContains(t, lines[0], "time=")
}
