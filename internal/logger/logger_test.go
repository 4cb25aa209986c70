package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "hints", "warn")
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "token", "al")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "hints")
	assert.Contains(t, out, "token=al")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "", "loud")
	require.Error(t, err)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	l, closeFn, err := Open(path, "demo", "debug")
	require.NoError(t, err)
	l.Debug("popup opened")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "popup opened")
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	l, closeFn, err := Open("", "demo", "info")
	require.NoError(t, err)
	require.NotNil(t, l)
	l.Info("nowhere")
	require.NoError(t, closeFn())
}
