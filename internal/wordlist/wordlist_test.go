package wordlist

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	words := Default()
	require.Len(t, words, 167)
	assert.Equal(t, "const", words[0])
	assert.Equal(t, "table", words[len(words)-1])
	assert.Contains(t, words, "useState")
	for _, w := range words {
		assert.False(t, strings.HasPrefix(w, "#"), "comment leaked: %q", w)
	}
}

func TestDefault_KeepsDuplicates(t *testing.T) {
	n := 0
	for _, w := range Default() {
		if w == "this" {
			n++
		}
	}
	assert.Equal(t, 2, n)
}

func TestLoad_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hints.txt")
	require.NoError(t, os.WriteFile(path, []byte("# header\nfoo\n\n  bar  \nfoo\n"), 0o644))

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "foo"}, words)
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hints.toml")
	require.NoError(t, os.WriteFile(path, []byte(`hints = ["getValue", "setValue", "getValue"]`), 0o644))

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"getValue", "setValue", "getValue"}, words)
}

func TestLoad_Msgpack(t *testing.T) {
	want := []string{"alpha", "名前", "alpha"}
	var buf bytes.Buffer
	require.NoError(t, EncodeMsgpack(&buf, want))

	path := filepath.Join(t.TempDir(), "hints.msgpack")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, words)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	csv := filepath.Join(dir, "hints.csv")
	require.NoError(t, os.WriteFile(csv, []byte("a,b"), 0o644))
	_, err = Load(csv)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("hints = [1, "), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.toml")
}
