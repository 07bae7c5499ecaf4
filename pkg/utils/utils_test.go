package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestIsMusicFile(t *testing.T) {
	dir := t.TempDir()
	id3 := filepath.Join(dir, "tagged.mp3")
	raw := filepath.Join(dir, "raw.MP3")
	fake := filepath.Join(dir, "fake.mp3")
	other := filepath.Join(dir, "song.flac")

	writeFile(t, id3, []byte("ID3\x04\x00"))
	writeFile(t, raw, []byte{0xFF, 0xFB, 0x90, 0x64})
	writeFile(t, fake, []byte("hello"))
	writeFile(t, other, []byte("fLaC"))

	assert.True(t, IsMusicFile(id3))
	assert.True(t, IsMusicFile(raw))
	assert.False(t, IsMusicFile(fake))
	assert.False(t, IsMusicFile(other))
	assert.False(t, IsMusicFile(filepath.Join(dir, "missing.mp3")))
}

func TestGetCompletions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Albums"), 0o755))
	writeFile(t, filepath.Join(dir, "a1.mp3"), []byte("ID3xx"))
	writeFile(t, filepath.Join(dir, "a2.mp3"), []byte("ID3xx"))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("ID3xx"))

	sep := string(os.PathSeparator)
	assert.Equal(t, []string{
		filepath.Join(dir, "Albums") + sep,
		filepath.Join(dir, "a1.mp3"),
		filepath.Join(dir, "a2.mp3"),
	}, GetCompletions(filepath.Join(dir, "a")))

	assert.Len(t, GetCompletions(dir+sep), 3)
	assert.Nil(t, GetCompletions(filepath.Join(dir, "nope", "x")))
}
