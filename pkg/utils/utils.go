// Package utils holds file helpers for the command line.
package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MusicExtensions are the file extensions the player can decode.
var MusicExtensions = map[string]bool{
	".mp3": true,
}

var id3Magic = []byte("ID3")

// isMPEGFrame reports whether header starts with an MPEG audio frame sync.
func isMPEGFrame(header []byte) bool {
	return len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0
}

// IsMusicFile checks the extension and then the first bytes of path.
func IsMusicFile(path string) bool {
	if !MusicExtensions[strings.ToLower(filepath.Ext(path))] {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	header := make([]byte, 4)
	n, _ := f.Read(header)
	header = header[:n]
	return bytes.HasPrefix(header, id3Magic) || isMPEGFrame(header)
}

// GetCompletions lists directories and music files starting with
// partialPath, sorted. Directories carry a trailing separator.
func GetCompletions(partialPath string) []string {
	dir, prefix := filepath.Dir(partialPath), filepath.Base(partialPath)
	if partialPath == "" || strings.HasSuffix(partialPath, string(os.PathSeparator)) {
		dir, prefix = filepath.Clean(partialPath), ""
		if partialPath == "" {
			dir = "."
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var completions []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix)) {
			continue
		}
		full := filepath.Join(dir, name)
		switch {
		case entry.IsDir():
			completions = append(completions, full+string(os.PathSeparator))
		case IsMusicFile(full):
			completions = append(completions, full)
		}
	}
	sort.Strings(completions)
	return completions
}
