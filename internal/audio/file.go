package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const downloadTimeout = 30 * time.Second

// IsURL reports whether src should be fetched over HTTP.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Load reads src (a file path or an http(s) URL), decodes it and extracts
// its tags. Tag errors are not fatal.
func Load(ctx context.Context, src string) (*Track, error) {
	var (
		data []byte
		err  error
	)
	if IsURL(src) {
		data, err = loadFromURL(ctx, src)
	} else {
		data, err = loadFromFile(src)
	}
	if err != nil {
		return nil, err
	}

	t, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	t.Name = filepath.Base(src)

	meta, err := ExtractMetadata(data)
	if err != nil {
		meta = &Metadata{Title: t.Name, Artist: unknownArtist, Album: unknownAlbum}
	}
	meta.Duration = t.Duration
	meta.SampleRate = t.SampleRate
	meta.Channels = channels
	meta.FileSize = int64(len(data))
	if t.Duration > 0 {
		meta.BitRate = int(float64(len(data)*8) / t.Duration.Seconds() / 1000)
	}
	t.Meta = meta
	return t, nil
}

func loadFromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return data, nil
}

func loadFromURL(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download error: %w", err)
	}
	return data, nil
}

// FormatDuration renders d as mm:ss, or h:mm:ss past an hour.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
