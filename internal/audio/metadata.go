package audio

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

const (
	unknownTitle  = "Unknown Title"
	unknownArtist = "Unknown Artist"
	unknownAlbum  = "Unknown Album"
)

// Metadata describes a loaded track. Audio properties are filled in by Load.
type Metadata struct {
	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Year        int
	Genre       string
	Track       string
	Format      string
	Duration    time.Duration
	BitRate     int
	SampleRate  int
	Channels    int
	FileSize    int64
}

// ExtractMetadata reads the tags in data, decoding legacy charsets.
func ExtractMetadata(data []byte) (*Metadata, error) {
	m, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	meta := &Metadata{
		Title:       tryDecode(m.Title()),
		Artist:      tryDecode(m.Artist()),
		Album:       tryDecode(m.Album()),
		AlbumArtist: tryDecode(m.AlbumArtist()),
		Genre:       tryDecode(m.Genre()),
		Year:        m.Year(),
		Format:      string(m.Format()),
	}
	if n, total := m.Track(); n > 0 {
		meta.Track = fmt.Sprint(n)
		if total > 0 {
			meta.Track += fmt.Sprintf("/%d", total)
		}
	}

	if meta.Title == "" {
		meta.Title = unknownTitle
	}
	if meta.Artist == "" {
		meta.Artist = unknownArtist
	}
	if meta.Album == "" {
		meta.Album = unknownAlbum
	}
	return meta, nil
}

// legacyCharsets are tried in order when a tag is not readable as UTF-8.
var legacyCharsets = []encoding.Encoding{
	charmap.Windows1251,
	charmap.KOI8R,
	charmap.ISO8859_5,
	charmap.CodePage866,
	simplifiedchinese.GB18030,
	traditionalchinese.Big5,
	japanese.EUCJP,
	korean.EUCKR,
	unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
}

// tryDecode returns text as-is when it reads well, otherwise the first
// legacy decoding that does, otherwise text with unreadable runes replaced.
func tryDecode(text string) string {
	if text == "" || isReadable(text) {
		return text
	}
	for _, enc := range legacyCharsets {
		if decoded, err := enc.NewDecoder().String(text); err == nil && isReadable(decoded) {
			return decoded
		}
	}
	return cleanString(text)
}

func readableRune(r rune) bool {
	return r >= 32 && r < 127 ||
		r >= 0x400 && r <= 0x4FF ||
		r >= 0x3040 && r <= 0x30FF ||
		r >= 0x4E00 && r <= 0x9FFF
}

// isReadable reports whether more than half of the runes of s are printable
// Latin, Cyrillic, kana or CJK.
func isReadable(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	readable := 0
	for _, r := range runes {
		if readableRune(r) {
			readable++
		}
	}
	return float64(readable)/float64(len(runes)) > 0.5
}

func cleanString(s string) string {
	return strings.Map(func(r rune) rune {
		if readableRune(r) {
			return r
		}
		return '?'
	}, s)
}

// String renders the track information box shown by the info command.
func (m *Metadata) String() string {
	var b strings.Builder
	row := func(k, v string) { fmt.Fprintf(&b, "│ %-12s: %s\n", k, v) }

	b.WriteString("┌─── Track ──────────────────────────────\n")
	row("Title", m.Title)
	row("Artist", m.Artist)
	if m.AlbumArtist != "" && m.AlbumArtist != m.Artist {
		row("Album Artist", m.AlbumArtist)
	}
	row("Album", m.Album)
	if m.Track != "" {
		row("Track", m.Track)
	}
	if m.Year != 0 {
		row("Year", fmt.Sprint(m.Year))
	}
	if m.Genre != "" {
		row("Genre", m.Genre)
	}
	b.WriteString("├─── Audio ──────────────────────────────\n")
	row("Duration", FormatDuration(m.Duration))
	if m.Format != "" {
		row("Tags", m.Format)
	}
	row("Bit Rate", fmt.Sprintf("%d kbps", m.BitRate))
	row("Sample Rate", fmt.Sprintf("%d Hz", m.SampleRate))
	row("Channels", fmt.Sprint(m.Channels))
	row("File Size", fmt.Sprintf("%d bytes", m.FileSize))
	b.WriteString("└────────────────────────────────────────\n")
	return b.String()
}
