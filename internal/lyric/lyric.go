package lyric

import "strings"

// Syllable is the smallest timed unit of lyric text. Start is an absolute
// offset from the beginning of the song and Duration is how long the
// syllable is highlighted, both in integer milliseconds.
type Syllable struct {
	Text     string
	Start    int
	Duration int
}

// End returns the absolute end time of the syllable in milliseconds.
func (s Syllable) End() int {
	return s.Start + s.Duration
}

// Line is an ordered run of syllables sung together. Syllables never
// overlap: each one ends at or before the next one starts.
//
// Style and Actor carry the ASS Style and Name fields. QRC has no
// equivalent, so both stay empty on that path; LYS encodes Actor in its
// line property.
type Line struct {
	Style     string
	Actor     string
	Syllables []Syllable
}

// Start returns the line start, defined as the first syllable's start.
func (l Line) Start() int {
	if len(l.Syllables) == 0 {
		return 0
	}
	return l.Syllables[0].Start
}

// End returns the line end, defined as the last syllable's end.
func (l Line) End() int {
	if len(l.Syllables) == 0 {
		return 0
	}
	return l.Syllables[len(l.Syllables)-1].End()
}

// Duration returns End minus Start.
func (l Line) Duration() int {
	return l.End() - l.Start()
}

// Text returns the visible lyric text: all syllable texts concatenated in
// order, with no timing information.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l.Syllables {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Tag is a metadata key/value pair, e.g. ti/ar/al in QRC and LYS files or
// musicName/artists/album in ASS meta comments.
type Tag struct {
	Key   string
	Value string
}

// Document is the shared intermediate representation: ordered lyric lines
// plus whatever metadata tags the source carried. Line order is playback
// order and is preserved across conversion.
type Document struct {
	Meta  []Tag
	Lines []Line
}

// Format identifies a supported lyric file format.
type Format string

const (
	FormatQRC Format = "qrc"
	FormatASS Format = "ass"
	FormatLYS Format = "lys"
)

// FormatFromExtension maps a file extension (with or without the leading
// dot) to a Format. The second return value is false for unknown
// extensions.
func FormatFromExtension(ext string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "qrc":
		return FormatQRC, true
	case "ass", "ssa":
		return FormatASS, true
	case "lys":
		return FormatLYS, true
	default:
		return "", false
	}
}
