package lyric

import (
	"fmt"
	"strings"
)

// lineScanner is a cursor over a single input line. QRC and LYS share its
// grammar pieces: a leading bracket group followed by repeated
// text(start,duration) syllable groups. Walking the line explicitly
// instead of regex-matching it keeps failure positions exact.
type lineScanner struct {
	lineNo int
	src    string
	pos    int
}

func newLineScanner(lineNo int, src string) *lineScanner {
	return &lineScanner{lineNo: lineNo, src: src}
}

func (s *lineScanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *lineScanner) rest() string {
	return s.src[s.pos:]
}

func (s *lineScanner) errorf(format string, args ...any) *FormatError {
	msg := fmt.Sprintf(format, args...)
	return formatErrorf(s.lineNo, s.src, "%s (column %d)", msg, s.pos+1)
}

func (s *lineScanner) expect(c byte) error {
	if s.eof() || s.src[s.pos] != c {
		return s.errorf("expected %q", string(c))
	}
	s.pos++
	return nil
}

// scanInt consumes a run of ASCII digits. At least one digit is required.
func (s *lineScanner) scanInt() (int, error) {
	start := s.pos
	n := 0
	for !s.eof() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		n = n*10 + int(s.src[s.pos]-'0')
		s.pos++
	}
	if s.pos == start {
		return 0, s.errorf("expected a number")
	}
	return n, nil
}

// textUntil consumes everything up to but not including the next
// occurrence of c. The second return value is false when c does not occur
// in the remainder; the cursor is not moved in that case.
func (s *lineScanner) textUntil(c byte) (string, bool) {
	idx := strings.IndexByte(s.rest(), c)
	if idx < 0 {
		return "", false
	}
	text := s.src[s.pos : s.pos+idx]
	s.pos += idx
	return text, true
}

// scanSyllables consumes repeated <text>(<startMs>,<durationMs>) groups
// until the line is exhausted. Text may contain anything except an
// opening parenthesis; trailing spaces inside it are preserved because
// they affect rendered spacing.
func (s *lineScanner) scanSyllables() ([]Syllable, error) {
	var syls []Syllable
	for !s.eof() {
		text, ok := s.textUntil('(')
		if !ok {
			if strings.TrimSpace(s.rest()) != "" {
				return nil, s.errorf("lyric text %q has no timing group", s.rest())
			}
			break
		}
		if err := s.expect('('); err != nil {
			return nil, err
		}
		start, err := s.scanInt()
		if err != nil {
			return nil, err
		}
		if err := s.expect(','); err != nil {
			return nil, err
		}
		duration, err := s.scanInt()
		if err != nil {
			return nil, err
		}
		if err := s.expect(')'); err != nil {
			return nil, err
		}
		syls = append(syls, Syllable{Text: text, Start: start, Duration: duration})
	}
	return syls, nil
}

// normalizeSyllables enforces the non-overlap invariant on absolutely
// timed syllables. Starts must be non-decreasing; an overlap with the
// next syllable is clamped and reported as a warning.
func normalizeSyllables(lineNo int, syls []Syllable) ([]Warning, error) {
	var warnings []Warning
	for i := 1; i < len(syls); i++ {
		prev, cur := &syls[i-1], &syls[i]
		if cur.Start < prev.Start {
			return nil, formatErrorf(lineNo, "",
				"syllable starting at %dms is before the previous one at %dms",
				cur.Start, prev.Start)
		}
		if prev.End() > cur.Start {
			warnings = append(warnings, warnf(lineNo,
				"syllable %d overlaps the next by %dms, duration clamped",
				i, prev.End()-cur.Start))
			prev.Duration = cur.Start - prev.Start
		}
	}
	return warnings, nil
}
