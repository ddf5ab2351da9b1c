package lyric

import (
	"fmt"
	"strings"
)

// ParseQRC parses QRC lyric text. Each record line has the form
//
//	[<lineStartMs>,<lineDurationMs>]<text>(<startMs>,<durMs>)...
//
// with one record per line. Lines of the form [key:value] are collected
// as metadata tags; anything else outside the grammar is ignored.
//
// The bracketed header is advisory: the line's real timing is derived
// from its syllables, and a header that disagrees with them is flagged
// with a warning rather than rejected.
func ParseQRC(lines []string) (*Document, []Warning, error) {
	doc := &Document{}
	var warnings []Warning

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" || !strings.HasPrefix(line, "[") {
			continue
		}

		switch classifyBracketLine(line) {
		case bracketMeta:
			if tag, ok := parseMetaTagLine(line); ok {
				doc.Meta = append(doc.Meta, tag)
			}
		case bracketRecord:
			parsed, w, err := parseQRCRecord(lineNo, line)
			if err != nil {
				return nil, nil, err
			}
			warnings = append(warnings, w...)
			doc.Lines = append(doc.Lines, parsed)
		case bracketUnknown:
			// Out of grammar, pass.
		}
	}

	return doc, warnings, nil
}

type bracketKind int

const (
	bracketUnknown bracketKind = iota
	bracketRecord
	bracketMeta
)

// classifyBracketLine decides whether a [-prefixed line is a timed
// record, a metadata tag, or neither. A comma inside the bracket group
// marks a record; a colon marks metadata. A record candidate with a
// malformed header still classifies as a record so that it fails loudly
// instead of being dropped.
func classifyBracketLine(line string) bracketKind {
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return bracketRecord
	}
	header := line[1:end]
	switch {
	case strings.ContainsRune(header, ','):
		return bracketRecord
	case strings.ContainsRune(header, ':'):
		return bracketMeta
	default:
		return bracketUnknown
	}
}

func parseQRCRecord(lineNo int, line string) (Line, []Warning, error) {
	s := newLineScanner(lineNo, line)

	if err := s.expect('['); err != nil {
		return Line{}, nil, err
	}
	headerStart, err := s.scanInt()
	if err != nil {
		return Line{}, nil, err
	}
	if err := s.expect(','); err != nil {
		return Line{}, nil, err
	}
	headerDuration, err := s.scanInt()
	if err != nil {
		return Line{}, nil, err
	}
	if err := s.expect(']'); err != nil {
		return Line{}, nil, err
	}

	syls, err := s.scanSyllables()
	if err != nil {
		return Line{}, nil, err
	}
	if len(syls) == 0 {
		return Line{}, nil, formatErrorf(lineNo, line, "record has no syllables")
	}

	warnings, err := normalizeSyllables(lineNo, syls)
	if err != nil {
		e := err.(*FormatError)
		e.Text = line
		return Line{}, nil, e
	}

	parsed := Line{Syllables: syls}
	if headerStart != parsed.Start() || headerStart+headerDuration != parsed.End() {
		warnings = append(warnings, warnf(lineNo,
			"header [%d,%d] disagrees with syllable timing [%d,%d]",
			headerStart, headerDuration, parsed.Start(), parsed.Duration()))
	}

	return parsed, warnings, nil
}

// EmitQRC serializes a document as QRC text, one record per line, in
// plain integer milliseconds with no rounding. The line header is
// recomputed from the syllables.
func EmitQRC(doc *Document) []string {
	out := make([]string, 0, len(doc.Meta)+len(doc.Lines))

	for _, tag := range doc.Meta {
		out = append(out, fmt.Sprintf("[%s:%s]", tag.Key, tag.Value))
	}

	for _, line := range doc.Lines {
		if len(line.Syllables) == 0 {
			continue
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "[%d,%d]", line.Start(), line.Duration())
		for _, syl := range line.Syllables {
			fmt.Fprintf(&sb, "%s(%d,%d)", syl.Text, syl.Start, syl.Duration)
		}
		out = append(out, sb.String())
	}

	return out
}
