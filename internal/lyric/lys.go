package lyric

import (
	"fmt"
	"strings"
)

// Lyricify Syllable lines start with a numeric property tag that encodes
// alignment and background-vocal status:
//
//	[<property>]<text>(<startMs>,<durMs>)...
//
// The property maps to and from the ASS Name (actor) field, which duet
// scripts fill with markers like 左/右/背 or v1/v2/x-bg.
const (
	lysPropertyUnset       = 0
	lysPropertyLeft        = 1
	lysPropertyRight       = 2
	lysPropertyNoBackLeft  = 4
	lysPropertyNoBackRight = 5
	lysPropertyBackUnset   = 6
	lysPropertyBackLeft    = 7
	lysPropertyBackRight   = 8
)

type actorCategory int

const (
	actorLeft actorCategory = iota
	actorRight
	actorBackground
	actorOther
)

// categorizeActor buckets an ASS actor name. Only the first
// space-separated word counts, so trailing annotations like
// "左 itunes:song-part=1" still categorize. Unknown non-empty names
// report known=false.
func categorizeActor(name string) (cat actorCategory, known bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return actorLeft, true
	}
	first := strings.Fields(trimmed)[0]
	switch first {
	case "左", "v1", "合", "v1000":
		return actorLeft, true
	case "右", "v2", "x-duet", "x-anti":
		return actorRight, true
	case "背", "x-bg":
		return actorBackground, true
	default:
		return actorOther, false
	}
}

// actorForProperty is the reverse mapping used when parsing LYS.
func actorForProperty(property int) string {
	switch property {
	case lysPropertyLeft, lysPropertyNoBackLeft, lysPropertyBackLeft:
		return "左"
	case lysPropertyRight, lysPropertyNoBackRight, lysPropertyBackRight:
		return "右"
	case lysPropertyBackUnset:
		return "背"
	default:
		return ""
	}
}

// ParseLYS parses Lyricify Syllable text. [key:value] lines become
// metadata tags; lines outside the grammar are ignored.
func ParseLYS(lines []string) (*Document, []Warning, error) {
	doc := &Document{}
	var warnings []Warning

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" || !strings.HasPrefix(line, "[") {
			continue
		}

		switch classifyLYSLine(line) {
		case bracketMeta:
			if tag, ok := parseMetaTagLine(line); ok {
				doc.Meta = append(doc.Meta, tag)
			}
		case bracketRecord:
			parsed, w, err := parseLYSRecord(lineNo, line)
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

// classifyLYSLine mirrors classifyBracketLine for the LYS header, which
// is a bare number rather than a start,duration pair.
func classifyLYSLine(line string) bracketKind {
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return bracketUnknown
	}
	header := line[1:end]
	if header != "" && strings.TrimLeft(header, "0123456789") == "" {
		return bracketRecord
	}
	if strings.ContainsRune(header, ':') {
		return bracketMeta
	}
	return bracketUnknown
}

func parseLYSRecord(lineNo int, line string) (Line, []Warning, error) {
	s := newLineScanner(lineNo, line)

	if err := s.expect('['); err != nil {
		return Line{}, nil, err
	}
	property, err := s.scanInt()
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

	return Line{Actor: actorForProperty(property), Syllables: syls}, warnings, nil
}

// EmitLYS serializes a document as Lyricify Syllable text. Translation
// annotation lines (styles ts/trans) have no LYS representation and are
// dropped.
//
// Background properties depend on context: a 背 line inherits left/right
// from the line before it, and consecutive background lines keep the
// property of the first one.
func EmitLYS(doc *Document) ([]string, []Warning) {
	out := make([]string, 0, len(doc.Meta)+len(doc.Lines))
	var warnings []Warning

	for _, tag := range doc.Meta {
		out = append(out, fmt.Sprintf("[%s:%s]", tag.Key, tag.Value))
	}

	lastProperty := lysPropertyUnset
	prevActor := ""
	hasPrev := false
	for i, line := range doc.Lines {
		if len(line.Syllables) == 0 {
			continue
		}
		if strings.EqualFold(line.Style, "ts") || strings.EqualFold(line.Style, "trans") {
			continue
		}

		property, known := lysProperty(line.Actor, prevActor, hasPrev, lastProperty)
		if !known {
			warnings = append(warnings, warnf(0,
				"line %d: unrecognized actor %q, emitted without alignment", i+1, line.Actor))
		}
		lastProperty = property
		prevActor = line.Actor
		hasPrev = true

		var sb strings.Builder
		fmt.Fprintf(&sb, "[%d]", property)
		for _, syl := range line.Syllables {
			fmt.Fprintf(&sb, "%s(%d,%d)", syl.Text, syl.Start, syl.Duration)
		}
		out = append(out, sb.String())
	}

	return out, warnings
}

func lysProperty(actor, prevActor string, hasPrev bool, lastProperty int) (int, bool) {
	cat, known := categorizeActor(actor)
	switch cat {
	case actorLeft:
		return lysPropertyNoBackLeft, known
	case actorRight:
		return lysPropertyNoBackRight, known
	case actorBackground:
		prevCat := actorOther
		if hasPrev {
			prevCat, _ = categorizeActor(prevActor)
		}
		switch prevCat {
		case actorLeft:
			return lysPropertyBackLeft, known
		case actorRight:
			return lysPropertyBackRight, known
		case actorBackground:
			return lastProperty, known
		default:
			return lysPropertyBackUnset, known
		}
	default:
		return lysPropertyUnset, known
	}
}
