package lyric

import (
	"fmt"
	"strconv"
	"strings"
)

// dialogueFieldCount is the field count of the fixed Events format:
// Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text.
const dialogueFieldCount = 10

const eventsFormatLine = "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"

// ParseASS parses ASS subtitle text into a document. Only Dialogue events
// and meta comment lines are consumed; section headers, styles and other
// script furniture are ignored.
//
// Karaoke timing comes from {\k<cs>} override tags: the duration payload
// is in centiseconds and times the text run that follows it. The first
// syllable starts at the Dialogue start time and each further syllable
// starts where the previous one ended. A Dialogue with no karaoke tags
// becomes a single syllable spanning the whole event, which is how
// translation and romanization lines are carried.
func ParseASS(lines []string) (*Document, []Warning, error) {
	doc := &Document{}
	var warnings []Warning

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if tag, ok := parseMetaComment(trimmed); ok {
			doc.Meta = append(doc.Meta, tag)
			continue
		}

		if !strings.HasPrefix(trimmed, "Dialogue:") {
			continue
		}

		parsed, w, ok, err := parseDialogue(lineNo, line)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, w...)
		if ok {
			doc.Lines = append(doc.Lines, parsed)
		}
	}

	return doc, warnings, nil
}

func parseDialogue(lineNo int, line string) (Line, []Warning, bool, error) {
	content := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "Dialogue:"))

	fields := splitDialogueFields(content, dialogueFieldCount)
	if len(fields) < dialogueFieldCount {
		return Line{}, nil, false, formatErrorf(lineNo, line,
			"expected %d Dialogue fields, got %d", dialogueFieldCount, len(fields))
	}

	startMs, err := parseASSTime(fields[1])
	if err != nil {
		return Line{}, nil, false, formatErrorf(lineNo, line, "bad start time: %v", err)
	}
	endMs, err := parseASSTime(fields[2])
	if err != nil {
		return Line{}, nil, false, formatErrorf(lineNo, line, "bad end time: %v", err)
	}

	parsed := Line{
		Style: strings.TrimSpace(fields[3]),
		Actor: strings.TrimSpace(fields[4]),
	}

	syls, tagged, err := parseKaraokeText(lineNo, line, fields[9], startMs, endMs)
	if err != nil {
		return Line{}, nil, false, err
	}
	if len(syls) == 0 {
		return Line{}, nil, false, nil
	}
	parsed.Syllables = syls

	var warnings []Warning
	if tagged && !isAnnotationStyle(parsed.Style) {
		sum := 0
		for _, s := range syls {
			sum += s.Duration
		}
		if lineDur := endMs - startMs; sum != lineDur {
			warnings = append(warnings, warnf(lineNo,
				"karaoke tags sum to %dms but the Dialogue spans %dms", sum, lineDur))
		}
	}

	return parsed, warnings, true, nil
}

// splitDialogueFields splits a Dialogue body on the first numFields-1
// commas. The Text field is last and may itself contain commas, so it
// absorbs the remainder.
func splitDialogueFields(content string, numFields int) []string {
	parts := make([]string, 0, numFields)
	remaining := content
	for i := 0; i < numFields-1; i++ {
		idx := strings.IndexByte(remaining, ',')
		if idx == -1 {
			parts = append(parts, remaining)
			return parts
		}
		parts = append(parts, remaining[:idx])
		remaining = remaining[idx+1:]
	}
	return append(parts, remaining)
}

// parseKaraokeText walks the Text field splitting it on karaoke tags.
// Non-karaoke override blocks are dropped. Text appearing before the
// first karaoke tag keeps its place as a zero-duration syllable. The
// tagged result is false for text with no karaoke tags at all, in which
// case the whole run becomes one syllable spanning the event.
func parseKaraokeText(lineNo int, line, text string, startMs, endMs int) (_ []Syllable, tagged bool, _ error) {
	var syls []Syllable
	var leading strings.Builder
	openIdx := -1
	cur := startMs

	i := 0
	for i < len(text) {
		if text[i] == '{' {
			end := strings.IndexByte(text[i:], '}')
			if end < 0 {
				return nil, false, formatErrorf(lineNo, line, "unterminated override tag")
			}
			body := text[i+1 : i+end]
			i += end + 1

			cs, isKaraoke, err := parseKaraokeTag(body)
			if err != nil {
				return nil, false, formatErrorf(lineNo, line, "%v", err)
			}
			if isKaraoke {
				syls = append(syls, Syllable{Start: cur, Duration: cs * msPerCentisecond})
				cur += cs * msPerCentisecond
				openIdx = len(syls) - 1
			}
			continue
		}

		next := strings.IndexByte(text[i:], '{')
		var run string
		if next < 0 {
			run = text[i:]
			i = len(text)
		} else {
			run = text[i : i+next]
			i += next
		}
		if openIdx >= 0 {
			syls[openIdx].Text += run
		} else {
			leading.WriteString(run)
		}
	}

	if len(syls) == 0 {
		if leading.Len() == 0 {
			return nil, false, nil
		}
		return []Syllable{{Text: leading.String(), Start: startMs, Duration: endMs - startMs}}, false, nil
	}
	if leading.Len() > 0 {
		syls = append([]Syllable{{Text: leading.String(), Start: startMs}}, syls...)
	}
	return syls, true, nil
}

// parseKaraokeTag recognizes \k and \kf override tags and returns the
// centisecond payload. Other override tags report isKaraoke false.
func parseKaraokeTag(body string) (cs int, isKaraoke bool, err error) {
	var payload string
	switch {
	case strings.HasPrefix(body, `\kf`):
		payload = body[3:]
	case strings.HasPrefix(body, `\k`):
		payload = body[2:]
	default:
		return 0, false, nil
	}
	n, convErr := strconv.Atoi(payload)
	if convErr != nil || n < 0 {
		return 0, false, fmt.Errorf("karaoke tag {\\k%s} has a non-numeric duration", payload)
	}
	return n, true, nil
}

// isAnnotationStyle reports styles whose events annotate the lyric
// (translations, romanization) rather than time it; their spans are not
// expected to match karaoke sums.
func isAnnotationStyle(style string) bool {
	return strings.EqualFold(style, "roma") ||
		strings.EqualFold(style, "trans") ||
		strings.EqualFold(style, "ts")
}

// ASSOptions configures the emitted Dialogue fields and the optional
// script header. The zero-value-adjacent defaults mirror what karaoke
// players expect; see DefaultASSOptions.
type ASSOptions struct {
	Layer   int
	Style   string
	MarginL int
	MarginR int
	MarginV int

	// ScriptInfo prepends [Script Info] and [V4+ Styles] sections so the
	// output is a playable standalone script rather than a bare event
	// list.
	ScriptInfo bool
	PlayResX   int
	PlayResY   int
	Font       string
	FontSize   int
}

// DefaultASSOptions returns the documented defaults: layer 0, style
// Default, zero margins.
func DefaultASSOptions() ASSOptions {
	return ASSOptions{
		Style:    "Default",
		PlayResX: 1920,
		PlayResY: 1440,
		Font:     "微软雅黑",
		FontSize: 100,
	}
}

// EmitASS serializes a document as ASS text. Timing should already be on
// the centisecond grid (see Retime); the emitter truncates starts and
// rounds durations as a fallback but reports no precision diagnostics of
// its own.
//
// Gaps between absolutely timed syllables become bare {\k} pause tags so
// the cumulative karaoke clock stays aligned with the source timing.
func EmitASS(doc *Document, opts ASSOptions) []string {
	var out []string

	if opts.ScriptInfo {
		out = append(out,
			"[Script Info]",
			fmt.Sprintf("PlayResX: %d", opts.PlayResX),
			fmt.Sprintf("PlayResY: %d", opts.PlayResY),
			"",
			"[V4+ Styles]",
			"Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding",
			fmt.Sprintf("Style: %s,%s,%d,&H00FFFFFF,&H004E503F,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,1.5,0.5,2,10,10,60,1",
				opts.Style, opts.Font, opts.FontSize),
			"",
		)
	}

	out = append(out, "[Events]", eventsFormatLine)

	for _, tag := range doc.Meta {
		if line, ok := metaCommentLine(tag); ok {
			out = append(out, line)
		}
	}

	for _, line := range doc.Lines {
		if len(line.Syllables) == 0 {
			continue
		}

		var text strings.Builder
		curCs := line.Start() / msPerCentisecond
		for _, syl := range line.Syllables {
			startCs := syl.Start / msPerCentisecond
			if startCs > curCs {
				fmt.Fprintf(&text, `{\k%d}`, startCs-curCs)
				curCs = startCs
			}
			durCs := roundDurationToCenti(syl.Duration) / msPerCentisecond
			fmt.Fprintf(&text, `{\k%d}%s`, durCs, syl.Text)
			curCs += durCs
		}

		style := line.Style
		if style == "" {
			style = opts.Style
		}

		out = append(out, fmt.Sprintf("Dialogue: %d,%s,%s,%s,%s,%d,%d,%d,,%s",
			opts.Layer,
			formatASSTime(line.Start()),
			formatASSTime(line.End()),
			style,
			line.Actor,
			opts.MarginL, opts.MarginR, opts.MarginV,
			text.String()))
	}

	return out
}
