package lyric

import (
	"fmt"
	"strings"
)

// TextTransform rewrites lyric text during conversion, e.g. for
// Traditional/Simplified Chinese conversion. It is applied to syllable
// text and metadata values, never to timing.
type TextTransform func(string) string

// Options configures a conversion.
type Options struct {
	// ASS configures the ASS emitter; the zero value means
	// DefaultASSOptions.
	ASS ASSOptions

	// Text, when set, is applied to all lyric text after parsing.
	Text TextTransform
}

// Result is a successful conversion: output lines plus any non-fatal
// diagnostics collected along the way.
type Result struct {
	Lines    []string
	Warnings []Warning
}

// Parse dispatches to the parser for the given format.
func Parse(input []string, from Format) (*Document, []Warning, error) {
	switch from {
	case FormatQRC:
		return ParseQRC(input)
	case FormatASS:
		return ParseASS(input)
	case FormatLYS:
		return ParseLYS(input)
	default:
		return nil, nil, fmt.Errorf("unsupported source format %q", from)
	}
}

// Convert runs the whole pipeline: parse the source lines, optionally
// transform the text, re-time for the target's precision and serialize.
// A FormatError aborts the conversion with no output; warnings ride along
// with success.
func Convert(input []string, from, to Format, opts Options) (*Result, error) {
	doc, warnings, err := Parse(input, from)
	if err != nil {
		return nil, err
	}

	if opts.Text != nil {
		transformText(doc, opts.Text)
	}

	doc, retimeWarnings := Retime(doc, to)
	warnings = append(warnings, retimeWarnings...)

	var out []string
	switch to {
	case FormatQRC:
		out = EmitQRC(doc)
	case FormatASS:
		assOpts := opts.ASS
		if assOpts == (ASSOptions{}) {
			assOpts = DefaultASSOptions()
		}
		out = EmitASS(doc, assOpts)
	case FormatLYS:
		var emitWarnings []Warning
		out, emitWarnings = EmitLYS(doc)
		warnings = append(warnings, emitWarnings...)
	default:
		return nil, fmt.Errorf("unsupported target format %q", to)
	}

	return &Result{Lines: out, Warnings: warnings}, nil
}

func transformText(doc *Document, transform TextTransform) {
	for i := range doc.Meta {
		doc.Meta[i].Value = transform(doc.Meta[i].Value)
	}
	for i := range doc.Lines {
		for j := range doc.Lines[i].Syllables {
			doc.Lines[i].Syllables[j].Text = transform(doc.Lines[i].Syllables[j].Text)
		}
	}
}

// HasDuetActors reports whether any line names a duet or background
// actor. An ASS script with such markers converts to LYS by default,
// since QRC cannot represent them.
func HasDuetActors(doc *Document) bool {
	for _, line := range doc.Lines {
		if strings.TrimSpace(line.Actor) == "" {
			continue
		}
		if isAnnotationStyle(line.Style) {
			continue
		}
		if _, known := categorizeActor(line.Actor); known {
			return true
		}
	}
	return false
}
