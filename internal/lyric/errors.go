package lyric

import "fmt"

// FormatError reports malformed input. It is terminal for the file being
// converted: no partial output is produced. Line is the 1-based line
// number in the input and Text the offending line.
type FormatError struct {
	Line int
	Text string
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

func formatErrorf(line int, text, format string, args ...any) *FormatError {
	return &FormatError{Line: line, Text: text, Msg: fmt.Sprintf(format, args...)}
}

// Warning is a non-fatal diagnostic surfaced alongside successful output:
// header/syllable timing mismatches, precision lost to centisecond
// rounding, overlap clamps. Warnings never block conversion.
type Warning struct {
	Line int
	Msg  string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Msg)
	}
	return w.Msg
}

func warnf(line int, format string, args ...any) Warning {
	return Warning{Line: line, Msg: fmt.Sprintf(format, args...)}
}
