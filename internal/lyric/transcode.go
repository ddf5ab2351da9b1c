package lyric

// Retime converts a document's timing to the precision of the target
// format and returns the re-timed copy. The input document is not
// modified.
//
// ASS timing is centisecond-grained, so for that target every syllable
// start is truncated onto the centisecond grid and every duration is
// rounded half-up to the nearest centisecond. Each syllable rounds
// independently; accumulated error across a line is not redistributed.
// Lines that lose precision are reported as warnings.
//
// QRC and LYS store plain milliseconds, so those targets are a pass
// through: converting from ASS is lossless by construction because ASS
// centiseconds are an exact multiple of the finer unit.
func Retime(doc *Document, target Format) (*Document, []Warning) {
	out := &Document{
		Meta:  append([]Tag(nil), doc.Meta...),
		Lines: make([]Line, len(doc.Lines)),
	}

	var warnings []Warning
	for i, line := range doc.Lines {
		retimed := Line{
			Style:     line.Style,
			Actor:     line.Actor,
			Syllables: append([]Syllable(nil), line.Syllables...),
		}
		if target == FormatASS {
			if drift := quantizeLine(retimed.Syllables); drift != 0 {
				warnings = append(warnings, warnf(0,
					"precision: line %d (%q) loses %dms to centisecond rounding",
					i+1, truncateForLog(line.Text()), drift))
			}
		}
		out.Lines[i] = retimed
	}

	return out, warnings
}

// quantizeLine snaps syllable timing to the centisecond grid in place and
// returns the total absolute drift in milliseconds.
func quantizeLine(syls []Syllable) int {
	drift := 0
	for i := range syls {
		start := truncToCenti(syls[i].Start)
		dur := roundDurationToCenti(syls[i].Duration)
		drift += abs(syls[i].Start-start) + abs(syls[i].Duration-dur)
		syls[i].Start = start
		syls[i].Duration = dur
	}
	return drift
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func truncateForLog(s string) string {
	const max = 20
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
