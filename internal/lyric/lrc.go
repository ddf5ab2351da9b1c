package lyric

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// LRCLine is one plain-text LRC entry: a start time and the visible text.
type LRCLine struct {
	Start int
	Text  string
}

var langTagRe = regexp.MustCompile(`^x-lang:(.+)$`)

// Translations collects translation lines from an ASS-sourced document,
// grouped by lowercase language code. Translation events use style
// ts/trans and tag their language in the actor field as x-lang:<code>.
func Translations(doc *Document) map[string][]LRCLine {
	byLang := make(map[string][]LRCLine)
	for _, line := range doc.Lines {
		if !strings.EqualFold(line.Style, "ts") && !strings.EqualFold(line.Style, "trans") {
			continue
		}
		m := langTagRe.FindStringSubmatch(strings.TrimSpace(line.Actor))
		if m == nil {
			continue
		}
		text := line.Text()
		if text == "" {
			continue
		}
		lang := strings.ToLower(m[1])
		byLang[lang] = append(byLang[lang], LRCLine{Start: line.Start(), Text: text})
	}
	for _, lines := range byLang {
		sortLRC(lines)
	}
	return byLang
}

// Romanization collects romanization lines (style roma) from an
// ASS-sourced document.
func Romanization(doc *Document) []LRCLine {
	var out []LRCLine
	for _, line := range doc.Lines {
		if !strings.EqualFold(line.Style, "roma") {
			continue
		}
		text := line.Text()
		if text == "" {
			continue
		}
		out = append(out, LRCLine{Start: line.Start(), Text: text})
	}
	sortLRC(out)
	return out
}

// EmitLRC renders LRC text: metadata tags first, then one [mm:ss.xx]
// timestamped line per entry.
func EmitLRC(meta []Tag, lines []LRCLine) []string {
	out := make([]string, 0, len(meta)+len(lines))
	for _, tag := range meta {
		out = append(out, fmt.Sprintf("[%s:%s]", tag.Key, tag.Value))
	}
	for _, line := range lines {
		out = append(out, formatLRCTime(line.Start)+line.Text)
	}
	return out
}

func sortLRC(lines []LRCLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Start < lines[j].Start
	})
}
