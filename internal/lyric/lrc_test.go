package lyric

import (
	"reflect"
	"testing"
)

func translationFixture(t *testing.T) *Document {
	t.Helper()
	input := []string{
		"[Events]",
		eventsFormatLine,
		"Comment: 0,0:00:00.00,0:00:00.00,meta,,0,0,0,,musicName:Story",
		`Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,{\k100}la`,
		`Dialogue: 0,0:00:03.00,0:00:04.00,ts,x-lang:en,0,0,0,,Hello`,
		`Dialogue: 0,0:00:01.00,0:00:02.00,ts,x-lang:en,0,0,0,,First`,
		`Dialogue: 0,0:00:01.00,0:00:02.00,trans,x-lang:JA,0,0,0,,こんにちは`,
		`Dialogue: 0,0:00:01.00,0:00:02.00,roma,,0,0,0,,ko n ni chi wa`,
		`Dialogue: 0,0:00:05.00,0:00:06.00,ts,,0,0,0,,no language tag`,
	}
	doc, _, err := ParseASS(input)
	if err != nil {
		t.Fatalf("ParseASS error: %v", err)
	}
	return doc
}

func TestTranslations(t *testing.T) {
	doc := translationFixture(t)

	got := Translations(doc)
	want := map[string][]LRCLine{
		"en": {
			{Start: 1000, Text: "First"},
			{Start: 3000, Text: "Hello"},
		},
		"ja": {
			{Start: 1000, Text: "こんにちは"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Translations = %+v, want %+v", got, want)
	}
}

func TestRomanization(t *testing.T) {
	doc := translationFixture(t)

	got := Romanization(doc)
	want := []LRCLine{{Start: 1000, Text: "ko n ni chi wa"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Romanization = %+v, want %+v", got, want)
	}
}

func TestEmitLRC(t *testing.T) {
	meta := []Tag{{Key: "ti", Value: "Story"}}
	lines := []LRCLine{
		{Start: 1000, Text: "First"},
		{Start: 61230, Text: "Second"},
	}

	want := []string{
		"[ti:Story]",
		"[00:01.00]First",
		"[01:01.23]Second",
	}
	if got := EmitLRC(meta, lines); !reflect.DeepEqual(got, want) {
		t.Errorf("EmitLRC = %q, want %q", got, want)
	}
}
