package lyric

import (
	"reflect"
	"strings"
	"testing"
)

func TestConvertQRCToASS(t *testing.T) {
	input := []string{
		"[ti:Story]",
		"[29264,782]故(29264,390)事(29654,392)",
	}

	result, err := Convert(input, FormatQRC, FormatASS, Options{})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	want := []string{
		"[Events]",
		eventsFormatLine,
		"Comment: 0,0:00:00.00,0:00:00.00,meta,,0,0,0,,musicName:Story",
		`Dialogue: 0,0:00:29.26,0:00:30.04,Default,,0,0,0,,{\k39}故{\k39}事`,
	}
	if !reflect.DeepEqual(result.Lines, want) {
		t.Errorf("lines = %q, want %q", result.Lines, want)
	}

	// 29264 and 29654 are off the centisecond grid and 392 rounds down,
	// so the conversion must report the precision loss.
	if len(result.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0].Msg, "precision") {
		t.Errorf("warning = %q, want a precision warning", result.Warnings[0].Msg)
	}
}

func TestConvertASSToQRCLossless(t *testing.T) {
	input := []string{
		"[Events]",
		eventsFormatLine,
		"Comment: 0,0:00:00.00,0:00:00.00,meta,,0,0,0,,musicName:Story",
		`Dialogue: 0,0:00:29.26,0:00:30.04,Default,,0,0,0,,{\k39}故{\k39}事`,
	}

	result, err := Convert(input, FormatASS, FormatQRC, Options{})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	want := []string{
		"[ti:Story]",
		"[29260,780]故(29260,390)事(29650,390)",
	}
	if !reflect.DeepEqual(result.Lines, want) {
		t.Errorf("lines = %q, want %q", result.Lines, want)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", result.Warnings)
	}
}

// An ASS script whose timing is already on the centisecond grid must
// survive ASS -> QRC -> ASS unchanged, pause tags included.
func TestConvertASSRoundTrip(t *testing.T) {
	input := []string{
		"[Events]",
		eventsFormatLine,
		"Comment: 0,0:00:00.00,0:00:00.00,meta,,0,0,0,,musicName:Story",
		`Dialogue: 0,0:00:29.26,0:00:30.04,Default,,0,0,0,,{\k39}故{\k39}事`,
		`Dialogue: 0,0:00:40.00,0:00:41.00,Default,,0,0,0,,{\k30}A{\k20}{\k50}B`,
		`Dialogue: 0,0:00:50.00,0:00:50.50,Default,,0,0,0,,{\k0}X{\k50}Y`,
	}

	toQRC, err := Convert(input, FormatASS, FormatQRC, Options{})
	if err != nil {
		t.Fatalf("ASS -> QRC error: %v", err)
	}
	backToASS, err := Convert(toQRC.Lines, FormatQRC, FormatASS, Options{})
	if err != nil {
		t.Fatalf("QRC -> ASS error: %v", err)
	}

	if !reflect.DeepEqual(backToASS.Lines, input) {
		t.Errorf("round trip changed the script:\ngot  %q\nwant %q", backToASS.Lines, input)
	}
	if len(backToASS.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", backToASS.Warnings)
	}
}

func TestConvertLYSToASSAndBack(t *testing.T) {
	input := []string{
		"[4]a(0,300)b(300,200)",
		"[5]c(500,500)",
	}

	toASS, err := Convert(input, FormatLYS, FormatASS, Options{})
	if err != nil {
		t.Fatalf("LYS -> ASS error: %v", err)
	}

	wantASS := []string{
		"[Events]",
		eventsFormatLine,
		`Dialogue: 0,0:00:00.00,0:00:00.50,Default,左,0,0,0,,{\k30}a{\k20}b`,
		`Dialogue: 0,0:00:00.50,0:00:01.00,Default,右,0,0,0,,{\k50}c`,
	}
	if !reflect.DeepEqual(toASS.Lines, wantASS) {
		t.Errorf("lines = %q, want %q", toASS.Lines, wantASS)
	}

	back, err := Convert(toASS.Lines, FormatASS, FormatLYS, Options{})
	if err != nil {
		t.Fatalf("ASS -> LYS error: %v", err)
	}
	if !reflect.DeepEqual(back.Lines, input) {
		t.Errorf("round trip = %q, want %q", back.Lines, input)
	}
}

func TestConvertTextTransform(t *testing.T) {
	input := []string{
		"[ti:story]",
		"[0,500]hello(0,500)",
	}
	opts := Options{Text: strings.ToUpper}

	result, err := Convert(input, FormatQRC, FormatASS, opts)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	want := []string{
		"[Events]",
		eventsFormatLine,
		"Comment: 0,0:00:00.00,0:00:00.00,meta,,0,0,0,,musicName:STORY",
		`Dialogue: 0,0:00:00.00,0:00:00.50,Default,,0,0,0,,{\k50}HELLO`,
	}
	if !reflect.DeepEqual(result.Lines, want) {
		t.Errorf("lines = %q, want %q", result.Lines, want)
	}
}

func TestConvertFatalError(t *testing.T) {
	result, err := Convert([]string{"[abc,3446]x(0,100)"}, FormatQRC, FormatASS, Options{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if result != nil {
		t.Errorf("result = %+v, want nil on fatal error", result)
	}
}

func TestConvertUnsupportedFormats(t *testing.T) {
	if _, err := Convert(nil, Format("srt"), FormatASS, Options{}); err == nil {
		t.Error("expected error for unsupported source format")
	}
	if _, err := Convert([]string{"[0,100]x(0,100)"}, FormatQRC, Format("srt"), Options{}); err == nil {
		t.Error("expected error for unsupported target format")
	}
}

func TestHasDuetActors(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
		want bool
	}{
		{
			name: "no actors",
			doc: &Document{Lines: []Line{
				{Syllables: []Syllable{{Text: "a", Start: 0, Duration: 100}}},
			}},
			want: false,
		},
		{
			name: "duet marker",
			doc: &Document{Lines: []Line{
				{Actor: "左", Syllables: []Syllable{{Text: "a", Start: 0, Duration: 100}}},
			}},
			want: true,
		},
		{
			name: "background marker",
			doc: &Document{Lines: []Line{
				{Actor: "x-bg", Syllables: []Syllable{{Text: "a", Start: 0, Duration: 100}}},
			}},
			want: true,
		},
		{
			name: "unrecognized actor does not count",
			doc: &Document{Lines: []Line{
				{Actor: "张三", Syllables: []Syllable{{Text: "a", Start: 0, Duration: 100}}},
			}},
			want: false,
		},
		{
			name: "translation actor does not count",
			doc: &Document{Lines: []Line{
				{Style: "ts", Actor: "x-lang:en", Syllables: []Syllable{{Text: "hi", Start: 0, Duration: 100}}},
			}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasDuetActors(tt.doc); got != tt.want {
				t.Errorf("HasDuetActors = %v, want %v", got, tt.want)
			}
		})
	}
}
