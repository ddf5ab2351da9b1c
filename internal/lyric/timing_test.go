package lyric

import "testing"

func TestFormatASSTime(t *testing.T) {
	tests := []struct {
		name string
		ms   int
		want string
	}{
		{name: "zero", ms: 0, want: "0:00:00.00"},
		{name: "truncates sub-centisecond remainder", ms: 29264, want: "0:00:29.26"},
		{name: "truncates nine milliseconds", ms: 29269, want: "0:00:29.26"},
		{name: "exact centisecond", ms: 29260, want: "0:00:29.26"},
		{name: "minute rollover", ms: 61230, want: "0:01:01.23"},
		{name: "one hour", ms: 3600000, want: "1:00:00.00"},
		{name: "many hours", ms: 10*3600000 + 59*60000 + 59990, want: "10:59:59.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatASSTime(tt.ms); got != tt.want {
				t.Errorf("formatASSTime(%d) = %q, want %q", tt.ms, got, tt.want)
			}
		})
	}
}

func TestParseASSTime(t *testing.T) {
	tests := []struct {
		name    string
		ts      string
		want    int
		wantErr bool
	}{
		{name: "zero", ts: "0:00:00.00", want: 0},
		{name: "typical", ts: "0:00:29.26", want: 29260},
		{name: "hours", ts: "1:02:03.45", want: 3723450},
		{name: "surrounding whitespace", ts: " 0:00:01.50 ", want: 1500},
		{name: "minutes out of range", ts: "0:60:00.00", wantErr: true},
		{name: "seconds out of range", ts: "0:00:60.00", wantErr: true},
		{name: "single-digit seconds", ts: "0:00:1.00", wantErr: true},
		{name: "millisecond precision", ts: "0:00:01.000", wantErr: true},
		{name: "garbage", ts: "abc", wantErr: true},
		{name: "empty", ts: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseASSTime(tt.ts)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseASSTime(%q) = %d, want error", tt.ts, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseASSTime(%q) error: %v", tt.ts, err)
			}
			if got != tt.want {
				t.Errorf("parseASSTime(%q) = %d, want %d", tt.ts, got, tt.want)
			}
		})
	}
}

func TestParseFormatASSTimeRoundTrip(t *testing.T) {
	for _, ms := range []int{0, 10, 29260, 61230, 3600000, 35999990} {
		formatted := formatASSTime(ms)
		parsed, err := parseASSTime(formatted)
		if err != nil {
			t.Fatalf("parseASSTime(%q) error: %v", formatted, err)
		}
		if parsed != ms {
			t.Errorf("round trip %d -> %q -> %d", ms, formatted, parsed)
		}
	}
}

func TestRoundDurationToCenti(t *testing.T) {
	tests := []struct {
		ms   int
		want int
	}{
		{ms: 0, want: 0},
		{ms: 4, want: 0},
		{ms: 5, want: 10},
		{ms: 390, want: 390},
		{ms: 392, want: 390},
		{ms: 395, want: 400},
		{ms: 399, want: 400},
	}

	for _, tt := range tests {
		if got := roundDurationToCenti(tt.ms); got != tt.want {
			t.Errorf("roundDurationToCenti(%d) = %d, want %d", tt.ms, got, tt.want)
		}
	}
}

func TestFormatLRCTime(t *testing.T) {
	tests := []struct {
		ms   int
		want string
	}{
		{ms: 0, want: "[00:00.00]"},
		{ms: 61230, want: "[01:01.23]"},
		{ms: 29264, want: "[00:29.26]"},
	}

	for _, tt := range tests {
		if got := formatLRCTime(tt.ms); got != tt.want {
			t.Errorf("formatLRCTime(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}
