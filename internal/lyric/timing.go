package lyric

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	msPerCentisecond = 10
	msPerSecond      = 1000
	msPerMinute      = 60 * msPerSecond
	msPerHour        = 60 * msPerMinute
)

var assTimestampRe = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})\.(\d{2})$`)

// formatASSTime renders milliseconds as an ASS timestamp, H:MM:SS.cc.
// Sub-centisecond remainders are truncated, matching reference output
// (29264ms -> 0:00:29.26).
func formatASSTime(ms int) string {
	hours := ms / msPerHour
	minutes := (ms % msPerHour) / msPerMinute
	seconds := (ms % msPerMinute) / msPerSecond
	centis := (ms % msPerSecond) / msPerCentisecond
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}

// parseASSTime parses a strict H:MM:SS.cc timestamp into milliseconds.
func parseASSTime(ts string) (int, error) {
	m := assTimestampRe.FindStringSubmatch(strings.TrimSpace(ts))
	if m == nil {
		return 0, fmt.Errorf("invalid timestamp %q, expected H:MM:SS.cc", ts)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	centis, _ := strconv.Atoi(m[4])

	if minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("invalid timestamp %q, minutes and seconds must be below 60", ts)
	}

	return hours*msPerHour + minutes*msPerMinute + seconds*msPerSecond +
		centis*msPerCentisecond, nil
}

// roundDurationToCenti rounds a millisecond duration to the nearest
// centisecond (half up) and returns it in milliseconds. The result is
// always within 5ms of the input.
func roundDurationToCenti(ms int) int {
	return (ms + msPerCentisecond/2) / msPerCentisecond * msPerCentisecond
}

// truncToCenti truncates a millisecond offset onto the centisecond grid.
func truncToCenti(ms int) int {
	return ms / msPerCentisecond * msPerCentisecond
}

// formatLRCTime renders milliseconds as an LRC timestamp, [mm:ss.xx].
func formatLRCTime(ms int) string {
	minutes := ms / msPerMinute
	seconds := (ms % msPerMinute) / msPerSecond
	hundredths := (ms % msPerSecond) / msPerCentisecond
	return fmt.Sprintf("[%02d:%02d.%02d]", minutes, seconds, hundredths)
}
