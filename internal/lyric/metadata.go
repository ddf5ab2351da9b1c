package lyric

import (
	"fmt"
	"regexp"
	"strings"
)

// QRC, LYS and LRC carry metadata as [key:value] tag lines. ASS carries
// the same information in comment events pinned at time zero with the
// "meta" style:
//
//	Comment: 0,0:00:00.00,0:00:00.00,meta,,0,0,0,,musicName:Song Title
//
// The key names differ between the two worlds; the tables below map
// the known ones. Unrecognized keys are dropped, matching player
// behavior.

var metaCommentRe = regexp.MustCompile(`^Comment:\s*\d+,0:00:00\.00,0:00:00\.00,meta,,0,0,0,,(.*)$`)

var assKeyToTag = map[string]string{
	"musicName":             "ti",
	"artists":               "ar",
	"album":                 "al",
	"ttmlAuthorGithubLogin": "by",
}

var tagToASSKey = map[string]string{
	"ti": "musicName",
	"ar": "artists",
	"al": "album",
	"by": "ttmlAuthorGithubLogin",
}

// parseMetaTagLine parses a [key:value] metadata line from QRC or LYS
// input. Keys are passed through as-is so unknown tags survive
// conversion between the bracket-tag formats.
func parseMetaTagLine(line string) (Tag, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return Tag{}, false
	}
	body := trimmed[1 : len(trimmed)-1]
	colon := strings.IndexByte(body, ':')
	if colon <= 0 {
		return Tag{}, false
	}
	key := strings.TrimSpace(body[:colon])
	value := strings.TrimSpace(body[colon+1:])
	if key == "" || value == "" {
		return Tag{}, false
	}
	return Tag{Key: key, Value: value}, true
}

// parseMetaComment extracts a metadata tag from an ASS meta comment
// event. The second return value is false when the line is not a meta
// comment or its key is not recognized.
func parseMetaComment(line string) (Tag, bool) {
	m := metaCommentRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Tag{}, false
	}
	colon := strings.IndexByte(m[1], ':')
	if colon <= 0 {
		return Tag{}, false
	}
	key := strings.TrimSpace(m[1][:colon])
	value := strings.TrimSpace(m[1][colon+1:])
	tagKey, ok := assKeyToTag[key]
	if !ok || value == "" {
		return Tag{}, false
	}
	return Tag{Key: tagKey, Value: value}, true
}

// metaCommentLine renders a metadata tag as an ASS meta comment event.
// Tags without a known ASS key name are skipped.
func metaCommentLine(tag Tag) (string, bool) {
	key, ok := tagToASSKey[tag.Key]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("Comment: 0,0:00:00.00,0:00:00.00,meta,,0,0,0,,%s:%s", key, tag.Value), true
}
