package cli

import (
	"fmt"
	"os"
	"strings"
)

// readLyricLines reads a lyric file and splits it into lines. A UTF-8 BOM
// on the first line is stripped; QRC files in the wild often carry one.
func readLyricLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text := strings.TrimPrefix(string(data), "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n"), nil
}

// writeLyricLines writes lines to path joined by newlines, with a
// trailing newline.
func writeLyricLines(path string, lines []string) error {
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
