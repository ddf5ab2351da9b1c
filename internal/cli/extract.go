package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lyrix-tools/lyrix/internal/lyric"
)

var extractCmd = &cobra.Command{
	Use:   "extract [ass_file]",
	Short: "Extract translation and romanization LRC files from an ASS script",
	Long: `Extract plain LRC lyric files from an ASS karaoke script.

Translation lines (style ts or trans, actor x-lang:<code>) are written
to <stem>.<code>.lrc, one file per language. Romanization lines (style
roma) are written to <stem>.roma.lrc. Metadata tags carry over into
every extracted file.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	input := args[0]

	if _, err := os.Stat(input); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", input)
	}
	if from, ok := lyric.FormatFromExtension(filepath.Ext(input)); !ok || from != lyric.FormatASS {
		return fmt.Errorf("extract expects an ASS file, got %s", filepath.Ext(input))
	}

	lines, err := readLyricLines(input)
	if err != nil {
		return err
	}

	count, err := extractLRCFiles(input, lines)
	if err != nil {
		return err
	}
	if count == 0 {
		logger.Infow("No translation or romanization lines found", "input", input)
		return nil
	}

	logger.Infow("Extracted LRC files",
		"input", input,
		"count", count,
	)
	return nil
}

// extractLRCFiles parses an ASS script and writes one LRC file per
// translation language plus one for romanization, next to the input.
// It returns the number of files written.
func extractLRCFiles(input string, lines []string) (int, error) {
	doc, warnings, err := lyric.ParseASS(lines)
	if err != nil {
		return 0, err
	}
	for _, w := range warnings {
		logger.Warnw("Parse warning",
			"input", input,
			"line", w.Line,
			"warning", w.Msg,
		)
	}

	stem := strings.TrimSuffix(input, filepath.Ext(input))
	written := 0

	translations := lyric.Translations(doc)
	langs := make([]string, 0, len(translations))
	for lang := range translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	for _, lang := range langs {
		path := fmt.Sprintf("%s.%s.lrc", stem, lang)
		if err := writeLyricLines(path, lyric.EmitLRC(doc.Meta, translations[lang])); err != nil {
			return written, err
		}
		logger.Debugw("Wrote translation", "language", lang, "output", path)
		written++
	}

	if roma := lyric.Romanization(doc); len(roma) > 0 {
		path := stem + ".roma.lrc"
		if err := writeLyricLines(path, lyric.EmitLRC(doc.Meta, roma)); err != nil {
			return written, err
		}
		logger.Debugw("Wrote romanization", "output", path)
		written++
	}

	return written, nil
}
