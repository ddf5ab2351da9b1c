package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lyrix-tools/lyrix/internal/config"
	"github.com/lyrix-tools/lyrix/internal/lyric"
	"github.com/lyrix-tools/lyrix/internal/zhconv"
)

var convertCmd = &cobra.Command{
	Use:   "convert [lyric_file]...",
	Short: "Convert lyric files between QRC, LYS and ASS",
	Long: `Convert one or more lyric files between QRC, Lyricify Syllable (LYS)
and ASS karaoke subtitles. The source format is detected from the file
extension.

Without --to, QRC and LYS convert to ASS, and ASS converts to LYS when
it carries duet or background actors and to QRC otherwise.

Examples:
  lyrix convert song.qrc
  lyrix convert song.ass --to lys
  lyrix convert song.qrc --chinese t2s
  lyrix convert *.qrc`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("to", "t", "", "Target format (qrc, ass, lys); default depends on the source")
	convertCmd.Flags().
		StringP("config", "c", "", "TOML config file for ASS output settings")
	convertCmd.Flags().
		String("chinese", "", "Convert Chinese text (t2s or s2t)")
	convertCmd.Flags().
		Bool("extract-lrc", false, "Also extract translation and romanization LRC files from ASS input")
}

// conversionOutcome is one row of the batch summary.
type conversionOutcome struct {
	input     string
	direction string
	lineCount int
	warnings  int
	err       error
}

func runConvert(cmd *cobra.Command, args []string) error {
	toFlag, _ := cmd.Flags().GetString("to")
	configPath, _ := cmd.Flags().GetString("config")
	chinese, _ := cmd.Flags().GetString("chinese")
	extractLRC, _ := cmd.Flags().GetBool("extract-lrc")
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath != "" && len(args) > 1 {
		return fmt.Errorf("--output cannot be used with multiple input files")
	}

	var target lyric.Format
	if toFlag != "" {
		var ok bool
		target, ok = lyric.FormatFromExtension(toFlag)
		if !ok {
			return fmt.Errorf("unsupported target format %q: use qrc, ass, or lys", toFlag)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	opts := lyric.Options{ASS: cfg.ASSOptions()}
	if chinese != "" {
		converter, err := zhconv.New(zhconv.Direction(chinese))
		if err != nil {
			return err
		}
		opts.Text = converter.Convert
	}

	outcomes := make([]conversionOutcome, 0, len(args))
	for _, input := range args {
		outcome := convertFile(input, target, outputPath, opts, extractLRC)
		outcomes = append(outcomes, outcome)

		if outcome.err != nil {
			logger.Errorw("Conversion failed",
				"input", input,
				"error", outcome.err,
			)
		}
	}

	if len(outcomes) == 1 {
		return outcomes[0].err
	}

	fmt.Println(summaryTable(outcomes))

	failed := 0
	for _, o := range outcomes {
		if o.err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(outcomes))
	}
	return nil
}

// convertFile converts a single input file. A parse error aborts that
// file with no output written; warnings are logged and counted.
func convertFile(input string, target lyric.Format, outputPath string, opts lyric.Options, extractLRC bool) conversionOutcome {
	outcome := conversionOutcome{input: input}

	if _, err := os.Stat(input); os.IsNotExist(err) {
		outcome.err = fmt.Errorf("file not found: %s", input)
		return outcome
	}

	from, ok := lyric.FormatFromExtension(filepath.Ext(input))
	if !ok {
		outcome.err = fmt.Errorf("unsupported file type: %s (expected .qrc, .ass, or .lys)", filepath.Ext(input))
		return outcome
	}

	lines, err := readLyricLines(input)
	if err != nil {
		outcome.err = err
		return outcome
	}

	to := target
	if to == "" {
		to, err = autoTarget(lines, from)
		if err != nil {
			outcome.err = err
			return outcome
		}
	}
	outcome.direction = fmt.Sprintf("%s → %s", from, to)

	if to == from {
		outcome.err = fmt.Errorf("input is already %s: %s", from, input)
		return outcome
	}

	result, err := lyric.Convert(lines, from, to, opts)
	if err != nil {
		outcome.err = err
		return outcome
	}

	for _, w := range result.Warnings {
		logger.Warnw("Conversion warning",
			"input", input,
			"line", w.Line,
			"warning", w.Msg,
		)
	}
	outcome.warnings = len(result.Warnings)
	outcome.lineCount = len(result.Lines)

	out := outputPath
	if out == "" {
		out = defaultOutputPath(input, to)
	}
	if err := writeLyricLines(out, result.Lines); err != nil {
		outcome.err = err
		return outcome
	}

	logger.Infow("Converted",
		"input", input,
		"output", out,
		"direction", outcome.direction,
		"lines", outcome.lineCount,
		"warnings", outcome.warnings,
	)

	if extractLRC && from == lyric.FormatASS {
		count, err := extractLRCFiles(input, lines)
		if err != nil {
			outcome.err = err
			return outcome
		}
		logger.Infow("Extracted LRC files",
			"input", input,
			"count", count,
		)
	}

	return outcome
}

// autoTarget picks a target format for the source. QRC and LYS convert
// to ASS. ASS converts to LYS when the script marks duet or background
// actors, which QRC cannot represent, and to QRC otherwise.
func autoTarget(lines []string, from lyric.Format) (lyric.Format, error) {
	switch from {
	case lyric.FormatQRC, lyric.FormatLYS:
		return lyric.FormatASS, nil
	case lyric.FormatASS:
		doc, _, err := lyric.ParseASS(lines)
		if err != nil {
			return "", err
		}
		if lyric.HasDuetActors(doc) {
			return lyric.FormatLYS, nil
		}
		return lyric.FormatQRC, nil
	default:
		return "", fmt.Errorf("unsupported source format %q", from)
	}
}

func defaultOutputPath(input string, to lyric.Format) string {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	return stem + "_converted." + string(to)
}

func summaryTable(outcomes []conversionOutcome) string {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		status := "ok"
		if o.err != nil {
			status = o.err.Error()
		}
		rows = append(rows, []string{
			filepath.Base(o.input),
			o.direction,
			strconv.Itoa(o.lineCount),
			strconv.Itoa(o.warnings),
			status,
		})
	}
	return renderTable(
		[]string{"File", "Direction", "Lines", "Warnings", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	)
}
