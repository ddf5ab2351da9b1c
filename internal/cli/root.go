package cli

import (
	"github.com/lyrix-tools/lyrix/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lyrix",
	Short: "Karaoke lyric timing converter",
	Long: `Lyrix converts karaoke lyric files between per-syllable timing
formats: QRC, Lyricify Syllable (LYS) and ASS karaoke subtitles.

Syllable timing is preserved exactly wherever the target format allows
it; where it does not (ASS works in centiseconds, QRC and LYS in
milliseconds) the conversion is quantized deterministically and any
lossy line is reported.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
