package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/lyrix-tools/lyrix/internal/config"
	"github.com/lyrix-tools/lyrix/internal/lyric"
	"github.com/lyrix-tools/lyrix/internal/zhconv"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and convert lyric files as they appear",
	Long: `Watch a directory and convert every QRC, LYS or ASS file dropped
into it. Conversion uses the same rules as the convert command; a file
that fails to parse is logged and skipped, and watching continues.

The command runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().
		StringP("to", "t", "", "Target format (qrc, ass, lys); default depends on the source")
	watchCmd.Flags().
		StringP("config", "c", "", "TOML config file for ASS output settings")
	watchCmd.Flags().
		String("chinese", "", "Convert Chinese text (t2s or s2t)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	toFlag, _ := cmd.Flags().GetString("to")
	configPath, _ := cmd.Flags().GetString("config")
	chinese, _ := cmd.Flags().GetString("chinese")

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

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infow("Watching for lyric files", "directory", dir)

	for {
		select {
		case <-ctx.Done():
			logger.Infow("Stopping")
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorw("Watch error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !watchable(event.Name) {
				continue
			}

			outcome := convertFile(event.Name, target, "", opts, false)
			if outcome.err != nil {
				logger.Errorw("Conversion failed",
					"input", event.Name,
					"error", outcome.err,
				)
			}
		}
	}
}

// watchable reports whether a path is a lyric file the watcher should
// convert. Files the watcher produced itself are skipped so writing an
// output does not trigger another conversion.
func watchable(path string) bool {
	if _, ok := lyric.FormatFromExtension(filepath.Ext(path)); !ok {
		return false
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return !strings.HasSuffix(stem, "_converted")
}
