package cli

import (
	"github.com/spf13/cobra"

	"github.com/lyrix-tools/lyrix/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lyrix configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an annotated sample config file",
	Long: `Write an annotated sample config file with the default ASS output
settings. Use --output to choose where; the default is lyrix.toml in
the current directory.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		path = "lyrix.toml"
	}

	if err := config.WriteSample(path); err != nil {
		return err
	}
	logger.Infow("Wrote sample config", "path", path)
	return nil
}
