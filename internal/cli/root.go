package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/haytac/emoji-stripper/internal/app"
	"github.com/haytac/emoji-stripper/internal/config"
	"github.com/haytac/emoji-stripper/internal/logging"
	"github.com/haytac/emoji-stripper/internal/stripper"
)

var (
	cfgFile string
	AppCfg  *config.AppConfig // populated in PersistentPreRunE
)

var RootCmd = &cobra.Command{
	Use:   "emoji-stripper",
	Short: "Remove emoji from the dashboard page sources.",
	Long: `emoji-stripper rewrites the teacher and student dashboard pages under
client/src/pages in place, replacing known emoji-prefixed labels with plain
text and deleting any remaining emoji characters.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		AppCfg = loadedCfg
		logging.Setup(AppCfg.Log)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if AppCfg == nil {
			return fmt.Errorf("critical: AppCfg not loaded")
		}

		application := app.NewApplication(AppCfg, afero.NewOsFs(), cmd.OutOrStdout())
		// Per-file failures are already reported; they do not change the exit status.
		report := application.Run(stripper.DefaultTargets)
		log.Debug().Int("failed", report.Failed()).Msg("Run complete")
		return nil
	},
}

// Execute runs the root command and exits non-zero only if the command itself fails.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml, $HOME/.emoji-stripper/config.yaml)")
}
