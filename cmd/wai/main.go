// Command wai tracks a Well-Architected assessment as a set of pillar
// report documents and keeps them synchronized with the external issue
// tracker.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wai/internal/config"
	"wai/internal/logging"
)

var (
	// Global flags
	cfgFile    string
	verbose    bool
	reportsDir string
	cacheDir   string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wai",
	Short: "wai - Well-Architected interview tracker",
	Long: `wai manages a long-running Well-Architected assessment.

The framework questions are fetched once into a local inventory cache.
An assessment renders them into per-pillar report documents that hold
all interview state: answers, automated evidence, and per-question
status. Those documents are the database; every command parses them,
mutates individual records in place, and writes them back without
touching surrounding content. The sync command projects record state
onto the external issue tracker.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		explicit := path != ""
		if path == "" {
			path = ".wai.yaml"
		}
		var err error
		cfg, err = config.Load(path, explicit)
		if err != nil {
			return err
		}
		if reportsDir != "" {
			cfg.ReportsDir = reportsDir
		}
		if cacheDir != "" {
			cfg.CacheDir = cacheDir
		}
		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .wai.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&reportsDir, "reports-dir", "", "reports directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "question cache directory (default from config)")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(applyEvidenceCmd)
	rootCmd.AddCommand(listUnansweredCmd)
	rootCmd.AddCommand(recordAnswerCmd)
	rootCmd.AddCommand(syncTrackerCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
