package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bitlatte/splash/internal/config"
	"github.com/Bitlatte/splash/internal/logger"
)

var (
	cfgFile   string
	debug     bool
	appConfig config.Config
	log       *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "splash",
	Short: "splash - static landing page generator",
	Long: `splash renders the landing page of a project website as static HTML:
a splash screen, feature blocks, problem and solution blocks, a showcase of
the project's users and the surrounding ecosystem.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// Execute runs the root command and exits non-zero on error. SIGINT and
// SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func initialize() error {
	var err error
	log, err = logger.New(debug)
	if err != nil {
		return err
	}

	appConfig, err = config.Load(cfgFile, log)
	if err != nil {
		return err
	}
	return nil
}
