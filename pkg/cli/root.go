// Package cli implements voxctl, the thin operational wrapper around the CDK
// toolkit. It pins every CDK invocation to an explicit environment selector
// and guards the destructive paths behind confirmation prompts.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/voxlingua/voxlingua/lib"
)

var rootConfig struct {
	env     string
	verbose bool
}

var zapLog *zap.SugaredLogger

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "voxctl",
		Short:         "Manage VoxLingua infrastructure deployments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := buildLogger(rootConfig.verbose)
			if err != nil {
				return err
			}
			zapLog = logger.Sugar()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if zapLog != nil {
				_ = zapLog.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootConfig.env, "env", "e", lib.DefaultEnvironment, "Target environment (development, staging, production)")
	flags.BoolVarP(&rootConfig.verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(newSynthCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newDestroyCmd())

	return rootCmd
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolvedEnvironment resolves the --env flag and logs the outcome, since an
// unknown selector silently falls back to development.
func resolvedEnvironment() lib.EnvironmentConfig {
	cfg := lib.ResolveEnvironment(rootConfig.env)
	if cfg.Environment != rootConfig.env {
		zapLog.Warnf("unknown environment %q, falling back to %s", rootConfig.env, cfg.Environment)
	}
	zapLog.Infof("target environment: %s (region %s)", cfg.Environment, cfg.Region)
	return cfg
}
