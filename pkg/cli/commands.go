package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newSynthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "synth",
		Short: "Synthesize CloudFormation templates for the target environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolvedEnvironment()
			return runCDK(cfg.Environment, "synth")
		},
	}
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show pending changes against the deployed environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolvedEnvironment()
			if err := preflight(cmd.Context(), cfg.Region); err != nil {
				return err
			}
			return runCDK(cfg.Environment, "diff")
		},
	}
}

func newDeployCmd() *cobra.Command {
	var autoApprove bool

	deployCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy all stacks to the target environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolvedEnvironment()
			if err := preflight(cmd.Context(), cfg.Region); err != nil {
				return err
			}

			if !autoApprove {
				ok, err := promptDeploy(os.Stdin, cfg.Environment)
				if err != nil {
					return err
				}
				if !ok {
					zapLog.Info("deploy cancelled")
					return nil
				}
			}

			return runCDK(cfg.Environment, "deploy", "--require-approval", "never")
		},
	}

	deployCmd.Flags().BoolVar(&autoApprove, "yes", false, "Skip the confirmation prompt")
	return deployCmd
}

func newDestroyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "destroy",
		Short: "Tear down all stacks in the target environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolvedEnvironment()
			if err := preflight(cmd.Context(), cfg.Region); err != nil {
				return err
			}

			// No --yes escape hatch here: teardown always requires the
			// typed phrase.
			ok, err := promptDestroy(os.Stdin, cfg.Environment)
			if err != nil {
				return err
			}
			if !ok {
				zapLog.Info("destroy cancelled")
				return nil
			}

			return runCDK(cfg.Environment, "destroy", "--force")
		},
	}
}
