package cli

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// cdkArgs builds the toolkit argument list with the environment selector
// pinned via context, so the app resolves the same configuration the operator
// asked for.
func cdkArgs(env string, verb string, extra ...string) []string {
	args := []string{verb, "--all", "--context", "environment=" + env}
	return append(args, extra...)
}

// runCDK shells out to the CDK toolkit, streaming its output to the
// operator's terminal.
func runCDK(env string, verb string, extra ...string) error {
	args := cdkArgs(env, verb, extra...)

	zapLog.Debugf("running: cdk %v", args)
	cmd := exec.Command("cdk", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "cdk %s failed", verb)
	}
	return nil
}
