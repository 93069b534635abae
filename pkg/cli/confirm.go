package cli

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
)

// destroyPhrase is the exact confirmation an operator must type before a
// teardown proceeds. It is compared case-sensitively.
func destroyPhrase(environment string) string {
	return "destroy-" + environment
}

// deployConfirmed interprets a deploy prompt answer. Only an explicit yes
// proceeds; the default is to cancel.
func deployConfirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// destroyConfirmed checks the typed phrase against the expected one. No
// trimming beyond the trailing newline and no case folding: the operator has
// to type it exactly.
func destroyConfirmed(answer, environment string) bool {
	return strings.TrimRight(answer, "\r\n") == destroyPhrase(environment)
}

func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}

func promptDeploy(in io.Reader, environment string) (bool, error) {
	color.New(color.FgYellow).Printf("Deploy all stacks to %s? [y/N] ", environment)
	answer, err := readLine(in)
	if err != nil {
		return false, err
	}
	return deployConfirmed(answer), nil
}

func promptDestroy(in io.Reader, environment string) (bool, error) {
	color.New(color.FgRed, color.Bold).Printf("This will destroy all %s stacks.\n", environment)
	color.New(color.FgRed).Printf("Type %q to confirm: ", destroyPhrase(environment))
	answer, err := readLine(in)
	if err != nil {
		return false, err
	}
	return destroyConfirmed(answer, environment), nil
}
