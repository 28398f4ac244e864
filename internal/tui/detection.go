package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvVars are set by CI systems, where nobody can answer a prompt.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"JENKINS_HOME",
	"BUILDKITE",
	"BITBUCKET_BUILD_NUMBER",
	"TF_BUILD",
	"CODEBUILD_BUILD_ID",
}

// isTerminal is replaced in tests.
var isTerminal = term.IsTerminal

// IsInteractive reports whether the init prompt can run: stdin and stdout
// are terminals and no CI environment is detected.
func IsInteractive() bool {
	//nolint:gosec // G115: fds are small values, no overflow risk
	if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
		return false
	}

	for _, env := range ciEnvVars {
		if os.Getenv(env) != "" {
			return false
		}
	}
	return true
}
