// Package ci formats folio's diagnostics for CI runners
package ci

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Environment represents the CI environment
type Environment struct {
	IsCI            bool
	IsGitHubActions bool

	// GitHub Actions specific
	Repository string
	SHA        string
	RunID      string
	Workflow   string

	summaryFile string
	out         io.Writer
}

// Detect detects the current CI environment
func Detect() *Environment {
	return detect(os.Getenv, os.Stdout)
}

func detect(getenv func(string) string, out io.Writer) *Environment {
	env := &Environment{
		IsCI:            getenv("CI") == "true",
		IsGitHubActions: getenv("GITHUB_ACTIONS") == "true",
		out:             out,
	}
	if env.IsGitHubActions {
		env.Repository = getenv("GITHUB_REPOSITORY")
		env.SHA = getenv("GITHUB_SHA")
		env.RunID = getenv("GITHUB_RUN_ID")
		env.Workflow = getenv("GITHUB_WORKFLOW")
		env.summaryFile = getenv("GITHUB_STEP_SUMMARY")
	}
	return env
}

// StartGroup starts a log group in GitHub Actions
func (e *Environment) StartGroup(name string) {
	if e.IsGitHubActions {
		fmt.Fprintf(e.out, "::group::%s\n", name)
	}
}

// EndGroup ends a log group in GitHub Actions
func (e *Environment) EndGroup() {
	if e.IsGitHubActions {
		fmt.Fprintln(e.out, "::endgroup::")
	}
}

// LogError logs an error annotation
func (e *Environment) LogError(message string, file string, line int) {
	if !e.IsGitHubActions {
		return
	}
	if file != "" && line > 0 {
		fmt.Fprintf(e.out, "::error file=%s,line=%d::%s\n", file, line, escape(message))
	} else {
		fmt.Fprintf(e.out, "::error::%s\n", escape(message))
	}
}

// LogWarning logs a warning annotation
func (e *Environment) LogWarning(message string) {
	if e.IsGitHubActions {
		fmt.Fprintf(e.out, "::warning::%s\n", escape(message))
	}
}

// AddSummary adds content to the job summary
func (e *Environment) AddSummary(markdown string) error {
	if e.summaryFile == "" {
		return nil
	}

	f, err := os.OpenFile(e.summaryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening GITHUB_STEP_SUMMARY: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s\n", markdown)
	return err
}

// escape encodes the characters workflow commands treat specially.
func escape(s string) string {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	return r.Replace(s)
}
