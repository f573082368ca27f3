// Package ui handles terminal presentation: markdown rendering, progress
// spinners and confirmation prompts.
package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for the terminal. If rendering fails the
// raw markdown is returned, so output is never lost to a styling problem.
func RenderMarkdown(markdown string) string {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		return markdown
	}
	return out
}

// PrintMarkdown renders markdown and writes it to stdout.
func PrintMarkdown(markdown string) {
	fmt.Print(RenderMarkdown(markdown))
}

// NewSpinner returns a started spinner with the given status text. The
// caller stops it once the slow operation finishes.
func NewSpinner(status string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + status
	s.Start()
	return s
}

// Confirm asks a yes/no question on the terminal. Anything but an explicit
// "y" answers no, including EOF.
func Confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(strings.ToLower(answer)) == "y"
}

// Errorf prints an error message to stderr.
func Errorf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", a...)
}

// Infof prints a status line to stdout.
func Infof(format string, a ...interface{}) {
	fmt.Printf(format+"\n", a...)
}
