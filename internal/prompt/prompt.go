// Package prompt asks the user questions when a terminal is attached.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// ErrNonInteractive indicates a question needs an answer and nobody can give one.
var ErrNonInteractive = errors.New("input required but the session is not interactive")

// Prompter asks questions. Non-interactive implementations answer with defaults.
type Prompter interface {
	Interactive() bool
	Select(message string, options []string, def string) (string, error)
	Input(message, def string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

// IsTTY reports whether both stdin and stdout are terminals.
func IsTTY() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

// New returns a survey-backed Prompter on a terminal unless noInteraction is set.
func New(noInteraction bool) Prompter {
	if noInteraction || !IsTTY() {
		return NonInteractive{}
	}
	return SurveyPrompter{}
}

// SurveyPrompter asks questions on the terminal.
type SurveyPrompter struct{}

func (SurveyPrompter) Interactive() bool { return true }

func (SurveyPrompter) Select(message string, options []string, def string) (string, error) {
	var answer string
	prompt := &survey.Select{Message: message, Options: options}
	if def != "" {
		prompt.Default = def
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", fmt.Errorf("canceled: %w", err)
	}
	return answer, nil
}

func (SurveyPrompter) Input(message, def string) (string, error) {
	var answer string
	prompt := &survey.Input{Message: message, Default: def}
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(survey.Required)); err != nil {
		return "", fmt.Errorf("canceled: %w", err)
	}
	return answer, nil
}

func (SurveyPrompter) Confirm(message string, def bool) (bool, error) {
	answer := def
	prompt := &survey.Confirm{Message: message, Default: def}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, fmt.Errorf("canceled: %w", err)
	}
	return answer, nil
}

// NonInteractive answers every question with its default.
type NonInteractive struct{}

func (NonInteractive) Interactive() bool { return false }

func (NonInteractive) Select(message string, _ []string, def string) (string, error) {
	if def == "" {
		return "", fmt.Errorf("%w: %s", ErrNonInteractive, message)
	}
	return def, nil
}

func (NonInteractive) Input(message, def string) (string, error) {
	if def == "" {
		return "", fmt.Errorf("%w: %s", ErrNonInteractive, message)
	}
	return def, nil
}

func (NonInteractive) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}
