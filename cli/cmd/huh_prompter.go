package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/idstack/idstack-cli/action"
)

type huhPrompter struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newHuhPrompter(stdin io.Reader, stdout, stderr io.Writer) action.Prompter {
	return &huhPrompter{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

func (h *huhPrompter) runField(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithInput(h.stdin).
		WithOutput(h.stdout)
	return form.Run()
}

func (h *huhPrompter) Ask(label string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(label).
		Prompt("> ").
		Value(&value)
	if err := h.runField(field); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (h *huhPrompter) AskSecret(label string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(label).
		Prompt("> ").
		Value(&value).
		EchoMode(huh.EchoModePassword)
	if err := h.runField(field); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (h *huhPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	value := defaultYes
	field := huh.NewConfirm().
		Title(question).
		Value(&value)
	if err := h.runField(field); err != nil {
		return false, err
	}
	return value, nil
}

func (h *huhPrompter) Messagef(format string, args ...any) {
	fmt.Fprintf(h.stderr, format, args...)
}
