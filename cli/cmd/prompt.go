package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/idstack/idstack-cli/action"
)

// newPrompterFor picks the prompter implementation for a command: the
// form-based one when stdin is a terminal, a plain line reader otherwise so
// piped input keeps working.
func newPrompterFor(cmd *cobra.Command) action.Prompter {
	if file, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return newHuhPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	return newLinePrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// linePrompter reads answers line by line. Secret answers echo; masking needs
// a terminal, which this fallback by definition does not have.
type linePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (p *linePrompter) Ask(label string) (string, error) {
	return p.readLine(label + ": ")
}

func (p *linePrompter) AskSecret(label string) (string, error) {
	return p.readLine(label + ": ")
}

func (p *linePrompter) Confirm(question string, defaultYes bool) (bool, error) {
	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}
	for {
		value, err := p.readLine(question + suffix)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return defaultYes, nil
			}
			return false, err
		}
		switch strings.ToLower(value) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintf(p.out, "invalid choice: %s\n", value)
		}
	}
}

func (p *linePrompter) Messagef(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *linePrompter) readLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	value := strings.TrimSpace(normalizeLineInput(line))
	if errors.Is(err, io.EOF) && value == "" {
		return "", io.EOF
	}
	return value, nil
}

func normalizeLineInput(input string) string {
	if !strings.ContainsAny(input, "\b\x7f") {
		return input
	}
	// Some terminals send backspace/delete bytes; strip them from captured input.
	normalized := make([]rune, 0, len(input))
	for _, r := range input {
		switch r {
		case '\b', '\x7f':
			if len(normalized) > 0 {
				normalized = normalized[:len(normalized)-1]
			}
		default:
			normalized = append(normalized, r)
		}
	}
	return string(normalized)
}
