// Package prompt asks the user to confirm a mutating run.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Confirmer asks yes/no questions on a terminal with a huh form, and falls
// back to a plain line prompt when input is not a TTY.
type Confirmer struct {
	in  io.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: in, out: out}
}

// Confirm returns true only for an explicit yes. Aborting the form or
// reaching end of input counts as no.
func (c *Confirmer) Confirm(question string) (bool, error) {
	if interactive(c.in) {
		ok := false
		err := huh.NewConfirm().
			Title(question).
			Affirmative("Yes").
			Negative("No").
			Value(&ok).
			Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("confirm prompt: %w", err)
		}
		return ok, nil
	}
	return c.confirmLine(question)
}

func (c *Confirmer) confirmLine(question string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N]: ", question)
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	return IsYes(line), nil
}

// IsYes accepts y, yes, s, si and sí in any case.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}

func interactive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
