package ctl

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// promptPassword prints prompt and reads a password from the terminal
// without echo.
func (a *App) promptPassword(prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(a.errw, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.errw)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// confirm asks a yes/no question and accepts only an explicit "y"/"yes".
func (a *App) confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(a.errw, "%s [y/N]: ", question); err != nil {
		return false, err
	}
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
