package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen/internal/crypto"
)

// MinInteractiveLength is the shortest password the interactive prompt accepts.
const MinInteractiveLength = 4

var typeLabels = map[string]string{
	"standard":       "Standard",
	"alphabets-only": "Alphabets Only",
	"numbers-only":   "Numbers Only",
	"alphanumeric":   "Alphanumeric",
}

// typeLabel returns the display name of a password type.
func typeLabel(name string) string {
	if l, ok := typeLabels[name]; ok {
		return l
	}
	return name
}

type prompter struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// prompt asks for each generation option, offering defaults as the answers
// used on empty input. Invalid answers are asked again.
func prompt(r io.Reader, w io.Writer, defaults options) (options, error) {
	p := &prompter{scanner: bufio.NewScanner(r), w: w}
	opts := defaults

	names := crypto.PolicyNames()
	def := 1
	if policy, err := crypto.ParsePolicy(defaults.Type); err == nil {
		for i, n := range names {
			if n == policy.String() {
				def = i + 1
			}
		}
	}

	fmt.Fprintln(w, "Select password type:")
	for i, n := range names {
		fmt.Fprintf(w, "  %d) %s\n", i+1, typeLabel(n))
	}
	choice, err := p.askInt(fmt.Sprintf("Choice [%d]: ", def), def, func(n int) string {
		if n < 1 || n > len(names) {
			return fmt.Sprintf("Choose a number between 1 and %d", len(names))
		}
		return ""
	})
	if err != nil {
		return options{}, err
	}
	opts.Type = names[choice-1]

	opts.Length, err = p.askInt(fmt.Sprintf("Enter password length [%d]: ", defaults.Length), defaults.Length, func(n int) string {
		if n < MinInteractiveLength {
			return fmt.Sprintf("Length must be at least %d characters", MinInteractiveLength)
		}
		return ""
	})
	if err != nil {
		return options{}, err
	}

	opts.Count, err = p.askInt(fmt.Sprintf("How many passwords to generate? [%d]: ", defaults.Count), defaults.Count, func(n int) string {
		if n < 1 {
			return "Must generate at least 1 password"
		}
		return ""
	})
	if err != nil {
		return options{}, err
	}

	opts.Complex, err = p.askBool("Enable password complexity requirements?", defaults.Complex)
	if err != nil {
		return options{}, err
	}

	opts.Copy, err = p.askBool("Copy the last generated password to clipboard?", defaults.Copy)
	if err != nil {
		return options{}, err
	}

	return opts, nil
}

func (p *prompter) readLine(question string) (string, error) {
	fmt.Fprint(p.w, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", fmt.Errorf("reading input: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// askInt reads an integer. check returns a message for invalid values.
func (p *prompter) askInt(question string, def int, check func(int) string) (int, error) {
	for {
		line, err := p.readLine(question)
		if err != nil {
			return 0, err
		}

		v := def
		if line != "" {
			v, err = strconv.Atoi(line)
			if err != nil {
				fmt.Fprintln(p.w, "Please enter a whole number")
				continue
			}
		}

		if msg := check(v); msg != "" {
			fmt.Fprintln(p.w, msg)
			continue
		}
		return v, nil
	}
}

func (p *prompter) askBool(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	for {
		line, err := p.readLine(question + " " + hint + ": ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.w, "Please answer y or n")
	}
}
