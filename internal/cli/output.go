package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vaultpass/passgen/internal/model"
)

const (
	rule       = "----------------------------------------"
	colorReset = "\033[0m"
)

var ansiColors = map[string]string{
	"red":          "\033[31m",
	"yellow":       "\033[33m",
	"blue":         "\033[34m",
	"green":        "\033[32m",
	"bright green": "\033[92m",
}

// printer renders the human readable output.
type printer struct {
	w     io.Writer
	color bool
}

func (p *printer) settings(s model.Settings, copyLast bool) {
	fmt.Fprintln(p.w, "\nPassword Generation Settings:")
	fmt.Fprintf(p.w, "Type: %s\n", typeLabel(s.Type))
	fmt.Fprintf(p.w, "Length: %d\n", s.Length)
	fmt.Fprintf(p.w, "Count: %d\n", s.Count)
	fmt.Fprintf(p.w, "Complex: %t\n", s.Complex)
	fmt.Fprintf(p.w, "Copy to clipboard: %t\n", copyLast)
	fmt.Fprintln(p.w, rule)
}

func (p *printer) passwords(list []model.GeneratedPassword) {
	for _, pw := range list {
		fmt.Fprintf(p.w, "Password %d: %s\n", pw.Index, pw.Password)
		fmt.Fprintf(p.w, "Strength: %s\n", p.colorize(pw.Strength, pw.Color))
		if pw.Warning != "" {
			fmt.Fprintf(p.w, "Warning: %s\n", pw.Warning)
		}
		fmt.Fprintln(p.w, rule)
	}
}

// colorize wraps text in the ANSI sequence for a display color name.
func (p *printer) colorize(text, color string) string {
	code, ok := ansiColors[color]
	if !p.color || !ok {
		return text
	}
	return code + text + colorReset
}

func encode(w io.Writer, format string, v any) error {
	if format == formatYAML {
		e := yaml.NewEncoder(w)
		defer e.Close()
		return e.Encode(v)
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
