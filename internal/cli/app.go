package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	urfave "github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/logging"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	flagLength  = "length"
	flagType    = "password-type"
	flagCount   = "count"
	flagComplex = "complex"
	flagCopy    = "copy"
	flagCLIMode = "cli-mode"
	flagFormat  = "format"
	flagDebug   = "debug"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""
)

// options are the user's generation choices after flags and prompts.
type options struct {
	Length  int
	Type    string
	Count   int
	Complex bool
	Copy    bool
}

type runner struct {
	svc   *service.GeneratorService
	board clipboard.Board
	isTTY func(v any) bool
}

// New creates the passgen CLI application. Flag defaults come from cfg.
func New(cfg config.Config, svc *service.GeneratorService, board clipboard.Board) *urfave.App {
	return newApp(cfg, &runner{svc: svc, board: board, isTTY: isTerminal})
}

func newApp(cfg config.Config, r *runner) *urfave.App {
	return &urfave.App{
		Name:            "passgen",
		Version:         fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:        time.Now(),
		HideHelpCommand: true,
		Usage:           "Generate random passwords and rate their strength",
		Reader:          os.Stdin,
		Writer:          os.Stdout,
		ErrWriter:       os.Stderr,
		Flags: []urfave.Flag{
			&urfave.IntFlag{
				Name:    flagLength,
				Aliases: []string{"l"},
				Usage:   "Length of the password",
				Value:   cfg.Length,
			},
			&urfave.StringFlag{
				Name:    flagType,
				Aliases: []string{"t"},
				Usage:   "Type of password to generate [standard, alphabets-only, numbers-only, alphanumeric]",
				Value:   cfg.Type,
			},
			&urfave.IntFlag{
				Name:    flagCount,
				Aliases: []string{"n"},
				Usage:   "Number of passwords to generate",
				Value:   cfg.Count,
			},
			&urfave.BoolFlag{
				Name:    flagComplex,
				Aliases: []string{"c"},
				Usage:   "Ensure at least one character from each required category",
				Value:   cfg.Complex,
			},
			&urfave.BoolFlag{
				Name:  flagCopy,
				Usage: "Copy the last generated password to clipboard",
			},
			&urfave.BoolFlag{
				Name:    flagCLIMode,
				Aliases: []string{"C"},
				Usage:   "Use command-line mode instead of interactive mode",
			},
			&urfave.StringFlag{
				Name:  flagFormat,
				Usage: "Output format [text, json, yaml]",
				Value: cfg.Format,
			},
			&urfave.BoolFlag{
				Name:  flagDebug,
				Usage: "Prints verbose logs (optional, default: false)",
			},
		},
		Action: r.generate,
	}
}

func (r *runner) generate(c *urfave.Context) error {
	if c.Bool(flagDebug) {
		logging.Setup(c.App.ErrWriter, "debug")
	}

	format, err := parseFormat(c.String(flagFormat))
	if err != nil {
		return err
	}

	opts := options{
		Length:  c.Int(flagLength),
		Type:    c.String(flagType),
		Count:   c.Int(flagCount),
		Complex: c.Bool(flagComplex),
		Copy:    c.Bool(flagCopy),
	}

	if !c.Bool(flagCLIMode) {
		if r.isTTY(c.App.Reader) {
			opts, err = prompt(c.App.Reader, c.App.Writer, opts)
			if err != nil {
				return err
			}
		} else {
			slog.Debug("stdin is not a terminal, skipping interactive prompts")
		}
	}

	slog.Debug("generating passwords", "type", opts.Type, "length", opts.Length, "count", opts.Count, "complex", opts.Complex)

	resp, err := r.svc.Generate(c.Context, model.GenerateRequest{
		Length:  opts.Length,
		Type:    opts.Type,
		Count:   opts.Count,
		Complex: &opts.Complex,
	})
	if err != nil {
		return err
	}

	out := &printer{
		w:     c.App.Writer,
		color: format == formatText && r.isTTY(c.App.Writer) && os.Getenv("NO_COLOR") == "",
	}

	if format == formatText {
		out.settings(resp.Settings, opts.Copy)
		out.passwords(resp.Passwords)
	} else if err := encode(c.App.Writer, format, resp); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	if opts.Copy {
		r.copyLast(c.App.ErrWriter, out, format, resp.Last())
	}
	return nil
}

// copyLast copies the password to the clipboard. Failures are reported but do
// not fail the command.
func (r *runner) copyLast(errw io.Writer, out *printer, format, password string) {
	errOut := &printer{w: errw, color: out.color}

	if err := clipboard.Copy(r.board, password); err != nil {
		slog.Debug("clipboard copy failed", "error", err)
		fmt.Fprintf(errw, "%s: %v\n", errOut.colorize("Failed to copy to clipboard", "red"), err)
		fmt.Fprintf(errw, "You can manually copy this password: %s\n", password)
		return
	}

	if format != formatText {
		slog.Info("last password copied to clipboard")
		return
	}
	fmt.Fprintln(out.w, out.colorize("✓ Last password copied to clipboard!", "green"))
	fmt.Fprintf(out.w, "Password in clipboard: %s\n", password)
}

func parseFormat(f string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(f)) {
	case "", formatText:
		return formatText, nil
	case formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", f)
	}
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
