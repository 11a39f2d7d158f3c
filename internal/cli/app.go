// Package cli implements the ledgerctl command line front end.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/ledger_display/internal/apperrors"
	portssvc "github.com/SscSPs/ledger_display/internal/core/ports/services"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Output selects how markdown reports are written.
type Output string

const (
	OutputTerm     Output = "term"
	OutputMarkdown Output = "markdown"
	OutputHTML     Output = "html"
)

// App carries what every subcommand needs.
type App struct {
	Services *portssvc.ServiceContainer
	Out      io.Writer
	Err      io.Writer
	Output   Output
}

// NewApp returns an App writing terminal-rendered markdown to stdout.
func NewApp(services *portssvc.ServiceContainer) *App {
	return &App{
		Services: services,
		Out:      os.Stdout,
		Err:      os.Stderr,
		Output:   OutputTerm,
	}
}

// Commands lists the ledgerctl subcommands bound to app.
func (app *App) Commands() []subcommands.Command {
	return []subcommands.Command{
		&normalizeCmd{app: app},
		&balanceCmd{app: app},
		&formatCmd{app: app},
		&importCmd{app: app},
	}
}

// Register the subcommands.
// A main package will call Register() and then Execute() on the user-selected one.
func (app *App) Register(c *subcommands.Commander) {
	for _, cmd := range app.Commands() {
		c.Register(cmd, "display")
	}
}

// printMarkdown writes md in the selected output form.
func (app *App) printMarkdown(md string) error {
	switch app.Output {
	case OutputMarkdown:
		_, err := io.WriteString(app.Out, md)
		return err
	case OutputHTML:
		var buf bytes.Buffer
		if err := goldmark.New(goldmark.WithExtensions(extension.GFM)).Convert([]byte(md), &buf); err != nil {
			return fmt.Errorf("failed to convert markdown: %w", err)
		}
		_, err := app.Out.Write(buf.Bytes())
		return err
	default:
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		out, err := r.Render(md)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		_, err = io.WriteString(app.Out, out)
		return err
	}
}

// fail reports err and picks the exit status: validation problems are usage errors.
func (app *App) fail(what string, err error) subcommands.ExitStatus {
	fmt.Fprintf(app.Err, "Error %s: %v\n", what, err)
	if errors.Is(err, apperrors.ErrValidation) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// report prints md and maps a write failure to ExitFailure.
func (app *App) report(md string) subcommands.ExitStatus {
	if err := app.printMarkdown(md); err != nil {
		fmt.Fprintf(app.Err, "Error writing output: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parseAmounts reads positional amounts exactly.
func parseAmounts(args []string) ([]float64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: at least one amount is required", apperrors.ErrValidation)
	}
	res := make([]float64, len(args))
	for i, a := range args {
		d, err := decimal.NewFromString(a)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, a)
		}
		res[i] = d.InexactFloat64()
	}
	return res, nil
}

// escapeCell keeps user text from breaking a markdown table row.
func escapeCell(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '|':
			b.WriteString(`\|`)
		case '\n', '\r':
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
