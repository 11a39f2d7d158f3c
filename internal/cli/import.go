package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/ledger_display/internal/apperrors"
	"github.com/SscSPs/ledger_display/internal/dto"
	"github.com/SscSPs/ledger_display/internal/utils/importer"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	app      *App
	mapping  importer.FieldMap
	currency string
	preset   string
	jsonPath string
}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "preview the transactions a CSV or JSON file would import"
}
func (*importCmd) Usage() string {
	return `ledgerctl import -date <column> (-amount <column> | -credit <column> -debit <column>) [-description <column>] <file>

  Maps every row of the file, resolves its amount and flags rows that duplicate an earlier
  one (same date, amount and description). Nothing is stored.

  CSV files need a header row. For JSON files, -json-path selects the row objects
  (default $[*] for .json files).
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mapping.Date, "date", "", "Column holding the transaction date.")
	f.StringVar(&c.mapping.Amount, "amount", "", "Column holding a signed amount.")
	f.StringVar(&c.mapping.Credit, "credit", "", "Column holding money in.")
	f.StringVar(&c.mapping.Debit, "debit", "", "Column holding money out.")
	f.StringVar(&c.mapping.Description, "description", "", "Column holding the description.")
	f.StringVar(&c.currency, "currency", "", "ISO 4217 currency code used for formatting.")
	f.StringVar(&c.preset, "preset", "", "Format preset: summary or code.")
	f.StringVar(&c.jsonPath, "json-path", "", "JSONPath selecting the row objects of a JSON file.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.app.fail("reading arguments", fmt.Errorf("%w: exactly one input file is required", apperrors.ErrValidation))
	}
	if err := importer.ValidateMapping(c.mapping); err != nil {
		return c.app.fail("reading mapping", err)
	}
	preset, err := parsePreset(c.preset)
	if err != nil {
		return c.app.fail("reading flags", err)
	}

	filename := f.Arg(0)
	rows, err := c.readRows(filename)
	if err != nil {
		return c.app.fail(fmt.Sprintf("reading %q", filename), err)
	}

	preview, err := c.app.Services.Import.Preview(ctx, dto.ImportPreviewRequest{
		Mapping:      c.mapping,
		Rows:         rows,
		CurrencyCode: strings.ToUpper(c.currency),
		Preset:       preset,
	})
	if err != nil {
		return c.app.fail("previewing import", err)
	}

	return c.app.report(renderPreview(filepath.Base(filename), preview))
}

func (c *importCmd) readRows(filename string) ([]map[string]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	path := c.jsonPath
	if path == "" && strings.EqualFold(filepath.Ext(filename), ".json") {
		path = "$[*]"
	}
	if path != "" {
		return readJSONRows(file, path)
	}
	return readCSVRows(file)
}

func renderPreview(name string, p *dto.ImportPreviewResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Import preview: %s\n\n", escapeCell(name))
	b.WriteString("| Row | Date | Description | Amount | Duplicate |\n")
	b.WriteString("|---:|---|---|---:|---|\n")
	for _, r := range p.Rows {
		amount := r.Formatted
		if !r.Amount.Valid {
			amount = "(none)"
		}
		dup := ""
		if r.Duplicate {
			dup = "yes"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", r.Index+1, escapeCell(r.Date), escapeCell(r.Description), amount, dup)
	}
	fmt.Fprintf(&b, "\n%d rows, %d duplicates, %d without an amount. Total: **%s**\n",
		p.RowCount, p.DuplicateCount, p.MissingAmountCount, p.FormattedTotal)
	return b.String()
}
