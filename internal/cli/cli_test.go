package cli

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	portssvc "github.com/SscSPs/ledger_display/internal/core/ports/services"
	"github.com/SscSPs/ledger_display/internal/core/services"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes ledgerctl with args against the real services and returns stdout and stderr.
func run(t *testing.T, output Output, args ...string) (subcommands.ExitStatus, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := &App{
		Services: &portssvc.ServiceContainer{
			Display: services.NewDisplayService(),
			Import:  services.NewImportService(),
		},
		Out:    &out,
		Err:    &errOut,
		Output: output,
	}

	fs := flag.NewFlagSet("ledgerctl", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "ledgerctl")
	commander.Error = &errOut
	commander.Output = &errOut
	app.Register(commander)
	require.NoError(t, fs.Parse(args))

	status := commander.Execute(context.Background())
	return status, out.String(), errOut.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNormalize(t *testing.T) {
	status, out, _ := run(t, OutputMarkdown, "normalize", "-type", "category", "-subtype", "liability", "--", "-42.5", "10")

	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "| 1 | -42.5 | 42.5 | $42.50 | Positive amount |")
	assert.Contains(t, out, "| 2 | 10 | 10 | $10.00 | Positive amount |")
	assert.Contains(t, out, "**Total**: $32.50 (Positive amount)")
}

func TestNormalize_UserAccountKeepsSign(t *testing.T) {
	status, out, _ := run(t, OutputMarkdown, "normalize", "-type", "user", "-subtype", "liability", "-currency", "eur", "--", "-5")

	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "| 1 | -5 | -5 | -€5.00 | Negative amount |")
}

func TestNormalize_UsageErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"unknown type", []string{"normalize", "-type", "savings", "1"}},
		{"unknown subtype", []string{"normalize", "-subtype", "equity", "1"}},
		{"unknown preset", []string{"normalize", "-preset", "fancy", "1"}},
		{"no amounts", []string{"normalize"}},
		{"bad amount", []string{"normalize", "12abc"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, out, errOut := run(t, OutputMarkdown, tc.args...)
			assert.Equal(t, subcommands.ExitUsageError, status)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "Error")
		})
	}
}

func TestBalance(t *testing.T) {
	status, out, _ := run(t, OutputMarkdown, "balance", "-type", "user", "-subtype", "liability", "--", "-300")

	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "| 1 | -300 | 300 | $300.00 | Positive amount |")
	assert.Contains(t, out, "| Total liabilities | $300.00 |")
	assert.Contains(t, out, "| Net worth | -$300.00 |")
	assert.NotContains(t, out, "Income")
}

func TestBalance_CategoryShowsIncomeAndExpense(t *testing.T) {
	status, out, _ := run(t, OutputMarkdown, "balance", "-type", "category", "-subtype", "liability", "--", "-75", "25")

	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "| Expense | $100.00 |")
	assert.Contains(t, out, "| Net worth | $0.00 |")
}

func TestFormat(t *testing.T) {
	status, out, _ := run(t, OutputMarkdown, "format", "-currency", "EUR", "-decimals", "0", "1234.5")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "| 1234.5 | €1,235 |")

	status, out, _ = run(t, OutputMarkdown, "format", "-currency", "USD", "-preset", "code", "-grouping=false", "--", "-1234.5")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "| -1234.5 | -1234.50 USD |")
}

func TestImportCSV(t *testing.T) {
	path := writeFile(t, "bank.csv", "Date,In,Out,Memo\n"+
		"2024-01-01,,12.50,Coffee\n"+
		"2024-01-01,,12.50,Coffee\n"+
		"2024-01-02,100,,Refund\n")

	status, out, errOut := run(t, OutputMarkdown, "import", "-date", "Date", "-credit", "In", "-debit", "Out", "-description", "Memo", path)

	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	assert.Contains(t, out, "# Import preview: bank.csv")
	assert.Contains(t, out, "| 1 | 2024-01-01 | Coffee | -$12.50 |  |")
	assert.Contains(t, out, "| 2 | 2024-01-01 | Coffee | -$12.50 | yes |")
	assert.Contains(t, out, "3 rows, 1 duplicates, 0 without an amount. Total: **$75.00**")
}

func TestImportJSON(t *testing.T) {
	path := writeFile(t, "export.json", `{"account":"main","rows":[
		{"when":"2024-03-01","value":-20,"text":"Groceries"},
		{"when":"2024-03-02","value":"1,500.00","text":"Salary"}
	]}`)

	status, out, errOut := run(t, OutputMarkdown, "import", "-date", "when", "-amount", "value", "-description", "text", "-json-path", "$.rows[*]", path)

	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	assert.Contains(t, out, "| 1 | 2024-03-01 | Groceries | -$20.00 |  |")
	assert.Contains(t, out, "| 2 | 2024-03-02 | Salary | $1,500.00 |  |")
	assert.Contains(t, out, "Total: **$1,480.00**")
}

func TestImport_Errors(t *testing.T) {
	csvPath := writeFile(t, "bank.csv", "Date,Amount\n2024-01-01,5\n")

	status, _, errOut := run(t, OutputMarkdown, "import", "-amount", "Amount", csvPath)
	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, errOut, "invalid import mapping")

	status, _, _ = run(t, OutputMarkdown, "import", "-date", "Date", "-amount", "Amount")
	assert.Equal(t, subcommands.ExitUsageError, status)

	status, _, _ = run(t, OutputMarkdown, "import", "-date", "Date", "-amount", "Amount", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Equal(t, subcommands.ExitFailure, status)
}

func TestHTMLOutput(t *testing.T) {
	status, out, _ := run(t, OutputHTML, "format", "-currency", "GBP", "3")

	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "£3.00")
}

func TestTermOutput(t *testing.T) {
	status, out, _ := run(t, OutputTerm, "format", "-currency", "USD", "7")

	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "$7.00")
}
