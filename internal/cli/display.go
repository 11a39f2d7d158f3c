package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_display/internal/apperrors"
	"github.com/SscSPs/ledger_display/internal/core/domain"
	"github.com/SscSPs/ledger_display/internal/dto"
	"github.com/SscSPs/ledger_display/internal/utils"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// accountFlags are shared by the commands that need an account classification.
type accountFlags struct {
	accountType string
	subtype     string
	currency    string
	preset      string
}

func (a *accountFlags) setFlags(f *flag.FlagSet, defaultSubtype string) {
	f.StringVar(&a.accountType, "type", string(domain.User), "Account type: user, category or system.")
	f.StringVar(&a.subtype, "subtype", defaultSubtype, "Account subtype: asset or liability.")
	f.StringVar(&a.currency, "currency", "", "ISO 4217 currency code used for formatting. Defaults to the configured currency.")
	f.StringVar(&a.preset, "preset", "", "Format preset: summary or code.")
}

func parsePreset(p string) (utils.FormatPreset, error) {
	switch preset := utils.FormatPreset(p); preset {
	case "", utils.PresetSummary, utils.PresetCode:
		return preset, nil
	default:
		return "", fmt.Errorf("%w: unknown format preset %q", apperrors.ErrValidation, p)
	}
}

func plain(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// normalizeCmd holds the flags for the 'normalize' subcommand.
type normalizeCmd struct {
	app *App
	accountFlags
	current bool
}

func (*normalizeCmd) Name() string { return "normalize" }
func (*normalizeCmd) Synopsis() string {
	return "display transaction amounts from an account's perspective"
}
func (*normalizeCmd) Usage() string {
	return `ledgerctl normalize [-type <type>] [-subtype <subtype>] [-current] [--] <amount>...

  Prints the display amount, formatted value and indicator of each stored transaction amount.
  Put negative amounts after -- so they are not read as flags.
`
}

func (c *normalizeCmd) SetFlags(f *flag.FlagSet) {
	c.accountFlags.setFlags(f, string(domain.Asset))
	f.BoolVar(&c.current, "current", false, "Amounts are viewed from the account being displayed.")
}

func (c *normalizeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amounts, err := parseAmounts(f.Args())
	if err != nil {
		return c.app.fail("reading amounts", err)
	}
	preset, err := parsePreset(c.preset)
	if err != nil {
		return c.app.fail("reading flags", err)
	}

	req := dto.TransactionViewRequest{
		AccountType:      domain.AccountType(c.accountType),
		AccountSubtype:   domain.AccountSubtype(c.subtype),
		CurrencyCode:     strings.ToUpper(c.currency),
		IsCurrentAccount: c.current,
		Preset:           preset,
		Lines:            make([]domain.JournalLine, len(amounts)),
	}
	for i := range amounts {
		req.Lines[i] = domain.JournalLine{LineID: fmt.Sprint(i + 1), RawAmount: &amounts[i]}
	}

	view, err := c.app.Services.Display.TransactionView(ctx, req)
	if err != nil {
		return c.app.fail("normalizing amounts", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions (%s %s, %s)\n\n", view.AccountType, view.AccountSubtype, view.CurrencyCode)
	b.WriteString("| # | Raw | Display | Formatted | Indicator |\n")
	b.WriteString("|---|---:|---:|---:|---|\n")
	for _, l := range view.Lines {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", l.LineID, plain(l.RawAmount), plain(l.DisplayAmount), l.Formatted, l.Indicator.AriaLabel)
	}
	fmt.Fprintf(&b, "\n**Total**: %s (%s)\n", view.FormattedTotal, view.TotalIndicator.AriaLabel)

	return c.app.report(b.String())
}

// balanceCmd holds the flags for the 'balance' subcommand.
type balanceCmd struct {
	app *App
	accountFlags
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display account balances and the resulting net worth" }
func (*balanceCmd) Usage() string {
	return `ledgerctl balance [-type <type>] [-subtype <subtype>] [--] <balance>...

  Treats each stored balance as one account of the given classification and prints the
  display balances, followed by total assets, total liabilities and net worth.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	c.accountFlags.setFlags(f, string(domain.Asset))
}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	balances, err := parseAmounts(f.Args())
	if err != nil {
		return c.app.fail("reading balances", err)
	}
	preset, err := parsePreset(c.preset)
	if err != nil {
		return c.app.fail("reading flags", err)
	}

	req := dto.BalanceSheetRequest{
		CurrencyCode: strings.ToUpper(c.currency),
		Preset:       preset,
		Accounts:     make([]domain.Account, len(balances)),
	}
	for i := range balances {
		req.Accounts[i] = domain.Account{
			AccountID:  fmt.Sprint(i + 1),
			Type:       domain.AccountType(c.accountType),
			Subtype:    domain.AccountSubtype(c.subtype),
			RawBalance: &balances[i],
		}
	}

	sheet, err := c.app.Services.Display.BalanceSheet(ctx, req)
	if err != nil {
		return c.app.fail("normalizing balances", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Balances (%s %s, %s)\n\n", c.accountType, c.subtype, sheet.CurrencyCode)
	b.WriteString("| Account | Raw | Display | Formatted | Indicator |\n")
	b.WriteString("|---|---:|---:|---:|---|\n")
	for _, a := range sheet.Accounts {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", a.AccountID, plain(a.RawBalance), plain(a.DisplayBalance), a.Formatted, a.Indicator.AriaLabel)
	}
	b.WriteString("\n| Summary | Amount |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Total assets | %s |\n", sheet.Formatted.TotalAssets)
	fmt.Fprintf(&b, "| Total liabilities | %s |\n", sheet.Formatted.TotalLiabilities)
	fmt.Fprintf(&b, "| Net worth | %s |\n", sheet.Formatted.NetWorth)
	if domain.AccountType(c.accountType) == domain.Category {
		fmt.Fprintf(&b, "| Income | %s |\n", sheet.Formatted.Income)
		fmt.Fprintf(&b, "| Expense | %s |\n", sheet.Formatted.Expense)
	}

	return c.app.report(b.String())
}

// formatCmd holds the flags for the 'format' subcommand.
type formatCmd struct {
	app               *App
	currency          string
	preset            string
	decimals          int
	grouping          bool
	currencyPrecision bool
}

func (*formatCmd) Name() string     { return "format" }
func (*formatCmd) Synopsis() string { return "format amounts in a currency" }
func (*formatCmd) Usage() string {
	return `ledgerctl format [-currency <code>] [-preset summary|code] [-decimals <n>] [--] <amount>...

  Formats each amount with the currency's symbol, thousands grouping and fixed decimals.
`
}

func (c *formatCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "USD", "ISO 4217 currency code.")
	f.StringVar(&c.preset, "preset", "", "Format preset: summary or code.")
	f.IntVar(&c.decimals, "decimals", -1, "Number of decimals. Negative keeps the default of 2.")
	f.BoolVar(&c.grouping, "grouping", true, "Group thousands with commas.")
	f.BoolVar(&c.currencyPrecision, "currency-precision", false, "Use the currency's own number of decimals.")
}

func (c *formatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amounts, err := parseAmounts(f.Args())
	if err != nil {
		return c.app.fail("reading amounts", err)
	}
	preset, err := parsePreset(c.preset)
	if err != nil {
		return c.app.fail("reading flags", err)
	}

	var b strings.Builder
	b.WriteString("| Amount | Formatted | Rounded |\n")
	b.WriteString("|---:|---:|---:|\n")
	for i := range amounts {
		req := dto.FormatRequest{
			Amount:               &amounts[i],
			CurrencyCode:         strings.ToUpper(c.currency),
			Preset:               preset,
			Grouping:             &c.grouping,
			UseCurrencyPrecision: c.currencyPrecision,
		}
		if c.decimals >= 0 {
			req.Decimals = &c.decimals
		}
		resp, err := c.app.Services.Display.Format(ctx, req)
		if err != nil {
			return c.app.fail("formatting amount", err)
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", plain(amounts[i]), resp.Formatted, resp.Rounded)
	}

	return c.app.report(b.String())
}
