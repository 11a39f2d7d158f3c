package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/SscSPs/ledger_display/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_display/internal/core/ports/services"
	"github.com/SscSPs/ledger_display/internal/dto"
	"github.com/SscSPs/ledger_display/internal/utils"
	"github.com/SscSPs/ledger_display/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// displayService implements the DisplayService interface
type displayService struct {
	BaseService
	defaultCurrency string
	defaultPreset   utils.FormatPreset
}

// DisplayServiceOption is a functional option for configuring the display service
type DisplayServiceOption func(*displayService)

// WithDefaultCurrency sets the currency used when a request names none.
func WithDefaultCurrency(code string) DisplayServiceOption {
	return func(s *displayService) {
		if code != "" {
			s.defaultCurrency = code
		}
	}
}

// WithDefaultPreset sets the format preset used when a request names none.
func WithDefaultPreset(p utils.FormatPreset) DisplayServiceOption {
	return func(s *displayService) {
		if p != "" {
			s.defaultPreset = p
		}
	}
}

// NewDisplayService creates a new display service with the provided options
func NewDisplayService(options ...DisplayServiceOption) portssvc.DisplayService {
	svc := &displayService{
		defaultCurrency: "USD",
		defaultPreset:   utils.PresetSummary,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure displayService implements the DisplayService interface
var _ portssvc.DisplayService = (*displayService)(nil)

func (s *displayService) currency(code string) string {
	if code == "" {
		return s.defaultCurrency
	}
	return code
}

func (s *displayService) preset(p utils.FormatPreset) utils.FormatPreset {
	if p == "" {
		return s.defaultPreset
	}
	return p
}

// TransactionView normalizes each journal line from the account's perspective.
// The total is the normalized sum of the raw amounts.
func (s *displayService) TransactionView(ctx context.Context, req dto.TransactionViewRequest) (*dto.TransactionViewResponse, error) {
	currency := s.currency(req.CurrencyCode)
	preset := s.preset(req.Preset)

	resp := &dto.TransactionViewResponse{
		AccountType:    req.AccountType,
		AccountSubtype: req.AccountSubtype,
		CurrencyCode:   currency,
		Lines:          make([]dto.TransactionLineView, len(req.Lines)),
	}

	rawTotal := decimal.Zero
	for i, line := range req.Lines {
		raw := accounting.OrZero(line.RawAmount)
		display, err := accounting.NormalizeTransactionAmount(raw, req.AccountType, req.AccountSubtype, req.IsCurrentAccount)
		if err != nil {
			s.LogWarn(ctx, "Rejected transaction view request",
				slog.String("error", err.Error()),
				slog.String("account_type", string(req.AccountType)),
				slog.String("account_subtype", string(req.AccountSubtype)))
			return nil, fmt.Errorf("failed to normalize line %q: %w", line.LineID, err)
		}

		resp.Lines[i] = dto.TransactionLineView{
			LineID:        line.LineID,
			Date:          line.Date,
			Description:   line.Description,
			RawAmount:     raw,
			DisplayAmount: display,
			Formatted:     utils.FormatCurrencyAmount(display, currency, utils.WithPreset(preset)),
			Indicator:     accounting.ClassifyAmount(display),
		}
		rawTotal = rawTotal.Add(decimalOf(raw))
	}

	total, err := accounting.NormalizeTransactionAmount(rawTotal.InexactFloat64(), req.AccountType, req.AccountSubtype, req.IsCurrentAccount)
	if err != nil {
		s.LogError(ctx, err, "Failed to normalize transaction total")
		return nil, fmt.Errorf("failed to normalize total: %w", err)
	}
	resp.Total = total
	resp.FormattedTotal = utils.FormatCurrencyAmount(total, currency, utils.WithPreset(preset))
	resp.TotalIndicator = accounting.ClassifyAmount(total)

	s.LogDebug(ctx, "Transaction view built",
		slog.String("account_type", string(req.AccountType)),
		slog.Int("line_count", len(resp.Lines)))
	return resp, nil
}

// BalanceSheet normalizes every account balance and derives net worth and category totals.
func (s *displayService) BalanceSheet(ctx context.Context, req dto.BalanceSheetRequest) (*dto.BalanceSheetResponse, error) {
	currency := s.currency(req.CurrencyCode)
	preset := s.preset(req.Preset)

	resp := &dto.BalanceSheetResponse{
		CurrencyCode: currency,
		Accounts:     make([]dto.AccountBalanceView, len(req.Accounts)),
	}

	income, expense := decimal.Zero, decimal.Zero
	for i, acc := range req.Accounts {
		raw := accounting.OrZero(acc.RawBalance)
		display, err := accounting.NormalizeAccountBalance(raw, acc.Type, acc.Subtype)
		if err != nil {
			s.LogWarn(ctx, "Rejected balance sheet request",
				slog.String("error", err.Error()),
				slog.String("account_id", acc.AccountID))
			return nil, fmt.Errorf("failed to normalize balance of account %q: %w", acc.AccountID, err)
		}

		accCurrency := acc.CurrencyCode
		if accCurrency == "" {
			accCurrency = currency
		}
		resp.Accounts[i] = dto.AccountBalanceView{
			AccountID:      acc.AccountID,
			Name:           acc.Name,
			Type:           acc.Type,
			Subtype:        acc.Subtype,
			CurrencyCode:   accCurrency,
			RawBalance:     raw,
			DisplayBalance: display,
			Formatted:      utils.FormatCurrencyAmount(display, accCurrency, utils.WithPreset(preset)),
			Indicator:      accounting.ClassifyAmount(display),
		}

		if acc.Type == domain.Category {
			if acc.Subtype == domain.Asset {
				income = income.Add(decimalOf(display))
			} else {
				expense = expense.Add(decimalOf(display))
			}
		}
	}

	netWorth, err := accounting.NetWorthOf(req.Accounts)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute net worth")
		return nil, fmt.Errorf("failed to compute net worth: %w", err)
	}
	resp.NetWorth = netWorth
	resp.CategoryTotals = dto.CategoryTotals{
		Income:  income.InexactFloat64(),
		Expense: expense.InexactFloat64(),
	}

	format := func(v float64) string { return utils.FormatCurrencyAmount(v, currency, utils.WithPreset(preset)) }
	resp.Formatted.TotalAssets = format(netWorth.TotalAssets)
	resp.Formatted.TotalLiabilities = format(netWorth.TotalLiabilities)
	resp.Formatted.NetWorth = format(netWorth.NetWorth)
	resp.Formatted.Income = format(resp.CategoryTotals.Income)
	resp.Formatted.Expense = format(resp.CategoryTotals.Expense)

	s.LogInfo(ctx, "Balance sheet built",
		slog.Int("account_count", len(resp.Accounts)),
		slog.Float64("net_worth", netWorth.NetWorth))
	return resp, nil
}

// Format renders a single amount.
func (s *displayService) Format(ctx context.Context, req dto.FormatRequest) (*dto.FormatResponse, error) {
	amount := accounting.OrZero(req.Amount)
	cur := utils.LookupCurrency(s.currency(req.CurrencyCode))

	resp := &dto.FormatResponse{
		Formatted: utils.FormatCurrencyAmount(amount, cur.CurrencyCode, req.FormatOptions(s.defaultPreset)...),
		Rounded:   utils.FormatWithCurrencyPrecision(decimalOf(amount), cur),
		Symbol:    cur.Symbol,
	}
	s.LogDebug(ctx, "Amount formatted", slog.String("currency_code", cur.CurrencyCode))
	return resp, nil
}

// decimalOf converts a float64 that may be NaN or infinite; those become zero.
func decimalOf(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
