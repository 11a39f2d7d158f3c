package handlers

import (
	"fmt"
	"unicode"

	"github.com/SscSPs/ledger_display/internal/core/domain"
	"github.com/SscSPs/ledger_display/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain validation tags used by the request DTOs
// to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	tags := map[string]validator.Func{
		"account_type":    validateAccountType,
		"account_subtype": validateAccountSubtype,
		"currency_code":   validateCurrencyCode,
		"format_preset":   validateFormatPreset,
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

func validateAccountType(fl validator.FieldLevel) bool {
	return domain.AccountType(fl.Field().String()).Validate() == nil
}

func validateAccountSubtype(fl validator.FieldLevel) bool {
	return domain.AccountSubtype(fl.Field().String()).Validate() == nil
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func validateFormatPreset(fl validator.FieldLevel) bool {
	switch utils.FormatPreset(fl.Field().String()) {
	case utils.PresetSummary, utils.PresetCode:
		return true
	default:
		return false
	}
}
