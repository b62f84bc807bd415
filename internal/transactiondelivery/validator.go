package transactiondelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-split/split-ledger/internal/domain"
)

// ValidSplitType checks that the bound field holds a supported split type.
var ValidSplitType validator.Func = func(fl validator.FieldLevel) bool {
	if value, ok := fl.Field().Interface().(string); ok {
		return domain.SplitType(value).Valid()
	}

	return false
}

// ValidComputationType checks that the bound field holds a supported computation type.
var ValidComputationType validator.Func = func(fl validator.FieldLevel) bool {
	if value, ok := fl.Field().Interface().(string); ok {
		return domain.ComputationType(value).Valid()
	}

	return false
}
