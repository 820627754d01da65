package cashbook

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Form is the raw user input for an entry, as typed.
type Form struct {
	Description string
	Amount      string
	Type        string
	Category    string
}

// Validate checks the form and converts it to Fields.
//
// It returns an error joining one *ValidationError per invalid field. The
// category defaults to DefaultCategory.
func Validate(f Form) (Fields, error) {
	var errs []error
	fields := Fields{
		Description: strings.TrimSpace(f.Description),
		Category:    strings.TrimSpace(f.Category),
	}
	if fields.Description == "" {
		errs = append(errs, &ValidationError{Field: "description", Reason: "is required"})
	}

	if amount := strings.TrimSpace(f.Amount); amount == "" {
		errs = append(errs, &ValidationError{Field: "amount", Reason: "is required"})
	} else if v, err := decimal.NewFromString(amount); err != nil {
		errs = append(errs, &ValidationError{Field: "amount", Reason: "is not a number"})
	} else if !v.IsPositive() {
		errs = append(errs, &ValidationError{Field: "amount", Reason: "must be greater than 0"})
	} else {
		fields.Amount = v
	}

	if strings.TrimSpace(f.Type) == "" {
		errs = append(errs, &ValidationError{Field: "type", Reason: "is required"})
	} else if t, err := ParseEntryType(f.Type); err != nil {
		errs = append(errs, &ValidationError{Field: "type", Reason: "must be income or expense"})
	} else {
		fields.Type = t
	}

	if fields.Category == "" {
		fields.Category = DefaultCategory
	}
	if len(errs) > 0 {
		return Fields{}, errors.Join(errs...)
	}
	return fields, nil
}
