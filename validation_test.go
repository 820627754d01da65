package cashbook

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name       string
		form       Form
		wantFields []string // fields reported as invalid
	}{
		{name: "valid", form: Form{"Salary", "50000", "income", "Job"}},
		{name: "decimal amount", form: Form{"Coffee", "3.75", "expense", ""}},
		{name: "missing description", form: Form{"  ", "10", "income", ""}, wantFields: []string{"description"}},
		{name: "zero amount", form: Form{"x", "0", "income", ""}, wantFields: []string{"amount"}},
		{name: "negative amount", form: Form{"x", "-3", "expense", ""}, wantFields: []string{"amount"}},
		{name: "not a number", form: Form{"x", "ten", "income", ""}, wantFields: []string{"amount"}},
		{name: "missing amount", form: Form{"x", "", "income", ""}, wantFields: []string{"amount"}},
		{name: "missing type", form: Form{"x", "1", "", ""}, wantFields: []string{"type"}},
		{name: "unknown type", form: Form{"x", "1", "transfer", ""}, wantFields: []string{"type"}},
		{name: "everything wrong", form: Form{}, wantFields: []string{"description", "amount", "type"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.form)
			if len(tc.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want a *ValidationError", err)
			}
			joined, ok := err.(interface{ Unwrap() []error })
			if !ok {
				t.Fatalf("Validate() error %T is not a joined error", err)
			}
			var got []string
			for _, e := range joined.Unwrap() {
				if errors.As(e, &verr) {
					got = append(got, verr.Field)
				}
			}
			if len(got) != len(tc.wantFields) {
				t.Fatalf("invalid fields = %v, want %v", got, tc.wantFields)
			}
			for i := range got {
				if got[i] != tc.wantFields[i] {
					t.Errorf("invalid fields = %v, want %v", got, tc.wantFields)
				}
			}
		})
	}
}

func TestValidate_Fields(t *testing.T) {
	f, err := Validate(Form{Description: " Coffee ", Amount: " 3.75 ", Type: "Expense", Category: " "})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if f.Description != "Coffee" || f.Category != DefaultCategory || f.Type != Expense {
		t.Errorf("Validate() = %+v", f)
	}
	if !f.Amount.Equal(decimal.RequireFromString("3.75")) {
		t.Errorf("Amount = %v, want 3.75", f.Amount)
	}
	if !f.Date.IsZero() {
		t.Errorf("Date = %v, want zero", f.Date)
	}
}
