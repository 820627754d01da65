package cashbook

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestFilter(t *testing.T) {
	entries := []Entry{
		{ID: 4, Description: "d", Amount: decimal.NewFromInt(4), Type: Expense},
		{ID: 3, Description: "c", Amount: decimal.NewFromInt(3), Type: Income},
		{ID: 2, Description: "b", Amount: decimal.NewFromInt(2), Type: Expense},
		{ID: 1, Description: "a", Amount: decimal.NewFromInt(1), Type: Income},
	}
	testCases := []struct {
		mode FilterMode
		want []int
	}{
		{FilterAll, []int{4, 3, 2, 1}},
		{FilterIncome, []int{3, 1}},
		{FilterExpense, []int{4, 2}},
		{FilterMode(7), nil},
	}
	for _, tc := range testCases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			got := Filter(entries, tc.mode)
			if diff := cmp.Diff(tc.want, ids(got)); diff != "" {
				t.Errorf("Filter(%v) ids mismatch (-want +got):\n%s", tc.mode, diff)
			}
			for _, e := range got {
				if !tc.mode.Accept(e) {
					t.Errorf("Filter(%v) returned %+v", tc.mode, e)
				}
			}
		})
	}

	if got := Filter(entries, FilterAll); &got[0] != &entries[0] {
		t.Error("Filter(all) should return the sequence itself")
	}
	if got := Filter(nil, FilterIncome); len(got) != 0 {
		t.Errorf("Filter(nil) = %v", got)
	}
}

func TestParseFilterMode(t *testing.T) {
	testCases := []struct {
		in      string
		want    FilterMode
		wantErr bool
	}{
		{"all", FilterAll, false},
		{"", FilterAll, false},
		{"Income", FilterIncome, false},
		{" expense ", FilterExpense, false},
		{"transfers", 0, true},
	}
	for _, tc := range testCases {
		got, err := ParseFilterMode(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseFilterMode(%q) = %v, %v; want %v, err %v", tc.in, got, err, tc.want, tc.wantErr)
		}
	}
}

func TestParseEntryType(t *testing.T) {
	for in, want := range map[string]EntryType{"income": Income, "EXPENSE": Expense} {
		if got, err := ParseEntryType(in); err != nil || got != want {
			t.Errorf("ParseEntryType(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseEntryType("transfer"); err == nil {
		t.Error(`ParseEntryType("transfer") should fail`)
	}
}
