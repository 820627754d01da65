package cashbook

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the display currency used when none is configured.
const DefaultCurrency = "INR"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

// KnownCurrency reports whether code is an ISO 4217 code known to the formatter.
func KnownCurrency(code string) bool { return money.GetCurrency(code) != nil }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the currency formatted value, rounded to the currency's minor unit.
// Indian rupees are grouped in lakhs and crores: ₹1,00,000.00.
func (m Money) String() string {
	cur := m.currency()
	places := int32(cur.Fraction)
	integer, fraction, _ := strings.Cut(m.value.Abs().StringFixed(places), ".")
	s := group(integer, cur.Thousand, cur.Code == money.INR)
	if fraction != "" {
		s += cur.Decimal + fraction
	}
	s = strings.Replace(cur.Template, "1", s, 1)
	s = strings.Replace(s, "$", cur.Grapheme, 1)
	if m.value.Round(places).IsNegative() {
		s = "-" + s
	}
	return s
}

// group inserts sep in digits every three digits, or, in the Indian system,
// after the last three digits then every two digits.
func group(digits, sep string, indian bool) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	size := 3
	if indian {
		size = 2
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	for len(head) > size {
		tail = head[len(head)-size:] + sep + tail
		head = head[:len(head)-size]
	}
	return head + sep + tail
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Neg() Money               { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money               { return Money{value: m.value.Abs(), cur: m.cur} }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// SignedString returns the string representation of the money value with an
// explicit sign. 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return "-" + m.Abs().String()
}
