package models

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point amount stored in a decimal(10,2) column. It never
// passes through float64 on the way in: JSON numbers and JSON strings are both
// parsed from their literal text.
type Money struct {
	decimal.Decimal
}

// Exponent bounds accepted by NewMoney. Anything outside them is far past
// decimal(10,2) and would only cost big.Int rescaling to reject later.
const (
	MaxMoneyExponent = 8
	MinMoneyExponent = -18
)

func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid decimal %q", s)
	}
	if d.IsZero() {
		return Money{Decimal: decimal.Zero}, nil
	}
	if exp := d.Exponent(); exp > MaxMoneyExponent || exp < MinMoneyExponent {
		return Money{}, fmt.Errorf("decimal %q is out of range", s)
	}
	return Money{Decimal: d}, nil
}

// InRange reports whether the exponent lies within the NewMoney bounds.
func (m Money) InRange() bool {
	if m.Decimal.IsZero() {
		return true
	}
	exp := m.Exponent()
	return exp <= MaxMoneyExponent && exp >= MinMoneyExponent
}

// MustMoney is NewMoney for literals known to be valid.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) String() string {
	return m.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.StringFixed(2))), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	text := string(bytes.TrimSpace(data))
	if text == "null" {
		return nil
	}
	if len(text) > 0 && text[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return fmt.Errorf("invalid decimal %s", text)
		}
		text = unquoted
	}
	parsed, err := NewMoney(text)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
