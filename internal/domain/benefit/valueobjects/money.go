package valueobjects

import "fmt"

// DefaultCurrency is used when a caller does not specify one.
const DefaultCurrency = "SGD"

// Money is an amount in integer cents. Benefit pricing never uses floats;
// totals and refunds are sums of persisted per-order cent amounts.
type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{
		amountInCents: amountInCents,
		currency:      currency,
	}
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) Money {
	return NewMoney(0, currency)
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

// AmountInUnits returns the amount in major currency units, for display only.
func (m Money) AmountInUnits() float64 {
	return float64(m.amountInCents) / 100.0
}

// Add returns the sum of two amounts. Mixing currencies is a programming
// error and returns an error rather than a silently wrong amount.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency() != other.Currency() {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency(), other.Currency())
	}
	return NewMoney(m.amountInCents+other.amountInCents, m.Currency()), nil
}

// Multiply returns the amount times an integer factor (days, employees).
func (m Money) Multiply(factor int) Money {
	return NewMoney(m.amountInCents*int64(factor), m.Currency())
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.Currency() == other.Currency()
}

func (m Money) IsPositive() bool {
	return m.amountInCents > 0
}

func (m Money) IsZero() bool {
	return m.amountInCents == 0
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.AmountInUnits(), m.Currency())
}
