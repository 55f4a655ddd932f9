package exchange

import "github.com/shopspring/decimal"

// AmountToPrecision truncates amount to the market's amount precision and
// renders it as a canonical decimal string for submission.
func AmountToPrecision(m *Market, amount float64) string {
	return ToPrecision(amount, m.Precision.Amount)
}

// PriceToPrecision truncates price to the market's price precision and
// renders it as a canonical decimal string for submission.
func PriceToPrecision(m *Market, price float64) string {
	return ToPrecision(price, m.Precision.Price)
}

// ToPrecision truncates v to the given number of decimal digits. Truncation,
// not rounding: submitting more than the caller owns must be impossible.
func ToPrecision(v float64, digits int) string {
	return decimal.NewFromFloat(v).Truncate(int32(digits)).String()
}
