package repository

import "github.com/shopspring/decimal"

// parseDecimal tolerates items written before a field existed.
func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
