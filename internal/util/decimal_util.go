package util

import "github.com/shopspring/decimal"

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}
