package money_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/shopspring/decimal"

	"github.com/egannguyen/seller-dashboard/internal/money"
)

func TestRevenue(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		sales    int
		expected string
	}{
		{name: "no sales", price: 19.99, sales: 0, expected: "0"},
		{name: "exact cents", price: 19.99, sales: 3, expected: "59.97"},
		{name: "float drift avoided", price: 0.1, sales: 3, expected: "0.3"},
		{name: "whole price", price: 349, sales: 12, expected: "4188"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(money.Revenue(tt.price, tt.sales).String(), qt.Equals, tt.expected)
		})
	}
}

func TestSum(t *testing.T) {
	c := qt.New(t)

	c.Assert(money.Sum().IsZero(), qt.IsTrue)
	total := money.Sum(decimal.RequireFromString("0.1"), decimal.RequireFromString("0.2"))
	c.Assert(total.String(), qt.Equals, "0.3")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{name: "zero", amount: decimal.Zero, expected: "0.00"},
		{name: "pads decimals", amount: decimal.RequireFromString("59.9"), expected: "59.90"},
		{name: "groups thousands", amount: decimal.RequireFromString("1234567.891"), expected: "1,234,567.89"},
		{name: "rounds half up", amount: decimal.RequireFromString("0.125"), expected: "0.13"},
		{name: "negative", amount: decimal.RequireFromString("-1234.5"), expected: "-1,234.50"},
		{name: "beyond float precision", amount: decimal.RequireFromString("12345678901234567.89"), expected: "12,345,678,901,234,567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(money.Format(tt.amount), qt.Equals, tt.expected)
		})
	}
}
