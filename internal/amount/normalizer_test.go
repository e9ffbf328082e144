package amount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNormalizePassthrough(t *testing.T) {
	n := Normalizer{}

	assert.Equal(t, int64(45000), n.Normalize(dec("450.00"), "EUR", TaxPolicyNone))
	assert.Equal(t, int64(0), n.Normalize(dec("0"), "EUR", TaxPolicyNone))
	assert.Equal(t, int64(99), n.Normalize(dec("0.99"), "USD", TaxPolicyNone))
}

func TestNormalizeRoundsHalfUp(t *testing.T) {
	n := Normalizer{}

	assert.Equal(t, int64(1001), n.Normalize(dec("10.005"), "EUR", TaxPolicyNone))
	assert.Equal(t, int64(1000), n.Normalize(dec("10.004"), "EUR", TaxPolicyNone))
	assert.Equal(t, int64(13), n.Normalize(dec("0.125"), "EUR", TaxPolicyNone))
}

func TestNormalizeZeroDecimalCurrency(t *testing.T) {
	n := Normalizer{}

	assert.Equal(t, int64(450), n.Normalize(dec("450.00"), "JPY", TaxPolicyNone))
	assert.Equal(t, int64(451), n.Normalize(dec("450.50"), "JPY", TaxPolicyNone))
}

func TestNormalizeUnknownCurrencyDefaultsToTwoDecimals(t *testing.T) {
	n := Normalizer{}

	assert.Equal(t, int64(45000), n.Normalize(dec("450.00"), "XYZ", TaxPolicyNone))
}

func TestNormalizeExclusiveStripsTax(t *testing.T) {
	// 119.00 inclusive at 19% VAT is a 100.00 base.
	n := Normalizer{Rate: dec("0.19")}

	assert.Equal(t, int64(10000), n.Normalize(dec("119.00"), "EUR", TaxPolicyExclusive))
}

func TestNormalizeInclusiveAddsTax(t *testing.T) {
	// 100.00 exclusive at 19% VAT displays as 119.00.
	n := Normalizer{Rate: dec("0.19")}

	assert.Equal(t, int64(11900), n.Normalize(dec("100.00"), "EUR", TaxPolicyInclusive))
}

func TestNormalizeZeroRateIsIdentityAcrossPolicies(t *testing.T) {
	n := Normalizer{}

	for _, policy := range []TaxPolicy{TaxPolicyNone, TaxPolicyExclusive, TaxPolicyInclusive} {
		assert.Equal(t, int64(12345), n.Normalize(dec("123.45"), "EUR", policy), policy.String())
	}
}

// Normalize is monotonic non-decreasing in the price for every policy.
func TestNormalizeMonotonic(t *testing.T) {
	n := Normalizer{Rate: dec("0.19")}
	prices := []string{"0", "0.01", "0.99", "1.00", "34.99", "35.00", "449.99", "450.00", "4000.00"}

	for _, policy := range []TaxPolicy{TaxPolicyNone, TaxPolicyExclusive, TaxPolicyInclusive} {
		var prev int64 = -1
		for _, p := range prices {
			got := n.Normalize(dec(p), "EUR", policy)
			assert.GreaterOrEqual(t, got, prev, "policy %s price %s", policy, p)
			prev = got
		}
	}
}
