package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bnpl-gateway/internal/amount"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuildProductAmounts(t *testing.T) {
	product := Product{
		ID:         "tee-shirt",
		Price:      dec("35.00"),
		Taxable:    true,
		VariantIDs: []string{"tee-s", "tee-m"},
	}
	source := VariantMap{
		"tee-s": {ID: "tee-s", Price: dec("35.00")},
		"tee-m": {ID: "tee-m", Price: dec("37.50")},
	}

	got := BuildProductAmounts(product, source, amount.Normalizer{}, amount.TaxPolicyNone, "EUR")

	assert.Equal(t, int64(3500), got.BasePrice)
	require.Len(t, got.Variations, 3)
	assert.Equal(t, Amount{Amount: 3500, Currency: "EUR"}, got.Variations[BaseProductKey])
	assert.Equal(t, Amount{Amount: 3500, Currency: "EUR"}, got.Variations["tee-s"])
	assert.Equal(t, Amount{Amount: 3750, Currency: "EUR"}, got.Variations["tee-m"])
}

func TestBuildProductAmountsSkipsUnresolvableVariants(t *testing.T) {
	product := Product{
		ID:         "tee-shirt",
		Price:      dec("35.00"),
		VariantIDs: []string{"tee-s", "tee-deleted"},
	}
	source := VariantMap{
		"tee-s": {ID: "tee-s", Price: dec("35.00")},
	}

	got := BuildProductAmounts(product, source, amount.Normalizer{}, amount.TaxPolicyNone, "EUR")

	assert.Len(t, got.Variations, 2)
	assert.NotContains(t, got.Variations, "tee-deleted")
}

func TestBuildProductAmountsNilSource(t *testing.T) {
	product := Product{ID: "tee-shirt", Price: dec("35.00"), VariantIDs: []string{"tee-s"}}

	got := BuildProductAmounts(product, nil, amount.Normalizer{}, amount.TaxPolicyNone, "EUR")

	assert.Len(t, got.Variations, 1)
	assert.Equal(t, int64(3500), got.BasePrice)
}

// One tax-policy decision covers the base product and every variant.
func TestBuildProductAmountsAppliesSamePolicyToVariants(t *testing.T) {
	product := Product{
		ID:         "tee-shirt",
		Price:      dec("100.00"),
		Taxable:    true,
		VariantIDs: []string{"tee-m"},
	}
	source := VariantMap{
		"tee-m": {ID: "tee-m", Price: dec("200.00")},
	}
	n := amount.Normalizer{Rate: dec("0.19")}

	got := BuildProductAmounts(product, source, n, amount.TaxPolicyInclusive, "EUR")

	assert.Equal(t, int64(11900), got.Variations[BaseProductKey].Amount)
	assert.Equal(t, int64(23800), got.Variations["tee-m"].Amount)
}
