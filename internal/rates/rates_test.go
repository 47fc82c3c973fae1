package rates_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/vatin-checker/internal/checksum"
	"github.com/rezonia/vatin-checker/internal/model"
	"github.com/rezonia/vatin-checker/internal/rates"
)

func TestDefault_Loads(t *testing.T) {
	c := rates.Default()
	require.NotNil(t, c)
	assert.Len(t, c.All(), 92)

	for _, item := range c.All() {
		assert.True(t, item.Category.IsValid(), "item %s", item.ID)
		assert.True(t, checksum.Default().HasValidator(item.Country+"0"), "item %s", item.ID)
	}
}

func TestDefault_EveryCountryHasOneStandardRate(t *testing.T) {
	c := rates.Default()
	for _, code := range checksum.Default().Countries() {
		standard := 0
		for _, item := range c.ForCountry(code) {
			if item.Category == rates.CategoryStandard {
				standard++
			}
		}
		assert.Equal(t, 1, standard, "country %s", code)
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := rates.Default()

	item, ok := c.Lookup("de-standard")
	require.True(t, ok)
	assert.Equal(t, "DE", item.Country)
	assert.Equal(t, rates.CategoryStandard, item.Category)
	assert.True(t, item.Percentage.Equal(decimal.NewFromInt(19)))

	item, ok = c.Lookup("fr-super-reduced")
	require.True(t, ok)
	assert.True(t, item.Percentage.Equal(decimal.RequireFromString("2.1")))

	_, ok = c.Lookup("DE-standard")
	assert.False(t, ok)
	_, ok = c.Lookup("")
	assert.False(t, ok)

	assert.True(t, c.IsValidItemID("at-reduced-2"))
	assert.False(t, c.IsValidItemID("at-reduced-3"))
}

func TestCatalog_ForCountry(t *testing.T) {
	c := rates.Default()

	de := c.ForCountry("de")
	require.Len(t, de, 2)
	assert.Equal(t, "de-standard", de[0].ID)
	assert.Equal(t, "de-reduced", de[1].ID)

	// GR resolves to the EL prefix
	assert.Equal(t, c.ForCountry("EL"), c.ForCountry("GR"))
	assert.NotEmpty(t, c.ForCountry("GR"))

	assert.Empty(t, c.ForCountry("US"))
	assert.Empty(t, c.ForCountry("DEU"))
	assert.Empty(t, c.ForCountry(""))
}

func TestCatalog_Standard(t *testing.T) {
	item, ok := rates.Default().Standard("HU")
	require.True(t, ok)
	assert.True(t, item.Percentage.Equal(decimal.NewFromInt(27)))

	_, ok = rates.Default().Standard("CH")
	assert.False(t, ok)
}

func TestItem_TaxOn(t *testing.T) {
	item, ok := rates.Default().Lookup("ie-reduced")
	require.True(t, ok)

	// 13.5% of 99.99 = 13.49865
	assert.True(t, item.TaxOn(decimal.RequireFromString("99.99")).Equal(decimal.RequireFromString("13.5")))
	assert.True(t, item.GrossOf(decimal.NewFromInt(200)).Equal(decimal.NewFromInt(227)))

	zero, ok := rates.Default().Lookup("gb-zero")
	require.True(t, ok)
	assert.True(t, zero.TaxOn(decimal.NewFromInt(1000)).IsZero())
}

func TestCategory_TaxCategory(t *testing.T) {
	assert.Equal(t, rates.TaxCategoryStandard, rates.CategoryStandard.TaxCategory())
	assert.Equal(t, rates.TaxCategoryLower, rates.CategoryReduced.TaxCategory())
	assert.Equal(t, rates.TaxCategoryLower, rates.CategoryParking.TaxCategory())
	assert.Equal(t, rates.TaxCategoryZero, rates.CategoryZero.TaxCategory())
	assert.False(t, rates.Category("luxury").IsValid())
}

func TestLoad_RejectsMalformedData(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		entry int
	}{
		{"invalid yaml", "rates: [", -1},
		{"no rates", "rates: []", -1},
		{"empty id", "rates:\n  - country: AT\n    category: standard\n    percentage: '20'", 0},
		{"bad country", "rates:\n  - id: x\n    country: AUT\n    category: standard\n    percentage: '20'", 0},
		{"unknown category", "rates:\n  - id: x\n    country: AT\n    category: luxury\n    percentage: '20'", 0},
		{"bad percentage", "rates:\n  - id: x\n    country: AT\n    category: standard\n    percentage: twenty", 0},
		{"negative percentage", "rates:\n  - id: x\n    country: AT\n    category: standard\n    percentage: '-1'", 0},
		{"percentage above 100", "rates:\n  - id: x\n    country: AT\n    category: standard\n    percentage: '100.5'", 0},
		{"non zero zero rate", "rates:\n  - id: x\n    country: AT\n    category: zero\n    percentage: '5'", 0},
		{
			"duplicate id",
			"rates:\n  - id: x\n    country: AT\n    category: standard\n    percentage: '20'\n  - id: x\n    country: DE\n    category: standard\n    percentage: '19'",
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := rates.Load("test.yaml", []byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, model.ErrMalformedData))

			var loadErr *model.LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.entry, loadErr.Entry)
		})
	}
}

func TestLoad_UnquotedPercentage(t *testing.T) {
	c, err := rates.Load("test.yaml", []byte("rates:\n  - id: x\n    country: at\n    category: reduced\n    percentage: 5.5"))
	require.NoError(t, err)

	item, ok := c.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "AT", item.Country)
	assert.True(t, item.Percentage.Equal(decimal.RequireFromString("5.5")))
}

func TestTaxCategory(t *testing.T) {
	for _, code := range []string{"S", "AA", "Z", "E", "AE", "K", "G", "O", "L", "M"} {
		assert.True(t, rates.IsValidTaxCategory(code), "code %s", code)
	}
	for _, code := range []string{"", "s", "X", "AAA", "N"} {
		assert.False(t, rates.IsValidTaxCategory(code), "code %q", code)
	}

	c, ok := rates.ParseTaxCategory("AE")
	require.True(t, ok)
	assert.Equal(t, rates.TaxCategoryReverseCharge, c)
	assert.Equal(t, "VAT Reverse Charge", c.Name())
	assert.Empty(t, rates.TaxCategory("X").Name())
}
