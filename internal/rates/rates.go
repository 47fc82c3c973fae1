// Package rates is the catalog of VAT rate items per country.
package rates

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rezonia/vatin-checker/internal/checksum"
	dec "github.com/rezonia/vatin-checker/internal/decimal"
	"github.com/rezonia/vatin-checker/internal/model"
)

// DefaultSource names the embedded data source in load errors.
const DefaultSource = "vat-rates.yaml"

//go:embed data/vat-rates.yaml
var defaultData []byte

// Category is the kind of a rate within its country.
type Category string

const (
	CategoryStandard     Category = "standard"
	CategoryReduced      Category = "reduced"
	CategorySuperReduced Category = "super_reduced"
	CategoryParking      Category = "parking"
	CategoryZero         Category = "zero"
)

// IsValid checks if category is known
func (c Category) IsValid() bool {
	switch c {
	case CategoryStandard, CategoryReduced, CategorySuperReduced, CategoryParking, CategoryZero:
		return true
	}
	return false
}

// TaxCategory returns the UN/ECE 5305 duty or tax category code of c.
func (c Category) TaxCategory() TaxCategory {
	switch c {
	case CategoryStandard:
		return TaxCategoryStandard
	case CategoryZero:
		return TaxCategoryZero
	default:
		return TaxCategoryLower
	}
}

// Item is one VAT rate of one country.
type Item struct {
	ID         string          `json:"id"`
	Country    string          `json:"country"`
	Category   Category        `json:"category"`
	Percentage decimal.Decimal `json:"percentage"`
}

// TaxOn returns the VAT on a net amount, rounded to cents.
func (i Item) TaxOn(amount decimal.Decimal) decimal.Decimal {
	return dec.Percent(amount, i.Percentage)
}

// GrossOf returns a net amount with the VAT of i added.
func (i Item) GrossOf(amount decimal.Decimal) decimal.Decimal {
	return dec.Gross(amount, i.Percentage)
}

// Catalog holds the rate items in data source order.
type Catalog struct {
	items []Item
	byID  map[string]int
}

type document struct {
	Rates []entry `yaml:"rates"`
}

type entry struct {
	ID         string `yaml:"id"`
	Country    string `yaml:"country"`
	Category   string `yaml:"category"`
	Percentage string `yaml:"percentage"`
}

// Load parses a YAML rate source. The returned error is a *model.LoadError.
func Load(source string, data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, model.NewLoadError(source, -1, "invalid YAML", err)
	}
	if len(doc.Rates) == 0 {
		return nil, model.NewLoadError(source, -1, "no rates defined", nil)
	}

	c := &Catalog{
		items: make([]Item, 0, len(doc.Rates)),
		byID:  make(map[string]int, len(doc.Rates)),
	}
	for i, e := range doc.Rates {
		if e.ID == "" {
			return nil, model.NewLoadError(source, i, "id is empty", nil)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, model.NewLoadError(source, i, fmt.Sprintf("duplicate id %s", e.ID), nil)
		}
		if len(e.Country) != 2 {
			return nil, model.NewLoadError(source, i, fmt.Sprintf("invalid country %q", e.Country), nil)
		}
		category := Category(e.Category)
		if !category.IsValid() {
			return nil, model.NewLoadError(source, i, fmt.Sprintf("unknown category %q", e.Category), nil)
		}
		pct, err := dec.FromString(e.Percentage)
		if err != nil {
			return nil, model.NewLoadError(source, i, "invalid percentage", err)
		}
		if !dec.IsPercentage(pct) {
			return nil, model.NewLoadError(source, i, fmt.Sprintf("percentage %s out of range", pct), nil)
		}
		if category == CategoryZero && !pct.IsZero() {
			return nil, model.NewLoadError(source, i, "zero category with non zero percentage", nil)
		}

		c.byID[e.ID] = len(c.items)
		c.items = append(c.items, Item{
			ID:         e.ID,
			Country:    strings.ToUpper(e.Country),
			Category:   category,
			Percentage: pct,
		})
	}
	return c, nil
}

// Default returns the catalog of the embedded rate source, loaded on first use.
var Default = sync.OnceValue(func() *Catalog {
	c, err := Load(DefaultSource, defaultData)
	if err != nil {
		panic(err)
	}
	return c
})

// Lookup returns the item with the given id.
func (c *Catalog) Lookup(id string) (Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[idx], true
}

// IsValidItemID reports whether id names a known item.
func (c *Catalog) IsValidItemID(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// ForCountry returns the items of a country. Aliases known to the checksum
// registry resolve to their canonical prefix, so GR finds the EL rates.
func (c *Catalog) ForCountry(code string) []Item {
	if len(code) != 2 {
		return nil
	}
	country := strings.ToUpper(code)
	if rule, ok := checksum.Default().Rule(country); ok {
		country = rule.Country()
	}

	var items []Item
	for _, item := range c.items {
		if item.Country == country {
			items = append(items, item)
		}
	}
	return items
}

// Standard returns the standard rate item of a country.
func (c *Catalog) Standard(code string) (Item, bool) {
	for _, item := range c.ForCountry(code) {
		if item.Category == CategoryStandard {
			return item, true
		}
	}
	return Item{}, false
}

// All returns every item in data source order.
func (c *Catalog) All() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}
