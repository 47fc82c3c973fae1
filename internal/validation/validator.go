// Package validation turns the boolean answers of the checksum engine into
// results carrying a human readable message. A failed VATIN result names the
// expected format of the country when the structure catalog knows it.
package validation

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/rezonia/vatin-checker/internal/checksum"
	"github.com/rezonia/vatin-checker/internal/model"
	"github.com/rezonia/vatin-checker/internal/rates"
	"github.com/rezonia/vatin-checker/internal/structure"
)

// Result is the outcome of validating one value.
type Result struct {
	Value string
	Valid bool
	Text  Text
	Args  []string

	// Structure is the catalog entry the hint was built from, if any
	Structure *structure.Structure
}

// Message returns the display text of a failed result, or "" on success.
func (r Result) Message() string {
	return r.Text.Format(r.Args...)
}

// Err converts a failed result into a *model.ValidationError for field.
func (r Result) Err(field string) error {
	if r.Valid {
		return nil
	}
	return model.NewValidationError(field, r.Value, r.Text.String(), r.Message())
}

// Validator checks VATINs and VAT rate items.
type Validator struct {
	registry *checksum.Registry
	catalog  *structure.Catalog
	rates    *rates.Catalog
	namer    display.Namer
}

// Option configures a Validator
type Option func(*Validator)

// WithRegistry replaces the default checksum registry
func WithRegistry(r *checksum.Registry) Option {
	return func(v *Validator) { v.registry = r }
}

// WithCatalog replaces the default structure catalog
func WithCatalog(c *structure.Catalog) Option {
	return func(v *Validator) { v.catalog = c }
}

// WithRates replaces the default VAT rate catalog
func WithRates(c *rates.Catalog) Option {
	return func(v *Validator) { v.rates = c }
}

// WithDisplayLanguage sets the language of country names in hints.
// Languages without region names and the undetermined tag fall back to English.
func WithDisplayLanguage(tag language.Tag) Option {
	return func(v *Validator) {
		if tag == language.Und {
			return
		}
		if n := display.Regions(tag); n != nil {
			v.namer = n
		}
	}
}

// New creates a validator on the process wide registry and catalogs.
func New(opts ...Option) *Validator {
	v := &Validator{namer: display.English.Regions()}
	for _, opt := range opts {
		opt(v)
	}
	if v.registry == nil {
		v.registry = checksum.Default()
	}
	if v.catalog == nil {
		v.catalog = structure.Default()
	}
	if v.rates == nil {
		v.rates = rates.Default()
	}
	return v
}

// Validate checks value with the checksum registry. On failure the result
// carries the country name and examples of the structure with the same
// prefix, or a plain message when the catalog has none.
func (v *Validator) Validate(value string) Result {
	if v.registry.IsValid(value) {
		return Result{Value: value, Valid: true}
	}

	s, ok := v.catalog.FindByCountryPrefix(value)
	if !ok {
		return Result{Value: value, Text: TextInvalidVATIN}
	}
	return Result{
		Value:     value,
		Text:      TextInvalidVATINWithExamples,
		Args:      []string{v.CountryName(s.Country()), strings.Join(s.Examples(), ", ")},
		Structure: s,
	}
}

// ValidatePtr is Validate for values that may be absent. A nil value is a
// precondition violation and returns an error matching model.ErrInvalidArgument.
func (v *Validator) ValidatePtr(value *string) (Result, error) {
	if value == nil {
		return Result{}, model.NewInvalidArgumentError("vatin", "value is absent")
	}
	return v.Validate(*value), nil
}

// ValidateItem checks that id names a known VAT rate item.
func (v *Validator) ValidateItem(id string) Result {
	if v.rates.IsValidItemID(id) {
		return Result{Value: id, Valid: true}
	}
	return Result{Value: id, Text: TextInvalidVATItem}
}

// ValidateTaxCategory checks that code is a UN/ECE 5305 tax category.
func (v *Validator) ValidateTaxCategory(code string) Result {
	if rates.IsValidTaxCategory(code) {
		return Result{Value: code, Valid: true}
	}
	return Result{Value: code, Text: TextInvalidTaxCategory}
}

// CountryName returns the display name of an ISO 3166-1 region, or the code
// itself when it is not a known region.
func (v *Validator) CountryName(code string) string {
	region, err := language.ParseRegion(code)
	if err != nil {
		return code
	}
	if name := v.namer.Name(region); name != "" {
		return name
	}
	return code
}

// Registry returns the checksum registry in use
func (v *Validator) Registry() *checksum.Registry { return v.registry }

// Catalog returns the structure catalog in use
func (v *Validator) Catalog() *structure.Catalog { return v.catalog }

// Rates returns the VAT rate catalog in use
func (v *Validator) Rates() *rates.Catalog { return v.rates }
