// Package vatinlib provides a public API for checking VAT identification
// numbers (VATINs) offline.
//
// Example usage:
//
//	if !vatinlib.IsValid("ATU13585627") {
//	    log.Fatal("invalid VATIN")
//	}
//
//	result := vatinlib.Validate("DE136695978")
//	fmt.Println(result.Message())
package vatinlib

import (
	"github.com/rezonia/vatin-checker/internal/checksum"
	"github.com/rezonia/vatin-checker/internal/model"
	"github.com/rezonia/vatin-checker/internal/rates"
	"github.com/rezonia/vatin-checker/internal/structure"
	"github.com/rezonia/vatin-checker/internal/validation"
)

// Re-export core types for public API
type (
	Rule      = checksum.Rule
	Registry  = checksum.Registry
	Structure = structure.Structure
	Catalog   = structure.Catalog
	Result    = validation.Result
	Validator = validation.Validator
	RateItem  = rates.Item
)

// Re-export error types
type (
	InvalidArgumentError = model.InvalidArgumentError
	LoadError            = model.LoadError
	ValidationError      = model.ValidationError
)

// Re-export sentinel errors
var (
	ErrInvalidArgument = model.ErrInvalidArgument
	ErrMalformedData   = model.ErrMalformedData
)

// IsValid checks a full VATIN including its country prefix. Inputs of two
// characters or less and inputs with an unknown prefix are valid.
func IsValid(vatin string) bool {
	return checksum.IsValid(vatin)
}

// HasValidator reports whether a checksum rule exists for the prefix of vatin.
func HasValidator(vatin string) bool {
	return checksum.HasValidator(vatin)
}

// Countries returns the prefixes with a checksum rule, GR included.
func Countries() []string {
	return checksum.Default().Countries()
}

// Validate checks vatin and explains a failure with the examples of its country.
func Validate(vatin string) Result {
	return defaultValidator().Validate(vatin)
}

// FindStructure returns the structure whose pattern matches the whole vatin.
func FindStructure(vatin string) (*Structure, bool) {
	return structure.Default().FindByFullMatch(vatin)
}

// FindStructureByPrefix returns the structure whose examples share the first
// two characters of vatin, compared case insensitively.
func FindStructureByPrefix(vatin string) (*Structure, bool) {
	return structure.Default().FindByCountryPrefix(vatin)
}

// Structures returns every known structure in catalog order.
func Structures() []*Structure {
	return structure.Default().All()
}
