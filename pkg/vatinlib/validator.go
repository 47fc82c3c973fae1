package vatinlib

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/rezonia/vatin-checker/internal/validation"
)

var defaultValidator = sync.OnceValue(func() *Validator {
	return validation.New()
})

// NewValidator creates a validator whose hints name countries in lang.
func NewValidator(lang language.Tag) *Validator {
	return validation.New(validation.WithDisplayLanguage(lang))
}

// RegisterValidation registers the vatin, vatitem and taxcategory struct tags
// on validate.
//
//	type Customer struct {
//	    VATIN string `validate:"required,vatin"`
//	}
func RegisterValidation(validate *validator.Validate) error {
	return defaultValidator().RegisterTags(validate)
}

// IsValidRateItem reports whether id names a known VAT rate item such as "de-standard".
func IsValidRateItem(id string) bool {
	return defaultValidator().Rates().IsValidItemID(id)
}
