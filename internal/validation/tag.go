package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/rezonia/vatin-checker/internal/rates"
)

// Struct tags registered by RegisterTags.
const (
	TagVATIN       = "vatin"
	TagVATItem     = "vatitem"
	TagTaxCategory = "taxcategory"
)

// RegisterTags registers the vatin, vatitem and taxcategory struct tags on
// validate. An empty string passes every tag; combine with required.
func (v *Validator) RegisterTags(validate *validator.Validate) error {
	if err := validate.RegisterValidation(TagVATIN, v.validateVATIN); err != nil {
		return err
	}
	if err := validate.RegisterValidation(TagVATItem, v.validateVATItem); err != nil {
		return err
	}
	return validate.RegisterValidation(TagTaxCategory, validateTaxCategory)
}

func (v *Validator) validateVATIN(fl validator.FieldLevel) bool {
	return v.registry.IsValid(fl.Field().String())
}

func (v *Validator) validateVATItem(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || v.rates.IsValidItemID(value)
}

func validateTaxCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || rates.IsValidTaxCategory(value)
}
