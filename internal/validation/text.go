package validation

import "fmt"

// Text identifies the message of a failed validation.
type Text int

const (
	// TextNone is the text of a successful result
	TextNone Text = iota
	// TextInvalidVATIN reports an invalid VATIN without further hint
	TextInvalidVATIN
	// TextInvalidVATINWithExamples reports an invalid VATIN; args are the
	// country display name and the comma separated examples
	TextInvalidVATINWithExamples
	// TextInvalidVATItem reports an unknown VAT rate item
	TextInvalidVATItem
	// TextInvalidTaxCategory reports an unknown UN/ECE 5305 tax category
	TextInvalidTaxCategory
)

var texts = map[Text]string{
	TextNone:                     "",
	TextInvalidVATIN:             "The VATIN is invalid.",
	TextInvalidVATINWithExamples: "The VATIN is invalid. A valid VATIN for %s can look like this: %s",
	TextInvalidVATItem:           "The specified tax rate is invalid.",
	TextInvalidTaxCategory:       "The specified tax category is invalid.",
}

var textIDs = map[Text]string{
	TextNone:                     "none",
	TextInvalidVATIN:             "invalid_vatin",
	TextInvalidVATINWithExamples: "invalid_vatin_with_examples",
	TextInvalidVATItem:           "invalid_vat_item",
	TextInvalidTaxCategory:       "invalid_tax_category",
}

// String returns the stable identifier of t
func (t Text) String() string {
	if id, ok := textIDs[t]; ok {
		return id
	}
	return fmt.Sprintf("text(%d)", int(t))
}

// Format renders the English display text with args.
func (t Text) Format(args ...string) string {
	tmpl := texts[t]
	if len(args) == 0 {
		return tmpl
	}
	a := make([]any, len(args))
	for i, s := range args {
		a[i] = s
	}
	return fmt.Sprintf(tmpl, a...)
}
