package rates

// TaxCategory is a UN/ECE 5305 duty or tax or fee category code.
type TaxCategory string

const (
	TaxCategoryMixed              TaxCategory = "A"
	TaxCategoryLower              TaxCategory = "AA"
	TaxCategoryExemptForResale    TaxCategory = "AB"
	TaxCategoryNotDue             TaxCategory = "AC"
	TaxCategoryDuePrevious        TaxCategory = "AD"
	TaxCategoryReverseCharge      TaxCategory = "AE"
	TaxCategoryTransferred        TaxCategory = "B"
	TaxCategoryDutyPaidBySupplier TaxCategory = "C"
	TaxCategoryMarginTravel       TaxCategory = "D"
	TaxCategoryExempt             TaxCategory = "E"
	TaxCategoryMarginSecondHand   TaxCategory = "F"
	TaxCategoryExport             TaxCategory = "G"
	TaxCategoryHigher             TaxCategory = "H"
	TaxCategoryMarginArt          TaxCategory = "I"
	TaxCategoryMarginAntiques     TaxCategory = "J"
	TaxCategoryIntraCommunity     TaxCategory = "K"
	TaxCategoryCanaryIslands      TaxCategory = "L"
	TaxCategoryCeutaMelilla       TaxCategory = "M"
	TaxCategoryOutsideScope       TaxCategory = "O"
	TaxCategoryStandard           TaxCategory = "S"
	TaxCategoryZero               TaxCategory = "Z"
)

var taxCategoryNames = map[TaxCategory]string{
	TaxCategoryMixed:              "Mixed tax rate",
	TaxCategoryLower:              "Lower rate",
	TaxCategoryExemptForResale:    "Exempt for resale",
	TaxCategoryNotDue:             "Value Added Tax (VAT) not now due for payment",
	TaxCategoryDuePrevious:        "Value Added Tax (VAT) due from a previous invoice",
	TaxCategoryReverseCharge:      "VAT Reverse Charge",
	TaxCategoryTransferred:        "Transferred (VAT)",
	TaxCategoryDutyPaidBySupplier: "Duty paid by supplier",
	TaxCategoryMarginTravel:       "Value Added Tax (VAT) margin scheme - travel agents",
	TaxCategoryExempt:             "Exempt from tax",
	TaxCategoryMarginSecondHand:   "Value Added Tax (VAT) margin scheme - second-hand goods",
	TaxCategoryExport:             "Free export item, tax not charged",
	TaxCategoryHigher:             "Higher rate",
	TaxCategoryMarginArt:          "Value Added Tax (VAT) margin scheme - works of art",
	TaxCategoryMarginAntiques:     "Value Added Tax (VAT) margin scheme - collector's items and antiques",
	TaxCategoryIntraCommunity:     "VAT exempt for EEA intra-community supply of goods and services",
	TaxCategoryCanaryIslands:      "Canary Islands general indirect tax",
	TaxCategoryCeutaMelilla:       "Tax for production, services and importation in Ceuta and Melilla",
	TaxCategoryOutsideScope:       "Services outside scope of tax",
	TaxCategoryStandard:           "Standard rate",
	TaxCategoryZero:               "Zero rated goods",
}

// ParseTaxCategory returns the category with the given code. Codes are case sensitive.
func ParseTaxCategory(code string) (TaxCategory, bool) {
	c := TaxCategory(code)
	_, ok := taxCategoryNames[c]
	return c, ok
}

// IsValidTaxCategory reports whether code is a UN/ECE 5305 category code.
func IsValidTaxCategory(code string) bool {
	_, ok := ParseTaxCategory(code)
	return ok
}

// Name returns the English name of the category, or "" when unknown.
func (c TaxCategory) Name() string {
	return taxCategoryNames[c]
}
