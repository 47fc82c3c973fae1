package server

import (
	"github.com/shopspring/decimal"
)

// ValidateRequest is the request for the validate endpoint.
// A missing vatin field is rejected; an empty string is a valid input.
type ValidateRequest struct {
	VATIN *string `json:"vatin"`
}

// ValidationResponse describes the validation of one VATIN
type ValidationResponse struct {
	VATIN        string   `json:"vatin"`
	Valid        bool     `json:"valid"`
	Country      string   `json:"country,omitempty"`
	HasValidator bool     `json:"has_validator"`
	SyntaxOnly   bool     `json:"syntax_only"`
	Format       string   `json:"format,omitempty"`
	Message      string   `json:"message,omitempty"`
	Examples     []string `json:"examples,omitempty"`
}

// BatchValidateRequest is the request for the batch validate endpoint
type BatchValidateRequest struct {
	VATINs []string `json:"vatins" binding:"required,min=1"`
}

// BatchValidateResponse holds one result per requested VATIN, in request order
type BatchValidateResponse struct {
	Results []ValidationResponse `json:"results"`
	Valid   int                  `json:"valid"`
	Invalid int                  `json:"invalid"`
}

// CountryResponse describes a country with a checksum rule
type CountryResponse struct {
	Code       string   `json:"code"`
	Country    string   `json:"country"`
	Name       string   `json:"name"`
	SyntaxOnly bool     `json:"syntax_only"`
	Formats    []string `json:"formats"`
}

// StructureResponse describes the VATIN structure of a country
type StructureResponse struct {
	Country     string   `json:"country"`
	CountryCode string   `json:"country_code"`
	Name        string   `json:"name"`
	Pattern     string   `json:"pattern"`
	Examples    []string `json:"examples"`
}

// MatchRequest is the request for the structure match endpoint
type MatchRequest struct {
	VATIN string `json:"vatin" binding:"required"`
}

// RateResponse describes one VAT rate item
type RateResponse struct {
	ID          string          `json:"id"`
	Country     string          `json:"country"`
	Category    string          `json:"category"`
	TaxCategory string          `json:"tax_category"`
	Percentage  decimal.Decimal `json:"percentage"`
}

// CalculateRequest is the request for the rate calculation endpoint
type CalculateRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// CalculateResponse splits a net amount into VAT and gross
type CalculateResponse struct {
	Rate  RateResponse    `json:"rate"`
	Net   decimal.Decimal `json:"net"`
	VAT   decimal.Decimal `json:"vat"`
	Gross decimal.Decimal `json:"gross"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
