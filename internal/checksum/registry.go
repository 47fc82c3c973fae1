// Package checksum checks VAT identification numbers (VATINs) against the
// published syntax and check digit rules of each supported country.
//
// A VATIN is a two letter country prefix followed by a country specific body.
// The registry dispatches the body to the rule of its country. Countries
// without a rule are accepted: the engine only rejects what it can disprove.
//
// All functions are pure and the registry is immutable once built, so every
// call is safe for concurrent use.
package checksum

import (
	"fmt"
	"sort"
	"sync"
)

// Func checks a VATIN body, the part after the two letter country prefix.
type Func func(body string) bool

// DefaultFormat names the only format of a country without alternatives.
const DefaultFormat = "default"

// format is one alternative of a multi-format country, tried in declaration order.
type format struct {
	name  string
	match Func
}

// firstFormat returns the name of the first format accepting body.
func firstFormat(body string, formats []format) (string, bool) {
	for _, f := range formats {
		if f.match(body) {
			return f.name, true
		}
	}
	return "", false
}

// Rule is the registered check of one country.
type Rule struct {
	country    string
	check      Func
	syntaxOnly bool
	formats    []format
}

// Country returns the canonical country code the rule was registered with.
// The GR alias reports EL.
func (r *Rule) Country() string { return r.country }

// Check runs the rule against a body without country prefix.
func (r *Rule) Check(body string) bool { return r.check(body) }

// SyntaxOnly reports whether the rule checks length and character classes only.
// No checksum algorithm is published for these countries.
func (r *Rule) SyntaxOnly() bool { return r.syntaxOnly }

// Formats lists the alternative body formats in the order they are tried.
func (r *Rule) Formats() []string {
	if len(r.formats) == 0 {
		return []string{DefaultFormat}
	}
	names := make([]string, 0, len(r.formats))
	for _, f := range r.formats {
		names = append(names, f.name)
	}
	return names
}

// Registry maps country codes to rules. It is never modified after NewRegistry returns.
type Registry struct {
	rules map[string]*Rule
}

// NewRegistry builds the registry of all supported countries.
// EL and GR resolve to the same rule.
func NewRegistry() *Registry {
	el := &Rule{country: "EL", check: IsValidEL, syntaxOnly: true}

	r := &Registry{rules: make(map[string]*Rule, 29)}
	for _, rule := range []*Rule{
		{country: "AT", check: IsValidAT},
		{country: "BE", check: IsValidBE},
		{country: "BG", check: IsValidBG, formats: bgFormats},
		{country: "CY", check: IsValidCY},
		{country: "CZ", check: IsValidCZ, syntaxOnly: true},
		{country: "DE", check: IsValidDE},
		{country: "DK", check: IsValidDK},
		{country: "EE", check: IsValidEE},
		el,
		{country: "ES", check: IsValidES, syntaxOnly: true},
		{country: "FI", check: IsValidFI},
		{country: "FR", check: IsValidFR, syntaxOnly: true},
		{country: "GB", check: IsValidGB, formats: gbFormats},
		{country: "HR", check: IsValidHR, syntaxOnly: true},
		{country: "HU", check: IsValidHU},
		{country: "IE", check: IsValidIE, formats: ieFormats},
		{country: "IT", check: IsValidIT},
		{country: "LT", check: IsValidLT, formats: ltFormats},
		{country: "LU", check: IsValidLU},
		{country: "LV", check: IsValidLV, syntaxOnly: true},
		{country: "MT", check: IsValidMT, syntaxOnly: true},
		{country: "NL", check: IsValidNL},
		{country: "PL", check: IsValidPL},
		{country: "PT", check: IsValidPT},
		{country: "RO", check: IsValidRO, syntaxOnly: true},
		{country: "SE", check: IsValidSE},
		{country: "SI", check: IsValidSI},
		{country: "SK", check: IsValidSK},
	} {
		r.register(rule.country, rule)
	}
	r.register("GR", el)
	return r
}

func (r *Registry) register(code string, rule *Rule) {
	if _, exists := r.rules[code]; exists {
		panic(fmt.Sprintf("checksum: duplicate rule for country %s", code))
	}
	r.rules[code] = rule
}

// Default returns the process wide registry, built on first use.
var Default = sync.OnceValue(NewRegistry)

// IsValid checks vatin with the default registry.
func IsValid(vatin string) bool {
	return Default().IsValid(vatin)
}

// HasValidator reports whether the default registry has a rule for the prefix of vatin.
func HasValidator(vatin string) bool {
	return Default().HasValidator(vatin)
}

// IsValid checks a full VATIN including its country prefix.
//
// Inputs of two characters or less and inputs with an unknown prefix are
// valid: nothing can be disproved. Only the prefix is case insensitive.
func (r *Registry) IsValid(vatin string) bool {
	if len(vatin) > 2 {
		if rule, ok := r.rules[countryCode(vatin)]; ok {
			return rule.check(vatin[2:])
		}
	}
	return true
}

// HasValidator reports whether a rule exists for the prefix of vatin.
// Unlike IsValid it answers false for inputs of two characters or less.
func (r *Registry) HasValidator(vatin string) bool {
	if len(vatin) <= 2 {
		return false
	}
	_, ok := r.rules[countryCode(vatin)]
	return ok
}

// Rule returns the rule registered for a two letter country code.
func (r *Registry) Rule(code string) (*Rule, bool) {
	if len(code) != 2 {
		return nil, false
	}
	rule, ok := r.rules[countryCode(code)]
	return rule, ok
}

// Countries returns all registered codes, aliases included, in sorted order.
func (r *Registry) Countries() []string {
	codes := make([]string, 0, len(r.rules))
	for code := range r.rules {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// MatchedFormat returns the name of the format that accepts vatin.
// It returns false when there is no rule for the prefix or the body is invalid.
func (r *Registry) MatchedFormat(vatin string) (string, bool) {
	if len(vatin) <= 2 {
		return "", false
	}
	rule, ok := r.rules[countryCode(vatin)]
	if !ok {
		return "", false
	}
	body := vatin[2:]
	if len(rule.formats) > 0 {
		return firstFormat(body, rule.formats)
	}
	if rule.check(body) {
		return DefaultFormat, true
	}
	return "", false
}

// countryCode uppercases the first two bytes with an ASCII only mapping.
func countryCode(vatin string) string {
	return string([]byte{upper(vatin[0]), upper(vatin[1])})
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
