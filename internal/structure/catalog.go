// Package structure holds the per-country VATIN structures: a regular
// expression for the whole identifier and a list of examples. The catalog is
// used for diagnostics such as "a VATIN for Austria looks like ATU13585627"
// and never decides validity on its own.
package structure

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rezonia/vatin-checker/internal/model"
)

// DefaultSource names the embedded data source in load errors.
const DefaultSource = "vatin-data.yaml"

//go:embed data/vatin-data.yaml
var defaultData []byte

// Structure is the shape of the VATINs of one country.
type Structure struct {
	country  string
	pattern  string
	re       *regexp.Regexp
	examples []string
}

// Country returns the ISO 3166-1 region of the issuing country. It can differ
// from the VATIN prefix: Greece is GR but its VATINs start with EL.
func (s *Structure) Country() string { return s.country }

// Pattern returns the regular expression as written in the data source.
func (s *Structure) Pattern() string { return s.pattern }

// Examples returns a copy of the examples in data source order.
func (s *Structure) Examples() []string {
	out := make([]string, len(s.examples))
	copy(out, s.examples)
	return out
}

// CountryCode returns the VATIN prefix, taken from the first example.
func (s *Structure) CountryCode() string {
	return strings.ToUpper(s.examples[0][:2])
}

// Matches reports whether the pattern matches the whole of vatin.
func (s *Structure) Matches(vatin string) bool {
	return s.re.MatchString(vatin)
}

// Catalog is an ordered, immutable list of structures.
type Catalog struct {
	structures []*Structure
}

type document struct {
	Vatins []entry `yaml:"vatins"`
}

type entry struct {
	Country  string   `yaml:"country"`
	Pattern  string   `yaml:"pattern"`
	Examples []string `yaml:"examples"`
}

// Load parses a YAML data source. Any malformed entry fails the whole load;
// the returned error is a *model.LoadError matching model.ErrMalformedData.
func Load(source string, data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, model.NewLoadError(source, -1, "invalid YAML", err)
	}
	if len(doc.Vatins) == 0 {
		return nil, model.NewLoadError(source, -1, "no structures defined", nil)
	}

	c := &Catalog{structures: make([]*Structure, 0, len(doc.Vatins))}
	seen := make(map[string]int, len(doc.Vatins))
	for i, e := range doc.Vatins {
		if e.Country == "" {
			return nil, model.NewLoadError(source, i, "country is empty", nil)
		}
		if e.Pattern == "" {
			return nil, model.NewLoadError(source, i, "pattern is empty", nil)
		}
		if len(e.Examples) == 0 {
			return nil, model.NewLoadError(source, i, "examples list is empty", nil)
		}
		if len(e.Examples[0]) < 2 {
			return nil, model.NewLoadError(source, i, "first example is shorter than a country prefix", nil)
		}
		country := strings.ToUpper(e.Country)
		if prev, dup := seen[country]; dup {
			return nil, model.NewLoadError(source, i, fmt.Sprintf("duplicate country %s (first at entry %d)", country, prev), nil)
		}
		seen[country] = i

		re, err := regexp.Compile(`^(?:` + e.Pattern + `)$`)
		if err != nil {
			return nil, model.NewLoadError(source, i, "pattern does not compile", err)
		}

		c.structures = append(c.structures, &Structure{
			country:  country,
			pattern:  e.Pattern,
			re:       re,
			examples: append([]string(nil), e.Examples...),
		})
	}
	return c, nil
}

// Default returns the catalog of the embedded data source, loaded on first
// use. A broken embedded source is a build defect, so Default panics.
var Default = sync.OnceValue(func() *Catalog {
	c, err := Load(DefaultSource, defaultData)
	if err != nil {
		panic(err)
	}
	return c
})

// FindByFullMatch returns the first structure whose pattern matches the whole
// of vatin. Inputs of two characters or less never match.
func (c *Catalog) FindByFullMatch(vatin string) (*Structure, bool) {
	if len(vatin) <= 2 {
		return nil, false
	}
	for _, s := range c.structures {
		if s.Matches(vatin) {
			return s, true
		}
	}
	return nil, false
}

// FindByCountryPrefix returns the first structure whose first example starts
// with the same two characters as vatin, compared case insensitively. The
// body of vatin is not looked at.
func (c *Catalog) FindByCountryPrefix(vatin string) (*Structure, bool) {
	if len(vatin) < 2 {
		return nil, false
	}
	prefix := vatin[:2]
	for _, s := range c.structures {
		if strings.EqualFold(s.examples[0][:2], prefix) {
			return s, true
		}
	}
	return nil, false
}

// IsValid reports whether any structure matches the whole of vatin.
func (c *Catalog) IsValid(vatin string) bool {
	_, ok := c.FindByFullMatch(vatin)
	return ok
}

// All returns the structures in data source order.
func (c *Catalog) All() []*Structure {
	out := make([]*Structure, len(c.structures))
	copy(out, c.structures)
	return out
}

// Len returns the number of structures.
func (c *Catalog) Len() int { return len(c.structures) }
