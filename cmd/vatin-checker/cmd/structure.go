package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/vatin-checker/internal/structure"
	"github.com/rezonia/vatin-checker/internal/validation"
)

var (
	structureMatch bool
	structureAll   bool
)

var structureCmd = &cobra.Command{
	Use:   "structure [vatin]",
	Short: "Show the expected structure of VATINs",
	Long: `Show the pattern and examples of the VATINs of a country.

By default the structure is looked up by the first two characters of the
argument, so a country prefix is enough. With --match the whole argument must
match a pattern instead.

Examples:
  vatin-checker structure AT
  vatin-checker structure --match CHE116281710MWST
  vatin-checker structure --all -f table`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStructure,
}

func init() {
	rootCmd.AddCommand(structureCmd)

	structureCmd.Flags().BoolVar(&structureMatch, "match", false, "Find the structure whose pattern matches the whole argument")
	structureCmd.Flags().BoolVar(&structureAll, "all", false, "List all structures")
}

// StructureOutput describes one structure
type StructureOutput struct {
	Country     string   `json:"country"`
	CountryCode string   `json:"country_code"`
	Name        string   `json:"name"`
	Pattern     string   `json:"pattern"`
	Examples    []string `json:"examples"`
}

func runStructure(cmd *cobra.Command, args []string) error {
	v := newValidator()
	catalog := v.Catalog()

	var found []*structure.Structure
	switch {
	case structureAll:
		found = catalog.All()
	case len(args) == 0:
		return fmt.Errorf("a vatin or country prefix is required unless --all is set")
	case structureMatch:
		s, ok := catalog.FindByFullMatch(args[0])
		if !ok {
			return fmt.Errorf("no structure matches %q", args[0])
		}
		found = append(found, s)
	default:
		s, ok := catalog.FindByCountryPrefix(args[0])
		if !ok {
			return fmt.Errorf("no structure for prefix %q", args[0])
		}
		found = append(found, s)
	}

	out := make([]StructureOutput, 0, len(found))
	for _, s := range found {
		out = append(out, structureOutput(v, s))
	}

	if outputFormat == "json" {
		return outputJSON(cmd.OutOrStdout(), out)
	}
	return structureTable(cmd.OutOrStdout(), out)
}

func structureOutput(v *validation.Validator, s *structure.Structure) StructureOutput {
	return StructureOutput{
		Country:     s.Country(),
		CountryCode: s.CountryCode(),
		Name:        v.CountryName(s.Country()),
		Pattern:     s.Pattern(),
		Examples:    s.Examples(),
	}
}

func structureTable(w io.Writer, out []StructureOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PREFIX\tCOUNTRY\tPATTERN\tEXAMPLES")
	for _, s := range out {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.CountryCode, s.Name, s.Pattern, strings.Join(s.Examples, ", "))
	}
	return tw.Flush()
}
