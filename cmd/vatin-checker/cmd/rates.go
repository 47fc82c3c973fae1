package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rezonia/vatin-checker/internal/rates"
)

var (
	rateAmount string
	rateID     string
)

var ratesCmd = &cobra.Command{
	Use:   "rates [country]",
	Short: "List VAT rates",
	Long: `List the VAT rate items of all countries or of one country prefix.

With --amount the VAT and the gross amount of a net amount are computed for
every listed rate, rounded to cents.

Examples:
  vatin-checker rates DE
  vatin-checker rates --id fr-reduced-2 --amount 100 -f table`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRates,
}

func init() {
	rootCmd.AddCommand(ratesCmd)

	ratesCmd.Flags().StringVar(&rateAmount, "amount", "", "Net amount to compute VAT for")
	ratesCmd.Flags().StringVar(&rateID, "id", "", "Show a single rate item")
}

// RateOutput describes one rate item, with amounts when requested
type RateOutput struct {
	ID          string           `json:"id"`
	Country     string           `json:"country"`
	Category    string           `json:"category"`
	TaxCategory string           `json:"tax_category"`
	Percentage  decimal.Decimal  `json:"percentage"`
	VAT         *decimal.Decimal `json:"vat,omitempty"`
	Gross       *decimal.Decimal `json:"gross,omitempty"`
}

func runRates(cmd *cobra.Command, args []string) error {
	v := newValidator()
	catalog := v.Rates()

	var items []rates.Item
	switch {
	case rateID != "":
		item, ok := catalog.Lookup(rateID)
		if !ok {
			return fmt.Errorf("%s: %s", v.ValidateItem(rateID).Message(), rateID)
		}
		items = []rates.Item{item}
	case len(args) == 1:
		items = catalog.ForCountry(args[0])
		if len(items) == 0 {
			return fmt.Errorf("no VAT rates for country %q", args[0])
		}
	default:
		items = catalog.All()
	}

	var amount *decimal.Decimal
	if rateAmount != "" {
		d, err := decimal.NewFromString(rateAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", rateAmount, err)
		}
		amount = &d
	}

	out := make([]RateOutput, 0, len(items))
	for _, item := range items {
		o := RateOutput{
			ID:          item.ID,
			Country:     item.Country,
			Category:    string(item.Category),
			TaxCategory: string(item.Category.TaxCategory()),
			Percentage:  item.Percentage,
		}
		if amount != nil {
			vat := item.TaxOn(*amount)
			gross := item.GrossOf(*amount)
			o.VAT, o.Gross = &vat, &gross
		}
		out = append(out, o)
	}

	if outputFormat == "json" {
		return outputJSON(cmd.OutOrStdout(), out)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOUNTRY\tCATEGORY\tPERCENT\tVAT\tGROSS")
	for _, o := range out {
		vat, gross := "", ""
		if o.VAT != nil {
			vat, gross = o.VAT.StringFixed(2), o.Gross.StringFixed(2)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", o.ID, o.Country, o.Category, o.Percentage, vat, gross)
	}
	return tw.Flush()
}
