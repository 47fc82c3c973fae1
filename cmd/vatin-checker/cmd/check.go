package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rezonia/vatin-checker/internal/validation"
)

var (
	inputFiles  []string
	outputFile  string
	parallelism int
)

var checkCmd = &cobra.Command{
	Use:   "check [vatins...]",
	Short: "Check VAT identification numbers",
	Long: `Check one or more VATINs given as arguments or read from files.

Files hold one identifier per line; empty lines are skipped and every other
line is checked exactly as written. Results keep the input order: arguments
first, then each file in flag order.

The command fails when at least one identifier is invalid.

Examples:
  vatin-checker check ATU13585627
  vatin-checker check --file a.txt --file b.txt -f csv -o results.csv
  vatin-checker check DE136695977 --lang de -f table`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringSliceVarP(&inputFiles, "file", "F", nil, "Read identifiers from file, one per line (repeatable)")
	checkCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	checkCmd.Flags().IntVar(&parallelism, "parallel", 4, "Number of files read concurrently")
}

// CheckResult is the outcome for one identifier
type CheckResult struct {
	Source       string `json:"source"`
	Line         int    `json:"line,omitempty"`
	VATIN        string `json:"vatin"`
	Valid        bool   `json:"valid"`
	Country      string `json:"country,omitempty"`
	HasValidator bool   `json:"has_validator"`
	SyntaxOnly   bool   `json:"syntax_only,omitempty"`
	Format       string `json:"format,omitempty"`
	Message      string `json:"message,omitempty"`
}

type input struct {
	source string
	line   int
	vatin  string
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && len(inputFiles) == 0 {
		return fmt.Errorf("no identifiers given: pass them as arguments or use --file")
	}

	inputs := make([]input, 0, len(args))
	for i, arg := range args {
		inputs = append(inputs, input{source: "arg", line: i + 1, vatin: arg})
	}

	fromFiles, err := readInputFiles(cmd.Context(), inputFiles, parallelism)
	if err != nil {
		return err
	}
	inputs = append(inputs, fromFiles...)
	printVerbose("Checking %d identifiers\n", len(inputs))

	v := newValidator()
	results := make([]*CheckResult, 0, len(inputs))
	invalid := 0
	for _, in := range inputs {
		r := checkOne(v, in)
		if !r.Valid {
			invalid++
			log.Debug("invalid vatin", slog.String("source", r.Source), slog.Int("line", r.Line), slog.String("vatin", r.VATIN))
		}
		results = append(results, r)
	}

	if err := writeResults(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d identifiers are invalid", invalid, len(results))
	}
	return nil
}

func checkOne(v *validation.Validator, in input) *CheckResult {
	registry := v.Registry()
	result := v.Validate(in.vatin)

	r := &CheckResult{
		Source:       in.source,
		Line:         in.line,
		VATIN:        in.vatin,
		Valid:        result.Valid,
		HasValidator: registry.HasValidator(in.vatin),
		Message:      result.Message(),
	}
	if r.HasValidator {
		rule, _ := registry.Rule(in.vatin[:2])
		r.Country = rule.Country()
		r.SyntaxOnly = rule.SyntaxOnly()
		r.Format, _ = registry.MatchedFormat(in.vatin)
	}
	return r
}

// readInputFiles reads files concurrently. The result holds the lines of the
// first file, then of the second, and so on.
func readInputFiles(ctx context.Context, files []string, limit int) ([]input, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	perFile := make([][]input, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines, err := readLines(path)
			if err != nil {
				return err
			}
			perFile[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var inputs []input
	for _, lines := range perFile {
		inputs = append(inputs, lines...)
	}
	return inputs, nil
}

func readLines(path string) ([]input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []input
	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		n++
		if scanner.Text() == "" {
			continue
		}
		lines = append(lines, input{source: path, line: n, vatin: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

func writeResults(stdout io.Writer, results []*CheckResult) error {
	w := stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch outputFormat {
	case "json":
		return outputJSON(w, results)
	case "table":
		return outputTable(w, results)
	case "csv":
		return outputCSV(w, results)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func outputJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func outputTable(w io.Writer, results []*CheckResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VATIN\tVALID\tCOUNTRY\tFORMAT\tMESSAGE")
	fmt.Fprintln(tw, "-----\t-----\t-------\t------\t-------")

	for _, r := range results {
		status := "yes"
		if !r.Valid {
			status = "NO"
		} else if !r.HasValidator {
			status = "yes (unchecked)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.VATIN, status, r.Country, r.Format, r.Message)
	}

	return tw.Flush()
}

func outputCSV(w io.Writer, results []*CheckResult) error {
	fmt.Fprintln(w, "source,line,vatin,valid,country,has_validator,syntax_only,format,message")

	for _, r := range results {
		fmt.Fprintf(w, "%s,%d,%s,%t,%s,%t,%t,%s,%s\n",
			escapeCSV(r.Source),
			r.Line,
			escapeCSV(r.VATIN),
			r.Valid,
			r.Country,
			r.HasValidator,
			r.SyntaxOnly,
			r.Format,
			escapeCSV(r.Message),
		)
	}
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n\r") {
		return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
	}
	return s
}
