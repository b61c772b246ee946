// Command geoextent computes the bounding envelope of a stream of
// Well-Known Text geometries read from stdin, one per line, and prints
// the result as WKT on stdout.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jagill/presto/pkg/geo/geoadapter"
	"github.com/jagill/presto/pkg/geo/geoextent"
	"github.com/jagill/presto/pkg/geo/geoserde"
	"github.com/spf13/cobra"
)

var strategyFlag string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "geoextent",
	Short: "Compute the bounding envelope of a stream of WKT geometries",
	Long: `
geoextent reads one WKT geometry per line from stdin, serializes each
through the wire codec, folds their envelopes into a single running
union, and prints the result as WKT on stdout.

Blank lines are skipped. A line that fails to parse as WKT aborts the run.
`,
	RunE: runExtent,
}

func init() {
	rootCmd.Flags().StringVar(&strategyFlag, "strategy", "native",
		`body encoding strategy to exercise: "native" or "wkb"`)
}

func runExtent(cmd *cobra.Command, args []string) error {
	strategy, err := parseStrategy(strategyFlag)
	if err != nil {
		return err
	}
	codec := geoserde.NewCodec(strategy)
	agg := geoextent.NewAggregator()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		g, err := geoadapter.ParseWKT(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		data, err := codec.Serialize(g)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		if err := agg.Accumulate(data); err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read stdin")
	}

	env, ok := agg.Finalize()
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "GEOMETRYCOLLECTION EMPTY")
		return nil
	}

	poly := geoadapter.PolygonFromEnvelope(env)
	out, err := geoadapter.FormatWKT(poly)
	if err != nil {
		return errors.Wrap(err, "format result")
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func parseStrategy(s string) (geoserde.Strategy, error) {
	switch strings.ToLower(s) {
	case "native", "":
		return geoserde.StrategyNative, nil
	case "wkb":
		return geoserde.StrategyWKB, nil
	default:
		return 0, errors.Newf("unknown strategy %q, want \"native\" or \"wkb\"", s)
	}
}
