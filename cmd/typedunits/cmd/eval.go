package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mhucka/typedunits/catalog"
	"github.com/mhucka/typedunits/scale"
	"github.com/mhucka/typedunits/unitarray"
)

var evalCmd = &cobra.Command{
	Use:   "eval <formula>",
	Short: "Parse a unit formula and print its base units and scale",
	Long: `Evaluate a unit formula against the default SI catalog and print
its reduced base units, display units, and scale factor.

Examples:
  typedunits eval "kg*m/s^2"
  typedunits eval "km/h"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEval(args[0])
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(formula string) error {
	db := catalog.Default()
	db.AutoCreateUnits = viper.GetBool("auto_create_units")

	q, err := db.ParseFormula(formula)
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}

	fmt.Printf("value:   %v\n", q.Value)
	fmt.Printf("display: %s\n", unitarray.Format(q.Display))
	fmt.Printf("base:    %s\n", unitarray.Format(q.Base))
	if q.Scale.IsRationalOnly() {
		fmt.Printf("scale:   %s (exact)\n", exactScaleString(q.Scale))
	} else {
		fmt.Printf("scale:   %v\n", scale.Value(q.Scale))
	}
	return nil
}

// exactScaleString renders a rational-only Scale's numer/denom*10^exp10 as a
// decimal string without float round-off, using shopspring/decimal for the
// division.
func exactScaleString(s scale.Scale) string {
	numer := decimal.NewFromBigInt(s.Numer, 0)
	denom := decimal.NewFromBigInt(s.Denom, 0)
	ratio := numer.DivRound(denom, 24)
	exp10 := s.Exp10.Int64()
	return ratio.Shift(int32(exp10)).String()
}
