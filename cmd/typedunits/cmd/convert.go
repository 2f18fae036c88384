package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mhucka/typedunits/catalog"
)

// numberPrinter formats converted values with locale-aware separators.
var numberPrinter = message.NewPrinter(language.English)

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from> <to>",
	Short: "Convert a value between commensurable units",
	Long: `Convert a numeric value expressed in one unit into another,
commensurable unit.

Examples:
  typedunits convert 100 km/h m/s
  typedunits convert 1 kg g`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], args[1], args[2])
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(rawValue, from, to string) error {
	value, err := strconv.ParseFloat(rawValue, 64)
	if err != nil {
		return fmt.Errorf("convert: invalid value %q: %w", rawValue, err)
	}

	db := catalog.Default()
	db.AutoCreateUnits = viper.GetBool("auto_create_units")

	source, err := db.NewQuantity(complex(value, 0), from)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	target, err := db.NewQuantity(1, to)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	result, err := source.At(target)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	numberPrinter.Printf("%v %s = %.6g %s\n", value, from, real(result), to)
	return nil
}
