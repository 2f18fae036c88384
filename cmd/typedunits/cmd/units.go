package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhucka/typedunits/catalog"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Inspect the default unit catalog",
}

var unitsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every registered unit name",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range catalog.Default().Names() {
			fmt.Println(name)
		}
		return nil
	},
}

var (
	unitsAddName    string
	unitsAddFormula string
)

var unitsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new derived unit for this session",
	Long: `Register a new derived unit, scoped to this process only (the
default catalog is not persisted between invocations).

Example:
  typedunits units add --name smoot --formula "1.7018*m"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnitsAdd()
	},
}

func init() {
	unitsAddCmd.Flags().StringVar(&unitsAddName, "name", "", "name of the new unit (required)")
	unitsAddCmd.Flags().StringVar(&unitsAddFormula, "formula", "", "formula defining the new unit in terms of known units (required)")
	_ = unitsAddCmd.MarkFlagRequired("name")
	_ = unitsAddCmd.MarkFlagRequired("formula")

	unitsCmd.AddCommand(unitsListCmd)
	unitsCmd.AddCommand(unitsAddCmd)
	rootCmd.AddCommand(unitsCmd)
}

func runUnitsAdd() error {
	db := catalog.Default()
	if err := db.AddScaledUnit(unitsAddName, unitsAddFormula, 1.0, 1, 1, 0); err != nil {
		return fmt.Errorf("units add: %w", err)
	}
	fmt.Printf("registered %q = %s\n", unitsAddName, unitsAddFormula)
	return nil
}
