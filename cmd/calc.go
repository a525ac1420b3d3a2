/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// calcCmd runs a single calculation and exits
var calcCmd = &cobra.Command{
	Use:   "calc <hp> <attack> <def> <evd> [dice...]",
	Short: "Calculate DEF and EVD survival once and print the result",
	Long: `Reads hp, attack, def and evd followed by optional dice faces, separated by
commas or spaces. Dice default to a single six-sided die and accept NdS
notation (2d6 is the same as 6 6).

Negative stats must come after "--" or inside a comma list so they are not
read as flags.`,
	Example: `  ojcalc calc 3 5 2 1
  ojcalc calc 3,5,2,1,6,6
  ojcalc calc 10 8 0 0 2d6 --detail
  ojcalc calc -- 4 6 -1 -2
  ojcalc calc 3 5 2 1 --format yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuick(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
}
