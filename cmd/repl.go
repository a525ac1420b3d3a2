/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive calculator",
	Long: `Starts the interactive shell. It first asks for the input mode and whether to
always show the per-roll detail, then calculates until you type 'exit'.

Input modes:
	1. detailed  one prompt per value
	2. quick     one line: hp,attack,def,evd[,dice] or hp attack def evd [dice]

Passing --mode skips the start-up questions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd, !cmd.Flags().Changed("mode"))
	},
}

func runREPL(cmd *cobra.Command, setup bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	if err := RunTUI(a.session.Config(), a.format, a.log, setup); err != nil {
		return fmt.Errorf("interactive shell failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Thanks for using ojcalc!")
	return nil
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringP("mode", "m", "", "input mode: detailed or quick")
	viper.BindPFlag("input_mode", replCmd.Flags().Lookup("mode"))
}
