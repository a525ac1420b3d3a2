/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/suderio/ojcalc/internal/engine"
	"github.com/suderio/ojcalc/internal/logging"
	"github.com/suderio/ojcalc/internal/render"
	"github.com/suderio/ojcalc/internal/session"
)

var (
	cfgFile    string
	quickInput string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ojcalc",
	Short: "DEF/EVD survival calculator for 100% Orange Juice",
	Long: `ojcalc computes the exact chance of surviving an attack when choosing
DEF (defense) or EVD (evasion), enumerating every possible dice roll.

Without arguments it starts the interactive shell. Use -q for a one-line
calculation:

	ojcalc -q "3,5,2,1"       hp,attack,def,evd with one six-sided die
	ojcalc -q "3 5 2 1 6 6"   same values rolling two six-sided dice`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if quickInput != "" {
			return runQuick(cmd, quickInput)
		}
		return runREPL(cmd, true)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ojcalc.yaml)")
	rootCmd.PersistentFlags().BoolP("detail", "d", false, "always show the damage of every dice roll")
	rootCmd.PersistentFlags().StringP("format", "f", string(render.FormatText), "output format: text, yaml or json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every calculation to stderr")
	rootCmd.PersistentFlags().IntSlice("dice", nil, "default dice faces when none are given (e.g. --dice 6,6)")
	rootCmd.PersistentFlags().Int("max_outcomes", session.DefaultMaxOutcomes, "largest number of dice outcomes a calculation may enumerate")

	rootCmd.Flags().StringVarP(&quickInput, "quick", "q", "", `quick input: "hp,attack,def,evd[,dice...]" or "hp attack def evd [dice...]"`)

	viper.BindPFlag("show_detail", rootCmd.PersistentFlags().Lookup("detail"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("default_dice", rootCmd.PersistentFlags().Lookup("dice"))
	viper.BindPFlag("max_outcomes", rootCmd.PersistentFlags().Lookup("max_outcomes"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ojcalc")
	}

	viper.SetEnvPrefix("ojcalc")
	viper.AutomaticEnv()

	viper.SetDefault("input_mode", string(session.ModeDetailed))
	viper.SetDefault("show_detail", false)
	viper.SetDefault("default_dice", []int{engine.DefaultFaces})
	viper.SetDefault("max_outcomes", session.DefaultMaxOutcomes)
	viper.SetDefault("format", string(render.FormatText))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	}
}

// app bundles what every command needs to run a calculation.
type app struct {
	session *session.Session
	format  render.Format
	log     *zap.Logger
}

func sessionConfig() (session.Config, error) {
	cfg := session.DefaultConfig()

	mode, err := session.ParseInputMode(viper.GetString("input_mode"))
	if err != nil {
		return cfg, err
	}
	cfg.Mode = mode
	cfg.ShowDetail = viper.GetBool("show_detail")
	cfg.MaxOutcomes = viper.GetInt("max_outcomes")
	if cfg.MaxOutcomes < 1 {
		return cfg, fmt.Errorf("max_outcomes must be greater than 0 (got %d)", cfg.MaxOutcomes)
	}
	if dice := viper.GetIntSlice("default_dice"); len(dice) > 0 {
		cfg.DefaultDice = engine.Dice(dice)
	}
	return cfg, nil
}

func newApp() (*app, error) {
	log, err := logging.New(viper.GetBool("verbose"))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	cfg, err := sessionConfig()
	if err != nil {
		return nil, err
	}
	format, err := render.ParseFormat(viper.GetString("format"))
	if err != nil {
		return nil, err
	}

	log.Debug("session configured",
		zap.String("mode", string(cfg.Mode)),
		zap.Bool("show_detail", cfg.ShowDetail),
		zap.String("default_dice", cfg.DefaultDice.String()),
		zap.Int("max_outcomes", cfg.MaxOutcomes),
		zap.String("config_file", viper.ConfigFileUsed()))

	return &app{
		session: session.New(cfg, log),
		format:  format,
		log:     log,
	}, nil
}

func runQuick(cmd *cobra.Command, line string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	report, err := a.session.EvaluateQuick(line)
	if err != nil {
		return err
	}
	return render.Write(cmd.OutOrStdout(), a.format, report)
}
