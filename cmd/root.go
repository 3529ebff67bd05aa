// Package cmd provides the root command and CLI setup for goxform.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"goxform.dev/pkg/goxform/internal/controller"
	"goxform.dev/pkg/goxform/internal/domain"
)

var pipeline domain.Pipeline

// newUI builds the UI a command prints through.
var newUI = func(cmd *cobra.Command) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
}

// inputFS is where the CLI reads inputs from and writes saved artifacts to.
var inputFS afero.Fs

// verboseFlag forces debug logging.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	pipeline = domain.NewLocalPipeline()
	inputFS = afero.NewOsFs()
}

const rootLongDescription = `goxform runs Go AST transforms against sources compiled entirely in
memory. Each input file is seeded into a private virtual filesystem together
with any extra sources and mock packages, type-checked, rewritten by the
selected transforms and printed back.`

const runLongDescription = `Transform each file and print the result.

Every file is an independent run: extra sources (--source) and mock packages
(--mock name=path) are shared by all runs, and runs proceed in parallel up to
--parallel at a time.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "goxform",
		Short:         "In-memory Go AST transform harness",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
