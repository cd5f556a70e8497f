package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
)

var (
	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "pdict",
		Short: "explore persistent dictionaries",
		Long: fmt.Sprintf(`pdict (v%s)

Runs scripts creating and querying versions of a persistent dictionary,
which shares one hash table between all versions of a family.`, Version),
		PersistentPreRunE: setupConfig,
		SilenceUsage:      true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of pdict",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pdict v%s\n", Version)
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(versionCmd)

	RootCmd.PersistentFlags().String("trace", "error", "trace level (error, info, debug)")
	RootCmd.PersistentFlags().Bool("check", false, "verify all versions after every statement")
	RootCmd.PersistentFlags().Bool("stats", false, "print family statistics when done")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
