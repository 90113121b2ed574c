// Package cmd is for command line interactions with the seqan application
package cmd

import (
	"log"

	"github.com/jjtimmons/seqan/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "seqan",
	Short: `Analyze the sequences in a FASTA file.
Count and find sequences, split them into reading frames, find their ORFs and repeats`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	RootCmd.PersistentFlags().String("settings", config.RootSettingsFile, "settings file (YAML)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output")
	RootCmd.PersistentFlags().StringP("out", "o", "", "write the result to a JSON file")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}
