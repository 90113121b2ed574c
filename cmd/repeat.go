package cmd

import (
	"github.com/jjtimmons/seqan/internal/analyze"
	"github.com/spf13/cobra"
)

// repeatCmd is for counting repeated substrings
var repeatCmd = &cobra.Command{
	Use:                        "repeat [fasta]",
	Short:                      "Find the most frequent substrings of a length",
	Run:                        analyze.RepeatCmd,
	SuggestionsMinimumDistance: 2,
	Example: `  seqan repeat genes.fa --length 6
  seqan repeat genes.fa --substring GAATTC`,
	Long: `Count every substring of --length across all sequences, overlaps included,
and log the most frequent. With --substring, count just that one.

Every substring is held in memory: this is meant for files of genes, not
whole genomes.`,
	Aliases: []string{"repeats"},
}

func init() {
	repeatCmd.Flags().IntP("length", "n", 3, "substring length")
	repeatCmd.Flags().StringP("substring", "s", "", "count a single substring")
	repeatCmd.Flags().BoolP("all", "a", false, "log the count of every substring")

	RootCmd.AddCommand(repeatCmd)
}
