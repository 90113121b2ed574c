package cmd

import (
	"github.com/jjtimmons/seqan/internal/analyze"
	"github.com/spf13/cobra"
)

// countCmd is for counting the sequences in a file
var countCmd = &cobra.Command{
	Use:                        "count [fasta]",
	Short:                      "Count the sequences in a FASTA file",
	Run:                        analyze.CountCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  seqan count genes.fa",
	Aliases:                    []string{"ls"},
}

func init() {
	RootCmd.AddCommand(countCmd)
}
