package cmd

import (
	"github.com/jjtimmons/seqan/internal/analyze"
	"github.com/spf13/cobra"
)

// lengthCmd is for finding the longest or shortest sequences
var lengthCmd = &cobra.Command{
	Use:                        "length [fasta]",
	Short:                      "Find the longest or shortest sequences",
	Run:                        analyze.LengthCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  seqan length genes.fa --shortest --ties",
	Long: `Find the longest (or, with --shortest, the shortest) sequences in a FASTA file.

When several sequences share the extreme length only the first is logged unless
--ties is passed. --interactive asks whether to list them.`,
	Aliases: []string{"longest", "shortest"},
}

func init() {
	lengthCmd.Flags().Bool("shortest", false, "find the shortest sequences rather than the longest")
	lengthCmd.Flags().Bool("ties", false, "list every tied sequence")
	lengthCmd.Flags().BoolP("interactive", "I", false, "ask before listing tied sequences")

	RootCmd.AddCommand(lengthCmd)
}
