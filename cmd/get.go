package cmd

import (
	"github.com/jjtimmons/seqan/internal/analyze"
	"github.com/spf13/cobra"
)

// getCmd is for finding a sequence by its identifier
var getCmd = &cobra.Command{
	Use:                        "get [fasta]",
	Short:                      "Find a sequence by its identifier",
	Run:                        analyze.GetCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  seqan get genes.fa --id NM_000797",
	Long: `Find a sequence by its identifier: the text after '>' in its header.

The first sequence whose identifier starts with --id is returned, unless --exact
is passed. Wrap identifiers with spaces in quotes.`,
	Aliases: []string{"find"},
}

func init() {
	getCmd.Flags().StringP("id", "i", "", "sequence identifier, or its prefix")
	getCmd.Flags().Bool("exact", false, "match the identifier exactly")

	RootCmd.AddCommand(getCmd)
}
