package cmd

import (
	"github.com/jjtimmons/seqan/internal/analyze"
	"github.com/spf13/cobra"
)

// browseCmd is for interactively paging through sequences
var browseCmd = &cobra.Command{
	Use:                        "browse [fasta]",
	Short:                      "Browse the sequences in a FASTA file",
	Run:                        analyze.BrowseCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Page through the sequences in a FASTA file with their lengths, ORF
counts and the codons of a reading frame. '/' filters by identifier, 'q' quits.`,
}

func init() {
	browseCmd.Flags().IntP("frame", "f", 1, "reading frame: 1, 2 or 3")

	RootCmd.AddCommand(browseCmd)
}
