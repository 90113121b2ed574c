package cmd

import (
	"github.com/jjtimmons/seqan/internal/analyze"
	"github.com/spf13/cobra"
)

// orfCmd is for finding the longest or shortest open reading frames
var orfCmd = &cobra.Command{
	Use:                        "orf [fasta]",
	Short:                      "Find the longest or shortest ORFs in a reading frame",
	Run:                        analyze.ORFCmd,
	SuggestionsMinimumDistance: 2,
	Example: `  seqan orf genes.fa --frame 2
  seqan orf genes.fa --id NM_000797 --shortest`,
	Long: `Find the longest (or, with --shortest, the shortest) open reading frames.

An ORF runs from an ATG start codon to any later TAA, TAG or TGA stop codon in
the same reading frame, and its length is the number of codons it spans. Every
start is paired with every later stop.

With --id only that sequence's ORFs are compared. Otherwise each sequence's
best ORF is compared against every other sequence's best.`,
	Aliases: []string{"orfs"},
}

func init() {
	orfCmd.Flags().StringP("id", "i", "", "limit to one sequence, by identifier or its prefix")
	orfCmd.Flags().Bool("exact", false, "match the identifier exactly")
	orfCmd.Flags().IntP("frame", "f", 1, "reading frame: 1, 2 or 3")
	orfCmd.Flags().Bool("shortest", false, "find the shortest ORFs rather than the longest")
	orfCmd.Flags().Bool("ties", false, "list every tied sequence")
	orfCmd.Flags().BoolP("interactive", "I", false, "ask before listing tied sequences")

	RootCmd.AddCommand(orfCmd)
}
