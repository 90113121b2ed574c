package cmd

import (
	"github.com/jjtimmons/seqan/internal/analyze"
	"github.com/spf13/cobra"
)

// frameCmd is for splitting a sequence into codons
var frameCmd = &cobra.Command{
	Use:                        "frame [fasta]",
	Short:                      "Split a sequence into the codons of a reading frame",
	Run:                        analyze.FrameCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  seqan frame genes.fa --id NM_000797 --frame 2",
	Long: `Split a sequence into the codons of reading frame 1, 2 or 3 (starting
0, 1 or 2 nucleotides into the sequence). Trailing nucleotides that don't
fill a codon are dropped.`,
}

func init() {
	frameCmd.Flags().StringP("id", "i", "", "sequence identifier, or its prefix")
	frameCmd.Flags().Bool("exact", false, "match the identifier exactly")
	frameCmd.Flags().IntP("frame", "f", 1, "reading frame: 1, 2 or 3")

	RootCmd.AddCommand(frameCmd)
}
