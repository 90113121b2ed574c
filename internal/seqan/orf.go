package seqan

import (
	"fmt"
	"strings"
)

var (
	// StartCodons are the codons that open an ORF by default.
	StartCodons = []string{"ATG"}

	// StopCodons are the codons that close an ORF by default.
	StopCodons = []string{"TAA", "TAG", "TGA"}

	defaultLocator = NewLocator(StartCodons, StopCodons)
)

// ORF is an open reading frame: the codon index of a start codon and of a
// later stop codon within one Frame.
type ORF struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
}

// Len is the number of codons spanned by the ORF, start and stop included.
// It's the only length ORFs are compared by.
func (o ORF) Len() int {
	return o.Stop - o.Start + 1
}

// Span returns the zero-based, end-exclusive nucleotide range of the ORF
// within the sequence a frame (by number) was built from.
func (o ORF) Span(frameNumber int) (start, end int) {
	offset := frameNumber - 1
	return offset + codonLength*o.Start, offset + codonLength*(o.Stop+1)
}

// Sequence returns the nucleotides of the ORF within its frame.
func (o ORF) Sequence(f Frame) string {
	return strings.Join(f[o.Start:o.Stop+1], "")
}

func (o ORF) String() string {
	return fmt.Sprintf("%d-%d", o.Start, o.Stop)
}

// Locator finds ORFs in reading frames for a set of start and stop codons.
type Locator struct {
	starts map[string]bool
	stops  map[string]bool
}

// NewLocator returns a Locator for the start and stop codons passed.
// Codons are matched case-sensitively.
func NewLocator(starts, stops []string) *Locator {
	l := &Locator{
		starts: make(map[string]bool, len(starts)),
		stops:  make(map[string]bool, len(stops)),
	}
	for _, c := range starts {
		l.starts[c] = true
	}
	for _, c := range stops {
		l.stops[c] = true
	}
	return l
}

// Locate returns every ORF in the frame using the ATG start codon and the
// TAA, TAG and TGA stop codons.
func Locate(f Frame) []ORF {
	return defaultLocator.Locate(f)
}

// Locate returns every pairing of a start codon with a stop codon after it.
//
// A start pairs with every later stop and a stop closes every earlier start,
// ordered by start then stop. The cost is O(starts * stops), not linear in
// the frame's length.
func (l *Locator) Locate(f Frame) []ORF {
	var starts, stops []int
	for i, codon := range f {
		if l.starts[codon] {
			starts = append(starts, i)
		}
		if l.stops[codon] {
			stops = append(stops, i)
		}
	}

	var orfs []ORF
	for _, i := range starts {
		for _, j := range stops {
			if i < j {
				orfs = append(orfs, ORF{Start: i, Stop: j})
			}
		}
	}
	return orfs
}
