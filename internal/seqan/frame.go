package seqan

import (
	"fmt"
	"strings"
)

// codonLength is the number of nucleotides in a codon
const codonLength = 3

// Frame is a reading frame: the codons of one sequence starting at a fixed
// offset. Frame[i] begins at sequence position offset + 3*i.
type Frame []string

// NewFrame slices seq into codons for frame number 1, 2 or 3 (offsets 0, 1
// and 2). A trailing window shorter than a codon is dropped, so a frame
// holds floor((len(seq) - offset) / 3) codons.
func NewFrame(frameNumber int, seq string) (Frame, error) {
	if err := checkFrame(frameNumber); err != nil {
		return nil, err
	}

	offset := frameNumber - 1
	if len(seq) <= offset {
		return Frame{}, nil
	}

	frame := make(Frame, 0, (len(seq)-offset)/codonLength)
	for i := offset; i+codonLength <= len(seq); i += codonLength {
		frame = append(frame, seq[i:i+codonLength])
	}
	return frame, nil
}

func checkFrame(frameNumber int) error {
	if frameNumber < 1 || frameNumber > 3 {
		return fmt.Errorf("frame %d is not one of 1, 2 or 3: %w", frameNumber, ErrInvalidFrame)
	}
	return nil
}

// String returns the codons separated by spaces.
func (f Frame) String() string {
	return strings.Join(f, " ")
}
