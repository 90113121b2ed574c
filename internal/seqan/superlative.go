package seqan

import (
	"errors"
	"fmt"
)

// Direction is whether the shortest or the longest items are selected.
type Direction int

const (
	// Shortest selects the items with the smallest length.
	Shortest Direction = iota

	// Longest selects the items with the largest length.
	Longest
)

func (d Direction) String() string {
	if d == Shortest {
		return "shortest"
	}
	return "longest"
}

// better reports whether length a strictly beats length b.
func (d Direction) better(a, b int) bool {
	if d == Shortest {
		return a < b
	}
	return a > b
}

// Measured is a keyed item with a length.
type Measured[K any] struct {
	Key    K
	Length int
}

// Superlative is the result of a selection: every key sharing the extreme
// length. A single key means there's one winner, more means a tie.
type Superlative[K any] struct {
	Keys   []K `json:"keys"`
	Length int `json:"length"`
}

// Tied reports whether more than one key shares the extreme length.
func (s Superlative[K]) Tied() bool {
	return len(s.Keys) > 1
}

// Winner returns the first key to reach the extreme length.
func (s Superlative[K]) Winner() K {
	return s.Keys[0]
}

// Select returns the shortest or longest items, in collection order.
//
// The running extreme is seeded from the first item. An item that strictly
// beats it resets the tie set to that item alone; an item equal to it joins
// the tie set.
func Select[K any](items []Measured[K], dir Direction) (Superlative[K], error) {
	if len(items) == 0 {
		return Superlative[K]{}, fmt.Errorf("no items to select the %s of: %w", dir, ErrEmptyInput)
	}

	best := Superlative[K]{Keys: []K{items[0].Key}, Length: items[0].Length}
	for _, item := range items[1:] {
		switch {
		case dir.better(item.Length, best.Length):
			best.Keys = []K{item.Key}
			best.Length = item.Length
		case item.Length == best.Length:
			best.Keys = append(best.Keys, item.Key)
		}
	}
	return best, nil
}

// LengthSuperlative selects the shortest or longest sequences in the store.
func LengthSuperlative(s *Store, dir Direction) (Superlative[string], error) {
	items := make([]Measured[string], 0, s.Count())
	for _, id := range s.ids {
		items = append(items, Measured[string]{Key: id, Length: len(s.seqs[id])})
	}

	best, err := Select(items, dir)
	if err != nil {
		return best, fmt.Errorf("no sequences in the store: %w", err)
	}
	return best, nil
}

// SequenceORFs selects the shortest or longest ORFs of one sequence in a
// reading frame.
func SequenceORFs(s *Store, l *Locator, id string, frameNumber int, dir Direction) (Superlative[ORF], error) {
	seq, err := s.Get(id)
	if err != nil {
		return Superlative[ORF]{}, err
	}

	frame, err := NewFrame(frameNumber, seq)
	if err != nil {
		return Superlative[ORF]{}, err
	}

	orfs := l.Locate(frame)
	items := make([]Measured[ORF], len(orfs))
	for i, o := range orfs {
		items[i] = Measured[ORF]{Key: o, Length: o.Len()}
	}

	best, err := Select(items, dir)
	if err != nil {
		return best, fmt.Errorf("no ORFs in frame %d of %q: %w", frameNumber, id, err)
	}
	return best, nil
}

// FileORFs is the file-wide ORF superlative for one reading frame.
type FileORFs struct {
	// Best holds the identifiers whose own best ORF is the file-wide extreme
	Best Superlative[string] `json:"best"`

	// PerSequence is each sequence's own best ORFs. Sequences without an
	// ORF in the frame are absent
	PerSequence map[string]Superlative[ORF] `json:"perSequence"`
}

// FileORFSuperlative selects the shortest or longest ORFs across every
// sequence. Each sequence's ORFs are reduced to its own best first, then
// those bests are reduced to the file-wide winners. Sequences without ORFs
// don't take part.
func FileORFSuperlative(s *Store, l *Locator, frameNumber int, dir Direction) (FileORFs, error) {
	result := FileORFs{PerSequence: make(map[string]Superlative[ORF])}
	if err := checkFrame(frameNumber); err != nil {
		return result, err
	}

	var bests []Measured[string]
	for _, id := range s.ids {
		best, err := SequenceORFs(s, l, id, frameNumber, dir)
		if err != nil {
			if errors.Is(err, ErrEmptyInput) {
				continue
			}
			return result, err
		}
		result.PerSequence[id] = best
		bests = append(bests, Measured[string]{Key: id, Length: best.Length})
	}

	best, err := Select(bests, dir)
	if err != nil {
		return result, fmt.Errorf("no ORFs in frame %d of any sequence: %w", frameNumber, err)
	}
	result.Best = best
	return result, nil
}
