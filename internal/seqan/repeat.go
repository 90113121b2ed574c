package seqan

import (
	"fmt"
	"sort"
	"strings"
)

// Repeats are the most frequent substrings of one length and how often
// each occurs.
type Repeats struct {
	Substrings []string `json:"substrings"`
	Count      int      `json:"count"`
}

// RepeatTable counts every length-n substring of every sequence. Overlapping
// occurrences count separately.
//
// Building the table costs O(total sequence length * n) time and memory: fine
// for a file of genes, not for whole genomes.
func RepeatTable(s *Store, n int) (map[string]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("substring length %d must be positive: %w", n, ErrInvalidLength)
	}

	table := make(map[string]int)
	for _, id := range s.ids {
		seq := s.seqs[id]
		for i := 0; i+n <= len(seq); i++ {
			table[seq[i:i+n]]++
		}
	}
	return table, nil
}

// CountAll returns the most frequent length-n substrings across all
// sequences, sorted, along with their shared count.
func CountAll(s *Store, n int) (Repeats, error) {
	table, err := RepeatTable(s, n)
	if err != nil {
		return Repeats{}, err
	}
	if len(table) == 0 {
		return Repeats{}, fmt.Errorf("no sequence is at least %d long: %w", n, ErrEmptyInput)
	}

	r := Repeats{}
	for sub, count := range table {
		switch {
		case count > r.Count:
			r.Count = count
			r.Substrings = []string{sub}
		case count == r.Count:
			r.Substrings = append(r.Substrings, sub)
		}
	}
	sort.Strings(r.Substrings)
	return r, nil
}

// CountOne returns how often substring occurs, overlaps included, across all
// sequences. n is the length the caller expects substring to have.
func CountOne(s *Store, substring string, n int) (int, error) {
	if n != len(substring) {
		return 0, fmt.Errorf("%q is %d long, not %d: %w", substring, len(substring), n, ErrLengthMismatch)
	}
	if n <= 0 {
		return 0, fmt.Errorf("substring length %d must be positive: %w", n, ErrInvalidLength)
	}

	count := 0
	for _, id := range s.ids {
		seq := s.seqs[id]
		for i := 0; i+n <= len(seq); {
			j := strings.Index(seq[i:], substring)
			if j < 0 {
				break
			}
			count++
			i += j + 1
		}
	}
	return count, nil
}
