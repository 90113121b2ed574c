package seqan

import (
	"fmt"
	"strings"
)

// Store is an ordered, read-only catalog of the sequences in a FASTA file.
type Store struct {
	// identifiers in the order their headers appeared
	ids []string

	// map from identifier to its sequence
	seqs map[string]string
}

// NewStore parses FASTA text into a Store.
//
// A line starting with '>' opens a new entry whose identifier is the rest of
// the line. Every following line is appended, as is, to that entry's
// sequence until the next header. Text whose first non-empty line isn't a
// header is rejected with ErrFormat.
func NewStore(text string) (*Store, error) {
	s := &Store{seqs: make(map[string]string)}

	var b strings.Builder
	id := ""
	open := false

	// close the current entry, storing its accumulated sequence
	flush := func() {
		if open {
			s.seqs[id] = b.String()
		}
		b.Reset()
	}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if strings.HasPrefix(line, ">") {
			flush()
			id = line[1:]
			open = true
			if _, seen := s.seqs[id]; !seen {
				s.ids = append(s.ids, id)
			}
			s.seqs[id] = "" // a repeated header starts its sequence over
			continue
		}

		if !open {
			if line == "" {
				continue
			}
			return nil, fmt.Errorf("line %d has sequence data before any header: %w", i+1, ErrFormat)
		}

		b.WriteString(line)
	}
	flush()

	return s, nil
}

// Count returns the number of distinct identifiers.
func (s *Store) Count() int {
	return len(s.ids)
}

// IDs returns the identifiers in store order.
func (s *Store) IDs() []string {
	return append([]string(nil), s.ids...)
}

// Get returns the sequence stored under an exact identifier.
func (s *Store) Get(id string) (string, error) {
	seq, ok := s.seqs[id]
	if !ok {
		return "", fmt.Errorf("no sequence with identifier %q: %w", id, ErrNotFound)
	}
	return seq, nil
}

// FindByPrefix returns the first identifier, in store order, that starts
// with prefix. When several identifiers share the prefix the first wins.
func (s *Store) FindByPrefix(prefix string) (string, error) {
	for _, id := range s.ids {
		if strings.HasPrefix(id, prefix) {
			return id, nil
		}
	}
	return "", fmt.Errorf("no sequence identifier starts with %q: %w", prefix, ErrNotFound)
}

// Len returns the length of the sequence stored under id.
func (s *Store) Len(id string) (int, error) {
	seq, err := s.Get(id)
	if err != nil {
		return 0, err
	}
	return len(seq), nil
}
