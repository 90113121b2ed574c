package analyze

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jjtimmons/seqan/config"
	"github.com/jjtimmons/seqan/internal/seqan"
	"github.com/spf13/cobra"
)

// query builds a command's report from a store.
type query func(s *seqan.Store, flags *Flags, conf *config.Config) (report, error)

// run is the shared body of every command: parse flags, read the FASTA file,
// run the query and write its report. Failures are fatal.
func run(name string, q query) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		start := time.Now()
		flags, conf := parseCmdFlags(cmd, args)

		s, err := read(flags.in)
		if err != nil {
			logger.Fatal(err)
		}

		r, err := q(s, flags, conf)
		if err != nil {
			logger.Fatal(err)
		}

		if err = emit(os.Stdout, name, flags, start, r); err != nil {
			logger.Fatal(err)
		}
		logger.Debug("finished", "cmd", name, "elapsed", time.Since(start))
	}
}

// CountCmd logs the number of sequences in a FASTA file.
var CountCmd = run("count", count)

// GetCmd logs the sequence with a given identifier.
var GetCmd = run("get", get)

// LengthCmd logs the shortest or longest sequences.
var LengthCmd = run("length", length)

// FrameCmd logs the codons of a sequence in a reading frame.
var FrameCmd = run("frame", frame)

// ORFCmd logs the shortest or longest ORFs, in one sequence or across a file.
var ORFCmd = run("orf", orf)

// RepeatCmd logs the most frequent substrings of a length, or the count of
// one substring.
var RepeatCmd = run("repeat", repeat)

func count(s *seqan.Store, _ *Flags, _ *config.Config) (report, error) {
	return &countReport{Sequences: s.Count()}, nil
}

func get(s *seqan.Store, flags *Flags, _ *config.Config) (report, error) {
	id, err := resolve(s, flags)
	if err != nil {
		return nil, err
	}

	seq, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return &sequenceReport{ID: id, Length: len(seq), Sequence: seq}, nil
}

func length(s *seqan.Store, flags *Flags, _ *config.Config) (report, error) {
	best, err := seqan.LengthSuperlative(s, flags.dir)
	if err != nil {
		return nil, err
	}

	r := &lengthReport{Direction: flags.dir.String(), Best: best}
	if best.Tied() {
		question := fmt.Sprintf("%d sequences tie for %s. List them all?", len(best.Keys), flags.dir)
		if r.listTies, err = listTies(flags, question); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func frame(s *seqan.Store, flags *Flags, _ *config.Config) (report, error) {
	id, err := resolve(s, flags)
	if err != nil {
		return nil, err
	}

	seq, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	f, err := seqan.NewFrame(flags.frame, seq)
	if err != nil {
		return nil, err
	}
	return &frameReport{ID: id, Frame: flags.frame, Codons: f}, nil
}

// orf finds the ORF superlative of one sequence when an identifier is passed,
// otherwise of the whole file.
func orf(s *seqan.Store, flags *Flags, conf *config.Config) (report, error) {
	l := locator(conf)

	if flags.id != "" {
		id, err := resolve(s, flags)
		if err != nil {
			return nil, err
		}

		best, err := seqan.SequenceORFs(s, l, id, flags.frame, flags.dir)
		if err != nil {
			return nil, err
		}

		r := &sequenceORFReport{ID: id, Frame: flags.frame, Direction: flags.dir.String(), Length: best.Length}
		for _, o := range best.Keys {
			r.ORFs = append(r.ORFs, newORFRow(id, flags.frame, o))
		}
		return r, nil
	}

	orfs, err := seqan.FileORFSuperlative(s, l, flags.frame, flags.dir)
	if err != nil {
		return nil, err
	}

	r := &fileORFReport{Frame: flags.frame, Direction: flags.dir.String(), Best: orfs.Best}
	if orfs.Best.Tied() {
		question := fmt.Sprintf("%d sequences tie for the %s ORF. List them all?", len(orfs.Best.Keys), flags.dir)
		if r.listTies, err = listTies(flags, question); err != nil {
			return nil, err
		}
	}

	ids := orfs.Best.Keys
	if !r.listTies {
		ids = ids[:1]
	}
	for _, id := range ids {
		for _, o := range orfs.PerSequence[id].Keys {
			r.ORFs = append(r.ORFs, newORFRow(id, flags.frame, o))
		}
	}
	return r, nil
}

// repeat counts one substring when it's passed, otherwise finds the most
// frequent substrings of the length passed.
func repeat(s *seqan.Store, flags *Flags, _ *config.Config) (report, error) {
	if flags.substring != "" {
		n, err := seqan.CountOne(s, flags.substring, flags.length)
		if err != nil {
			return nil, err
		}
		return &substringReport{Substring: flags.substring, Count: n}, nil
	}

	best, err := seqan.CountAll(s, flags.length)
	if err != nil {
		return nil, err
	}
	r := &repeatReport{Length: flags.length, Best: best}

	if flags.all {
		table, err := seqan.RepeatTable(s, flags.length)
		if err != nil {
			return nil, err
		}
		for sub, n := range table {
			r.Table = append(r.Table, repeatRow{Substring: sub, Count: n})
		}
		sort.Slice(r.Table, func(i, j int) bool {
			if r.Table[i].Count != r.Table[j].Count {
				return r.Table[i].Count > r.Table[j].Count
			}
			return r.Table[i].Substring < r.Table[j].Substring
		})
	}
	return r, nil
}

// listTies decides whether every tied identifier is written: always with
// --ties or a JSON output file, after asking with --interactive, otherwise
// never.
func listTies(flags *Flags, question string) (bool, error) {
	if flags.ties || flags.out != "" {
		return true, nil
	}
	if !flags.interactive {
		return false, nil
	}
	return confirm(question)
}
