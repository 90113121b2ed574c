package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jjtimmons/seqan/internal/seqan"
)

var (
	primaryColor = lipgloss.Color("#7C3AED")
	mutedColor   = lipgloss.Color("#9CA3AF")

	titleStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)

	noteStyle = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
)

// report is the result of one command, written as a table or as JSON.
type report interface {
	write(w io.Writer) error
}

// Output is the JSON written with --out.
type Output struct {
	// Command that was run, ex: "orf"
	Command string `json:"command"`

	// Input FASTA file
	Input string `json:"input"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Result of the command
	Result report `json:"result"`
}

// emit writes a report to the out file as JSON or, without one, to w.
func emit(w io.Writer, command string, flags *Flags, start time.Time, r report) error {
	if flags.out == "" {
		return r.write(w)
	}

	_, err := writeJSON(flags.out, command, flags.in, r, time.Since(start).Seconds())
	if err != nil {
		return err
	}
	logger.Info("wrote output", "path", flags.out)
	return nil
}

// writeJSON wraps a report in an Output and writes it to filename.
func writeJSON(filename, command, input string, r report, seconds float64) ([]byte, error) {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	out, err := json.MarshalIndent(Output{
		Command:   command,
		Input:     input,
		Time:      stamp,
		Execution: seconds,
		Result:    r,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize output: %v", err)
	}

	if err = os.WriteFile(filename, out, 0644); err != nil {
		return nil, fmt.Errorf("failed to write the output: %v", err)
	}
	return out, nil
}

// tableWriter is a tabwriter with the spacing used by every table
func tableWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
}

// countReport is the number of sequences in a file.
type countReport struct {
	Sequences int `json:"sequences"`
}

func (r *countReport) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Number of sequences in file: %d.\n", r.Sequences)
	return err
}

// sequenceReport is one sequence.
type sequenceReport struct {
	ID       string `json:"id"`
	Length   int    `json:"length"`
	Sequence string `json:"seq"`
}

func (r *sequenceReport) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", titleStyle.Render(">"+r.ID), r.Sequence, noteStyle.Render(fmt.Sprintf("%d nt", r.Length)))
	return err
}

// lengthReport is the shortest or longest sequences in a file.
type lengthReport struct {
	Direction string                    `json:"direction"`
	Best      seqan.Superlative[string] `json:"best"`

	// whether to list every tied identifier
	listTies bool
}

func (r *lengthReport) write(w io.Writer) error {
	if !r.Best.Tied() {
		_, err := fmt.Fprintf(w, "%s %s %s\n", titleStyle.Render(capitalize(r.Direction)+" sequence:"), r.Best.Winner(), noteStyle.Render(fmt.Sprintf("(%d nt)", r.Best.Length)))
		return err
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d sequences tie for %s at %d nt", len(r.Best.Keys), r.Direction, r.Best.Length)))
	return writeTies(w, r.Best.Keys, r.listTies)
}

// frameReport is the codons of one sequence in a reading frame.
type frameReport struct {
	ID     string      `json:"id"`
	Frame  int         `json:"frame"`
	Codons seqan.Frame `json:"codons"`
}

func (r *frameReport) write(w io.Writer) error {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s frame %d", r.ID, r.Frame)), noteStyle.Render(fmt.Sprintf("(%d codons)", len(r.Codons))))
	_, err := fmt.Fprintln(w, r.Codons.String())
	return err
}

// orfRow is an ORF with its nucleotide coordinates, for display.
type orfRow struct {
	ID     string `json:"id"`
	Start  int    `json:"start"`
	Stop   int    `json:"stop"`
	Codons int    `json:"codons"`
	From   int    `json:"from"`
	To     int    `json:"to"`
}

func newORFRow(id string, frameNumber int, o seqan.ORF) orfRow {
	from, to := o.Span(frameNumber)
	return orfRow{ID: id, Start: o.Start, Stop: o.Stop, Codons: o.Len(), From: from + 1, To: to}
}

// writeORFRows writes ORFs as a table with 1-based, inclusive, nucleotide coordinates
func writeORFRows(w io.Writer, rows []orfRow) error {
	tw := tableWriter(w)
	fmt.Fprintf(tw, "id\tstart codon\tstop codon\tcodons\tnt start\tnt end\t\n")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t\n", r.ID, r.Start, r.Stop, r.Codons, r.From, r.To)
	}
	return tw.Flush()
}

// sequenceORFReport is the shortest or longest ORFs of one sequence.
type sequenceORFReport struct {
	ID        string   `json:"id"`
	Frame     int      `json:"frame"`
	Direction string   `json:"direction"`
	Length    int      `json:"length"`
	ORFs      []orfRow `json:"orfs"`
}

func (r *sequenceORFReport) write(w io.Writer) error {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s ORF of %s in frame %d: %d codons", capitalize(r.Direction), r.ID, r.Frame, r.Length)))
	return writeORFRows(w, r.ORFs)
}

// fileORFReport is the shortest or longest ORFs across a file.
type fileORFReport struct {
	Frame     int                       `json:"frame"`
	Direction string                    `json:"direction"`
	Best      seqan.Superlative[string] `json:"best"`
	ORFs      []orfRow                  `json:"orfs"`

	// whether to list every tied identifier
	listTies bool
}

func (r *fileORFReport) write(w io.Writer) error {
	if !r.Best.Tied() {
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s ORF in frame %d: %d codons, in %s", capitalize(r.Direction), r.Frame, r.Best.Length, r.Best.Winner())))
		return writeORFRows(w, r.ORFs)
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d sequences tie for the %s ORF in frame %d at %d codons", len(r.Best.Keys), r.Direction, r.Frame, r.Best.Length)))
	if !r.listTies {
		return writeTies(w, r.Best.Keys, false)
	}
	return writeORFRows(w, r.ORFs)
}

// repeatRow is one substring and its count.
type repeatRow struct {
	Substring string `json:"substring"`
	Count     int    `json:"count"`
}

// repeatReport is the most frequent substrings of a length.
type repeatReport struct {
	Length int           `json:"length"`
	Best   seqan.Repeats `json:"best"`

	// every substring, most frequent first, with --all
	Table []repeatRow `json:"table,omitempty"`
}

func (r *repeatReport) write(w io.Writer) error {
	title := "Most frequent substring"
	if len(r.Best.Substrings) > 1 {
		title = fmt.Sprintf("%d substrings tie for most frequent", len(r.Best.Substrings))
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s of length %d", title, r.Length)), noteStyle.Render(fmt.Sprintf("(%d occurrences)", r.Best.Count)))

	rows := r.Table
	if rows == nil {
		for _, s := range r.Best.Substrings {
			rows = append(rows, repeatRow{Substring: s, Count: r.Best.Count})
		}
	}

	tw := tableWriter(w)
	fmt.Fprintf(tw, "substring\tcount\t\n")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%d\t\n", row.Substring, row.Count)
	}
	return tw.Flush()
}

// substringReport is the count of one substring.
type substringReport struct {
	Substring string `json:"substring"`
	Count     int    `json:"count"`
}

func (r *substringReport) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s occurs %d times\n", titleStyle.Render(r.Substring), r.Count)
	return err
}

// writeTies lists tied identifiers, or says how to list them.
func writeTies(w io.Writer, ids []string, list bool) error {
	if !list {
		_, err := fmt.Fprintln(w, noteStyle.Render("first: "+ids[0]+" (pass --ties to list all)"))
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}

// capitalize uppercases the first letter of s
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
