package analyze

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jjtimmons/seqan/internal/seqan"
)

const genes = `>seq1 alpha
ATGAAATAGCC
>seq2 beta
CCATGCCCCCCTGA
TTATGTAA
>seq3 gamma
ATGTAA
`

func testStore(t *testing.T, text string) *seqan.Store {
	t.Helper()
	s, err := seqan.NewStore(text)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// stubConfirm replaces the tie prompt for a test, recording whether it ran
func stubConfirm(t *testing.T, answer bool) *bool {
	t.Helper()
	asked := false
	old := confirm
	confirm = func(string) (bool, error) {
		asked = true
		return answer, nil
	}
	t.Cleanup(func() { confirm = old })
	return &asked
}

func Test_count(t *testing.T) {
	r, err := count(testStore(t, genes), &Flags{}, testConf())
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	if err := r.write(&b); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "Number of sequences in file: 3.\n" {
		t.Errorf("count() wrote %q", got)
	}
}

func Test_get(t *testing.T) {
	r, err := get(testStore(t, genes), &Flags{id: "seq2"}, testConf())
	if err != nil {
		t.Fatal(err)
	}

	want := &sequenceReport{ID: "seq2 beta", Length: 22, Sequence: "CCATGCCCCCCTGATTATGTAA"}
	if !reflect.DeepEqual(r, want) {
		t.Errorf("get() = %+v, want %+v", r, want)
	}

	if _, err := get(testStore(t, genes), &Flags{id: "seq9"}, testConf()); !errors.Is(err, seqan.ErrNotFound) {
		t.Errorf("get() error = %v, want %v", err, seqan.ErrNotFound)
	}
}

func Test_length(t *testing.T) {
	tied := ">a\nAAAA\n>b\nCC\n>c\nGGGG\n"

	tests := []struct {
		name      string
		text      string
		flags     Flags
		answer    bool
		want      *lengthReport
		wantAsked bool
	}{
		{
			"longest",
			genes,
			Flags{dir: seqan.Longest, interactive: true},
			false,
			&lengthReport{Direction: "longest", Best: seqan.Superlative[string]{Keys: []string{"seq2 beta"}, Length: 22}},
			false,
		},
		{
			"shortest",
			genes,
			Flags{dir: seqan.Shortest},
			false,
			&lengthReport{Direction: "shortest", Best: seqan.Superlative[string]{Keys: []string{"seq3 gamma"}, Length: 6}},
			false,
		},
		{
			"tie without listing",
			tied,
			Flags{dir: seqan.Longest},
			false,
			&lengthReport{Direction: "longest", Best: seqan.Superlative[string]{Keys: []string{"a", "c"}, Length: 4}},
			false,
		},
		{
			"tie with --ties",
			tied,
			Flags{dir: seqan.Longest, ties: true},
			false,
			&lengthReport{Direction: "longest", Best: seqan.Superlative[string]{Keys: []string{"a", "c"}, Length: 4}, listTies: true},
			false,
		},
		{
			"tie with a yes answer",
			tied,
			Flags{dir: seqan.Longest, interactive: true},
			true,
			&lengthReport{Direction: "longest", Best: seqan.Superlative[string]{Keys: []string{"a", "c"}, Length: 4}, listTies: true},
			true,
		},
		{
			"tie with a no answer",
			tied,
			Flags{dir: seqan.Longest, interactive: true},
			false,
			&lengthReport{Direction: "longest", Best: seqan.Superlative[string]{Keys: []string{"a", "c"}, Length: 4}},
			true,
		},
		{
			"JSON output never asks",
			tied,
			Flags{dir: seqan.Longest, interactive: true, out: "out.json"},
			false,
			&lengthReport{Direction: "longest", Best: seqan.Superlative[string]{Keys: []string{"a", "c"}, Length: 4}, listTies: true},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asked := stubConfirm(t, tt.answer)

			got, err := length(testStore(t, tt.text), &tt.flags, testConf())
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("length() = %+v, want %+v", got, tt.want)
			}
			if *asked != tt.wantAsked {
				t.Errorf("length() asked = %v, want %v", *asked, tt.wantAsked)
			}
		})
	}
}

func Test_frame(t *testing.T) {
	r, err := frame(testStore(t, genes), &Flags{id: "seq2", frame: 3}, testConf())
	if err != nil {
		t.Fatal(err)
	}

	want := &frameReport{ID: "seq2 beta", Frame: 3, Codons: seqan.Frame{"ATG", "CCC", "CCC", "TGA", "TTA", "TGT"}}
	if !reflect.DeepEqual(r, want) {
		t.Errorf("frame() = %+v, want %+v", r, want)
	}

	if _, err := frame(testStore(t, genes), &Flags{id: "seq2", frame: 4}, testConf()); !errors.Is(err, seqan.ErrInvalidFrame) {
		t.Errorf("frame() error = %v, want %v", err, seqan.ErrInvalidFrame)
	}
}

func Test_orf(t *testing.T) {
	tests := []struct {
		name    string
		flags   Flags
		want    report
		wantErr error
	}{
		{
			"file-wide longest",
			Flags{frame: 1, dir: seqan.Longest},
			&fileORFReport{
				Frame:     1,
				Direction: "longest",
				Best:      seqan.Superlative[string]{Keys: []string{"seq1 alpha"}, Length: 3},
				ORFs:      []orfRow{{ID: "seq1 alpha", Start: 0, Stop: 2, Codons: 3, From: 1, To: 9}},
			},
			nil,
		},
		{
			"file-wide shortest",
			Flags{frame: 1, dir: seqan.Shortest},
			&fileORFReport{
				Frame:     1,
				Direction: "shortest",
				Best:      seqan.Superlative[string]{Keys: []string{"seq3 gamma"}, Length: 2},
				ORFs:      []orfRow{{ID: "seq3 gamma", Start: 0, Stop: 1, Codons: 2, From: 1, To: 6}},
			},
			nil,
		},
		{
			"one sequence in frame 3",
			Flags{id: "seq2", frame: 3, dir: seqan.Longest},
			&sequenceORFReport{
				ID:        "seq2 beta",
				Frame:     3,
				Direction: "longest",
				Length:    4,
				ORFs:      []orfRow{{ID: "seq2 beta", Start: 0, Stop: 3, Codons: 4, From: 3, To: 14}},
			},
			nil,
		},
		{
			"one sequence without ORFs",
			Flags{id: "seq2", frame: 1, dir: seqan.Longest},
			nil,
			seqan.ErrEmptyInput,
		},
		{
			"file-wide in frame 2",
			Flags{frame: 2, dir: seqan.Longest},
			&fileORFReport{
				Frame:     2,
				Direction: "longest",
				Best:      seqan.Superlative[string]{Keys: []string{"seq2 beta"}, Length: 2},
				ORFs:      []orfRow{{ID: "seq2 beta", Start: 5, Stop: 6, Codons: 2, From: 17, To: 22}},
			},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := orf(testStore(t, genes), &tt.flags, testConf())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("orf() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("orf() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_orf_noneInFile(t *testing.T) {
	s := testStore(t, ">a\nCCCATG\n>b\nTAAGGG\n")
	if _, err := orf(s, &Flags{frame: 1, dir: seqan.Longest}, testConf()); !errors.Is(err, seqan.ErrEmptyInput) {
		t.Errorf("orf() error = %v, want %v", err, seqan.ErrEmptyInput)
	}
}

func Test_orf_ties(t *testing.T) {
	text := ">a\nATGTAA\n>b\nCCC\n>c\nATGTGA\n"

	stubConfirm(t, false)
	got, err := orf(testStore(t, text), &Flags{frame: 1, dir: seqan.Longest, interactive: true}, testConf())
	if err != nil {
		t.Fatal(err)
	}
	r := got.(*fileORFReport)
	if r.listTies || len(r.ORFs) != 1 || r.ORFs[0].ID != "a" {
		t.Errorf("orf() = %+v, want only the first tied sequence's ORFs", r)
	}

	got, err = orf(testStore(t, text), &Flags{frame: 1, dir: seqan.Longest, ties: true}, testConf())
	if err != nil {
		t.Fatal(err)
	}
	r = got.(*fileORFReport)
	if !r.listTies || len(r.ORFs) != 2 || r.ORFs[1].ID != "c" {
		t.Errorf("orf() = %+v, want both tied sequences' ORFs", r)
	}
}

func Test_repeat(t *testing.T) {
	tests := []struct {
		name    string
		flags   Flags
		want    report
		wantErr error
	}{
		{
			"most frequent tie",
			Flags{length: 3},
			&repeatReport{Length: 3, Best: seqan.Repeats{Substrings: []string{"ATG", "CCC"}, Count: 4}},
			nil,
		},
		{
			"most frequent single",
			Flags{length: 2},
			&repeatReport{Length: 2, Best: seqan.Repeats{Substrings: []string{"CC"}, Count: 7}},
			nil,
		},
		{
			"one substring",
			Flags{length: 3, substring: "ATG"},
			&substringReport{Substring: "ATG", Count: 4},
			nil,
		},
		{
			"length mismatch",
			Flags{length: 2, substring: "ATG"},
			nil,
			seqan.ErrLengthMismatch,
		},
		{
			"zero length",
			Flags{length: 0},
			nil,
			seqan.ErrInvalidLength,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repeat(testStore(t, genes), &tt.flags, testConf())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("repeat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("repeat() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_repeat_all(t *testing.T) {
	got, err := repeat(testStore(t, ">1\nAAAA\n>2\nTAAA\n"), &Flags{length: 3, all: true}, testConf())
	if err != nil {
		t.Fatal(err)
	}

	want := []repeatRow{{"AAA", 3}, {"TAA", 1}}
	if table := got.(*repeatReport).Table; !reflect.DeepEqual(table, want) {
		t.Errorf("repeat() table = %v, want %v", table, want)
	}

	var b bytes.Buffer
	if err := got.write(&b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "TAA") {
		t.Errorf("repeat() wrote %q, want every substring", b.String())
	}
}
