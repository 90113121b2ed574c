package seqan

import (
	"reflect"
	"testing"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		want  []ORF
	}{
		{
			"every start pairs with every later stop",
			Frame{"CCC", "ATG", "TAA", "CCC", "ATG", "TAG", "CCC", "TGA"},
			[]ORF{{1, 2}, {1, 5}, {1, 7}, {4, 5}, {4, 7}},
		},
		{
			"stop before start is ignored",
			Frame{"TAA", "ATG", "CCC"},
			nil,
		},
		{
			"adjacent start and stop",
			Frame{"ATG", "TGA"},
			[]ORF{{0, 1}},
		},
		{
			"lowercase codons don't match",
			Frame{"atg", "taa"},
			nil,
		},
		{
			"empty frame",
			Frame{},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Locate(tt.frame); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Locate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocate_idempotent(t *testing.T) {
	f, err := NewFrame(1, "ATGATGTAAATGTGACCCTAG")
	if err != nil {
		t.Fatal(err)
	}

	first := Locate(f)
	second := Locate(append(Frame(nil), f...))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Locate() = %v then %v on the same frame", first, second)
	}
	if len(first) != 8 {
		t.Errorf("Locate() found %d ORFs, want 8: %v", len(first), first)
	}
}

func TestLocator_custom(t *testing.T) {
	l := NewLocator([]string{"ATG", "GTG"}, []string{"TAA"})
	f := Frame{"GTG", "ATG", "TAG", "TAA"}

	want := []ORF{{0, 3}, {1, 3}}
	if got := l.Locate(f); !reflect.DeepEqual(got, want) {
		t.Errorf("Locator.Locate() = %v, want %v", got, want)
	}
}

func TestORF(t *testing.T) {
	o := ORF{Start: 1, Stop: 4}
	if o.Len() != 4 {
		t.Errorf("ORF.Len() = %d, want 4", o.Len())
	}

	start, end := o.Span(2)
	if start != 4 || end != 16 {
		t.Errorf("ORF.Span(2) = %d, %d, want 4, 16", start, end)
	}

	seq := "CCCCATGAAACCCTAAG"
	f, _ := NewFrame(2, seq)
	if got := o.Sequence(f); got != seq[start:end] || got != "ATGAAACCCTAA" {
		t.Errorf("ORF.Sequence() = %q, want %q", got, seq[start:end])
	}
	if o.String() != "1-4" {
		t.Errorf("ORF.String() = %q, want %q", o.String(), "1-4")
	}
}
