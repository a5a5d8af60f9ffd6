package nlp

import (
	"reflect"
	"testing"
)

func TestNormalize_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t "} {
		got := Normalize(in)
		if len(got) != 0 {
			t.Fatalf("Normalize(%q) = %v, want empty", in, got)
		}
	}
}

func TestNormalize_LowercasesAndStripsPunctuation(t *testing.T) {
	got := Normalize("Senior Node.js Developer, with REST/GraphQL!")
	want := []string{"senior", "node", "developer", "rest", "graphql"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalize_DropsShortTokensAndStopWords(t *testing.T) {
	got := Normalize("I am a go dev and we do the work")
	for _, w := range got {
		if len(w) <= 2 {
			t.Fatalf("short token survived: %q", w)
		}
		if IsStopWord(w) {
			t.Fatalf("stop word survived: %q", w)
		}
	}
	want := []string{"dev", "work"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	in := "Python developer with 5 years of experience in machine learning"
	a := Normalize(in)
	b := Normalize(in)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("normalize not deterministic: %v vs %v", a, b)
	}
}
