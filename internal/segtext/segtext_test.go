package segtext

import (
	"reflect"
	"testing"

	"github.com/racai-ai/ro-wordpiece-tokenizer/internal/roalpha"
)

func testClassifierForSegtext() *Classifier {
	return NewClassifier(
		roalpha.IsWordChar,
		roalpha.IsPunctChar,
		roalpha.IsSymbolChar,
		roalpha.IsEOLChar,
		roalpha.IsSpaceChar,
	)
}

func TestSegmentString(t *testing.T) {
	c := testClassifierForSegtext()

	got := Segment("Ana, are mere!", c)

	want := []Chunk[string]{
		{Text: "Ana", Class: Word},
		{Text: ",", Class: Punct},
		{Text: " ", Class: Space},
		{Text: "are", Class: Word},
		{Text: " ", Class: Space},
		{Text: "mere", Class: Word},
		{Text: "!", Class: Punct},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %#v, want %#v", got, want)
	}
}

func TestSegmentTabBecomesSpace(t *testing.T) {
	c := testClassifierForSegtext()

	got := Segment("a\tb", c)
	want := []Chunk[string]{
		{Text: "a", Class: Word},
		{Text: " ", Class: Space},
		{Text: "b", Class: Word},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %#v, want %#v", got, want)
	}
}

func TestSegmentEmpty(t *testing.T) {
	c := testClassifierForSegtext()
	if got := Segment("", c); len(got) != 0 {
		t.Errorf("Segment(\"\") = %#v, want empty", got)
	}
}

func TestSegmentOtherBucketCoalesces(t *testing.T) {
	c := testClassifierForSegtext()

	got := Segment("a▲▼b", c)
	want := []Chunk[string]{
		{Text: "a", Class: Word},
		{Text: "▲▼", Class: Other},
		{Text: "b", Class: Word},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %#v, want %#v", got, want)
	}
}

func TestSegmentEOL(t *testing.T) {
	c := testClassifierForSegtext()

	got := Segment("a\r\nb", c)
	want := []Chunk[string]{
		{Text: "a", Class: Word},
		{Text: "\r\n", Class: EOL},
		{Text: "b", Class: Word},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %#v, want %#v", got, want)
	}
}
