package decode

import "testing"

func TestDecodeEmpty(t *testing.T) {
	d := New()
	if got := d.Decode(nil); got != "" {
		t.Errorf("Decode(nil) = %q, want empty", got)
	}
}

func TestDecodeSingleToken(t *testing.T) {
	d := New()
	if got := d.Decode([]string{"Ana"}); got != "Ana" {
		t.Errorf("Decode([Ana]) = %q, want Ana", got)
	}
}

func TestDecodeOrdinaryTokensGetSpaces(t *testing.T) {
	d := New()
	got := d.Decode([]string{"Ana", "are", "mere"})
	want := "Ana are mere"
	if got != want {
		t.Errorf("Decode() = %q, want %q", got, want)
	}
}

func TestDecodeDashOnLeftSuppressesSpace(t *testing.T) {
	d := New()
	got := d.Decode([]string{"s-", "o", "vedem"})
	want := "s-o vedem"
	if got != want {
		t.Errorf("Decode() = %q, want %q", got, want)
	}
}

func TestDecodeDashOnRightSuppressesSpace(t *testing.T) {
	d := New()
	got := d.Decode([]string{"dă", "-mi", "-o"})
	want := "dă-mi-o"
	if got != want {
		t.Errorf("Decode() = %q, want %q", got, want)
	}
}

// TestDecodeClitics mechanically reproduces spec §8 S6's token list. The
// dash rule joins "s-"+"o" with no space (matching ro_decoder.py); the
// spec's prose rendering of the same scenario is a human-punctuated
// gloss, not this algorithm's literal output (see DESIGN.md).
func TestDecodeClitics(t *testing.T) {
	d := New()
	tokens := []string{
		"Ia", "s-", "o", "vedem", "de fapt", ",", "dacă", "pârâie",
		"cum", "trebuie", ",", "suntem", "OK", "?",
	}
	got := d.Decode(tokens)
	want := "Ia s-o vedem de fapt , dacă pârâie cum trebuie , suntem OK ?"
	if got != want {
		t.Errorf("Decode() = %q, want %q", got, want)
	}
}
