package normalize

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "S1 basic normalization",
			in:   "\t Sîntem aici   pe        neîngrădita mirişte din Romînia\n\n",
			want: "Suntem aici pe neîngrădita miriște din România",
		},
		{
			name: "S2 normalization with punctuation",
			in:   "\t Sîntem aici,   pe        neîngrădita mirişte din Romînia!\n\n",
			want: "Suntem aici, pe neîngrădita miriște din România!",
		},
		{
			name: "lone â word becomes î",
			in:   "â",
			want: "î",
		},
		{
			name: "prefix plus â restores î mid-word",
			in:   "reîntregirea",
			want: "reîntregirea",
		},
		{
			name: "hyphenated prefix restores î",
			in:   "ne-însemnat",
			want: "ne-însemnat",
		},
		{
			name: "cedilla forms rewritten",
			in:   "şi ţara",
			want: "și țara",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"\t Sîntem aici   pe        neîngrădita mirişte din Romînia\n\n",
		"reîntregirea textului se poate pîrî",
		"ne-însemnat",
		"",
		"   ",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first=%q second=%q", in, once, twice)
		}
	}
}

func TestStreamingMatchesPureForm(t *testing.T) {
	inputs := []string{
		"\t Sîntem aici,   pe        neîngrădita mirişte din Romînia!\n\n",
		"reîntregirea textului se poate pîrî.",
		"ne-însemnat și Sînt",
	}

	for _, in := range inputs {
		pure := Normalize(in)
		streamed := Apply(in)
		if pure != streamed {
			t.Errorf("streaming/pure mismatch for %q: pure=%q streamed=%q", in, pure, streamed)
		}
	}
}

func TestNormalizerStepwise(t *testing.T) {
	n := New("  Sînt  ")
	n.Strip()
	n.MapDiacritics()
	n.CollapseSpaces()
	n.FixVerbForms()
	n.UnifyAToI()
	n.RestoreWordEdgeI()
	n.RestorePrefixI()

	want := Normalize("  Sînt  ")
	if n.Text() != want {
		t.Errorf("stepwise Normalizer = %q, want %q", n.Text(), want)
	}
}
