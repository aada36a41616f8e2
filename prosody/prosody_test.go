package prosody

import (
	"encoding/json"
	"testing"

	"github.com/gahlautabhinav/Chand-Identifier/syllable"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		unit   string
		weight Weight
		conf   float64
	}{
		{"anusvara", "तं", Guru, 0.95},
		{"visarga", "नः", Guru, 0.95},
		{"chandrabindu", "माँ", Guru, 0.95},
		{"long matra", "रा", Guru, 0.95},
		{"diphthong matra", "मो", Guru, 0.95},
		{"independent long vowel", "आ", Guru, 0.95},
		{"conjunct", "स्ति", Guru, 0.90},
		{"bare conjunct", "न्", Guru, 0.90},
		{"short consonant syllable", "क", Laghu, 0.95},
		{"short matra", "कि", Laghu, 0.95},
		{"independent short vowel", "अ", Laghu, 0.95},
		{"latin letter", "h", Laghu, 0.95},
		{"empty unit", "", Laghu, 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.unit)
			if got.Weight != tt.weight {
				t.Errorf("Classify(%q).Weight = %v, want %v", tt.unit, got.Weight, tt.weight)
			}
			if got.Confidence != tt.conf {
				t.Errorf("Classify(%q).Confidence = %v, want %v", tt.unit, got.Confidence, tt.conf)
			}
			if got.Reason == "" {
				t.Errorf("Classify(%q) has no reason", tt.unit)
			}
		})
	}
}

// TestCascadePriority pins the rule ordering: a combining mark outranks a
// long vowel, which outranks a virama.
func TestCascadePriority(t *testing.T) {
	if got := Classify("तां"); got.Reason != "anusvara/visarga/chandrabindu present (rule)" {
		t.Errorf("combining mark did not win over long vowel: %+v", got)
	}
	if got := Classify("स्था"); got.Reason != "long vowel matra/indep vowel (rule)" {
		t.Errorf("long vowel did not win over virama: %+v", got)
	}
}

func TestWeightJSON(t *testing.T) {
	b, err := json.Marshal([]Weight{Laghu, Guru})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `["L","G"]` {
		t.Errorf("marshal = %s, want [\"L\",\"G\"]", b)
	}

	var ws []Weight
	if err := json.Unmarshal([]byte(`["G","L"]`), &ws); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(ws) != 2 || ws[0] != Guru || ws[1] != Laghu {
		t.Errorf("unmarshal = %v", ws)
	}

	if err := json.Unmarshal([]byte(`"X"`), new(Weight)); err == nil {
		t.Error("unknown label did not error")
	}
}

// FuzzClassifyTotal checks totality: any unit gets exactly one valid
// label with confidence in [0,1], and classification is deterministic.
func FuzzClassifyTotal(f *testing.F) {
	f.Add("रा")
	f.Add("स्ति")
	f.Add("ं")
	f.Add("")
	f.Add("hello")
	f.Add("\xff")

	f.Fuzz(func(t *testing.T, unit string) {
		got := Classify(unit)
		if got.Weight != Laghu && got.Weight != Guru {
			t.Errorf("Classify(%q).Weight = %v", unit, got.Weight)
		}
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Errorf("Classify(%q).Confidence = %v out of [0,1]", unit, got.Confidence)
		}
		if again := Classify(unit); again != got {
			t.Errorf("Classify(%q) not deterministic", unit)
		}
	})
}

// FuzzClassifySyllables runs the classifier over real segmentation output.
func FuzzClassifySyllables(f *testing.F) {
	f.Add("धर्मक्षेत्रे कुरुक्षेत्रे")
	f.Add("रामोऽस्ति बलवान्")
	f.Add("hello world")

	f.Fuzz(func(t *testing.T, line string) {
		units := syllable.Syllabify(line)
		labels := ClassifyAll(units)
		if len(labels) != len(units) {
			t.Fatalf("ClassifyAll returned %d labels for %d units", len(labels), len(units))
		}
	})
}
