package script

import "testing"

func TestClassPredicates(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		cons bool
		inde bool
		matr bool
		comb bool
		long bool
	}{
		{"consonant ka", 'क', true, false, false, false, false},
		{"consonant ha", 'ह', true, false, false, false, false},
		{"independent a", 'अ', false, true, false, false, false},
		{"independent au", 'औ', false, true, false, false, true},
		{"long matra aa", 'ा', false, false, true, false, true},
		{"short matra i", 'ि', false, false, true, false, false},
		{"anusvara", Anusvara, false, false, false, true, false},
		{"visarga", Visarga, false, false, false, true, false},
		{"chandrabindu", Chandrabindu, false, false, false, true, false},
		{"virama", Virama, false, false, false, false, false},
		{"avagraha", Avagraha, false, false, false, false, false},
		{"latin letter", 'x', false, false, false, false, false},
		{"digit", '7', false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConsonant(tt.r); got != tt.cons {
				t.Errorf("IsConsonant(%q) = %v, want %v", tt.r, got, tt.cons)
			}
			if got := IsIndependentVowel(tt.r); got != tt.inde {
				t.Errorf("IsIndependentVowel(%q) = %v, want %v", tt.r, got, tt.inde)
			}
			if got := IsMatra(tt.r); got != tt.matr {
				t.Errorf("IsMatra(%q) = %v, want %v", tt.r, got, tt.matr)
			}
			if got := IsCombining(tt.r); got != tt.comb {
				t.Errorf("IsCombining(%q) = %v, want %v", tt.r, got, tt.comb)
			}
			if got := IsLongVowel(tt.r); got != tt.long {
				t.Errorf("IsLongVowel(%q) = %v, want %v", tt.r, got, tt.long)
			}
		})
	}
}

func TestClassesAreDisjoint(t *testing.T) {
	// Every rune in the Devanagari block belongs to at most one of the
	// syllabifier's onset-relevant classes.
	for r := rune(0x0900); r <= 0x097F; r++ {
		n := 0
		if IsConsonant(r) {
			n++
		}
		if IsIndependentVowel(r) {
			n++
		}
		if IsMatra(r) {
			n++
		}
		if IsCombining(r) {
			n++
		}
		if IsVirama(r) {
			n++
		}
		if n > 1 {
			t.Errorf("rune %U matches %d classes", r, n)
		}
		if !IsDevanagari(r) {
			t.Errorf("IsDevanagari(%U) = false inside the block", r)
		}
	}
}

func TestArticulationOf(t *testing.T) {
	tests := []struct {
		r    rune
		want Articulation
	}{
		{'क', Velar},
		{'ङ', Velar},
		{'च', Palatal},
		{'ञ', Palatal},
		{'ट', Retroflex},
		{'ण', Retroflex},
		{'त', Dental},
		{'न', Dental},
		{'प', Labial},
		{'म', Labial},
		{'य', NoArticulation}, // semivowel row is not classed
		{'स', NoArticulation},
		{'अ', NoArticulation},
		{'x', NoArticulation},
	}
	for _, tt := range tests {
		if got := ArticulationOf(tt.r); got != tt.want {
			t.Errorf("ArticulationOf(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}
