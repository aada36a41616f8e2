package sandhi

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBootstrapLexicon(t *testing.T) {
	lex := Bootstrap()
	if lex.Len() == 0 {
		t.Fatal("bootstrap lexicon is empty")
	}
	for _, w := range []string{"राम", "बलवान्", "अस्ति", "धर्मः"} {
		if !lex.Contains(w) {
			t.Errorf("bootstrap lexicon missing %q", w)
		}
	}
	if lex.Contains("") {
		t.Error("empty string reported as known word")
	}
}

func TestLoadMissingFileYieldsEmpty(t *testing.T) {
	lex := Load(filepath.Join(t.TempDir(), "no-such-lexicon.txt"))
	if lex.Len() != 0 {
		t.Errorf("missing file produced %d words", lex.Len())
	}
	if lex.Contains("राम") {
		t.Error("empty lexicon contains a word")
	}
}

func TestLoadTrimsAndSkipsBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.txt")
	content := "  राम  \n\n\tसीता\n   \nगुरु"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lex := Load(path)
	if lex.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", lex.Len())
	}
	for _, w := range []string{"राम", "सीता", "गुरु"} {
		if !lex.Contains(w) {
			t.Errorf("loaded lexicon missing %q", w)
		}
	}
}

func TestUnion(t *testing.T) {
	a := NewLexicon("राम", "सीता")
	b := NewLexicon("सीता", "गुरु")
	u := a.Union(b)
	if u.Len() != 3 {
		t.Errorf("Union Len() = %d, want 3", u.Len())
	}
	if a.Len() != 2 || b.Len() != 2 {
		t.Error("Union modified an input lexicon")
	}
	if !u.Contains("राम") || !u.Contains("गुरु") {
		t.Error("Union lost a word")
	}
}

func TestZeroLexiconIsSafe(t *testing.T) {
	var lex Lexicon
	if lex.Contains("राम") || lex.Len() != 0 {
		t.Error("zero lexicon is not empty")
	}
	u := lex.Union(NewLexicon("राम"))
	if !u.Contains("राम") {
		t.Error("union with zero lexicon lost words")
	}
}
