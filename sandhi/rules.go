package sandhi

import (
	"strings"

	"github.com/gahlautabhinav/Chand-Identifier/internal/script"
)

// rewrite is one rule application: the rewritten text, the rule name that
// produced it, and whether the rule is one of the aggressive splits that
// take a flat scoring penalty.
//
// Rule names are part of the output contract: they appear in candidate
// traces and in silver-labeled training data and must not be reworded.
type rewrite struct {
	text       string
	rule       string
	aggressive bool
}

// rewriteRule is a fixed, unconditionally applicable reversal. apply
// reports whether the pattern fired; when it fires, every occurrence in
// the line is rewritten.
type rewriteRule struct {
	name       string
	aggressive bool
	apply      func(string) (string, bool)
}

// reverseRules is the ordered core rule table: long-vowel and
// guṇa decompositions, visarga/anusvara spacing, avagraha removal,
// doubled-consonant splitting, and the diphthong fallbacks.
// Ordering is load-bearing: it fixes first-seen order for deduplication
// and ranking ties.
var reverseRules = []rewriteRule{
	{"savarṇa-dīrgha", false, replaceAll("ा", "अअ")},
	{"a+i -> e (guṇa/saṃyoga reverse)", false, replaceAll("े", "अइ")},
	{"a+u -> o", true, replaceAll("ो", "अउ")},
	{"ī -> i+i (conservative)", false, replaceAll("ी", "इइ")},
	{"ū -> u+u (conservative)", true, replaceAll("ू", "उउ")},
	{"visarga-space", false, replaceAll("ः", " ः ")},
	{"anusvara-space", false, replaceAll("ं", " ं ")},
	{"avagraha-split", false, replaceAll("ऽ", " ")},
	{"double-consonant-split", false, splitDoubledConsonants},
	{"au -> a+u (reverse)", true, replaceAll("ौ", "अउ")},
	{"ai -> a+i (reverse)", false, replaceAll("ै", "अइ")},
}

// replaceAll builds an apply func that rewrites every occurrence of from.
func replaceAll(from, to string) func(string) (string, bool) {
	return func(text string) (string, bool) {
		if !strings.Contains(text, from) {
			return text, false
		}
		return strings.ReplaceAll(text, from, to), true
	}
}

// splitDoubledConsonants inserts a space between every pair of identical
// adjacent consonants (a common fused-boundary signature).
func splitDoubledConsonants(text string) (string, bool) {
	runes := []rune(text)
	var b strings.Builder
	fired := false
	for i, r := range runes {
		b.WriteRune(r)
		if script.IsConsonant(r) && i+1 < len(runes) && runes[i+1] == r {
			b.WriteByte(' ')
			fired = true
		}
	}
	if !fired {
		return text, false
	}
	return b.String(), true
}

// vowelVariants proposes alternative vowel-sandhi reversals beyond the
// single conservative split in the core table: e and o each have a
// short- and a long-second-member reading, and the diphthong signs get
// their own entries.
func vowelVariants(text string) []rewrite {
	var out []rewrite
	add := func(from, to, name string, aggressive bool) {
		if strings.Contains(text, from) {
			out = append(out, rewrite{strings.ReplaceAll(text, from, to), name, aggressive})
		}
	}
	add("े", "अइ", "e->a+i", false)
	add("े", "अी", "e->a+ī", false)
	add("ो", "अउ", "o->a+u", true)
	add("ो", "अू", "o->a+ū", true)
	add("ौ", "अउ", "au->a+u", true)
	add("ै", "अइ", "ai->a+i", true)
	add("ा", "अअ", "ā->a+a", false)
	return out
}

// visargaVariants proposes the phoneme-substitution readings of a
// visarga: an underlying s or t at a word boundary.
func visargaVariants(text string) []rewrite {
	if !strings.Contains(text, "ः") {
		return nil
	}
	return []rewrite{
		{strings.ReplaceAll(text, "ः", "स् "), "visarga->s + space (conservative)", false},
		{strings.ReplaceAll(text, "ः", "त् "), "visarga->t + space (conservative)", false},
	}
}

// anusvaraVariants resolves each anusvara to the homorganic nasal of the
// following consonant: velar ṅ, palatal ñ, retroflex ṇ, dental n,
// labial m. When the next rune has no articulation class the fallback
// spaces out every anusvara instead.
func anusvaraVariants(text string) []rewrite {
	runes := []rune(text)
	var out []rewrite
	for i, r := range runes {
		if r != script.Anusvara || i+1 >= len(runes) {
			continue
		}
		var nasal, name string
		switch script.ArticulationOf(runes[i+1]) {
		case script.Velar:
			nasal, name = "ङ्", "anusvara->ṅ (velar)"
		case script.Palatal:
			nasal, name = "ञ्", "anusvara->ñ (palatal)"
		case script.Retroflex:
			nasal, name = "ण्", "anusvara->ṇ (retroflex)"
		case script.Dental:
			nasal, name = "न्", "anusvara->n (dental)"
		case script.Labial:
			nasal, name = "म्", "anusvara->m (labial)"
		default:
			out = append(out, rewrite{strings.ReplaceAll(text, "ं", " ं "), "anusvara->space", false})
			continue
		}
		out = append(out, rewrite{string(runes[:i]) + nasal + string(runes[i+1:]), name, false})
	}
	return out
}

// clusterSplits proposes a word boundary before every run of two or more
// consecutive consonant runes (viramas break a run). One candidate per
// run; runs at the very start of the line are skipped.
func clusterSplits(text string) []rewrite {
	runes := []rune(text)
	var out []rewrite
	i := 0
	for i < len(runes) {
		if !script.IsConsonant(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && script.IsConsonant(runes[i]) {
			i++
		}
		if i-start >= 2 && start > 0 {
			out = append(out, rewrite{
				string(runes[:start]) + " " + string(runes[start:]),
				"consonant-cluster-split",
				false,
			})
		}
	}
	return out
}
