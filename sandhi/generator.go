// Package sandhi generates reverse-sandhi candidates: plausible
// pre-fusion word decompositions of a Devanagari verse line.
//
// Sandhi (phonological fusion at word boundaries) obscures the original
// word breaks. The generator is a bounded rewrite-rule search, not a
// parser: a fixed ordered rule table covering the common vowel, visarga,
// anusvara, avagraha, and consonant patterns is applied one step, the
// one-step results are expanded through the rules once more, and every
// candidate is scored for plausibility against a lexicon. Recursion
// beyond two steps is not allowed; together with the candidate cap this
// bounds the search regardless of input length.
//
// Rule ordering and scoring weights are a compatibility contract with
// previously produced silver-labeled training data. Do not retune them.
//
// Generators are read-only after construction and safe for concurrent
// use by multiple goroutines.
package sandhi

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gahlautabhinav/Chand-Identifier/internal/script"
)

// DefaultMaxCandidates caps the ranked candidate list when the caller
// does not set a limit.
const DefaultMaxCandidates = 8

// Scores are clamped to [ScoreMin, ScoreMax].
const (
	ScoreMin = -2.0
	ScoreMax = 2.0
)

// IdentityRule names the unmodified-input candidate every generation
// includes.
const IdentityRule = "identity"

// Candidate is one scored decomposition. Text is whitespace-normalized;
// Rules traces the rewrites that produced it, in application order.
// Candidates are immutable once produced.
type Candidate struct {
	Text  string   `json:"cand"`
	Score float64  `json:"score"`
	Rules []string `json:"rules"`
}

// Generator produces ranked reverse-sandhi candidates for verse lines.
type Generator struct {
	// Lexicon ranks candidates by known-word overlap. The zero value
	// disables lexicon scoring; it never blocks generation.
	Lexicon Lexicon

	// MaxCandidates caps the returned list. Zero or negative means
	// DefaultMaxCandidates.
	MaxCandidates int

	// AllowAggressive adds unconditional vowel splits with no
	// independent trigger. Exploratory generation only; keep off for
	// production ranking.
	AllowAggressive bool
}

// NewGenerator returns a Generator with the given lexicon and default
// limits.
func NewGenerator(lex Lexicon) *Generator {
	return &Generator{Lexicon: lex}
}

// Generate returns up to MaxCandidates scored decompositions of line,
// ranked by descending score. The whitespace-normalized input itself is
// always among the raw candidates, tagged with IdentityRule (it may be
// truncated away only if MaxCandidates better-scoring rewrites exist).
func (g *Generator) Generate(line string) []Candidate {
	line = strings.TrimSpace(line)
	max := g.MaxCandidates
	if max <= 0 {
		max = DefaultMaxCandidates
	}

	cands := []Candidate{{
		Text:  line,
		Score: g.scoreCandidate(line, line, IdentityRule, false),
		Rules: []string{IdentityRule},
	}}

	oneStep := g.oneStep(line)
	cands = append(cands, oneStep...)

	if g.AllowAggressive {
		cands = append(cands, g.aggressive(line)...)
	}

	// Two-step expansion: feed each one-step result through the rules
	// once more. The pair's scores are averaged and the traces joined.
	// Deeper recursion is deliberately not attempted.
	for _, parent := range oneStep {
		for _, child := range g.oneStep(parent.Text) {
			rules := make([]string, 0, len(parent.Rules)+len(child.Rules))
			rules = append(rules, parent.Rules...)
			rules = append(rules, child.Rules...)
			cands = append(cands, Candidate{
				Text:  child.Text,
				Score: (parent.Score + child.Score) / 2,
				Rules: rules,
			})
		}
	}

	ranked := dedupe(cands)

	// Mild preference for more word-like splits.
	for i := range ranked {
		ranked[i].Score = clampScore(ranked[i].Score + 0.01*float64(len(strings.Fields(ranked[i].Text))))
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

// oneStep applies every rule whose pattern matches text once, producing
// one candidate per rule hit. Rules are not combined within a step.
func (g *Generator) oneStep(text string) []Candidate {
	var out []Candidate
	seen := make(map[string]bool)
	add := func(rw rewrite) {
		if seen[rw.text] {
			return
		}
		seen[rw.text] = true
		out = append(out, Candidate{
			Text:  rw.text,
			Score: g.scoreCandidate(text, rw.text, rw.rule, rw.aggressive),
			Rules: []string{rw.rule},
		})
	}

	for _, r := range reverseRules {
		if rewritten, ok := r.apply(text); ok {
			add(rewrite{rewritten, r.name, r.aggressive})
		}
	}
	for _, rw := range vowelVariants(text) {
		add(rw)
	}
	for _, rw := range visargaVariants(text) {
		add(rw)
	}
	for _, rw := range anusvaraVariants(text) {
		add(rw)
	}
	for _, rw := range clusterSplits(text) {
		add(rw)
	}
	return out
}

// aggressive emits the opt-in unconditional vowel splits.
func (g *Generator) aggressive(line string) []Candidate {
	var out []Candidate
	if strings.Contains(line, "े") {
		text := strings.ReplaceAll(line, "े", "अइ")
		out = append(out, Candidate{
			Text:  text,
			Score: g.scoreCandidate(line, text, "aggr-e->a+i", false),
			Rules: []string{"aggr-e->a+i"},
		})
	}
	if strings.Contains(line, "ो") {
		text := strings.ReplaceAll(line, "ो", "अउ")
		out = append(out, Candidate{
			Text:  text,
			Score: g.scoreCandidate(line, text, "aggr-o->a+u", true),
			Rules: []string{"aggr-o->a+u"},
		})
	}
	return out
}

// scoreCandidate rates the plausibility of cand as a decomposition of
// orig:
//
//	start at 1.0
//	-0.25 per isolated single-rune independent-vowel token
//	+0.70 × fraction of tokens found in the lexicon
//	-0.02 per rune of length change
//	-0.10 for aggressive rules
//	-0.03 flat complexity tax per nonempty rule name
//	clamp to [ScoreMin, ScoreMax]
func (g *Generator) scoreCandidate(orig, cand, ruleName string, aggressive bool) float64 {
	score := 1.0

	tokens := strings.Fields(cand)
	iso := 0
	for _, tok := range tokens {
		if r, size := utf8.DecodeRuneInString(tok); size == len(tok) && script.IsIndependentVowel(r) {
			iso++
		}
	}
	score -= 0.25 * float64(iso)

	if len(tokens) > 0 {
		found := 0
		for _, tok := range tokens {
			if g.Lexicon.Contains(tok) {
				found++
			}
		}
		score += 0.7 * float64(found) / float64(len(tokens))
	}

	diff := utf8.RuneCountInString(cand) - utf8.RuneCountInString(orig)
	if diff < 0 {
		diff = -diff
	}
	score -= 0.02 * float64(diff)

	if aggressive {
		score -= 0.1
	}
	if ruleName != "" {
		score -= 0.03
	}

	return clampScore(score)
}

// dedupe merges candidates by whitespace-normalized text, keeping the
// highest score seen for each. First-seen order is preserved so that the
// later stable sort breaks ties deterministically.
func dedupe(cands []Candidate) []Candidate {
	order := make([]string, 0, len(cands))
	best := make(map[string]Candidate, len(cands))
	for _, c := range cands {
		key := collapseSpace(c.Text)
		cur, ok := best[key]
		if !ok {
			order = append(order, key)
			best[key] = Candidate{Text: key, Score: c.Score, Rules: c.Rules}
		} else if c.Score > cur.Score {
			best[key] = Candidate{Text: key, Score: c.Score, Rules: c.Rules}
		}
	}
	out := make([]Candidate, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}

// collapseSpace trims text and collapses internal whitespace runs to
// single spaces.
func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// clampScore clips s to [ScoreMin, ScoreMax].
func clampScore(s float64) float64 {
	if s < ScoreMin {
		return ScoreMin
	}
	if s > ScoreMax {
		return ScoreMax
	}
	return s
}
