// Package pipeline infers the probable classical meter of a Devanagari
// verse line.
//
// Infer runs the four analysis stages in order: normalization,
// reverse-sandhi candidate generation, per-candidate syllabification and
// weight classification, and meter-template matching on the best-scoring
// candidate. Every intermediate score is kept in the result for
// explainability; JSON field names are a stable contract with the
// dataset tooling that consumes them.
//
// The pipeline never fails on malformed linguistic input: text with no
// recognizable Devanagari degrades to single-rune syllables and a valid,
// low-confidence result. Input validation (rejecting empty text) belongs
// to the calling boundary, not here.
//
// A Pipeline is read-only after New and safe for concurrent use by
// multiple goroutines; every Infer call owns its entire result.
package pipeline

import (
	"strings"
	"unicode/utf8"

	"github.com/gahlautabhinav/Chand-Identifier/internal/script"
	"github.com/gahlautabhinav/Chand-Identifier/meter"
	"github.com/gahlautabhinav/Chand-Identifier/normalize"
	"github.com/gahlautabhinav/Chand-Identifier/prosody"
	"github.com/gahlautabhinav/Chand-Identifier/sandhi"
	"github.com/gahlautabhinav/Chand-Identifier/syllable"
)

// Candidate-score weights. The blend of classifier confidence, lexicon
// overlap, meter shape, and fragmentation penalty is a frozen contract
// with previously generated silver data.
const (
	confWeight     = 0.55
	lexWeight      = 0.15
	isoPenalty     = 0.9
	genBlendWeight = 0.1

	exactMeterBonus  = 0.30
	gradedMeterBonus = 0.20
)

// Config configures a Pipeline. The zero value is usable: the bootstrap
// lexicon, default candidate cap, and top-3 meter matches.
type Config struct {
	// Lexicon is unioned with the embedded bootstrap lexicon.
	Lexicon sandhi.Lexicon

	// MaxCandidates caps sandhi candidate generation.
	// Zero means sandhi.DefaultMaxCandidates.
	MaxCandidates int

	// TopK is the number of meter matches attached to the result.
	// Zero means meter.DefaultTopK.
	TopK int

	// AllowAggressive enables the generator's exploratory vowel splits.
	AllowAggressive bool
}

// Pipeline wires the analysis stages together.
type Pipeline struct {
	gen  *sandhi.Generator
	topK int
}

// New builds a Pipeline from cfg.
func New(cfg Config) *Pipeline {
	topK := cfg.TopK
	if topK <= 0 {
		topK = meter.DefaultTopK
	}
	return &Pipeline{
		gen: &sandhi.Generator{
			Lexicon:         sandhi.Bootstrap().Union(cfg.Lexicon),
			MaxCandidates:   cfg.MaxCandidates,
			AllowAggressive: cfg.AllowAggressive,
		},
		topK: topK,
	}
}

// Result is the full outcome of one inference.
type Result struct {
	Line       string              `json:"line"`
	Candidates []CandidateResult   `json:"candidates"`
	Chosen     CandidateResult     `json:"chosen_candidate"`
	TopChanda  []meter.MatchResult `json:"top_chanda"`
}

// CandidateResult is one candidate's analysis and scoring breakdown.
type CandidateResult struct {
	Candidate     string           `json:"candidate"`
	Syllables     []string         `json:"syllables"`
	Labels        []prosody.Weight `json:"silver_labels"`
	Confidences   []float64        `json:"silver_conf"`
	Reasons       []string         `json:"silver_reasons"`
	MetaRules     []string         `json:"meta_rules"`
	MetaScore     *float64         `json:"meta_score"`
	AvgConf       float64          `json:"avg_conf"`
	LexScore      float64          `json:"lex_score"`
	IsoFrac       float64          `json:"iso_frac"`
	MeterBonus    float64          `json:"meter_bonus"`
	CombinedScore float64          `json:"combined_score"`
}

// Infer analyzes one verse line. With useSandhi false the normalized
// line itself is the sole candidate.
func (p *Pipeline) Infer(line string, useSandhi bool) Result {
	line = normalize.Normalize(line)

	var raw []sandhi.Candidate
	if useSandhi {
		raw = p.gen.Generate(line)
	} else {
		raw = []sandhi.Candidate{{Text: line, Rules: nil}}
	}

	candidates := make([]CandidateResult, 0, len(raw))
	for _, c := range raw {
		candidates = append(candidates, p.scoreCandidate(c, useSandhi))
	}

	// Maximum combined score wins; ties keep the first-seen candidate.
	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].CombinedScore > candidates[best].CombinedScore {
			best = i
		}
	}
	chosen := candidates[best]

	return Result{
		Line:       line,
		Candidates: candidates,
		Chosen:     chosen,
		TopChanda:  meter.Match(chosen.Syllables, labelsOf(chosen), p.topK),
	}
}

// scoreCandidate syllabifies and classifies one candidate and computes
// its combined plausibility score. hasGenScore marks candidates that
// came out of the generator and carry its score to blend in.
func (p *Pipeline) scoreCandidate(c sandhi.Candidate, hasGenScore bool) CandidateResult {
	units := syllable.Syllabify(c.Text)
	labels := prosody.ClassifyAll(units)

	r := CandidateResult{
		Candidate: c.Text,
		Syllables: units,
		MetaRules: c.Rules,
	}

	var confSum float64
	iso := 0
	for i, l := range labels {
		r.Labels = append(r.Labels, l.Weight)
		r.Confidences = append(r.Confidences, l.Confidence)
		r.Reasons = append(r.Reasons, l.Reason)
		confSum += l.Confidence
		if ru, size := utf8.DecodeRuneInString(units[i]); size == len(units[i]) && script.IsIndependentVowel(ru) {
			iso++
		}
	}
	if len(labels) > 0 {
		r.AvgConf = confSum / float64(len(labels))
	}
	if n := len(units); n > 0 {
		r.IsoFrac = float64(iso) / float64(n)
	}

	if tokens := strings.Fields(c.Text); len(tokens) > 0 {
		found := 0
		for _, tok := range tokens {
			if p.gen.Lexicon.Contains(tok) {
				found++
			}
		}
		r.LexScore = float64(found) / float64(len(tokens))
	}

	r.MeterBonus = meterBonus(len(units))

	r.CombinedScore = confWeight*r.AvgConf + lexWeight*r.LexScore + r.MeterBonus - isoPenalty*r.IsoFrac
	if hasGenScore {
		score := c.Score
		r.MetaScore = &score
		r.CombinedScore = (1-genBlendWeight)*r.CombinedScore + genBlendWeight*score
	}
	return r
}

// meterBonus rewards candidates whose syllable count lands on a meter
// template: a flat bonus for an exact total, a graded one for near
// misses.
func meterBonus(total int) float64 {
	best := 0.0
	for _, tpl := range meter.Templates() {
		if total == tpl.Total {
			return exactMeterBonus
		}
		diff := total - tpl.Total
		if diff < 0 {
			diff = -diff
		}
		den := total
		if tpl.Total > den {
			den = tpl.Total
		}
		score := gradedMeterBonus * (1 - float64(diff)/float64(den))
		if score > best {
			best = score
		}
	}
	return best
}

// labelsOf rebuilds full prosody labels for the meter matcher from a
// scored candidate.
func labelsOf(c CandidateResult) []prosody.Label {
	labels := make([]prosody.Label, len(c.Labels))
	for i := range c.Labels {
		labels[i] = prosody.Label{Weight: c.Labels[i], Confidence: c.Confidences[i], Reason: c.Reasons[i]}
	}
	return labels
}
