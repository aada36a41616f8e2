// Package meter scores syllable sequences against a fixed library of
// classical meter templates.
//
// Matching is approximate, not a formal metrical grammar. Each template
// is scored on three signals:
//
//   - total_score: how close the line's syllable count is to the
//     template's expected total, with a nonlinear penalty that strongly
//     prefers exact matches (plus a flat bonus when exact)
//   - pada_score: when the template declares quarter lengths and they sum
//     to the line's count exactly, agreement between the per-pada heavy
//     fraction and the template's expected heavy fraction; a graded
//     penalty when totals mismatch; neutral when no padas are declared
//   - guru_score: the same heavy-fraction agreement over the whole line
//
// The composite weighting shifts toward pada structure when an exact
// pada split was possible. Every intermediate value is reported in the
// match Detail for explainability.
//
// All functions are pure and safe for concurrent use.
package meter

import (
	"math"
	"sort"

	"github.com/gahlautabhinav/Chand-Identifier/prosody"
)

// DefaultTopK is the number of ranked matches returned when the caller
// does not ask for a specific count.
const DefaultTopK = 3

// MatchResult is one template's score against a line.
type MatchResult struct {
	Meter  string  `json:"meter"`
	Score  float64 `json:"score"`
	Detail Detail  `json:"details"`
}

// Detail is the full diagnostic breakdown of one template score.
type Detail struct {
	Total            int          `json:"total"`
	ExpectedTotal    int          `json:"expected_total"`
	TotalScore       float64      `json:"total_score"`
	ExactTotalBonus  float64      `json:"exact_total_bonus"`
	GuruFrac         float64      `json:"guru_frac"`
	ExpectedGuruFrac float64      `json:"expected_guru_frac_whole"`
	GuruScore        float64      `json:"guru_score"`
	PadaScore        float64      `json:"pada_score"`
	Padas            []PadaDetail `json:"pada_details,omitempty"`
	PadaNote         string       `json:"pada_note,omitempty"`
	MismatchFrac     float64      `json:"mismatch_frac,omitempty"`
}

// PadaDetail reports one quarter's length and heavy fraction when an
// exact pada split was possible.
type PadaDetail struct {
	PadaIndex int     `json:"pada_index"`
	Length    int     `json:"length"`
	GuruFrac  float64 `json:"guru_frac"`
}

// Match scores syllables/labels against every template in the library
// and returns the topK best matches in descending score order.
// A topK of zero or less means DefaultTopK. len(labels) must equal
// len(syllables); labels beyond the syllable count are ignored.
func Match(syllables []string, labels []prosody.Label, topK int) []MatchResult {
	if topK <= 0 {
		topK = DefaultTopK
	}

	total := len(syllables)
	guruFrac := heavyFraction(labels, 0, len(labels))

	results := make([]MatchResult, 0, len(templates))
	for _, tpl := range templates {
		results = append(results, scoreTemplate(tpl, total, guruFrac, labels))
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// scoreTemplate computes one template's composite score and diagnostics.
func scoreTemplate(tpl Template, total int, guruFrac float64, labels []prosody.Label) MatchResult {
	d := Detail{Total: total, ExpectedTotal: tpl.Total, GuruFrac: guruFrac}

	// Nonlinear total-count agreement: exact matches win decisively.
	totalDiff := normalizedDiff(total, tpl.Total)
	d.TotalScore = math.Max(0, 1-math.Pow(totalDiff, 1.5))
	if total == tpl.Total {
		d.ExactTotalBonus = 0.12
	}
	d.TotalScore = math.Min(1, d.TotalScore+d.ExactTotalBonus)

	// Pada structure.
	exactPadaSplit := false
	switch {
	case len(tpl.Padas) == 0:
		d.PadaScore = 0.4 // neutral: template declares no quarters
	case total == sumInts(tpl.Padas):
		exactPadaSplit = true
		start := 0
		var sum float64
		for i, plen := range tpl.Padas {
			frac := heavyFraction(labels, start, start+plen)
			d.Padas = append(d.Padas, PadaDetail{PadaIndex: i + 1, Length: plen, GuruFrac: frac})
			sum += frac
			start += plen
		}
		avg := sum / math.Max(1, float64(len(tpl.Padas)))
		agreement := 1 - math.Min(1, math.Abs(avg-expectedGuruFrac(tpl.Total)))
		d.PadaScore = 0.9 + 0.1*agreement
	default:
		d.MismatchFrac = normalizedDiff(total, sumInts(tpl.Padas))
		d.PadaScore = math.Max(0, 0.25*(1-d.MismatchFrac))
		d.PadaNote = "total mismatch, no direct pada split"
	}

	// Whole-line heavy-fraction agreement, a secondary signal.
	d.ExpectedGuruFrac = expectedGuruFrac(tpl.Total)
	d.GuruScore = 1 - math.Min(1, math.Abs(guruFrac-d.ExpectedGuruFrac))

	var combined float64
	if exactPadaSplit {
		combined = 0.70*d.TotalScore + 0.20*d.PadaScore + 0.10*d.GuruScore
	} else {
		combined = 0.80*d.TotalScore + 0.10*d.PadaScore + 0.10*d.GuruScore
	}

	return MatchResult{Meter: tpl.Name, Score: combined, Detail: d}
}

// expectedGuruFrac is the heavy fraction a template of the given total
// is expected to carry: longer meters trend heavier, capped at 0.6.
func expectedGuruFrac(expectedTotal int) float64 {
	return math.Min(0.6, float64(expectedTotal)/100+0.4)
}

// heavyFraction returns the Guru fraction of labels[start:end), clamped
// to the slice and never dividing by zero.
func heavyFraction(labels []prosody.Label, start, end int) float64 {
	if start < 0 {
		start = 0
	}
	if end > len(labels) {
		end = len(labels)
	}
	if end <= start {
		return 0
	}
	heavy := 0
	for _, l := range labels[start:end] {
		if l.Weight == prosody.Guru {
			heavy++
		}
	}
	return float64(heavy) / float64(end-start)
}

// sumInts totals a pada-length list.
func sumInts(xs []int) int {
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return sum
}

// normalizedDiff is |a-b| / max(a, b), defined as 0 when both are 0.
func normalizedDiff(a, b int) float64 {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	den := a
	if b > den {
		den = b
	}
	if den == 0 {
		return 0
	}
	return float64(diff) / float64(den)
}
