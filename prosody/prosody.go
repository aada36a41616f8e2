// Package prosody assigns Laghu/Guru (light/heavy) weight to akshara
// units.
//
// Classification is a fixed-priority rule cascade. The first matching
// rule wins:
//
//  1. a combining nasalization/breath mark (anusvara, visarga,
//     chandrabindu) makes the unit Guru
//  2. a long vowel (dependent sign or independent vowel) makes it Guru
//  3. a virama (the unit closes a conjunct) makes it Guru
//  4. otherwise the unit is Laghu
//
// Every label carries a confidence and a fixed reason string for
// explainability; reasons are part of the exported record vocabulary and
// must not be reworded.
//
// The final syllable of a verse is NOT given the classical end-of-line
// heavy override; downstream silver-labeled data was produced without it.
//
// All functions are pure, total, and safe for concurrent use.
package prosody

import (
	"encoding/json"
	"fmt"

	"github.com/gahlautabhinav/Chand-Identifier/internal/script"
)

// Weight is the binary prosodic weight of a syllable unit.
type Weight int

const (
	Laghu Weight = iota // light
	Guru                // heavy
)

// String returns the single-letter label vocabulary used in training
// records: "L" for Laghu, "G" for Guru.
func (w Weight) String() string {
	switch w {
	case Laghu:
		return "L"
	case Guru:
		return "G"
	default:
		return fmt.Sprintf("Weight(%d)", int(w))
	}
}

// MarshalJSON encodes the weight as its "L"/"G" label.
func (w Weight) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// UnmarshalJSON decodes an "L"/"G" label into a Weight.
func (w *Weight) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "L":
		*w = Laghu
	case "G":
		*w = Guru
	default:
		return fmt.Errorf("prosody: unknown weight label %q", s)
	}
	return nil
}

// Label is the classification of one syllable unit.
type Label struct {
	Weight     Weight  `json:"weight"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// rule is one step of the classification cascade.
type rule struct {
	match      func(string) bool
	weight     Weight
	confidence float64
	reason     string
}

// cascade is evaluated in order; the first match wins. The trailing
// default rule makes Classify total.
var cascade = []rule{
	{containsFunc(script.IsCombining), Guru, 0.95, "anusvara/visarga/chandrabindu present (rule)"},
	{containsFunc(script.IsLongVowel), Guru, 0.95, "long vowel matra/indep vowel (rule)"},
	{containsFunc(script.IsVirama), Guru, 0.90, "consonant conjunct / halant (rule)"},
	{func(string) bool { return true }, Laghu, 0.95, "short vowel / open syllable (rule)"},
}

// containsFunc lifts a rune predicate to a unit predicate.
func containsFunc(pred func(rune) bool) func(string) bool {
	return func(unit string) bool {
		for _, r := range unit {
			if pred(r) {
				return true
			}
		}
		return false
	}
}

// Classify returns the weight label for one syllable unit.
func Classify(unit string) Label {
	for _, r := range cascade {
		if r.match(unit) {
			return Label{Weight: r.weight, Confidence: r.confidence, Reason: r.reason}
		}
	}
	// Unreachable: the cascade ends in a catch-all.
	return Label{Weight: Laghu, Confidence: 0, Reason: ""}
}

// ClassifyAll labels every unit in order.
func ClassifyAll(units []string) []Label {
	if len(units) == 0 {
		return nil
	}
	labels := make([]Label, len(units))
	for i, u := range units {
		labels[i] = Classify(u)
	}
	return labels
}
