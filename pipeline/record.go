package pipeline

import "github.com/gahlautabhinav/Chand-Identifier/prosody"

// Record is the stable per-line export shape consumed by the dataset
// tooling: field names and the "L"/"G" label vocabulary must not change.
type Record struct {
	ID        int              `json:"id"`
	Text      string           `json:"text"`
	Syllables []string         `json:"syllables"`
	Labels    []prosody.Weight `json:"labels"`
}

// SilverRecord runs a full inference on line and exports the chosen
// candidate's syllables and silver labels as a Record.
func (p *Pipeline) SilverRecord(id int, line string, useSandhi bool) Record {
	res := p.Infer(line, useSandhi)
	return Record{
		ID:        id,
		Text:      res.Line,
		Syllables: res.Chosen.Syllables,
		Labels:    res.Chosen.Labels,
	}
}
