package meter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gahlautabhinav/Chand-Identifier/data"
)

// Template describes one classical meter: its name, the expected total
// syllable count for a verse, and, when the meter has a regular quarter
// structure, the ordered pada lengths. Templates are static and never
// mutated after load.
type Template struct {
	Name  string `yaml:"name" json:"name"`
	Total int    `yaml:"total" json:"total"`
	Padas []int  `yaml:"padas,omitempty" json:"padas,omitempty"`
}

// templates is the meter library, parsed once from the embedded table.
// The table stays closed over any single Match call; matching never adds
// templates.
var templates []Template

func init() {
	var err error
	templates, err = parseTemplates(data.MeterTemplates)
	if err != nil {
		// The embedded table is validated at build time; a parse or
		// validation failure is a programming error, not input.
		panic(fmt.Sprintf("meter: bad embedded template table: %v", err))
	}
}

// parseTemplates decodes and validates a YAML template table.
func parseTemplates(raw []byte) ([]Template, error) {
	var tpls []Template
	if err := yaml.Unmarshal(raw, &tpls); err != nil {
		return nil, fmt.Errorf("parsing template table: %w", err)
	}
	if len(tpls) == 0 {
		return nil, fmt.Errorf("template table is empty")
	}
	for _, t := range tpls {
		if t.Name == "" {
			return nil, fmt.Errorf("template with empty name")
		}
		if t.Total <= 0 {
			return nil, fmt.Errorf("template %s: total %d is not positive", t.Name, t.Total)
		}
		for _, p := range t.Padas {
			if p <= 0 {
				return nil, fmt.Errorf("template %s: pada length %d is not positive", t.Name, p)
			}
		}
	}
	return tpls, nil
}

// Templates returns the meter library in table order. The returned slice
// is shared; callers must not modify it.
func Templates() []Template {
	return templates
}
