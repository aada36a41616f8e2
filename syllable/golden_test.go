package syllable

import (
	"encoding/json"
	"flag"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenCase represents a single golden test case.
type goldenCase struct {
	Name      string   `json:"name"`
	Input     string   `json:"input"`
	Syllables []string `json:"syllables"`
}

const goldenPath = "../data/golden/syllable.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("syllable.json not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			// Always verify the reconstruction invariant.
			verifyInvariants(t, tc.Input, Units(tc.Input))

			got := Syllabify(tc.Input)
			if diff := cmp.Diff(tc.Syllables, got); diff != "" {
				t.Errorf("Syllabify(%q) mismatch (-want +got):\n%s", tc.Input, diff)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		cases[i].Syllables = Syllabify(cases[i].Input)
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden cases: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0o644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}
	t.Logf("updated %s with %d cases", goldenPath, len(cases))
}
