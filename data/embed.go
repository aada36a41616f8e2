// Package data embeds the static lexicon and meter-template assets.
package data

import _ "embed"

//go:embed lexicon.txt
var BootstrapLexicon string

//go:embed meters.yaml
var MeterTemplates []byte
