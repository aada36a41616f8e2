// Command chandas is the command-line front end of the meter inference
// pipeline: scan a verse line, inspect its syllabification, or batch-label
// a corpus into JSONL silver data.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gahlautabhinav/Chand-Identifier/pipeline"
	"github.com/gahlautabhinav/Chand-Identifier/prosody"
	"github.com/gahlautabhinav/Chand-Identifier/sandhi"
	"github.com/gahlautabhinav/Chand-Identifier/syllable"
)

var (
	verbose   bool
	nosandhi  bool
	lexPath   string
	topK      int
	maxCands  int
	inputPath string
	outPath   string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chandas",
	Short: "Classical Sanskrit meter inference for Devanagari verse",
	Long: `chandas analyzes Devanagari verse lines: it normalizes the text,
generates reverse-sandhi candidates, labels each syllable Laghu or Guru,
and ranks the line against a library of classical meter templates.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [line]",
	Short: "Infer the probable meter of one verse line",
	Long: `Runs the full inference pipeline on a single line and prints the
result as JSON: all candidates with their scoring breakdown, the chosen
candidate, and the top-ranked meter matches.

Example:
  chandas scan "रामोऽस्ति बलवान्"`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

var syllabifyCmd = &cobra.Command{
	Use:   "syllabify [line]",
	Short: "Print the syllable units and weights of one line",
	Args:  cobra.ExactArgs(1),
	RunE:  runSyllabify,
}

var silverCmd = &cobra.Command{
	Use:   "silver",
	Short: "Batch-label a corpus into JSONL silver training data",
	Long: `Reads a text file with one verse line per row, runs inference on
each non-empty line, and writes one JSON record per line with the chosen
candidate's syllables and Laghu/Guru labels.`,
	RunE: runSilver,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&nosandhi, "nosandhi", false, "Analyze the line as-is, without sandhi candidates")
	rootCmd.PersistentFlags().StringVar(&lexPath, "lexicon", "", "Extra lexicon file, one word per line")

	scanCmd.Flags().IntVar(&topK, "topk", 0, "Number of meter matches to report")
	scanCmd.Flags().IntVar(&maxCands, "max-candidates", 0, "Cap on sandhi candidates")

	silverCmd.Flags().StringVar(&inputPath, "input", "", "Text file, one line per row (required)")
	silverCmd.Flags().StringVar(&outPath, "out", "silver.jsonl", "Output JSONL path")
	_ = silverCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(syllabifyCmd)
	rootCmd.AddCommand(silverCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newPipeline() *pipeline.Pipeline {
	cfg := pipeline.Config{MaxCandidates: maxCands, TopK: topK}
	if lexPath != "" {
		cfg.Lexicon = sandhi.Load(lexPath)
		logger.Debug("loaded extra lexicon", zap.String("path", lexPath), zap.Int("words", cfg.Lexicon.Len()))
	}
	return pipeline.New(cfg)
}

func runScan(cmd *cobra.Command, args []string) error {
	line := strings.TrimSpace(args[0])
	if line == "" {
		return fmt.Errorf("empty line")
	}

	res := newPipeline().Infer(line, !nosandhi)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(res)
}

func runSyllabify(cmd *cobra.Command, args []string) error {
	line := strings.TrimSpace(args[0])
	if line == "" {
		return fmt.Errorf("empty line")
	}

	units := syllable.Syllabify(line)
	labels := prosody.ClassifyAll(units)
	for i, u := range units {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.2f\t%s\n",
			u, labels[i].Weight, labels[i].Confidence, labels[i].Reason)
	}
	return nil
}

func runSilver(cmd *cobra.Command, args []string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	p := newPipeline()
	w := bufio.NewWriter(out)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	count := 0
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec := p.SilverRecord(count, line, !nosandhi)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("write record %d: %w", count, err)
		}
		logger.Debug("labeled line", zap.Int("id", rec.ID), zap.Int("syllables", len(rec.Syllables)))
		count++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", count, outPath)
	return nil
}
