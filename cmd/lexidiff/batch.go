package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexidiff/batch"
	"github.com/katalvlaran/lexidiff/diff"
	"github.com/katalvlaran/lexidiff/loader"
)

var (
	batchGraphPath string
	batchPairsPath string
	batchWorkers   int
	batchCeiling   int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate many seed pairs from a pairs file",
	Long: `Reads seed pairs (one per line, two whitespace-separated terms) and
evaluates each under the weak and strong policies plus the shortest-path
baseline, writing one tab-separated line per pair to stdout:

	termA  termB  cap  weakScore  weakStatus  strongScore  strongStatus  distance`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		g, err := loader.LoadFile(batchGraphPath)
		if err != nil {
			return err
		}

		f, err := os.Open(batchPairsPath)
		if err != nil {
			return err
		}
		raw, err := loader.LoadPairs(f)
		f.Close()
		if err != nil {
			return err
		}
		pairs := make([]batch.Pair, len(raw))
		for i, p := range raw {
			pairs[i] = batch.Pair{A: p[0], B: p[1]}
		}
		log.Info("batch start", "terms", g.Len(), "pairs", len(pairs), "workers", batchWorkers)

		opts := []batch.Option{
			batch.WithCeiling(batchCeiling),
			batch.WithLogger(log),
		}
		if batchWorkers > 0 {
			opts = append(opts, batch.WithWorkers(batchWorkers))
		}
		out, err := batch.Evaluate(cmd.Context(), g, pairs, opts...)
		if err != nil {
			return err
		}

		failed := 0
		for _, o := range out {
			if o.Err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "skip %s %s: %v\n", o.Pair.A, o.Pair.B, o.Err)
				continue
			}
			fmt.Printf("%s\t%s\t%d\t%d\t%s\t%d\t%s\t%d\n",
				o.Pair.A, o.Pair.B, o.Cap,
				o.Weak.Score, o.Weak.Status,
				o.Strong.Score, o.Strong.Status,
				o.Distance,
			)
		}
		log.Info("batch done", "pairs", len(out), "failed", failed)

		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchGraphPath, "graph", "", "definition graph file (.yaml/.yml or text)")
	batchCmd.Flags().StringVar(&batchPairsPath, "pairs", "", "seed pairs file, one pair per line")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "worker count (0 = number of CPUs)")
	batchCmd.Flags().IntVar(&batchCeiling, "ceiling", diff.DefaultMaxLevel, "safety cap on great differentiation levels")
	_ = batchCmd.MarkFlagRequired("graph")
	_ = batchCmd.MarkFlagRequired("pairs")
	rootCmd.AddCommand(batchCmd)
}
