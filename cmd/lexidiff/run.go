package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexidiff/baseline"
	"github.com/katalvlaran/lexidiff/diff"
	"github.com/katalvlaran/lexidiff/loader"
	"github.com/katalvlaran/lexidiff/paths"
)

var (
	runGraphPath string
	runPolicy    string
	runCeiling   int
	runShowPaths bool
	runShowTrace bool
)

var runCmd = &cobra.Command{
	Use:   "run <termA> <termB>",
	Short: "Differentiate a single pair of terms",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		g, err := loader.LoadFile(runGraphPath)
		if err != nil {
			return err
		}
		log.Info("graph loaded", "terms", g.Len(), "path", runGraphPath)

		seedA, seedB := args[0], args[1]
		gd, err := diff.Great(g, seedA, seedB, diff.WithMaxLevel(runCeiling))
		if err != nil {
			return err
		}
		fmt.Printf("great: level cap %d\n", gd.Level)
		if runShowTrace {
			for _, line := range gd.Trace {
				fmt.Println("  " + line)
			}
		}

		var policies []diff.Policy
		switch runPolicy {
		case "weak":
			policies = []diff.Policy{diff.Weak}
		case "strong":
			policies = []diff.Policy{diff.Strong}
		case "both":
			policies = []diff.Policy{diff.Weak, diff.Strong}
		default:
			return fmt.Errorf("unknown policy %q (want weak, strong or both)", runPolicy)
		}

		for _, p := range policies {
			res, runErr := diff.Run(g, seedA, seedB, p, diff.WithMaxLevel(gd.Level))
			if runErr != nil {
				return runErr
			}
			fmt.Printf("%s: %s at level %d, score %d\n", p, res.Status, res.Level, res.Score)
			if res.Diagnostic != nil {
				fmt.Printf("  closest level %d with %d uncancelled terms\n",
					res.Diagnostic.Level, res.Diagnostic.Remaining)
			}
			if runShowPaths && res.Forest != nil {
				outer, pathErr := paths.Outer(res.Forest)
				if pathErr != nil {
					return pathErr
				}
				for _, path := range outer {
					fmt.Printf("  bridge %v\n", path)
				}
			}
		}

		if hops, _, distErr := baseline.Distance(g, seedA, seedB); distErr == nil {
			fmt.Printf("baseline: %d hops\n", hops)
		} else {
			fmt.Println("baseline: no path")
		}

		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runGraphPath, "graph", "", "definition graph file (.yaml/.yml or text)")
	runCmd.Flags().StringVar(&runPolicy, "policy", "both", "cancellation policy: weak, strong or both")
	runCmd.Flags().IntVar(&runCeiling, "ceiling", diff.DefaultMaxLevel, "safety cap on great differentiation levels")
	runCmd.Flags().BoolVar(&runShowPaths, "paths", false, "print fused bridge paths on clean termination")
	runCmd.Flags().BoolVar(&runShowTrace, "trace", false, "print the great-differentiation level trace")
	_ = runCmd.MarkFlagRequired("graph")
	rootCmd.AddCommand(runCmd)
}
