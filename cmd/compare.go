package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/seeksim/seeksim/sim"
)

// compareCmd runs every policy against the same input and reports the cheapest
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all policies against the same input and pick the cheapest",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		reqs, cfg := resolveInput()
		cmp, err := sim.CompareAll(reqs, cfg)
		if err != nil {
			logrus.Fatalf("comparison failed: %v", err)
		}

		fmt.Println("=== Policy Comparison ===")
		fmt.Printf("%-8s %10s %10s %12s %10s\n", "Policy", "TotalSeek", "AvgSeek", "Throughput", "MaxMove")
		for _, p := range sim.AllPolicies {
			res := cmp.Results[p]
			fmt.Printf("%-8s %10d %10.2f %12.4f %10d\n",
				p, res.TotalSeek, res.AverageSeek, res.Throughput, res.SeekStats.Max)
		}
		fmt.Printf("\nBest policy: %s (total seek %d)\n", cmp.Best, cmp.Results[cmp.Best].TotalSeek)
	},
}
