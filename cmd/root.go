package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/seeksim/seeksim/sim"
)

var (
	// CLI flags shared by run and compare
	requestsCSV  string // Comma-separated request cylinders
	scenarioPath string // YAML scenario file
	randomCount  int    // Number of randomly generated requests (0 = disabled)
	seed         int64  // Seed for random request generation
	diskSize     int    // Number of cylinders on the simulated disk
	headPosition int    // Initial head position
	direction    int    // Initial sweep direction for SCAN-family policies (1 or -1)
	logLevel     string // Log verbosity level

	// run-only flags
	algorithm string // Policy name; empty runs every policy
	csvPath   string // Export the trace as CSV to this path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "seeksim",
	Short: "Disk-head scheduling simulator",
}

// runCmd executes one policy (or all of them) and prints the trace and metrics
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the disk scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		reqs, cfg := resolveInput()

		policies := sim.AllPolicies
		if algorithm != "" {
			p, err := sim.ParsePolicy(algorithm)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			policies = []sim.Policy{p}
		}
		if csvPath != "" && len(policies) != 1 {
			logrus.Fatalf("--csv requires --algorithm")
		}

		for _, p := range policies {
			tr, err := sim.Schedule(p, reqs, cfg)
			if err != nil {
				logrus.Fatalf("scheduling %s: %v", p, err)
			}
			m, err := sim.ComputeMetrics(tr, len(reqs))
			if err != nil {
				logrus.Fatalf("computing metrics: %v", err)
			}

			fmt.Printf("\n--- %s ---\n", p)
			printTrace(tr)
			m.Print()

			if csvPath != "" {
				if err := exportCSV(tr, csvPath); err != nil {
					logrus.Fatalf("exporting CSV: %v", err)
				}
				logrus.Infof("trace written to %s", csvPath)
			}
		}
	},
}

// resolveInput builds the request set and disk configuration from the
// scenario file, the --requests flag, the random generator, or an
// interactive prompt — in that priority order.
func resolveInput() ([]sim.Request, sim.DiskConfig) {
	if scenarioPath != "" {
		sc, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("loading scenario: %v", err)
		}
		if err := sc.Validate(); err != nil {
			logrus.Fatalf("invalid scenario: %v", err)
		}
		cfg, _ := sc.DiskConfig()
		if sc.Algorithm != "" && algorithm == "" {
			algorithm = sc.Algorithm
		}
		return sc.RequestList(), cfg
	}

	dir, err := sim.ParseDirection(direction)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	cfg := sim.DiskConfig{DiskSize: diskSize, InitialHead: headPosition, Direction: dir}

	if requestsCSV != "" {
		reqs, err := sim.ParseRequestList(requestsCSV)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		return reqs, cfg
	}

	if randomCount > 0 {
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
		return sim.GenerateRequests(randomCount, diskSize, rng.ForSubsystem(sim.SubsystemWorkload)), cfg
	}

	// Interactive fallback: prompt on stdin like the classic driver.
	reqs, head := promptInput()
	cfg.InitialHead = head
	return reqs, cfg
}

// promptInput reads comma-separated cylinders and an initial head position
// from standard input.
func promptInput() ([]sim.Request, int) {
	fmt.Println("=== Disk Scheduling Simulator ===")
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("Enter request cylinders (comma separated): ")
	if !scanner.Scan() {
		logrus.Fatalf("no input")
	}
	reqs, err := sim.ParseRequestList(scanner.Text())
	if err != nil {
		logrus.Fatalf("%v", err)
	}

	fmt.Print("Initial head position: ")
	if !scanner.Scan() {
		logrus.Fatalf("no input")
	}
	var head int
	if _, err := fmt.Sscanf(strings.TrimSpace(scanner.Text()), "%d", &head); err != nil {
		logrus.Fatalf("invalid head position: %v", err)
	}
	return reqs, head
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, compareCmd} {
		c.Flags().StringVar(&requestsCSV, "requests", "", "Comma-separated request cylinders (e.g. \"98,183,37\")")
		c.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file")
		c.Flags().IntVar(&randomCount, "random", 0, "Generate this many random requests instead of --requests")
		c.Flags().Int64Var(&seed, "seed", 42, "Seed for random request generation")
		c.Flags().IntVar(&diskSize, "disk-size", 200, "Number of cylinders on the disk")
		c.Flags().IntVar(&headPosition, "head", 50, "Initial head position")
		c.Flags().IntVar(&direction, "direction", 1, "Initial sweep direction for SCAN-family policies (1 = right, -1 = left)")
		c.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	}

	runCmd.Flags().StringVar(&algorithm, "algorithm", "", "Policy to run (FCFS, SSTF, SCAN, C-SCAN, LOOK, C-LOOK); empty runs all")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Export the trace as CSV to this path (single algorithm only)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(serveCmd)
}
