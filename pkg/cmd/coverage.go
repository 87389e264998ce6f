package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/podem-atpg/pkg/coverage"
)

// coverageCmd represents the coverage command.
var coverageCmd = &cobra.Command{
	Use:   "coverage [flags] net_file",
	Short: "Measure fault coverage of seeded pseudo-random test vectors.",
	Long: `Apply pseudo-random input patterns to the circuit and report how the
cumulative single-stuck-at fault coverage grows with each vector. The
pattern sequence is a full-period LCG, so a given seed always produces
the same run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(args[0])
		if err != nil {
			return err
		}
		seed, _ := cmd.Flags().GetUint64("seed")
		target, _ := cmd.Flags().GetFloat64("target")
		maxVectors, _ := cmd.Flags().GetInt("max-vectors")

		points, err := coverage.Run(c, coverage.Config{
			Seed:       seed,
			Target:     target,
			MaxVectors: maxVectors,
		}, nil)
		if err != nil {
			return err
		}

		fmt.Printf("Circuit: %s (%d nets, %d faults)\n", args[0], c.NetCount(), 2*c.NetCount())
		fmt.Println("Vectors | Detected | Coverage")
		for _, p := range points {
			fmt.Printf("%7d | %8d | %7.2f%%\n", p.Applied, p.Detected, 100*p.Coverage)
		}
		if len(points) > 0 {
			last := points[len(points)-1]
			fmt.Printf("Final coverage: %.2f%% after %d vectors\n", 100*last.Coverage, last.Applied)
		}
		return nil
	},
}

func init() {
	coverageCmd.Flags().Uint64("seed", 1, "seed for the pseudo-random pattern sequence")
	coverageCmd.Flags().Float64("target", 1.0, "stop once this coverage fraction is reached")
	coverageCmd.Flags().Int("max-vectors", 1000, "stop after this many vectors")
	rootCmd.AddCommand(coverageCmd)
}
