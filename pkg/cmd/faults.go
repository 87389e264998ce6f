package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/podem-atpg/pkg/simulator"
)

// faultsCmd represents the faults command.
var faultsCmd = &cobra.Command{
	Use:   "faults [flags] net_file [vectors...]",
	Short: "List the stuck-at faults detected by the given test vector(s).",
	Long: `Run deductive fault simulation for one or more fully specified binary
test vectors and print every single-stuck-at fault each vector detects.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(args[0])
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		vectors, err := gatherArgs(args[1:], file)
		if err != nil {
			return err
		}

		sim := simulator.NewFaultSimulation(c)
		fmt.Printf("Circuit: %s\n", args[0])
		for _, vector := range vectors {
			detected, err := sim.DetectFaults(vector)
			if err != nil {
				return err
			}
			fmt.Printf("Vector %s detects %d faults:\n", vector, detected.Len())
			for _, f := range detected.SortedIn(c) {
				fmt.Printf("  %s\n", f.StringIn(c))
			}
		}
		return nil
	},
}

func init() {
	faultsCmd.Flags().StringP("file", "f", "", "file of additional test vectors, one per line")
	rootCmd.AddCommand(faultsCmd)
}
