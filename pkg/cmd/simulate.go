package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/podem-atpg/pkg/simulator"
)

// simulateCmd represents the simulate command.
var simulateCmd = &cobra.Command{
	Use:   "simulate [flags] net_file [vectors...]",
	Short: "Perform fault-free simulation with a given net-list and test vector(s).",
	Args:  cobra.MinimumNArgs(1),
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

		sim := simulator.NewSimulation(c)
		w := maxLen(vectors, len("Inputs"))
		fmt.Printf("Circuit: %s\n", args[0])
		fmt.Printf("%-*s | Outputs\n", w, "Inputs")
		for _, vector := range vectors {
			out, err := sim.SimulateVector(vector)
			if err != nil {
				return err
			}
			fmt.Printf("%-*s | %s\n", w, vector, out)
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringP("file", "f", "", "file of additional input vectors, one per line")
	rootCmd.AddCommand(simulateCmd)
}
