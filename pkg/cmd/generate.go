package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fyerfyer/podem-atpg/pkg/algorithm"
	"github.com/fyerfyer/podem-atpg/pkg/circuit"
	"github.com/fyerfyer/podem-atpg/pkg/utils"
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate [flags] net_file [faults...]",
	Short: "Find a test vector that detects a given stuck-at fault.",
	Long: `Run the PODEM test generation algorithm for one or more faults given as
<net>-sa-<0|1>. Prints the test vector, or UNDETECTABLE when the search
proves no vector can detect the fault.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(args[0])
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		faultArgs, err := gatherArgs(args[1:], file)
		if err != nil {
			return err
		}

		gen := algorithm.NewGenerator(c, nil)
		w := maxLen(faultArgs, len("Fault"))
		fmt.Printf("Circuit: %s\n", args[0])
		fmt.Printf("%-*s | Test\n", w, "Fault")
		for _, arg := range faultArgs {
			fault, err := utils.ParseFault(c, arg)
			if errors.Is(err, circuit.ErrUnknownNet) {
				fmt.Printf("%-*s | NON-EXISTENT\n", w, arg)
				continue
			}
			if err != nil {
				return err
			}
			vector, err := gen.Generate(fault)
			switch {
			case errors.Is(err, algorithm.ErrUndetectable):
				fmt.Printf("%-*s | UNDETECTABLE\n", w, arg)
			case err != nil:
				return err
			default:
				fmt.Printf("%-*s | %s\n", w, arg, vector)
			}
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("file", "f", "", "file of additional faults, one per line")
	rootCmd.AddCommand(generateCmd)
}
