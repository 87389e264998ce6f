package cmd

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
	"github.com/fyerfyer/podem-atpg/pkg/utils"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "atpg",
	Short: "Stuck-at fault simulation and PODEM test generation for combinational circuits.",
	Long: `A toolkit for single-stuck-at fault analysis of combinational logic.
Circuits are read from line-oriented net-list files; subcommands run
fault-free simulation, deductive fault simulation, PODEM test generation
and random-pattern coverage measurement.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

// loadCircuit parses the net-list file named by the first positional
// argument.
func loadCircuit(path string) (*circuit.Circuit, error) {
	return utils.ParseNetlistFile(path)
}

// gatherArgs combines inline arguments with lines read from an optional
// argument file (one argument per line), the inline ones first.
func gatherArgs(inline []string, file string) ([]string, error) {
	args := append([]string{}, inline...)
	if file == "" {
		return args, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "opening argument file")
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			args = append(args, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading argument file")
	}
	return args, nil
}

// maxLen returns the length of the longest string, used to align output
// columns.
func maxLen(items []string, floor int) int {
	w := floor
	for _, s := range items {
		if len(s) > w {
			w = len(s)
		}
	}
	return w
}
