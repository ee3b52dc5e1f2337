// Command kvreset is the test harness's CLI surface (spec §6): a single
// optional positional argument, reset, which deletes the namespace's
// reserved test keys and exits 0. It drives the namespace API against an
// in-process simulated device rather than real hardware, since controller
// discovery and probing are collaborators outside this driver's scope.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nvmekv/internal/devicesim"
	"nvmekv/internal/dma"
	"nvmekv/internal/qpair"
	"nvmekv/kv"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "kvreset [reset]",
	Short:   "KV namespace test harness",
	Long:    `kvreset drives the vendor KV command set against a namespace for use as a test fixture reset hook.`,
	Version: "0.1.0",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		if args[0] != "reset" {
			return fmt.Errorf("unknown argument %q (expected \"reset\")", args[0])
		}
		return runReset()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newFixtureNamespace wires a Namespace over a freshly constructed
// simulated device. A real deployment would substitute a transport bound
// to a probed queue pair here; that probe/discovery protocol is outside
// this driver's scope (spec §1).
func newFixtureNamespace() (*kv.Namespace, *qpair.QueuePair) {
	qp := qpair.New(devicesim.New(), 4)
	return kv.New(qp, 1, dma.New()), qp
}
