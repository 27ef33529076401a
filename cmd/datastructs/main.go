// Command datastructs runs the example programs of the containers and times the tree.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	log     *zap.Logger
	verbose bool
}

func (a *app) setupLog(*cobra.Command, []string) (err error) {
	if a.log != nil {
		return
	}
	cfg := zap.NewDevelopmentConfig()
	if !a.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	a.log, err = cfg.Build()
	return
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "datastructs",
		Short:             "Examples and timings for the datastructs containers",
		SilenceUsage:      true,
		PersistentPreRunE: a.setupLog,
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")
	root.AddCommand(newSequentialCmd(a), newReverseCmd(a), newTreeCmd(a), newProfileCmd(a))
	return root
}

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	if a.log != nil {
		_ = a.log.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}
