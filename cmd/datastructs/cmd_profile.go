package main

import (
	"cmp"
	"fmt"
	"math"
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/g-m-twostay/datastructs/Trees"
	"github.com/g-m-twostay/datastructs/internal/measure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newProfileCmd(a *app) *cobra.Command {
	var (
		count, rounds uint
		seed          int64
	)
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Time random inserts, lookups and teardown of a binary search tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count == 0 || count > math.MaxUint32 {
				return errors.Errorf("count must be in [1, %d], got %d", uint32(math.MaxUint32), count)
			}
			if rounds == 0 {
				return errors.New("rounds must be positive")
			}
			r := rand.New(rand.NewSource(seed))
			phases := []*measure.Series{{Name: "generate", N: count}, {Name: "insert", N: count}, {Name: "lookup", N: count}, {Name: "destroy", N: count}}
			values := make([]int64, count)
			for round := range rounds {
				phases[0].Add(measure.Run(func() {
					for i := range values {
						values[i] = r.Int63() - math.MaxInt64/2
					}
				}))
				tree := Trees.New[int64, uint32](cmp.Compare[int64], uint32(count))
				phases[1].Add(measure.Run(func() {
					for _, v := range values {
						tree.Insert(v)
					}
				}))
				var found uint
				phases[2].Add(measure.Run(func() {
					for _, v := range values {
						if tree.Has(v) {
							found++
						}
					}
				}))
				a.log.Debug("round", zap.Uint("round", round), zap.Uint("size", tree.Size()), zap.Uint("height", tree.Height()), zap.Uint("found", found))
				if found != count || tree.Corrupt() {
					return errors.Errorf("round %d: found %d of %d values", round, found, count)
				}
				var released uint
				size := tree.Size()
				phases[3].Add(measure.Run(func() {
					tree.Destroy(func(int64) { released++ })
				}))
				if released != size || tree.Size() != 0 {
					return errors.Errorf("round %d: released %d of %d values", round, released, size)
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s values, %d round(s)\n", humanize.Comma(int64(count)), rounds)
			for _, p := range phases {
				fmt.Fprintln(out, p)
				a.log.Info("phase", zap.String("name", p.Name), zap.Duration("mean", p.Mean()), zap.Duration("stddev", p.StdDev()))
			}
			return nil
		},
	}
	cmd.Flags().UintVarP(&count, "count", "n", 1000000, "number of random values")
	cmd.Flags().UintVar(&rounds, "rounds", 1, "number of repetitions")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}
