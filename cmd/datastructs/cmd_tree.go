package main

import (
	"cmp"
	"fmt"
	"os"

	"github.com/g-m-twostay/datastructs/Sets/TreeSet"
	"github.com/g-m-twostay/datastructs/Trees"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

func newTreeCmd(a *app) *cobra.Command {
	var (
		values []int
		dump   string
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Insert values into a binary search tree and look some up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree := Trees.New[int, uint32](cmp.Compare[int], uint32(len(values)))
			for _, v := range values {
				if !tree.Insert(v) {
					a.log.Info("duplicate value ignored", zap.Int("value", v))
				}
			}
			out := cmd.OutOrStdout()
			root, ok := tree.Root()
			if !ok {
				fmt.Fprintln(out, "Empty tree")
				return nil
			}
			fmt.Fprintf(out, "Root: %d\n", root)
			if tree.Has(70) {
				fmt.Fprintln(out, "Found one value correctly")
			}
			if !tree.Has(35) {
				fmt.Fprintln(out, "Did not find value as supposed")
			}
			lo, _ := tree.Minimum()
			hi, _ := tree.Maximum()
			fmt.Fprintf(out, "Lowest: %d, highest: %d, height: %d\n", lo, hi, tree.Height())
			fmt.Fprint(out, "In order:")
			for v := range tree.All() {
				fmt.Fprintf(out, " %d", v)
			}
			fmt.Fprintln(out)

			if dump != "" {
				set := TreeSet.New(cmp.Compare[int])
				for v := range tree.All() {
					set.Add(v)
				}
				b, err := msgpack.Marshal(set)
				if err != nil {
					return errors.Wrap(err, "encoding set")
				}
				if err = os.WriteFile(dump, b, 0o644); err != nil {
					return errors.Wrapf(err, "writing %s", dump)
				}
				a.log.Info("dumped set", zap.String("path", dump), zap.Int("bytes", len(b)), zap.Uint("size", set.Size()))
				set.Destroy(nil)
			}
			tree.Destroy(nil)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&values, "values", []int{50, 20, 10, 90, 70}, "values to insert, in order")
	cmd.Flags().StringVar(&dump, "dump", "", "write the values as a msgpack encoded set to this file")
	return cmd
}
