package main

import (
	"fmt"

	"github.com/g-m-twostay/datastructs/Queues"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSequentialCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sequential",
		Short: "Push 1..5 into a queue, a stack and the front of a deque, then pop them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, s, dq := Queues.NewLinked[int](), Queues.NewStack[int](), Queues.NewLinkedDeque[int]()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Adding: 1, 2, 3, 4, 5")
			for i := 1; i <= 5; i++ {
				q.Push(i)
				s.Push(i)
				dq.PushFront(i)
			}
			a.log.Debug("filled", zap.Uint("queue", q.Size()), zap.Uint("stack", s.Size()), zap.Uint("deque", dq.Size()))
			fmt.Fprintln(out, "Queue\tStack\tDeque (last)")
			for range 5 {
				qv, _ := q.Pop()
				sv, _ := s.Pop()
				dv, _ := dq.PopBack()
				fmt.Fprintf(out, "%d\t%d\t%d\n", qv, sv, dv)
			}
			return nil
		},
	}
}
