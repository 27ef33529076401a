package main

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/datastructs/Queues"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// groups collects the characters inside every pair of parentheses, in the order
// the groups are closed. Characters outside of any group are dropped.
func groups(dq *Queues.LinkedDeque[rune]) *Queues.Linked[*Queues.Linked[rune]] {
	open := Queues.NewStack[*Queues.Linked[rune]]()
	order := Queues.NewLinked[*Queues.Linked[rune]]()
	var cur *Queues.Linked[rune]
	dq.RangeFrom(func(r rune) bool {
		if cur == nil {
			cur = Queues.NewLinked[rune]()
		}
		switch r {
		case '(':
			open.Push(cur)
			cur = nil
		case ')':
			order.Push(cur)
			cur, _ = open.Pop()
		default:
			cur.Push(r)
		}
		return true
	}, false)
	return order
}

func newReverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <text>",
		Short: "Print text reversed, then the parenthesised groups in closing order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dq := Queues.NewLinkedDeque[rune]()
			for _, r := range args[0] {
				dq.PushBack(r)
			}
			out := cmd.OutOrStdout()
			var b strings.Builder
			dq.RangeFrom(func(r rune) bool {
				b.WriteRune(r)
				return true
			}, true)
			fmt.Fprintf(out, "Print '%s' reversed: %s\n", args[0], b.String())

			order := groups(dq)
			a.log.Debug("grouped", zap.Uint("groups", order.Size()))
			b.Reset()
			order.Range(func(q *Queues.Linked[rune]) bool {
				q.Range(func(r rune) bool {
					b.WriteRune(r)
					return true
				})
				b.WriteByte(' ')
				return true
			})
			fmt.Fprintln(out, b.String())
			order.Destroy(func(q *Queues.Linked[rune]) { q.Destroy(nil) })
			dq.Destroy(nil)
			return nil
		},
	}
}
