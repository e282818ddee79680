package main

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-dyck/dyck"
	"github.com/forestrie/go-dyck/dycktesting"
)

var errLeavesRange = errors.New("leaves out of range")

// enumerating beyond this takes far too long to be useful
const maxEnumerateLeaves = 16

func newEnumerateCommand(ctx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Print every shape with the given number of leaves",
		Long: `Prints every tree shape with exactly --leaves leaves, one per line, in base 2
and as a bracketed tree with the leaves numbered from the left.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := ctx.named("enumerate")

			n := ctx.conf.GetInt("leaves")
			if n < 1 || n > maxEnumerateLeaves {
				return fmt.Errorf("%w: %d, want 1 to %d", errLeavesRange, n, maxEnumerateLeaves)
			}
			shapes := dycktesting.TreesWithLeaves(n)
			log.Infof("%d shapes with %d leaves", len(shapes), n)

			out := cmd.OutOrStdout()
			for _, s := range shapes {
				tree, err := render(s)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%b %s\n", s, tree)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Int("leaves", 3, "Number of leaves")
	_ = ctx.conf.BindPFlag("leaves", f.Lookup("leaves"))
	return cmd
}

// render walks the shape with a cursor, eg 11010 renders as ((0 1) 2)
func render(s uint64) (string, error) {
	leaves := make([]int, bits.OnesCount64(s))
	for i := range leaves {
		leaves[i] = i
	}
	enc, err := dyck.New([]uint32{uint32(s >> 32), uint32(s)}, dyck.NewLeaves(leaves...))
	if err != nil {
		return "", err
	}
	root, err := enc.Root()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := renderTo(&b, root); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderTo(b *strings.Builder, c dyck.Cursor[int]) error {
	if c.IsLeaf() {
		leaf, err := c.Leaf()
		if err != nil {
			return err
		}
		b.WriteString(strconv.Itoa(leaf))
		return nil
	}
	left, right, err := c.Children()
	if err != nil {
		return err
	}
	b.WriteByte('(')
	if err := renderTo(b, left); err != nil {
		return err
	}
	b.WriteByte(' ')
	if err := renderTo(b, right); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}
