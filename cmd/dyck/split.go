package main

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"
	"lukechampine.com/uint128"

	"github.com/forestrie/go-dyck/split"
	"github.com/forestrie/go-dyck/uint512"
)

var (
	errBadStructure = errors.New("structure must be a base 2 number, eg 0b11010")
	errTooWide      = errors.New("structure does not fit the representation")
	errUnknownRepr  = errors.New("unknown representation, want one of native, 128, 512 or big")
)

// halves is the split of a structure, widened to big.Int for printing.
type halves struct {
	mask, left, right *big.Int
}

func newSplitCommand(ctx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <structure>",
		Short: "Find the split between the left and right children of a shape",
		Long: `Prints the split mask, marking the lowest bit of the left child, and the
left and right children of the shape. The structure is given in base 2, with
an optional 0b prefix and _ separators.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := ctx.named("split")

			s, err := parseStructure(args[0])
			if err != nil {
				return err
			}
			repr := ctx.conf.GetString("repr")
			log.Debugf("%s: %d bits, representation %s", s.Text(2), s.BitLen(), repr)

			h, err := splitAs(repr, s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if h == nil {
				fmt.Fprintln(out, "no children")
				return nil
			}
			fmt.Fprintf(out, "split %s\n", h.mask.Text(2))
			fmt.Fprintf(out, "left  %s\n", h.left.Text(2))
			fmt.Fprintf(out, "right %s\n", h.right.Text(2))
			return nil
		},
	}

	f := cmd.Flags()
	f.String("repr", "native", "Integer representation: native, 128, 512 or big")
	_ = ctx.conf.BindPFlag("repr", f.Lookup("repr"))
	return cmd
}

func parseStructure(arg string) (*big.Int, error) {
	digits := strings.ReplaceAll(strings.TrimPrefix(arg, "0b"), "_", "")
	s, ok := new(big.Int).SetString(digits, 2)
	if !ok || digits == "" {
		return nil, fmt.Errorf("%w: %q", errBadStructure, arg)
	}
	return s, nil
}

// splitAs returns nil, and no error, when s has no children.
func splitAs(repr string, s *big.Int) (*halves, error) {
	switch repr {
	case "native", "64", "128", "512", "big":
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownRepr, repr)
	}
	if s.BitLen() <= 1 {
		return nil, nil
	}

	switch repr {
	case "native", "64":
		if s.BitLen() > 64 {
			return nil, fmt.Errorf("%w: %d bits for native", errTooWide, s.BitLen())
		}
		mask, err := split.Native(s.Uint64())
		if err != nil {
			return nil, err
		}
		left, right, err := split.HalvesNative(s.Uint64())
		if err != nil {
			return nil, err
		}
		return &halves{
			mask:  new(big.Int).SetUint64(mask),
			left:  new(big.Int).SetUint64(left),
			right: new(big.Int).SetUint64(right),
		}, nil

	case "128":
		if s.BitLen() > 128 {
			return nil, fmt.Errorf("%w: %d bits for 128", errTooWide, s.BitLen())
		}
		// FromBig modifies its argument
		w := uint128.FromBig(new(big.Int).Set(s))
		mask, err := split.Uint128(w)
		if err != nil {
			return nil, err
		}
		left, right, err := split.HalvesUint128(w)
		if err != nil {
			return nil, err
		}
		return &halves{mask: mask.Big(), left: left.Big(), right: right.Big()}, nil

	case "512":
		if s.BitLen() > uint512.Bits {
			return nil, fmt.Errorf("%w: %d bits for 512", errTooWide, s.BitLen())
		}
		w := uint512.FromBig(s)
		mask, err := split.Wide(w)
		if err != nil {
			return nil, err
		}
		left, right, err := split.HalvesWide(w)
		if err != nil {
			return nil, err
		}
		return &halves{mask: mask.Big(), left: left.Big(), right: right.Big()}, nil

	default:
		mask, err := split.Big(s)
		if err != nil {
			return nil, err
		}
		left, right, err := split.HalvesBig(s)
		if err != nil {
			return nil, err
		}
		return &halves{mask: mask, left: left, right: right}, nil
	}
}
