// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	valueset "github.com/digitalocean/go-valueset"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <value>",
		Short: "Prints a value in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := valueset.ParseValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newUnionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "union <value> <value>...",
		Short: "Prints the union of all values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseValues(args)
			if err != nil {
				return err
			}
			acc := vs[0]
			for _, v := range vs[1:] {
				acc.UnionInto(v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), acc)
			return nil
		},
	}
}

func newDiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <value> <value>...",
		Short: "Prints the first value minus all the others",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseValues(args)
			if err != nil {
				return err
			}
			acc := vs[0]
			for _, v := range vs[1:] {
				acc.DifferenceInto(v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), acc)
			return nil
		},
	}
}

func newIntersectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect <value> <value>...",
		Short: "Prints the intersection of all values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseValues(args)
			if err != nil {
				return err
			}
			acc := vs[0]
			for _, v := range vs[1:] {
				acc = acc.Intersect(v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), acc)
			return nil
		},
	}
}

func newComplementCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complement <value>",
		Short: "Prints everything not in the value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := valueset.ParseValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Complement())
			return nil
		},
	}
}

func newContainsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <value> <element>",
		Short: "Reports whether the element (number, interval, points or value) lies in the value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := valueset.ParseValue(args[0])
			if err != nil {
				return err
			}
			e, err := valueset.ParseElement(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.ContainsElement(e))
			return nil
		},
	}
}

func newEqualCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "equal <value> <value>",
		Short: "Reports whether two values hold the same points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseValues(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), vs[0].Equal(vs[1]))
			return nil
		},
	}
}

func newCutsCommand() *cobra.Command {
	var first, last string
	cmd := &cobra.Command{
		Use:   "cuts <cut> <cut>...",
		Short: "Prints the bins between ascending cut points",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fe, err := parseCutEdge("--first", first)
			if err != nil {
				return err
			}
			le, err := parseCutEdge("--last", last)
			if err != nil {
				return err
			}
			cuts := make([]float64, len(args))
			for i, a := range args {
				if cuts[i], err = strconv.ParseFloat(a, 64); err != nil {
					return fmt.Errorf("cut %q: %w", a, err)
				}
			}
			bins, err := valueset.FromCuts(cuts, fe, le)
			if err != nil {
				return err
			}
			for _, b := range bins {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&first, "first", "include", "left edge of the first bin (include, exclude, inf)")
	cmd.Flags().StringVar(&last, "last", "include", "right edge of the last bin (include, exclude, inf)")
	return cmd
}

func parseCutEdge(flag, s string) (valueset.CutEdge, error) {
	for _, c := range []valueset.CutEdge{valueset.CutExclude, valueset.CutInclude, valueset.CutInf} {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%s: unknown edge %q", flag, s)
}

func parseValues(args []string) ([]valueset.Value, error) {
	vs := make([]valueset.Value, len(args))
	for i, a := range args {
		v, err := valueset.ParseValue(a)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}
