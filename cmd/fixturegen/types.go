package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"fixture-generator/internal/common"
	"fixture-generator/primitive"
)

func newValueCmd(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "value TYPE",
		Short: "Print a random initializer for a catalog type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := a.types.Lookup(args[0])
			if !ok {
				return fmt.Errorf("type %q has no generator, see 'fixturegen types'", args[0])
			}

			src, err := a.source(cmd, nil)
			if err != nil {
				return err
			}

			v := gen(src)
			a.logger.Debug("generated value", "type", args[0], "kind", primitive.KindOf(v).String())

			w := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(w, primitive.Literal(v)); err != nil {
				return err
			}

			if dump {
				_, err = fmt.Fprint(w, spew.Sdump(v))
			}

			return err
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "also dump the generated Go value")

	return cmd
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types [FILTER]",
		Short: "List catalog types, optionally only those containing FILTER",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, _ := common.First(args)

			for _, name := range a.types.Names() {
				if !strings.Contains(name, filter) {
					continue
				}

				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
