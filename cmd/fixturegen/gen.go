package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fixture-generator/internal/recipe"
	"fixture-generator/internal/suite"
)

var errStale = errors.New("generated files are out of date")

func newGenCmd(a *app) *cobra.Command {
	var (
		out   string
		check bool
	)

	cmd := &cobra.Command{
		Use:   "gen RECIPE",
		Short: "Write the fixture files described by a recipe",
		Long: `Write the fixture files described by a YAML or TOML recipe.

With --check nothing is written; the command fails when a file on disk is
missing or differs from what the recipe produces. This needs a seeded recipe
(or --seed) to be meaningful.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := recipe.LoadFile(args[0])
			if err != nil {
				return err
			}

			src, err := a.source(cmd, r.Seed)
			if err != nil {
				return err
			}

			tree, err := suite.BuildFrom(a.types, r, src, a.logger.With("recipe", args[0]))
			if err != nil {
				return err
			}

			if check {
				if err := tree.Verify(cmd.Context(), out); err != nil {
					return fmt.Errorf("%w: %w", errStale, err)
				}

				a.logger.Info("fixtures up to date", "dir", out, "files", tree.Len())

				return nil
			}

			if err := tree.Write(cmd.Context(), out); err != nil {
				return err
			}

			a.logger.Info("wrote fixtures", "dir", out, "files", tree.Len())

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", a.cfg.OutputDir, "output directory")
	cmd.Flags().BoolVar(&check, "check", false, "verify files on disk instead of writing them")

	return cmd
}
