package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fixture-generator/internal/emit"
)

func newStructCmd(a *app) *cobra.Command {
	var (
		fields int
		opts   emit.StructOptions
	)

	cmd := &cobra.Command{
		Use:   "struct",
		Short: "Print a struct declaration with random fields",
		Example: `  fixturegen struct --fields 3 --name TestA \
    --tail '    NEKO_SERIALIZER($field_names)'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := a.source(cmd, nil)
			if err != nil {
				return err
			}

			out := emit.NewEmitter(src, a.types).Structure(fields, opts)
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		},
	}

	cmd.Flags().IntVar(&fields, "fields", 3, "number of fields")
	cmd.Flags().StringVar(&opts.Name, "name", "", "struct name (default: random)")
	cmd.Flags().StringVar(&opts.BaseClass, "base", "", "base class")
	cmd.Flags().StringVar(&opts.Head, "head", "", "template placed before the fields")
	cmd.Flags().StringVar(&opts.Tail, "tail", "", "template placed after the fields")
	cmd.Flags().StringArrayVar(&opts.FieldNames, "field-name", nil, "field name, repeatable")
	cmd.Flags().StringArrayVar(&opts.FieldTypes, "field-type", nil, "field type, repeatable")

	return cmd
}

func newEnumCmd(a *app) *cobra.Command {
	var (
		values int
		opts   emit.EnumOptions
	)

	cmd := &cobra.Command{
		Use:   "enum",
		Short: "Print an enum declaration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := a.source(cmd, nil)
			if err != nil {
				return err
			}

			out := emit.NewEmitter(src, a.types).Enum(values, opts)
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		},
	}

	cmd.Flags().IntVar(&values, "values", 3, "number of enumerators")
	cmd.Flags().StringVar(&opts.Name, "name", "", "enum name (default: random)")
	cmd.Flags().StringArrayVar(&opts.Values, "value", nil, "enumerator, repeatable")

	return cmd
}
