package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type setOptions struct {
	formOptions
	field  string
	value  string
	format string
	output string
}

func newSetCmd(global *globalOptions) *cobra.Command {
	opts := setOptions{format: "text"}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Resolve a value against a field's options and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.field == "" {
				return fmt.Errorf("--field is required")
			}
			if !cmd.Flags().Changed("value") {
				return fmt.Errorf("--value is required")
			}
			form, err := opts.load(cmd, global)
			if err != nil {
				return err
			}
			field, err := lookupField(form, opts.field)
			if err != nil {
				return err
			}
			if err := field.SetValue(opts.value); err != nil {
				return err
			}
			if err := writeDefinitions(form, opts.output); err != nil {
				return err
			}
			return renderFields(cmd, opts.format, field)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.fieldsPath, "fields", "f", "", "field definition file or directory")
	fs.StringVar(&opts.field, "field", "", "field name")
	fs.StringVar(&opts.value, "value", "", "candidate value")
	fs.StringVar(&opts.format, "format", "text", "output format: text, json or yaml")
	fs.StringVarP(&opts.output, "output", "o", "", "write updated definitions to this file")
	fs.BoolVar(&opts.clearIndexOnFreeText, "clear-index-on-free-text", false, "empty the selected index when free text is entered")
	return cmd
}
