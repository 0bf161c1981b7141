package main

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var (
		opts   formOptions
		format string
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current state of every field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := opts.load(cmd, nil)
			if err != nil {
				return err
			}
			return renderFields(cmd, format, form.Fields()...)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.fieldsPath, "fields", "f", "", "field definition file or directory")
	fs.StringVar(&format, "format", "text", "output format: text, json or yaml")
	return cmd
}
