package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-acroform/pkg/acroform"
	"github.com/goliatone/go-acroform/pkg/prompt"
)

// newPromptDriver is swapped by tests.
var newPromptDriver = func(out io.Writer) prompt.Driver {
	return prompt.NewSurveyDriver(out)
}

type promptOptions struct {
	formOptions
	field       string
	format      string
	output      string
	maxAttempts int
}

func newPromptCmd(global *globalOptions) *cobra.Command {
	opts := promptOptions{format: "text", maxAttempts: 3}
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for field values interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := opts.load(cmd, global)
			if err != nil {
				return err
			}
			session := prompt.NewSession(
				prompt.WithDriver(newPromptDriver(cmd.OutOrStdout())),
				prompt.WithMaxAttempts(opts.maxAttempts),
			)

			fields := form.Fields()
			if opts.field != "" {
				field, err := lookupField(form, opts.field)
				if err != nil {
					return err
				}
				if err := session.Run(cmd.Context(), field); err != nil {
					return err
				}
				fields = []*acroform.ChoiceField{field}
			} else if err := session.RunForm(cmd.Context(), form); err != nil {
				return err
			}

			if err := writeDefinitions(form, opts.output); err != nil {
				return err
			}
			return renderFields(cmd, opts.format, fields...)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.fieldsPath, "fields", "f", "", "field definition file or directory")
	fs.StringVar(&opts.field, "field", "", "field name (all fields when empty)")
	fs.StringVar(&opts.format, "format", "text", "output format: text, json or yaml")
	fs.StringVarP(&opts.output, "output", "o", "", "write updated definitions to this file")
	fs.IntVar(&opts.maxAttempts, "max-attempts", 3, "rejected values allowed per field (0 for unlimited)")
	fs.BoolVar(&opts.clearIndexOnFreeText, "clear-index-on-free-text", false, "empty the selected index when free text is entered")
	return cmd
}
