package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-acroform/pkg/acroform"
	"github.com/goliatone/go-acroform/pkg/choice"
	"github.com/goliatone/go-acroform/pkg/fielddef"
	"github.com/goliatone/go-acroform/pkg/report"
)

type globalOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	global := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "acroform-choice",
		Short:         "Set and inspect choice field values of form definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "log every resolve call to stderr")
	cmd.AddCommand(
		newSetCmd(global),
		newPromptCmd(global),
		newShowCmd(),
		newImportOpenAPICmd(),
	)
	return cmd
}

type formOptions struct {
	fieldsPath           string
	clearIndexOnFreeText bool
}

func (o formOptions) load(cmd *cobra.Command, global *globalOptions) (*acroform.Form, error) {
	if o.fieldsPath == "" {
		return nil, fmt.Errorf("--fields is required")
	}
	doc, err := fielddef.Load(o.fieldsPath)
	if err != nil {
		return nil, err
	}
	resolverOpts := []choice.Option{choice.WithClearIndexOnFreeText(o.clearIndexOnFreeText)}
	if global != nil && global.verbose {
		resolverOpts = append(resolverOpts, choice.WithLogger(stderrLogger(cmd.ErrOrStderr())))
	}
	return fielddef.Build(doc, fielddef.WithResolver(choice.New(resolverOpts...)))
}

func stderrLogger(w io.Writer) choice.ResolveLogger {
	return choice.ResolveLoggerFunc(func(event choice.ResolveEvent) {
		if event.Err != nil {
			fmt.Fprintf(w, "resolve %q: %s: %v\n", event.Candidate, event.Outcome, event.Err)
			return
		}
		fmt.Fprintf(w, "resolve %q: %s (index %d)\n", event.Candidate, event.Outcome, event.Index)
	})
}

func writeDefinitions(form *acroform.Form, path string) error {
	if path == "" {
		return nil
	}
	data, err := fielddef.Marshal(fielddef.Definitions(form))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func renderFields(cmd *cobra.Command, format string, fields ...*acroform.ChoiceField) error {
	parsed, err := report.ParseFormat(format)
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), fields, parsed)
}

func lookupField(form *acroform.Form, name string) (*acroform.ChoiceField, error) {
	field, ok := form.Field(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", acroform.ErrFieldNotFound, name)
	}
	return field, nil
}
