package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-acroform/pkg/fielddef"
	"github.com/goliatone/go-acroform/pkg/openapi"
)

type importOptions struct {
	spec      string
	output    string
	allowHTTP bool
	timeout   time.Duration
}

func newImportOpenAPICmd() *cobra.Command {
	opts := importOptions{timeout: 30 * time.Second}
	cmd := &cobra.Command{
		Use:   "import-openapi",
		Short: "Generate field definitions from the enums of an OpenAPI document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := openapi.ParseSource(opts.spec)
			if err != nil {
				return err
			}
			loaderOpts := []openapi.LoaderOption{openapi.WithTimeout(opts.timeout)}
			if opts.allowHTTP {
				loaderOpts = append(loaderOpts, openapi.WithHTTPClient(&http.Client{}))
			}
			doc, err := openapi.ImportSource(cmd.Context(), openapi.NewLoader(loaderOpts...), src)
			if err != nil {
				return err
			}
			data, err := fielddef.Marshal(doc)
			if err != nil {
				return err
			}
			if opts.output != "" {
				if err := os.WriteFile(opts.output, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", opts.output, err)
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d field definitions written to %s\n", len(doc.Fields), opts.output)
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&opts.spec, "spec", "", "OpenAPI document path or URL")
	fs.StringVarP(&opts.output, "output", "o", "", "write definitions to this file instead of stdout")
	fs.BoolVar(&opts.allowHTTP, "allow-http", false, "allow fetching http(s) documents")
	fs.DurationVar(&opts.timeout, "timeout", 30*time.Second, "load timeout")
	return cmd
}
