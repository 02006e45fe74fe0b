package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/cli"
	"github.com/goliatone/go-formbuilder/internal/config"
	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
)

// copyToClipboard is swapped in tests; CI machines rarely have a clipboard.
var copyToClipboard = clipboard.WriteAll

// NewPreviewCommand creates the preview command
func NewPreviewCommand(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Print the preview markup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := app.Session(ctx)
			if err != nil {
				return err
			}
			node, err := session.Preview(ctx)
			if errors.Is(err, editor.ErrEmptyCollection) {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), node.String())
			return nil
		},
	}
}

// NewExportCommand creates the export command
func NewExportCommand(app *cli.App) *cobra.Command {
	var (
		output      string
		toClipboard bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the form as a standalone HTML document",
		Long: `Export the form as a self-contained HTML document with inline styles.

By default the document is written to stdout.

Examples:
  formbuilder export > form.html
  formbuilder export --output generated-form.html
  formbuilder export --clipboard --theme acme --variant dark`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := app.Session(ctx)
			if err != nil {
				return err
			}
			options, err := app.RenderOptions()
			if err != nil {
				return err
			}
			doc, err := session.Export(ctx, options)
			if errors.Is(err, editor.ErrEmptyCollection) {
				return nil
			}
			if err != nil {
				return err
			}

			switch {
			case toClipboard:
				if err := copyToClipboard(string(doc)); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied document to clipboard")
			case output != "":
				if err := os.WriteFile(output, doc, 0o644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Form written to %s\n", output)
			default:
				_, err = cmd.OutOrStdout().Write(doc)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to a file")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy the document to the clipboard")
	cmd.Flags().String("title", "", "Document title")
	cmd.Flags().String("theme", "", "Theme name from the config file")
	cmd.Flags().String("variant", "", "Theme variant")
	cmd.MarkFlagsMutuallyExclusive("output", "clipboard")
	cobra.CheckErr(app.Bind(config.KeyExportTitle, cmd.Flags().Lookup("title")))
	cobra.CheckErr(app.Bind(config.KeyExportTheme, cmd.Flags().Lookup("theme")))
	cobra.CheckErr(app.Bind(config.KeyExportVariant, cmd.Flags().Lookup("variant")))
	return cmd
}

// NewSchemaCommand creates the schema command
func NewSchemaCommand(app *cli.App) *cobra.Command {
	var (
		output  string
		options openapi.DocumentOptions
	)
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI document describing form submissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := app.Session(ctx)
			if err != nil {
				return err
			}
			fields := session.Fields()
			if len(fields) == 0 {
				return editor.ErrEmptyCollection
			}
			doc, err := openapi.Document(ctx, fields, options)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode schema: %w", err)
			}
			data = append(data, '\n')
			if output != "" {
				return os.WriteFile(output, data, 0o644)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to a file")
	cmd.Flags().StringVar(&options.Title, "title", openapi.DefaultTitle, "API title")
	cmd.Flags().StringVar(&options.Path, "path", openapi.DefaultPath, "Submission path")
	cmd.Flags().StringVar(&options.OperationID, "operation", openapi.DefaultOperationID, "Submission operation id")
	return cmd
}

// NewImportCommand creates the import command
func NewImportCommand(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the form with the fields of an exported schema",
		Long: `Replace the stored fields with those described by an OpenAPI document
previously written by the schema command. Existing fields are cleared after
confirmation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			ctx := cmd.Context()
			doc, err := openapi.Load(ctx, data)
			if err != nil {
				return err
			}
			fields, err := openapi.Import(doc)
			if err != nil {
				return err
			}

			session, err := app.Session(ctx)
			if err != nil {
				return err
			}
			if session.Count() > 0 {
				cleared, err := session.ClearAll(ctx)
				if err != nil {
					return err
				}
				if !cleared {
					return nil
				}
			}
			for _, field := range fields {
				if err := session.Append(ctx, field); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d fields\n", len(fields))
			return nil
		},
	}
}
