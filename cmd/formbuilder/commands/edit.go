package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/cli"
	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/tui"
)

// NewEditCommand creates the edit command
func NewEditCommand(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the form interactively",
		Long: `Open an interactive menu to add, edit, move and delete fields.

Changes are saved after every step. Export writes the configured
export.filename. Press Ctrl+C inside a prompt to cancel it; Ctrl+C at the
menu quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			driver := app.Driver()
			session, err := app.Session(ctx, editor.WithNotifier(tui.Notifier(driver)))
			if err != nil {
				return err
			}
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			options, err := app.RenderOptions()
			if err != nil {
				return err
			}

			shell, err := tui.NewShell(session, driver,
				tui.WithRenderOptions(options),
				tui.WithExporter(func(ctx context.Context, doc []byte) error {
					if err := os.WriteFile(cfg.Export.Filename, doc, 0o644); err != nil {
						return fmt.Errorf("failed to write output: %w", err)
					}
					return driver.Info(ctx, "Form written to "+cfg.Export.Filename)
				}),
			)
			if err != nil {
				return err
			}
			return shell.Run(ctx)
		},
	}
}
