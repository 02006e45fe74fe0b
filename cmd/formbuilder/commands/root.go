package commands

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/cli"
	"github.com/goliatone/go-formbuilder/pkg/persist"
)

// NewRootCommand creates the formbuilder command tree around app.
func NewRootCommand(app *cli.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formbuilder",
		Short: "Build forms from the terminal",
		Long: `formbuilder edits a persisted collection of form fields and turns it
into a standalone HTML document or an OpenAPI submission schema.

Fields are stored in a single slot inside the store directory. Every command
loads the slot, applies its change and writes it back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.In = cmd.InOrStdin()
			app.Out = cmd.OutOrStdout()
			app.Err = cmd.ErrOrStderr()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.ConfigPath, "config", "", "Config file (default .formbuilder.yaml in the working or home directory)")
	flags.String("store-dir", "", "Directory holding the stored form")
	flags.String("slot", persist.DefaultSlot, "Storage slot name")
	flags.String("format", string(persist.FormatJSON), "Storage format (json, yaml)")
	flags.BoolVarP(&app.AssumeYes, "yes", "y", false, "Answer yes to confirmation prompts")
	flags.BoolVarP(&app.Verbose, "verbose", "v", false, "Log session events to stderr")
	cobra.CheckErr(app.BindFlags(flags))

	cmd.AddCommand(
		NewTypesCommand(),
		NewAddCommand(app),
		NewListCommand(app),
		NewUpdateCommand(app),
		NewDeleteCommand(app),
		NewClearCommand(app),
		NewMoveCommand(app),
		NewReorderCommand(app),
		NewPreviewCommand(app),
		NewExportCommand(app),
		NewSchemaCommand(app),
		NewImportCommand(app),
		NewEditCommand(app),
		NewServeCommand(app),
	)
	return cmd
}
