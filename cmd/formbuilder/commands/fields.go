package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/cli"
	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// NewTypesCommand creates the types command
func NewTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the available field types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range model.FieldTypes() {
				fmt.Fprintf(w, "%s\t%s\n", t, model.DefaultLabel(t))
			}
			return w.Flush()
		},
	}
}

// fieldFlags holds the property flags shared by add and update.
type fieldFlags struct {
	label       string
	placeholder string
	required    bool
	options     []string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.label, "label", "", "Field label")
	cmd.Flags().StringVar(&f.placeholder, "placeholder", "", "Placeholder text (text-like fields only)")
	cmd.Flags().BoolVar(&f.required, "required", false, "Mark the field as required")
	cmd.Flags().StringArrayVar(&f.options, "option", nil, "Choice option, repeatable (radio and select only)")
}

// patch starts from the current field and overrides the properties whose
// flags were given.
func (f *fieldFlags) patch(cmd *cobra.Command, field model.Field) (model.Patch, bool) {
	patch := model.Patch{
		Label:       field.Label,
		Placeholder: field.Placeholder,
		Required:    field.Required,
		Options:     model.OptionsText(field.Options),
	}
	changed := false
	if cmd.Flags().Changed("label") {
		patch.Label, changed = f.label, true
	}
	if cmd.Flags().Changed("placeholder") {
		patch.Placeholder, changed = f.placeholder, true
	}
	if cmd.Flags().Changed("required") {
		patch.Required, changed = f.required, true
	}
	if cmd.Flags().Changed("option") {
		patch.Options, changed = strings.Join(f.options, "\n"), true
	}
	return patch, changed
}

// NewAddCommand creates the add command
func NewAddCommand(app *cli.App) *cobra.Command {
	var flags fieldFlags
	cmd := &cobra.Command{
		Use:   "add <type>",
		Short: "Append a field with default properties",
		Long: `Append a new field of the given type. The field starts with the default
label and placeholder for its type; property flags are applied right after.

Examples:
  formbuilder add text --label "Full name" --required
  formbuilder add select --option Red --option Green`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := model.ParseFieldType(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			session, err := app.Session(ctx)
			if err != nil {
				return err
			}
			field, err := session.Create(ctx, t)
			if err != nil {
				return err
			}
			if patch, ok := flags.patch(cmd, field); ok {
				if _, err := session.Update(ctx, field.ID, patch); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), field.ID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// NewListCommand creates the list command
func NewListCommand(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List the fields in order",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Session(cmd.Context())
			if err != nil {
				return err
			}
			fields := session.Fields()
			if len(fields) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No fields yet.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tID\tTYPE\tLABEL\tREQUIRED")
			for i, field := range fields {
				required := ""
				if field.Required {
					required = "yes"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, field.ID, field.Type, field.Label, required)
			}
			return w.Flush()
		},
	}
}

// NewUpdateCommand creates the update command
func NewUpdateCommand(app *cli.App) *cobra.Command {
	var flags fieldFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the properties of a field",
		Long: `Change the properties of a field. Only the given flags are applied;
placeholders are ignored for field types without one and options for
non-choice types.

Examples:
  formbuilder update field_0 --label Email --required
  formbuilder update field_2 --option Yes --option No`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := app.Session(ctx)
			if err != nil {
				return err
			}
			field, ok := session.Field(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", editor.ErrUnknownFieldID, args[0])
			}
			patch, changed := flags.patch(cmd, field)
			if !changed {
				return errors.New("nothing to update: pass at least one of --label, --placeholder, --required, --option")
			}
			_, err = session.Update(ctx, field.ID, patch)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

// NewDeleteCommand creates the delete command
func NewDeleteCommand(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a field",
		Aliases: []string{"rm"},
		Long: `Delete a field after confirmation. Pass --yes to skip the prompt.
Deleted ids are never reused.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := app.Session(ctx)
			if err != nil {
				return err
			}
			if _, ok := session.Field(args[0]); !ok {
				return fmt.Errorf("%w: %s", editor.ErrUnknownFieldID, args[0])
			}
			_, err = session.Delete(ctx, args[0])
			return err
		},
	}
}

// NewClearCommand creates the clear command
func NewClearCommand(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := app.Session(ctx)
			if err != nil {
				return err
			}
			if _, err := session.ClearAll(ctx); err != nil && !errors.Is(err, editor.ErrEmptyCollection) {
				return err
			}
			return nil
		},
	}
}

// NewMoveCommand creates the move command
func NewMoveCommand(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <index>",
		Short: "Move a field to a zero-based position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[1], err)
			}
			ctx := cmd.Context()
			session, err := app.Session(ctx)
			if err != nil {
				return err
			}
			return session.Move(ctx, args[0], index)
		},
	}
}

// NewReorderCommand creates the reorder command
func NewReorderCommand(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <id>...",
		Short: "Rewrite the field order",
		Long: `Rewrite the field order from a full list of ids. Unknown or repeated
ids are ignored and fields left out of the list are dropped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := app.Session(ctx)
			if err != nil {
				return err
			}
			return session.Reorder(ctx, args)
		},
	}
}
