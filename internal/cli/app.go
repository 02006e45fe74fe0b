package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-formbuilder/internal/config"
	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/tui"
)

// App carries the global flags and lazily resolved configuration shared by
// every command.
type App struct {
	ConfigPath string
	AssumeYes  bool
	Verbose    bool

	In  io.Reader
	Out io.Writer
	Err io.Writer

	v      *viper.Viper
	cfg    *config.Config
	driver tui.PromptDriver
}

// NewApp returns an App reading and writing the process standard streams.
func NewApp() *App {
	return &App{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
		v:   viper.New(),
	}
}

// BindFlags maps persistent flags onto configuration keys so an explicit
// flag wins over file and environment values.
func (a *App) BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		config.KeyStorageDir:    "store-dir",
		config.KeyStorageSlot:   "slot",
		config.KeyStorageFormat: "format",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("cli: missing flag --%s", name)
		}
		if err := a.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("cli: bind --%s: %w", name, err)
		}
	}
	return nil
}

// Bind maps a command-local flag onto a configuration key.
func (a *App) Bind(key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	return a.v.BindPFlag(key, flag)
}

// Config resolves configuration once per process.
func (a *App) Config() (config.Config, error) {
	if a.cfg != nil {
		return *a.cfg, nil
	}
	cfg, err := config.Load(a.v, a.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	a.cfg = &cfg
	return cfg, nil
}

// Driver returns the prompt driver used for confirmations and the
// interactive shell.
func (a *App) Driver() tui.PromptDriver {
	if a.driver == nil {
		a.driver = tui.NewSurveyDriver(tui.WithOutput(a.Err))
	}
	return a.driver
}

// SetDriver replaces the prompt driver.
func (a *App) SetDriver(driver tui.PromptDriver) {
	a.driver = driver
}

// Session opens an editing session over the configured slot. Destructive
// operations prompt through the driver unless AssumeYes is set.
func (a *App) Session(ctx context.Context, opts ...editor.Option) (*editor.Session, error) {
	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}
	store, err := cfg.Store()
	if err != nil {
		return nil, err
	}

	confirmer := editor.AutoConfirm
	if !a.AssumeYes {
		confirmer = tui.Confirmer(a.Driver())
	}

	base := []editor.Option{
		editor.WithStore(store),
		editor.WithSlot(cfg.Storage.Slot),
		editor.WithCodec(cfg.Codec()),
		editor.WithConfirmer(confirmer),
		editor.WithNotifier(NewNotifier(a.Err)),
		editor.WithLogger(NewLogger(a.Err, a.Verbose)),
	}
	return editor.New(ctx, append(base, opts...)...)
}

// RenderOptions builds document options from the export configuration.
func (a *App) RenderOptions() (render.RenderOptions, error) {
	cfg, err := a.Config()
	if err != nil {
		return render.RenderOptions{}, err
	}
	themeCfg, err := cfg.Theme()
	if err != nil {
		return render.RenderOptions{}, err
	}
	return render.RenderOptions{
		View:  render.ViewDocument,
		Title: cfg.Export.Title,
		Theme: themeCfg,
	}, nil
}
