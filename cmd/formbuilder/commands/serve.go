package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/components/preview"
	"github.com/goliatone/go-formbuilder/internal/cli"
	"github.com/goliatone/go-formbuilder/internal/config"
)

// NewServeCommand creates the serve command
func NewServeCommand(app *cli.App) *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the editor, preview, export and schema over HTTP",
		Long: `Serve read-only views of the stored form. Every request reloads the slot,
so edits made with other commands show up on refresh.

Routes (relative to --base):
  /             editor canvas (?selected=<id> highlights a field)
  /preview      preview markup
  /export       standalone document as an attachment
  /schema.json  OpenAPI submission document`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			router, routes, err := newRouter(app, base)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := &http.Server{
				Addr:              cfg.Serve.Addr,
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() {
				errCh <- server.ListenAndServe()
			}()

			out := cmd.ErrOrStderr()
			fmt.Fprintf(out, "Serving on http://%s\n", cfg.Serve.Addr)
			for _, route := range routes {
				fmt.Fprintf(out, "  %-8s %s\n", route.View, route.Pattern)
			}

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default from serve.addr)")
	cmd.Flags().StringVar(&base, "base", "/", "Base path the views are mounted under")
	cobra.CheckErr(app.Bind(config.KeyServeAddr, cmd.Flags().Lookup("addr")))
	return cmd
}

// newRouter mounts the preview component on a chi router configured from
// app.
func newRouter(app *cli.App, base string) (chi.Router, []preview.Route, error) {
	cfg, err := app.Config()
	if err != nil {
		return nil, nil, err
	}
	store, err := cfg.Store()
	if err != nil {
		return nil, nil, err
	}
	themeCfg, err := cfg.Theme()
	if err != nil {
		return nil, nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if app.Verbose {
		router.Use(middleware.Logger)
	}

	component := preview.New(
		preview.WithStore(store),
		preview.WithSlot(cfg.Storage.Slot),
		preview.WithCodec(cfg.Codec()),
		preview.WithFilename(cfg.Export.Filename),
		preview.WithTitle(cfg.Export.Title),
		preview.WithTheme(themeCfg),
	)
	routes, err := component.RegisterRoutes(router, base)
	if err != nil {
		return nil, nil, err
	}
	return router, routes, nil
}
