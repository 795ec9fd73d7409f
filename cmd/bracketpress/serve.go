package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bracketpress/bracketpress/internal/livestream"
	"github.com/bracketpress/bracketpress/internal/server"
)

type serveOptions struct {
	addr string
}

func newServeCmd(app *AppContext) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the published tournament pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (defaults to the configured viewer address)")

	return cmd
}

func runServe(app *AppContext, opts *serveOptions) error {
	// Deployment overrides come from the environment, .env file included.
	_ = godotenv.Load()

	addr := opts.addr
	if addr == "" {
		addr = app.Config.ViewerAddr
	}
	if port := os.Getenv("PORT"); port != "" && opts.addr == "" {
		addr = ":" + port
	}

	reg, err := app.OpenRegistry()
	if err != nil {
		return newCommandError("serve", "loading tournament registry", err, "Check data directory permissions and try again.")
	}

	stream := livestream.NewManager(app.Config.StreamConfigPath(), app.Log)
	stream.Watch()
	stream.OnChange(func(cfg livestream.Config) {
		app.Log.WithFields(map[string]any{"enabled": cfg.Enabled}).Info("stream config reloaded")
	})

	srv := server.New(server.Options{
		Registry:     reg,
		Stream:       stream,
		DocumentsDir: app.Config.DocumentsDir(),
		StreamParent: app.Config.StreamParent,
		Log:          app.Log,
	})

	return srv.Listen(addr)
}
