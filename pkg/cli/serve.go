package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/getjsond/jsond/pkg/config"
	"github.com/getjsond/jsond/pkg/logging"
	"github.com/getjsond/jsond/pkg/resource"
	"github.com/getjsond/jsond/pkg/server"
	"github.com/getjsond/jsond/pkg/snapshot"
)

// serveFlags holds the flag values bound to the serve command.
type serveFlags struct {
	port       int
	host       string
	snapshotFS []string
	url        string
	configFile string
	logLevel   string
	logFormat  string
	noCORS     bool
}

// serveFlagVals is the package-level instance bound to cobra flags.
var serveFlagVals serveFlags

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server (default command)",
	Example: `  # Serve db.json from the working directory on port 3000
  jsond serve

  # Serve a specific snapshot on a custom port
  jsond serve --snapshot fixtures/db.json --port 4000

  # Load the snapshot from a URL, falling back to local files
  jsond serve --url https://example.com/db.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(&serveFlagVals)
	},
}

func initServeCmd() {
	rootCmd.AddCommand(serveCmd)
	registerServeFlags(serveCmd, &serveFlagVals)
}

func registerServeFlags(cmd *cobra.Command, f *serveFlags) {
	cmd.Flags().IntVarP(&f.port, "port", "p", 0, "HTTP server port")
	cmd.Flags().StringVar(&f.host, "host", "", "listen address (default all interfaces)")
	cmd.Flags().StringSliceVarP(&f.snapshotFS, "snapshot", "s", nil, "snapshot file candidates, tried in order")
	cmd.Flags().StringVarP(&f.url, "url", "u", "", "remote snapshot URL, tried before local files")
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "log format (text, json)")
	cmd.Flags().BoolVar(&f.noCORS, "no-cors", false, "disable CORS handling")
}

// buildConfig assembles the effective configuration:
// defaults < config file < environment < flags.
func buildConfig(f *serveFlags) (*config.Config, error) {
	path := f.configFile
	explicit := path != ""
	if !explicit {
		path = config.DefaultConfigFile
	}

	var cfg *config.Config
	var err error
	if explicit {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.LoadFileIfExists(path)
	}
	if err != nil {
		return nil, err
	}

	config.ApplyEnv(cfg)

	if f.port > 0 {
		cfg.Port = f.port
	}
	if f.host != "" {
		cfg.Host = f.host
	}
	if len(f.snapshotFS) > 0 {
		cfg.SnapshotFiles = f.snapshotFS
	}
	if f.url != "" {
		cfg.SnapshotURL = f.url
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	if f.noCORS {
		cfg.CORS.Enabled = false
	}

	return cfg, nil
}

// snapshotSources builds the loader chain: remote URL first when configured,
// then the local file candidates.
func snapshotSources(cfg *config.Config) []snapshot.Source {
	var sources []snapshot.Source
	if cfg.SnapshotURL != "" {
		sources = append(sources, &snapshot.URLSource{
			URL:     cfg.SnapshotURL,
			Timeout: cfg.FetchTimeout,
		})
	}
	if len(cfg.SnapshotFiles) > 0 {
		sources = append(sources, snapshot.NewFileSource(cfg.SnapshotFiles...))
	}
	return sources
}

func runServe(f *serveFlags) error {
	cfg, err := buildConfig(f)
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := resource.NewStore()
	loader := snapshot.NewLoader(log, snapshotSources(cfg)...)

	// Load in the background; requests are suspended at the store's
	// ready-gate until Publish runs, even when the fetch is slow.
	go store.Publish(loader.Load(ctx))

	srv := server.New(cfg, store, server.WithLogger(log))
	if err := srv.Start(); err != nil {
		return err
	}

	log.Info("jsond ready to serve", "port", cfg.Port)
	<-ctx.Done()

	log.Info("shutting down")
	return srv.Stop()
}
