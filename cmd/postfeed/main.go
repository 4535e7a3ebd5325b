// Command postfeed is a terminal reader for the post feed API.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tesso57/postfeed/internal/application/settings"
	"github.com/tesso57/postfeed/internal/application/usecase"
	"github.com/tesso57/postfeed/internal/infrastructure/api"
	"github.com/tesso57/postfeed/internal/infrastructure/config"
	"github.com/tesso57/postfeed/internal/infrastructure/imagepreview"
	"github.com/tesso57/postfeed/internal/infrastructure/logging"
	"github.com/tesso57/postfeed/internal/presentation/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const imageTimeout = 6 * time.Second

// CLI holds command line flags. Non-empty values override the config file.
type CLI struct {
	Config   string           `help:"Config file path." type:"path"`
	BaseURL  string           `name:"base-url" help:"Post API base URL."`
	LogFile  string           `name:"log-file" help:"Log file path." type:"path"`
	LogLevel string           `name:"log-level" help:"Log level (debug, info, warn, error)."`
	Version  kong.VersionFlag `help:"Print version information and exit."`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
	base := []kong.Option{
		kong.Name("postfeed"),
		kong.Description("Browse posts from a static JSON feed in the terminal."),
		kong.Vars{"version": fmt.Sprintf("postfeed %s\ncommit: %s\nbuilt: %s", v, c, d)},
		kong.UsageOnError(),
	}
	return kong.New(cli, append(base, options...)...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cli: %v\n", err)
		os.Exit(1)
	}
	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "postfeed: %v\n", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
	// 1. Load config, then apply flag overrides.
	store, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg := applyOverrides(store.Settings, cli)

	// 2. Logging goes to a file; the terminal belongs to the UI.
	logger, closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer func() { _ = closeLog() }()
	logger.Info("starting postfeed", "version", version, "base_url", cfg.API.BaseURL, "config", store.Path())

	// 3. Build infrastructure.
	client := api.NewClient(api.Options{
		BaseURL:   cfg.API.BaseURL,
		UserAgent: cfg.API.UserAgent,
		Timeout:   cfg.API.Timeout(),
		Logger:    logger,
	})
	images := imagepreview.NewLoader(imagepreview.NewHTTPClient(imageTimeout))

	// 4. Run the UI.
	model := tui.NewModelWithImages(cfg, usecase.NewPostService(client), images)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("postfeed exited")
	return nil
}

func applyOverrides(cfg settings.Settings, cli CLI) settings.Settings {
	if v := strings.TrimSpace(cli.BaseURL); v != "" {
		cfg.API.BaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(cli.LogFile); v != "" {
		cfg.Log.File = v
	}
	if v := strings.TrimSpace(cli.LogLevel); v != "" {
		cfg.Log.Level = v
	}
	return cfg
}

func resolveVersionInfo(v, c, d, moduleVersion string, build map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(build["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		if t := strings.TrimSpace(build["vcs.time"]); t != "" {
			d = t
		}
	}
	return v, c, d
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	build := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		build[s.Key] = s.Value
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, build)
}
