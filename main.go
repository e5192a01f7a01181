// Command ludo starts the Ludo race game server.
//
// It supports three commands:
//  1. "serve" (default): runs the HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  2. "mcp": runs an MCP stdio server and spins up an internal HTTP API if none is available
//  3. "play": plays a hot-seat game in the terminal
//
// Flags control host/port, config directory, debug logging, and optional
// ngrok tunneling for easy external access during development. Every flag
// falls back to its environment variable, read from .env when present.
package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/ludo-race-game/game/config"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Ludo Race Game Server"
)

// main loads settings and runs the selected command.
func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	if err := newApp(settings).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the command tree. Flag defaults come from settings so the
// environment and .env apply unless a flag overrides them.
func newApp(settings *config.Settings) *cli.Command {
	return &cli.Command{
		Name:    "ludo",
		Usage:   AppName,
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Value: settings.Host, Usage: "HTTP server host"},
			&cli.IntFlag{Name: "port", Value: settings.Port, Usage: "HTTP server port"},
			&cli.StringFlag{Name: "config-dir", Value: settings.ConfigDir, Usage: "Directory containing rule sets"},
			&cli.StringFlag{Name: "log-level", Value: settings.LogLevel, Usage: "Log level (debug, info, warn, error)"},
			&cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
			&cli.DurationFlag{Name: "session-ttl", Value: settings.SessionTTL, Usage: "Remove sessions idle for longer than this"},
			&cli.DurationFlag{Name: "cleanup-interval", Value: settings.CleanupInterval, Usage: "How often idle sessions are removed"},
			&cli.BoolFlag{Name: "ngrok", Value: settings.NgrokEnabled, Usage: "Enable ngrok tunnel"},
			&cli.StringFlag{Name: "ngrok-auth", Value: settings.NgrokAuthToken, Usage: "Ngrok auth token (or NGROK_AUTHTOKEN)"},
			&cli.StringFlag{Name: "ngrok-domain", Value: settings.NgrokDomain, Usage: "Custom ngrok domain (optional)"},
		},
		Before: setupLogging,
		Action: serveAction,
		Commands: []*cli.Command{
			{
				Name:    "serve",
				Aliases: []string{"server", "http"},
				Usage:   "Run HTTP server with API, WebSocket, and MCP endpoint",
				Action:  serveAction,
			},
			{
				Name:    "mcp",
				Aliases: []string{"stdio-mcp", "mcp-stdio"},
				Usage:   "Run MCP stdio server with internal HTTP server",
				Action:  mcpAction,
			},
			{
				Name:  "play",
				Usage: "Play a hot-seat game in the terminal",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Usage: "Rule set name (default rule set when empty)"},
					&cli.IntFlag{Name: "seed", Usage: "Dice seed, 0 for a random game"},
				},
				Action: playAction,
			},
		},
	}
}

// setupLogging configures logrus from the flags. Logs go to stderr so the
// mcp command keeps stdout for the protocol.
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, err := settingsFromCommand(cmd).Level()
	if err != nil {
		return ctx, fmt.Errorf("invalid log level: %w", err)
	}
	if cmd.Bool("debug") {
		level = log.DebugLevel
		log.SetReportCaller(true)
	}
	log.SetLevel(level)
	return ctx, nil
}

// settingsFromCommand returns the settings as resolved by the flags, which
// default to the environment.
func settingsFromCommand(cmd *cli.Command) *config.Settings {
	return &config.Settings{
		Host:            cmd.String("host"),
		Port:            cmd.Int("port"),
		ConfigDir:       cmd.String("config-dir"),
		LogLevel:        cmd.String("log-level"),
		SessionTTL:      cmd.Duration("session-ttl"),
		CleanupInterval: cmd.Duration("cleanup-interval"),
		NgrokEnabled:    cmd.Bool("ngrok"),
		NgrokAuthToken:  cmd.String("ngrok-auth"),
		NgrokDomain:     cmd.String("ngrok-domain"),
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	opts := settingsFromCommand(cmd)
	log.WithFields(log.Fields{"version": Version, "mode": "serve"}).Infof("Starting %s", AppName)

	svc, err := initializeServices(opts.ConfigDir)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	return runHTTPServer(ctx, opts, svc)
}

func mcpAction(ctx context.Context, cmd *cli.Command) error {
	opts := settingsFromCommand(cmd)
	log.WithFields(log.Fields{"version": Version, "mode": "mcp"}).Infof("Starting %s", AppName)

	svc, err := initializeServices(opts.ConfigDir)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	return runStdioMCPWithInternalServer(ctx, opts, svc)
}

func playAction(ctx context.Context, cmd *cli.Command) error {
	svc, err := initializeServices(cmd.String("config-dir"))
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	cfg := svc.Configs.GetDefault()
	if name := cmd.String("config"); name != "" {
		if cfg, err = svc.Configs.LoadConfig(name); err != nil {
			return err
		}
	}

	game, err := newTerminalGame(cfg, int64(cmd.Int("seed")))
	if err != nil {
		return err
	}
	return game.Play(ctx, os.Stdin, os.Stdout)
}
