package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/markerpush/internal/config"
	"github.com/zeusync/markerpush/internal/core/protocol"
	"github.com/zeusync/markerpush/internal/injector"
	"github.com/zeusync/markerpush/internal/telemetry"
)

func main() {
	if err := makeApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pusher:", err)
		os.Exit(1)
	}
}

var flags = []cli.Flag{
	cli.StringFlag{Name: "config", Value: "", Usage: "YAML configuration file"},
	cli.StringFlag{Name: "strategy", Value: "", Usage: "Strategy to play (gather or migrate)"},
	cli.StringFlag{Name: "seed", Value: "", Usage: "Seed phrase for repeatable matches; empty seeds from the clock"},
	cli.StringFlag{Name: "log-level", Value: "", Usage: "Log level (debug, info, warn, error); logs go to stderr"},
	cli.StringFlag{Name: "telemetry", Value: "", Usage: "Address serving the spectator websocket, e.g. :8080"},
	cli.StringFlag{Name: "journal", Value: "", Usage: "File receiving the job journal at match end"},
}

func makeApp() *cli.App {
	app := cli.NewApp()
	app.Name = "pusher"
	app.Usage = "Marker pushing player speaking the engine protocol on stdin/stdout"
	app.Flags = flags
	app.Action = play

	app.Commands = []cli.Command{
		{
			Name:   "play",
			Usage:  "Play one match",
			Flags:  flags,
			Action: play,
		},
		{
			Name:   "config",
			Usage:  "Print the effective configuration",
			Flags:  flags,
			Action: printConfig,
		},
	}
	return app
}

// loadConfig reads the configuration file, if any, and applies flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return nil, err
		}
	}
	override := func(dst *string, name string) {
		if v := c.String(name); v != "" {
			*dst = v
		}
	}
	override(&cfg.Strategy, "strategy")
	override(&cfg.Seed, "seed")
	override(&cfg.Log.Level, "log-level")
	override(&cfg.Telemetry.Addr, "telemetry")
	override(&cfg.Journal.Path, "journal")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printConfig(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	b, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = c.App.Writer.Write(b)
	return err
}

func play(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	app, cleanup, err := injector.InitializeApp(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := app.Runner.Run(gctx, protocol.NewReader(os.Stdin), protocol.NewWriter(os.Stdout))
		return err
	})
	if addr := cfg.Telemetry.Addr; addr != "" {
		g.Go(func() error {
			return telemetry.NewServer(addr, app.Hub, app.Logger).Run(gctx)
		})
	}
	return g.Wait()
}
