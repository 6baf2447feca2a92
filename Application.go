package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pong/core"
	"pong/logger"
	"pong/terminal"
	"pong/window"

	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("pong", pflag.ExitOnError)
	configFile := flags.StringP("config", "c", "", "path to a TOML config file (default ./pong.toml if present)")
	flags.StringP("frontend", "f", core.FrontendWindow, "window or terminal")
	_ = flags.Parse(os.Args[1:])

	cfg, err := core.LoadConfig(*configFile, flags)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf(logger.ConfigErrorMsg, err))
	}

	logger.Log.Init(cfg.Log)
	if cfg.Source != "" {
		logger.Log.Info(fmt.Sprintf(logger.ConfigLoadedMsg, cfg.Source))
	} else {
		logger.Log.Info(logger.ConfigDefaultMsg)
	}

	m := core.NewMatch(cfg.Bindings, rand.New(rand.NewSource(time.Now().UnixNano())))
	logger.Log.With("match", m.ID.String())
	logger.Log.Info(fmt.Sprintf(logger.MatchStartedMsg, m.ID, cfg.Frontend))

	if err := run(m, cfg); err != nil {
		logger.Log.Fatal(fmt.Sprintf(logger.FrontendErrorMsg, err))
	}

	logger.Log.Info(fmt.Sprintf(logger.MatchStoppedMsg, m.Ticks, m.Score.Left, m.Score.Right))
}

func run(m *core.Match, cfg *core.Config) error {
	switch cfg.Frontend {
	case core.FrontendTerminal:
		t, err := terminal.New()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		err = t.Run(ctx, m)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err

	default:
		w, err := window.New(m, cfg)
		if err != nil {
			logger.Log.Error(fmt.Sprintf(logger.AssetMissingMsg, err))
			return err
		}
		return w.Run()
	}
}
