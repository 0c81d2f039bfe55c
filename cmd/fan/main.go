/*
Fan draws a filled circle approximated by a 16 sided triangle fan.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/gllabs/engine"
	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/platform"
	"github.com/spaghettifunk/gllabs/engine/renderer/opengl"
	"github.com/spaghettifunk/gllabs/labs/fan"
)

func main() {
	core.SetLogPrefix("fan")

	cfg, err := engine.LoadConfig(fan.DefaultConfig(), engine.ConfigPath())
	if err != nil {
		core.LogError("%s", err)
		os.Exit(core.ExitFailure)
	}

	// capture sigterm and interrupts: they close the window like ESC does
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	game := fan.NewGame(cfg)
	backend := opengl.New(opengl.Options{DepthTest: cfg.DepthTest})
	if err := engine.Start(ctx, game.Game, platform.New(), backend); err != nil {
		core.LogError("%s", err)
		stop()
		os.Exit(core.ExitFailure)
	}
}
