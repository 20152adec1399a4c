package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/noasueur88-blip/lounge-senpai-3/bot"
	"github.com/noasueur88-blip/lounge-senpai-3/config"
	"github.com/noasueur88-blip/lounge-senpai-3/handlers"
	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/shopdata"
	"github.com/noasueur88-blip/lounge-senpai-3/utils/database"
	"github.com/noasueur88-blip/lounge-senpai-3/web"
)

func main() {
	if err := logging.Init(os.Getenv("APP_ENV")); err != nil {
		panic(err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		logging.L().Fatalw("failed to load configuration", "error", err)
	}

	store, err := database.Open(cfg.DatabasePath)
	if err != nil {
		logging.L().Fatalw("failed to open database", "path", cfg.DatabasePath, "error", err)
	}
	defer store.Close()

	shop, err := shopdata.Load(cfg.ShopDataPath)
	if err != nil {
		logging.L().Fatalw("failed to load shop data", "path", cfg.ShopDataPath, "error", err)
	}

	b, err := bot.New(cfg, store, shop)
	if err != nil {
		logging.L().Fatalw("failed to create bot", "error", err)
	}
	handlers.Register(b)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return b.Run(ctx)
	})
	if cfg.DashboardAddr != "" {
		g.Go(func() error {
			return web.NewServer(store, cfg.DashboardAddr).Run(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		logging.L().Errorw("shutdown with error", "error", err)
	}
	logging.L().Info("goodbye")
}
