// Package main provides the game server binary that hosts the labyrinth
// engine behind a TCP session listener.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/duskward/labyrinth/internal/config"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/engine"
	"github.com/duskward/labyrinth/internal/game/session"
	"github.com/duskward/labyrinth/internal/observability"
	"github.com/duskward/labyrinth/internal/server"
	"github.com/duskward/labyrinth/internal/storage"
	"github.com/duskward/labyrinth/internal/storage/memory"
	"github.com/duskward/labyrinth/internal/storage/postgres"
	"github.com/duskward/labyrinth/internal/storage/review"
	"github.com/duskward/labyrinth/internal/transport"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	useMemoryStores := flag.Bool("memory-stores", false, "use in-memory save/leaderboard stores instead of postgres")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting game server",
		zap.String("transport_addr", cfg.Transport.Addr()),
		zap.Bool("memory_stores", *useMemoryStores),
	)

	tables, err := content.Load(content.Dirs{
		Monsters:  cfg.Content.Monsters,
		Weapons:   cfg.Content.Weapons,
		Armors:    cfg.Content.Armors,
		Potions:   cfg.Content.Potions,
		Spells:    cfg.Content.Spells,
		Traps:     cfg.Content.Traps,
		Rings:     cfg.Content.Rings,
		Dialogues: cfg.Content.Dialogues,
	}, logger)
	if err != nil {
		logger.Fatal("loading content tables", zap.Error(err))
	}
	logger.Info("content tables loaded",
		zap.Int("monsters", tables.Monsters.Len()),
		zap.Int("weapons", tables.Weapons.Len()),
		zap.Int("armors", tables.Armors.Len()),
		zap.Int("potions", tables.Potions.Len()),
		zap.Int("spells", tables.Spells.Len()),
		zap.Int("traps", tables.Traps.Len()),
		zap.Int("rings", tables.Rings.Len()),
	)

	stores, closeStores := buildStores(ctx, cfg, logger, *useMemoryStores)
	defer closeStores()

	host := session.NewHost(tables, stores, logger, func() dice.Source {
		return dice.NewCryptoSource()
	})

	lifecycle := server.NewLifecycle(logger)
	acceptor := transport.NewAcceptor(cfg.Transport, host, logger)
	lifecycle.Add("transport", &server.FuncService{
		StartFn: acceptor.ListenAndServe,
		StopFn:  acceptor.Stop,
	})

	logger.Info("game server ready", zap.Duration("startup", time.Since(start)))
	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("lifecycle run failed", zap.Error(err))
	}
}

// buildStores wires the save/leaderboard/review backends named by cfg,
// returning a cleanup function the caller must defer.
func buildStores(ctx context.Context, cfg config.Config, logger *zap.Logger, useMemory bool) (engine.Stores, func()) {
	if useMemory {
		return engine.Stores{
			Save:        memory.NewSaveStore(),
			Leaderboard: memory.NewLeaderboardStore(),
			Review:      memory.NewReviewSubmitter(),
		}, func() {}
	}

	dbStart := time.Now()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Duration("elapsed", time.Since(dbStart)),
	)

	var reviewSubmitter storage.ReviewSubmitter
	if cfg.Review.Token != "" {
		submitter, err := review.NewGitHubSubmitter(review.Config{
			RepoOwner: cfg.Review.RepoOwner,
			RepoName:  cfg.Review.RepoName,
			Branch:    cfg.Review.Branch,
			Token:     cfg.Review.Token,
		})
		if err != nil {
			logger.Fatal("configuring review submitter", zap.Error(err))
		}
		reviewSubmitter = submitter
	} else {
		logger.Warn("review submitter not configured, reviews will be rejected")
		reviewSubmitter = memory.NewReviewSubmitter()
	}

	stores := engine.Stores{
		Save:        postgres.NewSaveStore(pool.DB()),
		Leaderboard: postgres.NewLeaderboardStore(pool.DB()),
		Review:      reviewSubmitter,
	}
	return stores, pool.Close
}
