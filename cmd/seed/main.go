package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/quickchance/quickchance-backend/config"
	"github.com/quickchance/quickchance-backend/internal/bootstrap"
	"github.com/quickchance/quickchance-backend/internal/container"
	"github.com/quickchance/quickchance-backend/internal/infrastructure/mongodb"
	"github.com/quickchance/quickchance-backend/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoTimeout)
	if err != nil {
		logger.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	migrateURL, err := cfg.MigrateURL()
	if err != nil {
		logger.Fatalf("invalid MONGO_URI: %v", err)
	}
	if err := mongodb.RunMigrations(migrateURL, cfg.MigrationsDir, logger); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}

	c := container.New(cfg, logger, container.MongoRepositories(db), nil)
	res, err := bootstrap.Seed(ctx, bootstrap.Deps{
		Users:           c.UserService,
		Opportunities:   c.OpportunityService,
		Applications:    c.ApplicationService,
		UserRepo:        c.Users,
		OpportunityRepo: c.Opportunities,
		ApplicationRepo: c.Applications,
		Logger:          logger,
	})
	if err != nil {
		logger.Fatalf("seed failed: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"company":     res.Company.ID.Hex(),
		"youth":       res.Youth.ID.Hex(),
		"opportunity": res.Opportunity.ID.Hex(),
		"application": res.Application.ID.Hex(),
	}).Info("seed complete")
}
