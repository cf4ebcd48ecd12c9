package main

import (
	"context"
	"time"

	"alcyxob/training-log/internal/config"
	"alcyxob/training-log/internal/repository/mongo"
	"alcyxob/training-log/internal/templates"

	"github.com/sirupsen/logrus"
)

// Seeds the workout template catalog. Safe to rerun: templates are
// upserted by ID.
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()

	appDB := dbClient.Database(cfg.Database.Name)
	templateRepo := mongo.NewMongoTemplateRepository(appDB)
	provider := templates.NewProvider(templateRepo, log.WithField("component", "templates"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := provider.Seed(ctx); err != nil {
		log.WithError(err).Fatal("seeding templates failed")
	}
	log.WithField("templates", len(templates.DefaultTemplates())).Info("template catalog seeded")
}
