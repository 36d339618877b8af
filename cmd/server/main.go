package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/opsfront/intake-backend/conf"
	"github.com/opsfront/intake-backend/http"
	"github.com/opsfront/intake-backend/intake/intakeddb"
	"github.com/opsfront/intake-backend/intake/intakes3"
	"github.com/opsfront/intake-backend/intake/intakesrvc"
	"github.com/opsfront/intake-backend/notifsrvc"
)

func main() {
	// .env is optional; deployed environments configure through real env vars
	_ = godotenv.Load()

	cfg, err := conf.Load(os.Getenv("INTAKE_CONFIG"))
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.AdminKey == "" {
		slog.Error("no admin key configured, staff endpoints would reject everything; set ADMIN_KEY or ADMIN_KEY_SECRET_NAME")
		os.Exit(1)
	}

	repo, err := newSubmRepo(cfg)
	if err != nil {
		slog.Error("failed to construct submission store", "error", err)
		os.Exit(1)
	}

	sender, err := newSender(cfg)
	if err != nil {
		slog.Error("failed to construct notification sender", "error", err)
		os.Exit(1)
	}

	intakeSrvc := intakesrvc.NewIntakeSrvc(repo, sender, cfg.AdminKey)
	httpServer := http.NewHttpServer(intakeSrvc)

	log.Printf("Starting server on %s (store=%s, notify=%s)",
		cfg.HttpAddress, cfg.Store.Provider, cfg.Notify.Provider)
	err = httpServer.Start(cfg.HttpAddress)
	log.Printf("Server stopped with error: %v", err)
}

func newSubmRepo(cfg conf.Config) (intakesrvc.SubmRepo, error) {
	switch cfg.Store.Provider {
	case conf.StoreMemory:
		return intakesrvc.NewInMemRepo(), nil
	case conf.StoreDynamoDb:
		awsCfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(cfg.Store.Region))
		if err != nil {
			return nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		return intakeddb.NewDdbSubmTable(dynamodb.NewFromConfig(awsCfg), cfg.Store.DdbTable), nil
	case conf.StoreS3:
		return intakes3.NewS3SubmRepo(cfg.Store.Region, cfg.Store.S3Bucket, cfg.Store.S3Prefix)
	}
	return nil, fmt.Errorf("unknown store provider %q", cfg.Store.Provider)
}

func newSender(cfg conf.Config) (notifsrvc.Sender, error) {
	switch cfg.Notify.Provider {
	case conf.NotifyLog:
		return notifsrvc.NewSlogSender(slog.Default()), nil
	case conf.NotifySmtp:
		return notifsrvc.NewSmtpSender(
			cfg.Notify.SmtpHost, cfg.Notify.SmtpPort,
			cfg.Notify.SmtpUsername, cfg.Notify.SmtpPassword,
			cfg.Notify.SmtpFrom, cfg.Notify.Recipient,
		), nil
	case conf.NotifySqs:
		region := cfg.Notify.SqsRegion
		if region == "" {
			region = cfg.Store.Region
		}
		return notifsrvc.NewSqsSender(region, cfg.Notify.SqsQueueUrl, cfg.Notify.Recipient)
	}
	return nil, fmt.Errorf("unknown notify provider %q", cfg.Notify.Provider)
}
