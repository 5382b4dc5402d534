package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"contacts/areacode"
	"contacts/contact"
	"contacts/dynamodb"
	"contacts/httpserver"
	"contacts/pkg/config"
	"contacts/pkg/sentry"
	"contacts/postgres"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		slog.Error("Cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	resolver, err := newStateResolver(cfg)
	if err != nil {
		slog.Error("Cannot build area code resolver", "error", err)
		os.Exit(1)
	}

	contactService := contact.NewUsecase(postgres.NewContactRepository(db), resolver)

	server := httpserver.Default(cfg)
	server.ContactService = contactService
	if cfg.Port != 0 {
		server.Addr = fmt.Sprintf(":%d", cfg.Port)
	}

	slog.Info("server started!")
	if err := server.Start(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

// newStateResolver wires the lookup client and, when a DynamoDB table is
// configured, wraps it with the area-code cache.
func newStateResolver(cfg *config.Config) (contact.StateResolver, error) {
	client := areacode.NewClient(areacode.Options{
		BaseURL:       cfg.Lookup.BaseURL,
		TrackingEmail: cfg.Lookup.TrackingEmail,
		TrackingURL:   cfg.Lookup.TrackingURL,
		Timeout:       time.Duration(cfg.Lookup.TimeoutSeconds) * time.Second,
	})

	if cfg.DynamoDB.AreaCodesTable == "" {
		return client, nil
	}

	ddb, err := dynamodb.NewClient(context.Background(), dynamodb.Options{
		Region:       cfg.DynamoDB.Region,
		Endpoint:     cfg.DynamoDB.Endpoint,
		AccessKey:    cfg.DynamoDB.AccessKey,
		SecretKey:    cfg.DynamoDB.SecretKey,
		SessionToken: cfg.DynamoDB.SessionToken,
	})
	if err != nil {
		return nil, err
	}

	cache := dynamodb.NewAreaCodeCache(ddb, cfg.DynamoDB.AreaCodesTable)
	return areacode.NewCachedClient(client, cache), nil
}
