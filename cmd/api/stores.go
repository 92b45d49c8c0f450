package main

import (
	"context"
	"fmt"

	"blooddonor/internal/adapter/repository"
	domainrepo "blooddonor/internal/domain/repository"
	"blooddonor/internal/infrastructure/firebase"
	"blooddonor/internal/infrastructure/mongodb"
	"blooddonor/pkg/config"
)

type stores struct {
	users     domainrepo.UserRepository
	donations domainrepo.DonationRepository
	previous  domainrepo.PreviousDonationRepository
	close     func(context.Context) error
}

// openStores connects to the configured database. The Mongo path also
// applies collection validators and indexes before returning.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.DatabaseDriver {
	case config.DriverMongo:
		client, err := mongodb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := repository.EnsureSchema(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &stores{
			users:     repository.NewMongoUserRepository(db),
			donations: repository.NewMongoDonationRepository(db),
			previous:  repository.NewMongoPreviousDonationRepository(db),
			close:     client.Disconnect,
		}, nil

	case config.DriverFirestore:
		client, err := firebase.NewFirestoreClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &stores{
			users:     repository.NewFirestoreUserRepository(client),
			donations: repository.NewFirestoreDonationRepository(client),
			previous:  repository.NewFirestorePreviousDonationRepository(client),
			close: func(context.Context) error {
				return client.Close()
			},
		}, nil
	}

	return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
}
