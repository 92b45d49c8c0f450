package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"blooddonor/pkg/config"
	"blooddonor/pkg/logger"
)

// credentials prefers inline service account JSON, then a key file, then
// application default credentials (which also covers the emulator).
func credentials(cfg *config.Config) ([]option.ClientOption, error) {
	if cfg.FirebaseServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccountJSON))}, nil
	}

	if cfg.FirebaseServiceAccountPath != "" {
		if _, err := os.Stat(cfg.FirebaseServiceAccountPath); err != nil {
			return nil, fmt.Errorf("service account file %s: %w", cfg.FirebaseServiceAccountPath, err)
		}
		logger.Info("Using Firebase service account from file: %s", cfg.FirebaseServiceAccountPath)
		return []option.ClientOption{option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)}, nil
	}

	logger.Info("Using application default credentials for Firebase")
	return nil, nil
}

func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	opts, err := credentials(cfg)
	if err != nil {
		return nil, err
	}

	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}

	logger.Info("Firestore connected: project %s", cfg.FirebaseProject)
	return client, nil
}
