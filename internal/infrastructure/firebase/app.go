package firebase

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"bazarbd/pkg/config"
)

// ClientOptions returns the Google credentials option shared by Firebase,
// Firestore and Cloud Storage. Inline JSON wins over a file path; with
// neither, the clients fall back to Application Default Credentials.
func ClientOptions(cfg *config.Config) ([]option.ClientOption, error) {
	if cfg.FirebaseCredentialsJSON != "" {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON))}, nil
	}

	if cfg.FirebaseCredentialsPath != "" {
		if _, err := os.Stat(cfg.FirebaseCredentialsPath); err != nil {
			return nil, errors.Wrapf(err, "service account file %s", cfg.FirebaseCredentialsPath)
		}
		return []option.ClientOption{option.WithCredentialsFile(cfg.FirebaseCredentialsPath)}, nil
	}

	return nil, nil
}

func NewApp(ctx context.Context, cfg *config.Config) (*fbapp.App, error) {
	opts, err := ClientOptions(cfg)
	if err != nil {
		return nil, err
	}

	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase")
	}
	return app, nil
}

func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	opts, err := ClientOptions(cfg)
	if err != nil {
		return nil, err
	}

	client, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}
	return client, nil
}
