// Package database opens the configured document store and exposes its
// repositories to the fx container.
package database

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	fsrepo "bazarbd/internal/adapter/repository"
	"bazarbd/internal/adapter/repository/memory"
	mongorepo "bazarbd/internal/adapter/repository/mongodb"
	"bazarbd/internal/domain/repository"
	"bazarbd/internal/infrastructure/firebase"
	mongoclient "bazarbd/internal/infrastructure/mongodb"
	"bazarbd/pkg/config"
)

const setupTimeout = 30 * time.Second

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type Repositories struct {
	fx.Out

	Products       repository.ProductRepository
	Users          repository.UserRepository
	Reviews        repository.ReviewRepository
	Watchlist      repository.WatchlistRepository
	Advertisements repository.AdvertisementRepository
	Orders         repository.OrderRepository
	Newsletter     repository.NewsletterRepository
}

func New(p Params) (Repositories, error) {
	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	switch p.Config.DatabaseDriver {
	case config.DriverFirestore:
		client, err := firebase.NewFirestoreClient(ctx, p.Config)
		if err != nil {
			return Repositories{}, err
		}
		p.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return errors.Wrap(client.Close(), "close firestore client")
			},
		})
		p.Logger.Info("using firestore document store", "project", p.Config.FirebaseProject)
		return firestoreRepositories(client), nil

	case config.DriverMongo:
		client, err := mongoclient.NewClient(ctx, p.Config.MongoURI)
		if err != nil {
			return Repositories{}, err
		}
		p.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return errors.Wrap(client.Disconnect(ctx), "disconnect mongo client")
			},
		})

		db := client.Database(p.Config.MongoDatabase)
		if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
			p.Logger.Warn("failed to ensure mongo indexes", "error", err)
		}
		p.Logger.Info("using mongo document store", "database", p.Config.MongoDatabase)
		return mongoRepositories(db), nil

	default:
		p.Logger.Warn("using in-memory document store; data is lost on restart")
		return MemoryRepositories(), nil
	}
}

func firestoreRepositories(client *firestore.Client) Repositories {
	return Repositories{
		Products:       fsrepo.NewFirestoreProductRepository(client),
		Users:          fsrepo.NewFirestoreUserRepository(client),
		Reviews:        fsrepo.NewFirestoreReviewRepository(client),
		Watchlist:      fsrepo.NewFirestoreWatchlistRepository(client),
		Advertisements: fsrepo.NewFirestoreAdvertisementRepository(client),
		Orders:         fsrepo.NewFirestoreOrderRepository(client),
		Newsletter:     fsrepo.NewFirestoreNewsletterRepository(client),
	}
}

func mongoRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Products:       mongorepo.NewProductRepository(db),
		Users:          mongorepo.NewUserRepository(db),
		Reviews:        mongorepo.NewReviewRepository(db),
		Watchlist:      mongorepo.NewWatchlistRepository(db),
		Advertisements: mongorepo.NewAdvertisementRepository(db),
		Orders:         mongorepo.NewOrderRepository(db),
		Newsletter:     mongorepo.NewNewsletterRepository(db),
	}
}

func MemoryRepositories() Repositories {
	return Repositories{
		Products:       memory.NewProductRepository(),
		Users:          memory.NewUserRepository(),
		Reviews:        memory.NewReviewRepository(),
		Watchlist:      memory.NewWatchlistRepository(),
		Advertisements: memory.NewAdvertisementRepository(),
		Orders:         memory.NewOrderRepository(),
		Newsletter:     memory.NewNewsletterRepository(),
	}
}
