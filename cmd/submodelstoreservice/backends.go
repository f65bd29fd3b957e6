package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
	errs "github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/errors"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/logger"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/persistence"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/persistence/awsclient"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/persistence/dynamo"
	persistence_inmemory "github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/persistence/inmemory"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/persistence/mongodb"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/persistence/objectstore"
	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/submodelrepository/persistence/postgresql"
	"go.mongodb.org/mongo-driver/mongo"
)

// backends holds the storage backends selected by the configuration and the
// connections they share.
type backends struct {
	documents persistence.DocumentStore
	blobs     persistence.BlobStore

	db    *sql.DB
	mongo *mongo.Client
}

// Close releases the shared connections.
func (b *backends) Close(ctx context.Context) {
	if b.db != nil {
		_ = b.db.Close()
	}
	if b.mongo != nil {
		_ = b.mongo.Disconnect(ctx)
	}
}

func (b *backends) postgres(ctx context.Context, cfg *common.Config, schemaPath string) (*sql.DB, error) {
	if b.db != nil {
		return b.db, nil
	}
	log.Printf("🗄️  Connecting to Postgres at %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	db, err := common.InitializeDatabase(ctx, cfg.Postgres.DSN(), schemaPath, common.PoolSettings{
		MaxOpenConnections:     cfg.Postgres.MaxOpenConnections,
		MaxIdleConnections:     cfg.Postgres.MaxIdleConnections,
		ConnMaxLifetimeMinutes: cfg.Postgres.ConnMaxLifetimeMinutes,
	})
	if err != nil {
		return nil, err
	}
	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Println("✅ Postgres connection established")
	b.db = db
	return db, nil
}

func (b *backends) mongoDatabase(ctx context.Context, cfg *common.Config) (*mongo.Database, error) {
	if b.mongo == nil {
		client, err := mongodb.Connect(ctx, cfg.MongoDB.URI)
		if err != nil {
			return nil, err
		}
		log.Println("✅ MongoDB connection established")
		b.mongo = client
	}
	return b.mongo.Database(cfg.MongoDB.Database), nil
}

// buildBackends connects the document and blob backends named in cfg.
// Backends of the same technology share one connection.
func buildBackends(ctx context.Context, cfg *common.Config, schemaPath string) (*backends, error) {
	b := &backends{}
	if err := b.buildDocuments(ctx, cfg, schemaPath); err != nil {
		b.Close(ctx)
		logger.LogBackendCreationError(cfg.Store.DocumentBackend, err)
		return nil, fmt.Errorf("%w: %w", errs.NewBackendCreationError(cfg.Store.DocumentBackend), err)
	}
	if err := b.buildBlobs(ctx, cfg, schemaPath); err != nil {
		b.Close(ctx)
		logger.LogBackendCreationError(cfg.Store.BlobBackend, err)
		return nil, fmt.Errorf("%w: %w", errs.NewBackendCreationError(cfg.Store.BlobBackend), err)
	}
	return b, nil
}

func (b *backends) buildDocuments(ctx context.Context, cfg *common.Config, schemaPath string) error {
	switch cfg.Store.DocumentBackend {
	case "memory":
		b.documents = persistence_inmemory.NewInMemoryDocumentStore()
	case "postgres":
		db, err := b.postgres(ctx, cfg, schemaPath)
		if err != nil {
			return err
		}
		b.documents = postgresql.NewDocumentStore(db)
	case "mongodb":
		database, err := b.mongoDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		b.documents = mongodb.NewDocumentStore(database.Collection(cfg.MongoDB.Collection))
	case "dynamodb":
		client, err := dynamo.NewClient(ctx, awsclient.Settings{
			Region:          cfg.DynamoDB.Region,
			Endpoint:        cfg.DynamoDB.Endpoint,
			AccessKeyID:     cfg.DynamoDB.AccessKeyID,
			SecretAccessKey: cfg.DynamoDB.SecretAccessKey,
		})
		if err != nil {
			return err
		}
		b.documents = dynamo.NewDocumentStore(client, cfg.DynamoDB.Table)
	default:
		return fmt.Errorf("unknown document backend %q", cfg.Store.DocumentBackend)
	}
	return nil
}

func (b *backends) buildBlobs(ctx context.Context, cfg *common.Config, schemaPath string) error {
	switch cfg.Store.BlobBackend {
	case "memory":
		b.blobs = persistence_inmemory.NewInMemoryBlobStore()
	case "postgres":
		db, err := b.postgres(ctx, cfg, schemaPath)
		if err != nil {
			return err
		}
		b.blobs = postgresql.NewBlobStore(db)
	case "gridfs":
		database, err := b.mongoDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		b.blobs = mongodb.NewGridFSBlobStore(database, cfg.MongoDB.Bucket)
	case "s3":
		client, err := objectstore.NewClient(ctx, awsclient.Settings{
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		if err != nil {
			return err
		}
		b.blobs = objectstore.NewS3BlobStore(client, cfg.S3.Bucket, cfg.S3.Prefix)
	default:
		return fmt.Errorf("unknown blob backend %q", cfg.Store.BlobBackend)
	}
	return nil
}
