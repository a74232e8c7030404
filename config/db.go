package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Senethlakshan/wanderlust-tales/session"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OpenSessionStore builds the backend named by cfg.SessionStore. The returned
// close func releases its connections and is never nil.
func OpenSessionStore(ctx context.Context, cfg Config) (session.Store, func(), error) {
	switch cfg.SessionStore {
	case "", "memory":
		return session.NewMemoryStore(), func() {}, nil

	case "sqlite":
		s, err := session.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Println("✅ Session store: SQLite at", cfg.SQLitePath)
		return s, func() {
			if err := s.Close(); err != nil {
				log.Println("❌ Closing SQLite:", err)
			}
		}, nil

	case "mongo":
		client, err := ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		return session.NewMongoStore(client.Database(cfg.DBName)), func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				log.Println("❌ Disconnecting MongoDB:", err)
			}
		}, nil

	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, nil, fmt.Errorf("POSTGRES_DSN is missing")
		}
		s, err := session.NewPostgresStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		log.Println("✅ Session store: Postgres")
		return s, s.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown SESSION_STORE %q", cfg.SessionStore)
	}
}

func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGO_URI is missing")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Println("✅ Successfully Connected to MongoDB!")
	return client, nil
}
