package app

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/reelmates/reelmates-client/internal/config"
	"github.com/reelmates/reelmates-client/internal/store"
)

// newSessionStorage opens the durable sqlite store, falling back to the
// in-memory store when the device store is unavailable. Callers see the
// same interface either way; only persistence is lost.
func newSessionStorage(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) store.Store {
	s, err := store.OpenSQLite(cfg.Storage.Path)
	if err != nil {
		log.Warn("session store unavailable, using in-memory fallback",
			zap.String("path", cfg.Storage.Path), zap.Error(err))
		return store.NewMemory()
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if closer, ok := s.(io.Closer); ok {
				return closer.Close()
			}
			return nil
		},
	})
	return s
}

func newFirestore(lc fx.Lifecycle, cfg *config.Config) (*firestore.Client, error) {
	ctx := context.Background()
	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID})
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := fbApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firestore client: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}
