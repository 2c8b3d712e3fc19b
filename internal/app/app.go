package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/catalog"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/events"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/store"
)

const defaultStorePath = "data/store.json"

// App owns the long-lived resources BuildApp wires together.
type App struct {
	Store *store.Store

	closers []func() error
	logger  *zap.Logger
}

// BuildApp assembles infrastructure and registers every module's routes.
// Redis, Kafka, and Postgres are optional: when their env vars are unset the
// storefront runs with a file-backed store, no event stream, and no admin
// order routes.
func BuildApp(router *gin.Engine, logger *zap.Logger) (*App, error) {
	a := &App{logger: logger}

	// 1. Catalogue (static, validated once)
	catalogue, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	// 2. Store persistence
	var persister store.Persister
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err := connectRedisWithRetry(addr, 5, logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rdb.Close)
		persister = store.NewRedisPersister(rdb, os.Getenv("STORE_KEY"))
	} else {
		path := os.Getenv("STORE_PATH")
		if path == "" {
			path = defaultStorePath
		}
		persister = store.NewFilePersister(path)
	}

	a.Store = store.New(persister, logger)

	// 3. Activity events
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		writer, err := connectKafkaWithRetry(broker, events.DefaultTopic, 5, logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, writer.Close)

		publisher := events.NewPublisher(writer, logger)
		a.Store.Subscribe(publisher.OnStoreChange)
	}

	// 4. Order collaborator
	deps := moduleDeps{catalogue: catalogue, st: a.Store, logger: logger}
	if dsn := os.Getenv("DB_URL"); dsn != "" {
		db, err := connectDBWithRetry(dsn, 5, logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		deps.db = db
	} else {
		logger.Info("DB_URL unset, admin order routes disabled")
	}

	registerModules(router, deps)

	return a, nil
}

// Close flushes the store and releases every connection, in reverse order of
// acquisition.
func (a *App) Close() {
	a.Store.Close()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", zap.Error(err))
		}
	}
}
