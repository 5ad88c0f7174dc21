package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bondhubazaar/storefront/internal/domain"
	healthcheck "github.com/bondhubazaar/storefront/internal/health"
	"github.com/bondhubazaar/storefront/internal/storage/memory"
	"github.com/bondhubazaar/storefront/internal/storage/postgres"
)

// runtimeDependencies — набор репозиториев, выбранный по драйверу хранилища.
type runtimeDependencies struct {
	repo            domain.OrderRepository
	walletRepo      domain.WalletRepository
	otpRepo         domain.OtpChallengeRepository
	outboxRepo      domain.OutboxRepository
	timelineRepo    domain.TimelineRepository
	idempotencyRepo domain.IdempotencyRepository

	// storageChecker участвует в readiness; для памяти отсутствует.
	storageChecker healthcheck.Checker
	closeFn        func() error
}

// initRuntimeDependencies собирает слой хранения по cfg.StorageDriver.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (runtimeDependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	switch cfg.StorageDriver {
	case "", StorageDriverMemory:
		return runtimeDependencies{
			repo:            memory.NewOrderRepository(),
			walletRepo:      memory.NewWalletRepository(),
			otpRepo:         memory.NewOtpChallengeRepository(),
			outboxRepo:      memory.NewOutboxRepository(),
			timelineRepo:    memory.NewTimelineRepository(),
			idempotencyRepo: memory.NewIdempotencyRepository(),
		}, nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return runtimeDependencies{}, fmt.Errorf("postgres storage driver requires a DSN")
		}

		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return runtimeDependencies{}, fmt.Errorf("open postgres: %w", err)
		}

		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return runtimeDependencies{}, fmt.Errorf("ensure postgres schema: %w", err)
			}
			logger.Info("postgres schema is up to date")
		}

		checker := healthcheck.NewSimpleChecker("postgres", func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return store.Ping(pingCtx)
		})

		return runtimeDependencies{
			repo:            postgres.NewOrderRepository(store),
			walletRepo:      postgres.NewWalletRepository(store),
			otpRepo:         postgres.NewOtpChallengeRepository(store),
			outboxRepo:      postgres.NewOutboxRepository(store),
			timelineRepo:    postgres.NewTimelineRepository(store),
			idempotencyRepo: postgres.NewIdempotencyRepository(store),
			storageChecker:  checker,
			closeFn:         store.Close,
		}, nil

	default:
		return runtimeDependencies{}, fmt.Errorf("unsupported storage driver: %q", cfg.StorageDriver)
	}
}
