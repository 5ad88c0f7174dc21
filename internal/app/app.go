package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/bondhubazaar/storefront/internal/domain"
	healthcheck "github.com/bondhubazaar/storefront/internal/health"
	"github.com/bondhubazaar/storefront/internal/messaging/kafka"
	"github.com/bondhubazaar/storefront/internal/service/cart"
	"github.com/bondhubazaar/storefront/internal/service/catalog"
	"github.com/bondhubazaar/storefront/internal/service/checkout"
	"github.com/bondhubazaar/storefront/internal/service/courier"
	grpcsvc "github.com/bondhubazaar/storefront/internal/service/grpc"
	"github.com/bondhubazaar/storefront/internal/service/idempotency"
	"github.com/bondhubazaar/storefront/internal/service/order"
	"github.com/bondhubazaar/storefront/internal/service/otp"
	"github.com/bondhubazaar/storefront/internal/service/outbox"
	"github.com/bondhubazaar/storefront/internal/service/sms"
	"github.com/bondhubazaar/storefront/internal/service/topup"
	"github.com/bondhubazaar/storefront/internal/service/wallet"
	"github.com/bondhubazaar/storefront/internal/version"
	marketv1 "github.com/bondhubazaar/storefront/proto/market/v1"
)

// Run собирает все зависимости и держит процесс до отмены ctx либо
// фатальной ошибки сервера.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	// Реальные клиенты SMS, каталога, курьера и шлюза пополнения пока
	// не подключены, поэтому без разрешения на mock'и стартовать нельзя.
	if !cfg.AllowMockIntegrations {
		return fmt.Errorf("mock integrations are disabled, but real sms/catalog/courier/top-up providers are not configured")
	}

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if deps.closeFn != nil {
			if closeErr := deps.closeFn(); closeErr != nil {
				logger.WithError(closeErr).Warn("failed to close storage")
			}
		}
	}()

	kafkaProducer, kafkaErr := initKafkaProducer(cfg.KafkaBrokers, logger)
	if kafkaErr != nil {
		logger.WithError(kafkaErr).Warn("continuing without kafka")
	}

	// NOTE: SMS, каталог, курьер и шлюз пополнения — mock-реализации.
	// В production их заменяют клиенты реальных провайдеров
	// (SMS-шлюз, каталог маркетплейса, курьерская служба, bKash/Nagad).
	smsSender := sms.NewMockSender()
	catalogSvc := catalog.NewMockService()
	seedMockCatalog(catalogSvc)
	courierSvc := courier.NewMockService()
	topupBreaker := topup.NewCircuitBreaker(5, 30*time.Second, logger.WithField("component", "topup-circuit-breaker"))
	topupProvider := topup.NewBreakerProvider(
		topup.NewRetryingProvider(topup.NewMockProvider(), topup.DefaultRetryConfig(), logger.WithField("component", "topup-retry")),
		topupBreaker,
	)

	verifier := otp.NewVerifier(deps.otpRepo, smsSender, logger.WithField("component", "otp"))
	ledger := wallet.NewLedger(deps.walletRepo, topupProvider, logger.WithField("component", "wallet"))
	carts := cart.NewService(logger.WithField("component", "cart"))
	builder := checkout.NewBuilder(carts, deps.repo, deps.outboxRepo, deps.timelineRepo, verifier, logger.WithField("component", "checkout"))

	var lifecycle *order.Lifecycle
	if kafkaProducer != nil {
		lifecycle = order.NewLifecycleWithKafka(deps.repo, deps.outboxRepo, deps.timelineRepo, verifier, ledger, carts, courierSvc, kafkaProducer, logger.WithField("component", "order-lifecycle"))
	} else {
		lifecycle = order.NewLifecycle(deps.repo, deps.outboxRepo, deps.timelineRepo, verifier, ledger, carts, courierSvc, logger.WithField("component", "order-lifecycle"))
	}

	storefrontService := grpcsvc.NewStorefrontService(carts, catalogSvc, builder, lifecycle, ledger, deps.idempotencyRepo, logger.WithField("layer", "grpc"))

	grpcMetrics := promgrpc.NewServerMetrics()
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcMetrics.UnaryServerInterceptor()))
	if err := prometheus.Register(grpcMetrics); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok2 := are.ExistingCollector.(*promgrpc.ServerMetrics); ok2 {
				grpcMetrics = existing
			}
		} else {
			logger.WithError(err).Warn("failed to register grpc metrics")
		}
	}

	marketv1.RegisterStorefrontServiceServer(grpcServer, storefrontService)
	grpcMetrics.InitializeMetrics(grpcServer)

	// Reflection нужен grpcurl и нагрузочным инструментам.
	reflection.Register(grpcServer)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	healthHandler := healthcheck.NewHandler(version.String())
	if deps.storageChecker != nil {
		healthHandler.RegisterChecker("storage", deps.storageChecker)
	}
	healthHandler.RegisterChecker("outbox", newOutboxBacklogChecker(deps, cfg.OutboxMaxPending))

	// Фоновые воркеры живут на собственном контексте, чтобы их можно
	// было остановить после GracefulStop сервера.
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	var workersWG sync.WaitGroup

	if kafkaProducer != nil {
		publisher := kafka.NewOutboxPublisher(kafkaProducer, kafka.TopicOrderEvents)
		dlqPublisher := kafka.NewOutboxPublisher(kafkaProducer, kafka.TopicDeadLetterQueue)
		worker := outbox.NewWorker(deps.outboxRepo, publisher,
			outbox.WithLogger(logger.WithField("component", "outbox-worker")),
			outbox.WithDLQPublisher(dlqPublisher),
			outbox.WithPollInterval(cfg.OutboxPollInterval),
			outbox.WithBatchSize(cfg.OutboxBatchSize),
			outbox.WithMaxAttempts(cfg.OutboxMaxAttempts),
			outbox.WithRetryBaseDelay(cfg.OutboxRetryDelay),
		)
		workersWG.Add(1)
		go func() {
			defer workersWG.Done()
			worker.Run(workersCtx)
		}()
	} else {
		logger.Info("outbox worker is disabled: kafka is not configured")
	}

	cleanupWorker := idempotency.NewCleanupWorker(deps.idempotencyRepo,
		idempotency.WithLogger(logger.WithField("component", "idempotency-cleanup")),
		idempotency.WithInterval(cfg.IdempotencyCleanupInterval),
		idempotency.WithBatchSize(cfg.IdempotencyCleanupBatchSize),
	)
	workersWG.Add(1)
	go func() {
		defer workersWG.Done()
		cleanupWorker.Run(workersCtx)
	}()

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		stopWorkers()
		workersWG.Wait()
		closeKafka(kafkaProducer, logger)
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("gRPC сервер слушает %s", lis.Addr())
		errCh <- grpcServer.Serve(lis)
	}()

	shutdown := func() {
		stoppedCh := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
			close(stoppedCh)
		}()
		select {
		case <-stoppedCh:
		case <-time.After(5 * time.Second):
			logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
			grpcServer.Stop()
		}

		stopWorkers()
		workersWG.Wait()
		shutdownHTTP(metricsSrv, logger)
		closeKafka(kafkaProducer, logger)
	}

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем gRPC сервер")
		shutdown()
		return ctx.Err()
	case err := <-errCh:
		shutdown()
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}

// newOutboxBacklogChecker деградирует readiness при разрастании backlog.
func newOutboxBacklogChecker(deps runtimeDependencies, maxPending int) healthcheck.Checker {
	return healthcheck.NewSimpleChecker("outbox", func() error {
		stats, err := deps.outboxRepo.Stats()
		if err != nil {
			return err
		}
		if maxPending > 0 && stats.PendingCount > maxPending {
			return fmt.Errorf("outbox backlog too large: %d pending", stats.PendingCount)
		}
		return nil
	})
}

// startMetricsServer запускает HTTP-обработчик /metrics для Prometheus
// вместе с health-эндпоинтами.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez, %s/readyz", addr, addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("metrics shutdown with error")
	}
}

// seedMockCatalog наполняет mock-каталог демонстрационным ассортиментом,
// чтобы витрина была работоспособна без внешнего каталога.
func seedMockCatalog(svc *catalog.MockService) {
	items := []domain.CartItem{
		{
			ItemID:         "item-shirt",
			Name:           "Cotton Shirt",
			UnitPriceMinor: 1200,
			Kind:           domain.ItemKindProduct,
			Seller:         "Dhaka Textiles",
			District:       "Dhaka",
			Category:       "clothing",
			Image:          "https://cdn.bondhubazaar.example/items/item-shirt.jpg",
		},
		{
			ItemID:         "item-saree",
			Name:           "Jamdani Saree",
			UnitPriceMinor: 4500,
			Kind:           domain.ItemKindProduct,
			Seller:         "Narayanganj Weavers",
			District:       "Narayanganj",
			Category:       "clothing",
			Image:          "https://cdn.bondhubazaar.example/items/item-saree.jpg",
		},
		{
			ItemID:         "item-cleaning",
			Name:           "Home Cleaning",
			UnitPriceMinor: 800,
			Kind:           domain.ItemKindService,
			Seller:         "CleanCo",
			District:       "Dhaka",
			Category:       "services",
		},
	}
	for _, item := range items {
		svc.Put(item)
	}
}
