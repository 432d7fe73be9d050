package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	logger_adapter "github.com/Abdalkaderdev/Realhouse-sub003/internal/adapters/logger"
	postgres_adapter "github.com/Abdalkaderdev/Realhouse-sub003/internal/adapters/postgres"
	rabbitmq_adapter "github.com/Abdalkaderdev/Realhouse-sub003/internal/adapters/rabbitmq"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/adapters/rest"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/adapters/site_api_client"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/catalog"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/configs"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/constants"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/content"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contracts"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/usecase"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/pages"
	fluentlogger "github.com/Abdalkaderdev/Realhouse-sub003/pkg/fluent_logger"
	"github.com/Abdalkaderdev/Realhouse-sub003/pkg/postgres"
	"github.com/Abdalkaderdev/Realhouse-sub003/pkg/rabbitmq/rabbitmq_common"
	"github.com/Abdalkaderdev/Realhouse-sub003/pkg/rabbitmq/rabbitmq_producer"
)

const (
	contentCacheTTL = 5 * time.Minute
	shutdownTimeout = 15 * time.Second
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	connManager       *rabbitmq_common.ConnectionManager
	inquiriesProducer *rabbitmq_producer.Publisher
}

// NewApp собирает приложение: здесь создаются и связываются все зависимости
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. Логгеры ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: !appConfig.StdoutLogger.IsJSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	application := &App{config: appConfig, fluentClient: fluentClient, logger: appLogger}

	// --- 2. Статические данные и контракты ---
	if err := catalog.Validate(); err != nil {
		appLogger.Error("Catalog data is inconsistent", err, nil)
		application.close()
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	if err := contracts.Load(); err != nil {
		appLogger.Error("Failed to compile request schemas", err, nil)
		application.close()
		return nil, fmt.Errorf("failed to load request schemas: %w", err)
	}

	// --- 3. PostgreSQL ---
	initCtx := contextkeys.ContextWithLogger(context.Background(), baseLogger)

	dbPool, err := postgres.NewClient(initCtx, postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		application.close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	application.dbPool = dbPool
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	if err := postgres_adapter.EnsureSchema(initCtx, dbPool); err != nil {
		appLogger.Error("Failed to prepare database schema", err, nil)
		application.close()
		return nil, fmt.Errorf("failed to prepare database schema: %w", err)
	}

	propertyRepository, err := postgres_adapter.NewPropertyRepository(dbPool)
	if err != nil {
		application.close()
		return nil, fmt.Errorf("failed to create property repository: %w", err)
	}
	inquiryRepository, err := postgres_adapter.NewInquiryRepository(dbPool)
	if err != nil {
		application.close()
		return nil, fmt.Errorf("failed to create inquiry repository: %w", err)
	}
	appLogger.Info("Postgres storage adapters initialized.", nil)

	// --- 4. RabbitMQ (необязательно) ---
	var inquiryNotifier port.InquiryNotifierPort
	if appConfig.RabbitMQ.URL != "" {
		notifier, err := application.initRabbitMQ(baseLogger)
		if err != nil {
			appLogger.Error("Failed to initialize RabbitMQ", err, nil)
			application.close()
			return nil, err
		}
		inquiryNotifier = notifier
		appLogger.Info("RabbitMQ inquiry notifier initialized.", nil)
	} else {
		appLogger.Warn("RABBITMQ_URL is empty, inquiry events are disabled", nil)
	}

	// --- 5. Сценарии (use cases) ---
	listPropertiesUseCase := usecase.NewListPropertiesUseCase(propertyRepository)
	getPropertyUseCase := usecase.NewGetPropertyUseCase(propertyRepository)
	createPropertyUseCase := usecase.NewCreatePropertyUseCase(propertyRepository)
	updatePropertyUseCase := usecase.NewUpdatePropertyUseCase(propertyRepository)
	deletePropertyUseCase := usecase.NewDeletePropertyUseCase(propertyRepository)
	submitInquiryUseCase := usecase.NewSubmitInquiryUseCase(inquiryRepository, inquiryNotifier)

	if appConfig.Site.SeedCatalog {
		inserted, err := usecase.NewSeedPropertiesUseCase(propertyRepository).Execute(initCtx, catalog.Properties())
		if err != nil {
			appLogger.Error("Failed to seed catalog properties", err, nil)
			application.close()
			return nil, fmt.Errorf("failed to seed properties: %w", err)
		}
		appLogger.Info("Catalog seed finished", port.Fields{"inserted": inserted})
	}

	// --- 6. Сайт ---
	apiClient := site_api_client.NewClient(appConfig.Site.APIURL, nil)
	site := &pages.Site{
		Company:   catalog.Company,
		BaseURL:   appConfig.Site.BaseURL,
		Listings:  apiClient,
		Inquiries: apiClient,
		Content:   content.NewStore(appConfig.Site.ContentDir, contentCacheTTL),
	}

	// --- 7. REST API и страницы ---
	propertyHandlers := rest.NewPropertyHandler(listPropertiesUseCase, getPropertyUseCase, createPropertyUseCase, updatePropertyUseCase, deletePropertyUseCase)
	inquiryHandlers := rest.NewInquiryHandler(submitInquiryUseCase)
	pageHandlers := rest.NewPageHandler(site, dbPool.Ping)

	application.apiServer = rest.NewServer(appConfig.Rest.PORT, propertyHandlers, inquiryHandlers, pageHandlers, appConfig.Rest.AllowedOrigins, baseLogger)
	appLogger.Info("REST API server configured.", port.Fields{"api_url": appConfig.Site.APIURL, "base_url": appConfig.Site.BaseURL})

	return application, nil
}

func (a *App) initRabbitMQ(baseLogger port.LoggerPort) (port.InquiryNotifierPort, error) {
	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.NewManager(rabbitmq_common.Config{URL: a.config.RabbitMQ.URL}, connManagerBridge)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		ExchangeName:             constants.ExchangeSiteEvents,
		ExchangeType:             "topic",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,

		Logger: rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create inquiry producer: %w", err)
	}
	a.inquiriesProducer = producer

	notifier, err := rabbitmq_adapter.NewInquiryNotifierAdapter(producer, constants.RoutingKeyInquiryCreated)
	if err != nil {
		return nil, fmt.Errorf("failed to create inquiry notifier: %w", err)
	}
	return notifier, nil
}

// Run запускает HTTP-сервер и ждет сигнала или ошибки
func (a *App) Run() error {
	defer a.close()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.apiServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}
	return runErr
}

// close освобождает ресурсы в обратном порядке; безопасен для частично собранного App
func (a *App) close() {
	if a.inquiriesProducer != nil {
		if err := a.inquiriesProducer.Close(); err != nil {
			a.logger.Error("Error closing inquiry producer", err, nil)
		}
		a.inquiriesProducer = nil
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
		a.connManager = nil
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed.", nil)
		a.dbPool = nil
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent уже может быть недоступен
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
		a.fluentClient = nil
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
