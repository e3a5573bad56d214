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

	chatbot_adapter "handmedown-service/internal/adapters/chatbot"
	imagestore_adapter "handmedown-service/internal/adapters/imagestore"
	token_adapter "handmedown-service/internal/adapters/jwt"
	logger_adapter "handmedown-service/internal/adapters/logger"
	postgres_adapter "handmedown-service/internal/adapters/postgres"
	rabbitmq_adapter "handmedown-service/internal/adapters/rabbitmq"
	"handmedown-service/internal/adapters/rest"
	"handmedown-service/internal/configs"
	"handmedown-service/internal/constants"
	"handmedown-service/internal/core/port"
	"handmedown-service/internal/core/usecase"
	fluentlogger "handmedown-service/pkg/fluent_logger"
	"handmedown-service/pkg/postgres"
	pkg_rabbitmq "handmedown-service/pkg/rabbitmq"
)

// App - структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	amqpManager   *pkg_rabbitmq.ConnectionManager
	eventProducer *pkg_rabbitmq.Publisher
}

// NewApp - composition root: здесь создаются и связываются все зависимости.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- Логгеры ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
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

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- PostgreSQL ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	pieceStorage := postgres_adapter.NewPieceStorageAdapter(dbPool)
	locationStorage := postgres_adapter.NewLocationStorageAdapter(dbPool)
	favoritesRepo := postgres_adapter.NewFavoritesRepository(dbPool)
	userRepo := postgres_adapter.NewUserRepository(dbPool)
	appLogger.Info("Postgres adapters initialized.", nil)

	// --- Вспомогательные адаптеры ---
	tokenService, err := token_adapter.NewTokenService(appConfig.Auth.SigningKey)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	imageStore, err := imagestore_adapter.NewDiskImageStore(appConfig.Images.Dir, appConfig.Images.BaseURL)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create image store: %w", err)
	}

	chatbotClient, err := chatbot_adapter.NewClient(appConfig.Chatbot.URL, 15*time.Second)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create chatbot client: %w", err)
	}

	// --- RabbitMQ (опционально) ---
	var (
		amqpManager   *pkg_rabbitmq.ConnectionManager
		eventProducer *pkg_rabbitmq.Publisher
		pieceEvents   port.PieceEventsPort
	)
	if appConfig.RabbitMQ.Enabled {
		connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
		amqpManager, err = pkg_rabbitmq.NewManager(appConfig.RabbitMQ.URL, rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger))
		if err != nil {
			appLogger.Error("Failed to create connection manager", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create connection manager: %w", err)
		}

		producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
		eventProducer, err = pkg_rabbitmq.NewPublisher(pkg_rabbitmq.PublisherConfig{
			ExchangeName:             constants.ExchangePieceEvents,
			ExchangeType:             "topic",
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(producerLogger),
		}, amqpManager)
		if err != nil {
			appLogger.Error("Failed to create event producer", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create event producer: %w", err)
		}

		pieceEvents, err = rabbitmq_adapter.NewPieceEventsAdapter(eventProducer)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to create piece events adapter: %w", err)
		}
		appLogger.Info("RabbitMQ event pipeline initialized.", nil)
	} else {
		appLogger.Warn("RabbitMQ is disabled: piece lifecycle events will not be published", nil)
	}

	// --- Use cases ---
	getPiecesUC := usecase.NewGetPiecesUseCase(pieceStorage)
	getPieceByIDUC := usecase.NewGetPieceByIDUseCase(pieceStorage)
	getPiecesByUserUC := usecase.NewGetPiecesByUserUseCase(pieceStorage)
	createPieceUC := usecase.NewCreatePieceUseCase(pieceStorage, pieceEvents)
	updatePieceUC := usecase.NewUpdatePieceUseCase(pieceStorage, pieceEvents)
	deletePieceUC := usecase.NewDeletePieceUseCase(pieceStorage, imageStore)
	filterPiecesUC := usecase.NewFilterPiecesUseCase(pieceStorage)
	uploadImagesUC := usecase.NewUploadPieceImagesUseCase(pieceStorage, imageStore)

	searchPiecesUC := usecase.NewSearchPiecesUseCase(pieceStorage, pieceStorage)
	getDictionariesUC := usecase.NewGetDictionariesUseCase()

	getLocationsUC := usecase.NewGetLocationsUseCase(locationStorage)
	getLocationByIDUC := usecase.NewGetLocationByIDUseCase(locationStorage)
	nearbyLocationsUC := usecase.NewNearbyLocationsUseCase(locationStorage)
	createLocationUC := usecase.NewCreateLocationUseCase(locationStorage)
	updateLocationUC := usecase.NewUpdateLocationUseCase(locationStorage)
	deleteLocationUC := usecase.NewDeleteLocationUseCase(locationStorage)

	addFavoriteUC := usecase.NewAddToFavoritesUseCase(favoritesRepo, pieceStorage)
	removeFavoriteUC := usecase.NewRemoveFromFavoritesUseCase(favoritesRepo)
	getFavoritesUC := usecase.NewGetUserFavoritesUseCase(favoritesRepo, pieceStorage)
	getFavoriteIDsUC := usecase.NewGetUserFavoritesIDsUseCase(favoritesRepo)

	registerUC := usecase.NewRegisterUserUseCase(userRepo, tokenService, appConfig.Auth.AccessTokenTTL)
	loginUC := usecase.NewLoginUserUseCase(userRepo, tokenService, appConfig.Auth.AccessTokenTTL)
	validateTokenUC := usecase.NewValidateTokenUseCase(tokenService)
	sendChatMessageUC := usecase.NewSendChatMessageUseCase(chatbotClient)

	appLogger.Info("All use cases initialized.", nil)

	// --- REST API ---
	pieceHandlers := rest.NewPieceHandler(
		getPiecesUC, getPieceByIDUC, getPiecesByUserUC,
		createPieceUC, updatePieceUC, deletePieceUC,
		filterPiecesUC, uploadImagesUC,
	)
	searchHandlers := rest.NewSearchHandler(searchPiecesUC, getDictionariesUC)
	locationHandlers := rest.NewLocationHandler(
		getLocationsUC, getLocationByIDUC, nearbyLocationsUC,
		createLocationUC, updateLocationUC, deleteLocationUC,
	)
	favoritesHandlers := rest.NewFavoritesHandler(addFavoriteUC, removeFavoriteUC, getFavoritesUC, getFavoriteIDsUC)
	authHandlers := rest.NewAuthHandler(registerUC, loginUC, validateTokenUC)
	chatHandlers := rest.NewChatHandler(sendChatMessageUC)

	apiServer := rest.NewServer(
		appConfig.Rest.PORT,
		pieceHandlers, searchHandlers, locationHandlers,
		favoritesHandlers, authHandlers, chatHandlers,
		validateTokenUC,
		appConfig.Images.Dir,
		baseLogger,
	)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:        appConfig,
		dbPool:        dbPool,
		apiServer:     apiServer,
		fluentClient:  fluentClient,
		logger:        appLogger,
		amqpManager:   amqpManager,
		eventProducer: eventProducer,
	}, nil
}

// Run запускает компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := a.apiServer.Stop(shutdownCtx); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventProducer != nil {
			if err := a.eventProducer.Close(); err != nil {
				a.logger.Error("Error closing event producer", err, nil)
			}
		}
		if a.amqpManager != nil {
			if err := a.amqpManager.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ connection", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// В stdout: fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

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
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	}

	return nil
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
