package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"strings"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/adapters/apiclient"
	logger_adapter "github.com/AlbertUngureanu/TenanSeeMVP/internal/adapters/logger"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/adapters/mockbackend"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/adapters/sessionstore"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/configs"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/contextkeys"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/port"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/usecase"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/google/uuid"
)

// App собирает все слои приложения: конфигурацию, логгеры, хранилище
// сессии, API-клиент и use case-ы поверх него.
type App struct {
	Config   *configs.AppConfig
	Sessions port.SessionStorePort

	Auth     *usecase.AuthUseCase
	Browse   *usecase.BrowseListingsUseCase
	Property *usecase.PropertyDetailsUseCase
	Owner    *usecase.OwnerProfileUseCase
	Profile  *usecase.ManageProfileUseCase
	Publish  *usecase.PublishPropertyUseCase
	Schedule *usecase.ScheduleVisitUseCase
	Visits   *usecase.MyVisitsUseCase
	Review   *usecase.SubmitReviewUseCase

	logger       port.LoggerPort
	fluentClient *fluent.Fluent
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluent.New(fluent.Config{
			FluentHost: appConfig.FluentBit.Host,
			FluentPort: appConfig.FluentBit.Port,
			TagPrefix:  appConfig.AppName, // Используем имя приложения как префикс
			Async:      true,
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

	// --- 2. ХРАНИЛИЩЕ СЕССИИ ---
	sessions, err := sessionstore.NewFileStore(appConfig.Session.Dir)
	if err != nil {
		appLogger.Error("Failed to open session store", err, nil)
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	// --- 3. API-КЛИЕНТ: mock-транспорт + живой backend ---
	mock := mockbackend.New(mockbackend.Config{Delay: appConfig.Mock.Delay})

	client := apiclient.NewClient(apiclient.Config{
		BaseURL:        appConfig.ApiClient.BaseURL,
		UseRealBackend: appConfig.ApiClient.UseRealBackend,
		HTTPClient:     &http.Client{Timeout: appConfig.ApiClient.Timeout},
	}, mock, sessions)

	appLogger.Info("API client initialized", port.Fields{
		"base_url":     appConfig.ApiClient.BaseURL,
		"real_backend": appConfig.ApiClient.UseRealBackend,
	})

	// --- 4. USE CASES (ядро бизнес-логики) ---
	application := &App{
		Config:   appConfig,
		Sessions: sessions,

		Auth:     usecase.NewAuthUseCase(client, sessions),
		Browse:   usecase.NewBrowseListingsUseCase(client),
		Property: usecase.NewPropertyDetailsUseCase(client, client),
		Owner:    usecase.NewOwnerProfileUseCase(client, client),
		Profile:  usecase.NewManageProfileUseCase(client, sessions),
		Publish:  usecase.NewPublishPropertyUseCase(client, sessions),
		Schedule: usecase.NewScheduleVisitUseCase(client, sessions),
		Visits:   usecase.NewMyVisitsUseCase(client, sessions),
		Review:   usecase.NewSubmitReviewUseCase(client, sessions),

		logger:       baseLogger,
		fluentClient: fluentClient,
	}

	appLogger.Info("All use cases initialized", nil)

	return application, nil
}

// NewRequestContext создает контекст одного пользовательского действия:
// обогащенный логгер + свежий trace_id, как это делает HTTP middleware
// в серверных частях системы.
func (a *App) NewRequestContext(ctx context.Context) context.Context {
	traceID := uuid.New().String()
	logger := a.logger.WithFields(port.Fields{"trace_id": traceID})

	ctx = contextkeys.ContextWithLogger(ctx, logger)
	ctx = contextkeys.ContextWithTraceID(ctx, traceID)
	return ctx
}

func (a *App) Logger() port.LoggerPort {
	return a.logger
}

// Close освобождает внешние ресурсы приложения
func (a *App) Close() {
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// Логируем в stdout, так как fluent может быть уже недоступен
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
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
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
