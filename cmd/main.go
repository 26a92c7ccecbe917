package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_booking"
	getAppointmentTypesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointment_types"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	bookingLogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/bookinglog"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/providercal"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointmenttypes"
	"github.com/m04kA/SMC-AppointmentService/internal/service/slotcache"
	createBookingUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона провайдера для напоминаний
	location, err := time.LoadLocation(cfg.Booking.TimeZone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.TimeZone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (журнал бронирований)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента календаря провайдера
	calendarClient := providercal.NewClient(
		cfg.ProviderAPI.URL,
		cfg.ProviderAPI.ProviderID,
		time.Duration(cfg.ProviderAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Provider calendar client initialized (url=%s, provider_id=%d, timeout=%ds)",
		cfg.ProviderAPI.URL, cfg.ProviderAPI.ProviderID, cfg.ProviderAPI.Timeout)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var (
		bookingLogRepository *bookingLogRepo.Repository
		txMgr                TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingLogRepository = bookingLogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingLogRepository = bookingLogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogService := appointmenttypes.NewService(
		calendarClient,
		cfg.Booking.BufferTypeName,
		time.Duration(cfg.Booking.CatalogRefreshMinutes)*time.Minute,
		log,
	)

	snapshotCache := slotcache.New(
		time.Duration(cfg.SlotCache.TTLMinutes)*time.Minute,
		cfg.SlotCache.MaxSessions,
		nil,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		calendarClient,
		catalogService,
		snapshotCache,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		calendarClient,
		catalogService,
		snapshotCache,
		bookingLogRepository,
		txMgr,
		location,
		log,
	)

	// Инициализируем handlers
	getAppointmentTypes := getAppointmentTypesHandler.NewHandler(catalogService, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// CORS для фронтенда записи
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог типов приёма (без сессии)
	api.HandleFunc("/appointment-types", getAppointmentTypes.Handle).Methods(http.MethodGet)

	// Маршруты, требующие X-Session-ID
	session := api.PathPrefix("").Subrouter()
	session.Use(middleware.Session)

	// Доступные слоты для записи
	session.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Бронирование слота
	session.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
