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

	getBookingHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_booking"
	getScheduleHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	staffServiceClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-ScheduleService/internal/layout"
	bookingsService "github.com/m04kA/SMC-ScheduleService/internal/service/bookings"
	getScheduleUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if path := os.Getenv("SCHEDULE_CONFIG"); path != "" {
		configPath = path
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var layoutMetrics getScheduleUC.MetricsRecorder
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		layoutMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Инициализируем интеграционного клиента
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (StaffService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Инициализируем сервис и use case
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	getScheduleUseCase := getScheduleUC.NewUseCase(
		bookingRepository,
		staffClient,
		layoutMetrics,
		layout.Options{
			PixelsPerHour:    cfg.Layout.PixelsPerHour,
			MinimumBlockSize: cfg.Layout.MinimumBlockSize,
		},
		log,
	)
	log.Info("Layout configured (pixels_per_hour=%.1f, minimum_block_size=%.1f)",
		cfg.Layout.PixelsPerHour, cfg.Layout.MinimumBlockSize)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Сетка расписания салона (день / неделя / месяц)
	api.HandleFunc("/salons/{salonId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Карточка бронирования с элементами расписания
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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
