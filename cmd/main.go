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

	adminCancelReservationHandler "github.com/courtclub/court-booking-service/internal/api/handlers/admin_cancel_reservation"
	cancelReservationHandler "github.com/courtclub/court-booking-service/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/courtclub/court-booking-service/internal/api/handlers/create_reservation"
	getDashboardStatsHandler "github.com/courtclub/court-booking-service/internal/api/handlers/get_dashboard_stats"
	getDayScheduleHandler "github.com/courtclub/court-booking-service/internal/api/handlers/get_day_schedule"
	getReservationHandler "github.com/courtclub/court-booking-service/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/courtclub/court-booking-service/internal/api/handlers/get_user_reservations"
	getWeekScheduleHandler "github.com/courtclub/court-booking-service/internal/api/handlers/get_week_schedule"
	listReservationsHandler "github.com/courtclub/court-booking-service/internal/api/handlers/list_reservations"
	updateReservationStatusHandler "github.com/courtclub/court-booking-service/internal/api/handlers/update_reservation_status"
	"github.com/courtclub/court-booking-service/internal/api/middleware"
	"github.com/courtclub/court-booking-service/internal/config"
	reservationRepo "github.com/courtclub/court-booking-service/internal/infra/storage/reservation"
	courtServiceClient "github.com/courtclub/court-booking-service/internal/integrations/courtservice"
	userServiceClient "github.com/courtclub/court-booking-service/internal/integrations/userservice"
	reservationsService "github.com/courtclub/court-booking-service/internal/service/reservations"
	statsService "github.com/courtclub/court-booking-service/internal/service/stats"
	createReservationUC "github.com/courtclub/court-booking-service/internal/usecase/create_reservation"
	getDayScheduleUC "github.com/courtclub/court-booking-service/internal/usecase/get_day_schedule"
	getWeekScheduleUC "github.com/courtclub/court-booking-service/internal/usecase/get_week_schedule"
	"github.com/courtclub/court-booking-service/pkg/dbmetrics"
	"github.com/courtclub/court-booking-service/pkg/logger"
	"github.com/courtclub/court-booking-service/pkg/metrics"
	"github.com/courtclub/court-booking-service/pkg/simpletxmanager"
	"github.com/courtclub/court-booking-service/pkg/txmanager"
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

	log.Info("Starting court-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
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

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	courtClient := courtServiceClient.NewClient(
		cfg.CourtService.URL,
		time.Duration(cfg.CourtService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds, CourtService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout, cfg.CourtService.URL, cfg.CourtService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var reservationRepository *reservationRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		userClient,
		cfg.Booking.CancellationDeadlineHours,
		log,
	)
	statsSvc := statsService.NewService(
		reservationRepository,
		courtClient,
		userClient,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		courtClient,
		userClient,
		txMgr,
		cfg.Booking.MaxFutureReservations,
		log,
	)

	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		reservationRepository,
		courtClient,
		log,
	)

	getWeekScheduleUseCase := getWeekScheduleUC.NewUseCase(
		getDayScheduleUseCase,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	adminCancelReservation := adminCancelReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getWeekSchedule := getWeekScheduleHandler.NewHandler(getWeekScheduleUseCase, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(statsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расписание корта на день
	api.HandleFunc("/courts/{courtId}/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// Расписание корта на неделю
	api.HandleFunc("/courts/{courtId}/week-schedule", getWeekSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/reservations/me", getUserReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования владельцем
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Администрирование ---
	// Список бронирований с фильтрами
	protected.HandleFunc("/admin/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Отмена бронирования администратором
	protected.HandleFunc("/admin/reservations/{reservationId}/cancel", adminCancelReservation.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования
	protected.HandleFunc("/admin/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// Статистика для панели администратора
	protected.HandleFunc("/admin/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)

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
