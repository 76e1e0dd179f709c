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

	cancelAppointmentHandler "github.com/bookyhq/Booky-SchedulingService/internal/api/handlers/cancel_appointment"
	cancelTimeRangeHandler "github.com/bookyhq/Booky-SchedulingService/internal/api/handlers/cancel_time_range"
	createAppointmentHandler "github.com/bookyhq/Booky-SchedulingService/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/bookyhq/Booky-SchedulingService/internal/api/handlers/get_available_slots"
	getCellAvailabilityHandler "github.com/bookyhq/Booky-SchedulingService/internal/api/handlers/get_cell_availability"
	getPollHandler "github.com/bookyhq/Booky-SchedulingService/internal/api/handlers/get_poll"
	getSelectableDatesHandler "github.com/bookyhq/Booky-SchedulingService/internal/api/handlers/get_selectable_dates"
	getTeamHandler "github.com/bookyhq/Booky-SchedulingService/internal/api/handlers/get_team"
	updatePollAvailabilityHandler "github.com/bookyhq/Booky-SchedulingService/internal/api/handlers/update_poll_availability"
	updateScheduleHandler "github.com/bookyhq/Booky-SchedulingService/internal/api/handlers/update_schedule"
	"github.com/bookyhq/Booky-SchedulingService/internal/api/middleware"
	"github.com/bookyhq/Booky-SchedulingService/internal/config"
	appointmentRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/appointment"
	cancelledRangeRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/cancelledrange"
	pollRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/poll"
	teamRepo "github.com/bookyhq/Booky-SchedulingService/internal/infra/storage/team"
	appointmentsService "github.com/bookyhq/Booky-SchedulingService/internal/service/appointments"
	pollsService "github.com/bookyhq/Booky-SchedulingService/internal/service/polls"
	retentionService "github.com/bookyhq/Booky-SchedulingService/internal/service/retention"
	scheduleService "github.com/bookyhq/Booky-SchedulingService/internal/service/schedule"
	createAppointmentUC "github.com/bookyhq/Booky-SchedulingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/bookyhq/Booky-SchedulingService/internal/usecase/get_available_slots"
	getSelectableDatesUC "github.com/bookyhq/Booky-SchedulingService/internal/usecase/get_selectable_dates"
	pollAvailabilityUC "github.com/bookyhq/Booky-SchedulingService/internal/usecase/poll_availability"
	"github.com/bookyhq/Booky-SchedulingService/pkg/dbmetrics"
	"github.com/bookyhq/Booky-SchedulingService/pkg/logger"
	"github.com/bookyhq/Booky-SchedulingService/pkg/metrics"
	"github.com/bookyhq/Booky-SchedulingService/pkg/simpletxmanager"
	"github.com/bookyhq/Booky-SchedulingService/pkg/txmanager"
)

// TxManager общий интерфейс обоих менеджеров транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting Booky-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории (с метриками или без)
	var (
		teamRepository  *teamRepo.Repository
		bookingRepo     *appointmentRepo.Repository
		rangeRepository *cancelledRangeRepo.Repository
		pollRepository  *pollRepo.Repository
		txMgr           TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		teamRepository = teamRepo.NewRepository(wrappedDB)
		bookingRepo = appointmentRepo.NewRepository(wrappedDB)
		rangeRepository = cancelledRangeRepo.NewRepository(wrappedDB)
		pollRepository = pollRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		teamRepository = teamRepo.NewRepository(db)
		bookingRepo = appointmentRepo.NewRepository(db)
		rangeRepository = cancelledRangeRepo.NewRepository(db)
		pollRepository = pollRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(teamRepository, bookingRepo, rangeRepository, txMgr, log)
	appointmentsSvc := appointmentsService.NewService(bookingRepo, log)
	pollsSvc := pollsService.NewService(pollRepository, log)
	retentionSvc := retentionService.NewService(rangeRepository, log, cfg.Retention.Days, cfg.Retention.Schedule)

	// Запускаем фоновую очистку отмененных диапазонов
	if err := retentionSvc.Start(); err != nil {
		log.Fatal("Failed to start retention sweep: %v", err)
	}

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		teamRepository,
		bookingRepo,
		rangeRepository,
		txMgr,
		time.Duration(cfg.Booking.TokenTTLHours)*time.Hour,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(teamRepository, bookingRepo, rangeRepository, log)
	getSelectableDatesUseCase := getSelectableDatesUC.NewUseCase(teamRepository, log)
	pollAvailabilityUseCase := pollAvailabilityUC.NewUseCase(pollRepository, log)

	// Инициализируем handlers
	getTeam := getTeamHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSelectableDates := getSelectableDatesHandler.NewHandler(getSelectableDatesUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelTimeRange := cancelTimeRangeHandler.NewHandler(scheduleSvc, log)
	getPoll := getPollHandler.NewHandler(pollsSvc, log)
	updatePollAvailability := updatePollAvailabilityHandler.NewHandler(pollsSvc, log)
	getCellAvailability := getCellAvailabilityHandler.NewHandler(pollAvailabilityUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Команда целиком: расписание, занятые слоты, отмененные диапазоны
	api.HandleFunc("/teams/{urlPath}", getTeam.Handle).Methods(http.MethodGet)

	// Свободные слоты команды на дату
	api.HandleFunc("/teams/{urlPath}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Даты внутри горизонта бронирования
	api.HandleFunc("/teams/{urlPath}/selectable-dates", getSelectableDates.Handle).Methods(http.MethodGet)

	// Создание записи на слот
	api.HandleFunc("/teams/{urlPath}/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Отмена записи по токену (токен и есть право на отмену)
	api.HandleFunc("/appointments/{token}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// Опрос доступности целиком
	api.HandleFunc("/polls/{urlPath}", getPoll.Handle).Methods(http.MethodGet)

	// Сводка групповой доступности по ячейке сетки
	api.HandleFunc("/polls/{urlPath}/availability/summary", getCellAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Email header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Замена недельного расписания команды (только владелец)
	protected.HandleFunc("/teams/{urlPath}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// Отмена диапазона на конкретную дату (только владелец)
	protected.HandleFunc("/teams/{urlPath}/cancelled-ranges", cancelTimeRange.Handle).Methods(http.MethodPost)

	// Синхронизация выборки участника опроса
	protected.HandleFunc("/polls/{urlPath}/availability", updatePollAvailability.Handle).Methods(http.MethodPatch)

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

	// Останавливаем фоновую очистку
	retentionSvc.Stop()

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
