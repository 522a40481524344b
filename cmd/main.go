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

	cancelAppointmentHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/complete_appointment"
	completeYesterdayHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/complete_yesterday"
	createAppointmentHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/get_appointment"
	getAvailableTimesHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/get_available_times"
	listAppointmentsHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/list_appointments"
	listCanceledHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/list_canceled_appointments"
	listClientAppointmentsHandler "github.com/m04kA/SLN-BookingService/internal/api/handlers/list_client_appointments"
	"github.com/m04kA/SLN-BookingService/internal/api/middleware"
	"github.com/m04kA/SLN-BookingService/internal/config"
	appointmentRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/appointment"
	canceledRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/canceled"
	scheduleRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/schedule"
	couponServiceClient "github.com/m04kA/SLN-BookingService/internal/integrations/couponservice"
	appointmentsService "github.com/m04kA/SLN-BookingService/internal/service/appointments"
	createAppointmentUC "github.com/m04kA/SLN-BookingService/internal/usecase/create_appointment"
	getAvailableTimesUC "github.com/m04kA/SLN-BookingService/internal/usecase/get_available_times"
	"github.com/m04kA/SLN-BookingService/internal/worker/dailysweep"
	"github.com/m04kA/SLN-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SLN-BookingService/pkg/logger"
	"github.com/m04kA/SLN-BookingService/pkg/metrics"
	"github.com/m04kA/SLN-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/SLN-BookingService/pkg/txmanager"
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

	log.Info("Starting SLN-BookingService...")
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

	// Инициализируем клиент сервиса купонов
	couponClient := couponServiceClient.NewClient(
		cfg.CouponService.URL,
		time.Duration(cfg.CouponService.Timeout)*time.Second,
		log,
	)
	log.Info("Coupon service client initialized (url=%s timeout=%ds)",
		cfg.CouponService.URL, cfg.CouponService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		canceledRepository    *canceledRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecase и сервисе)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		canceledRepository = canceledRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		canceledRepository = canceledRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис жизненного цикла записей
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		canceledRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		couponClient,
		txMgr,
		log,
	)

	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		scheduleRepository,
		appointmentRepository,
		cfg.Slots.StepMinutes,
		log,
	)

	// Инициализируем воркер автозавершения
	sweepWorker, err := dailysweep.NewWorker(appointmentRepository, metricsCollector, log, cfg.Sweeper.RunAt)
	if err != nil {
		log.Fatal("Failed to initialize daily sweep worker: %v", err)
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if cfg.Sweeper.Enabled {
		go sweepWorker.Run(workerCtx)
		log.Info("Daily sweep worker scheduled at %s", cfg.Sweeper.RunAt)
	}

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	listCanceled := listCanceledHandler.NewHandler(appointmentSvc, log)
	listClientAppointments := listClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	completeYesterday := completeYesterdayHandler.NewHandler(sweepWorker, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентский виджет записи)
	// ============================================================

	// Свободные окна мастера на дату
	api.HandleFunc("/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Записи клиента по email (личный кабинет)
	api.HandleFunc("/appointments", listClientAppointments.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (админка салона)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()

	// Список живых записей с фильтрами
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Архив отменённых записей
	admin.HandleFunc("/canceled_appointments", listCanceled.Handle).Methods(http.MethodGet)

	// Ручной запуск автозавершения прошедших записей.
	// Регистрируем до маршрута с {appointmentId}, чтобы "complete-yesterday"
	// не матчился как ID.
	admin.HandleFunc("/appointments/complete-yesterday", completeYesterday.Handle).Methods(http.MethodPut)

	// Запись по ID
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Завершение записи
	admin.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPut)

	// Отмена записи (с переносом в архив)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPut)

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

	// Останавливаем воркер автозавершения
	stopWorker()

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
