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

	cancelAppointmentsHandler "github.com/charlitron/CitasService/internal/api/handlers/cancel_appointments"
	createAppointmentHandler "github.com/charlitron/CitasService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/charlitron/CitasService/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/charlitron/CitasService/internal/api/handlers/get_availability"
	getClientAppointmentsHandler "github.com/charlitron/CitasService/internal/api/handlers/get_client_appointments"
	"github.com/charlitron/CitasService/internal/api/middleware"
	"github.com/charlitron/CitasService/internal/config"
	"github.com/charlitron/CitasService/internal/domain"
	appointmentRepo "github.com/charlitron/CitasService/internal/infra/storage/appointment"
	"github.com/charlitron/CitasService/internal/integrations/googlecalendar"
	appointmentsService "github.com/charlitron/CitasService/internal/service/appointments"
	cancelAppointmentsUC "github.com/charlitron/CitasService/internal/usecase/cancel_appointments"
	createAppointmentUC "github.com/charlitron/CitasService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/charlitron/CitasService/internal/usecase/get_availability"
	"github.com/charlitron/CitasService/pkg/dbmetrics"
	"github.com/charlitron/CitasService/pkg/logger"
	"github.com/charlitron/CitasService/pkg/metrics"
	"github.com/charlitron/CitasService/pkg/txmanager"
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

	log.Info("Starting CitasService...")
	log.Info("Configuration loaded from config.toml")

	// Рабочее окно и сетка слотов
	policy, err := domain.NewOperatingPolicy(
		cfg.Schedule.Opening,
		cfg.Schedule.Closing,
		cfg.Schedule.StrideMinutes,
		cfg.Schedule.Timezone,
	)
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}
	log.Info("Operating window %s-%s, stride %dmin, timezone %s",
		cfg.Schedule.Opening, cfg.Schedule.Closing, cfg.Schedule.StrideMinutes, cfg.Schedule.Timezone)

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

	// Клиент Google Calendar.
	// Наблюдатель метрик передается только при включенных метриках,
	// чтобы в клиент не попал типизированный nil под интерфейсом.
	var gatewayObserver googlecalendar.MetricsObserver
	if cfg.Metrics.Enabled {
		gatewayObserver = metricsCollector
	}
	calendarClient := googlecalendar.NewClient(
		cfg.GoogleCalendar.ClientID,
		cfg.GoogleCalendar.ClientSecret,
		cfg.GoogleCalendar.RefreshToken,
		cfg.GoogleCalendar.CalendarID,
		time.Duration(cfg.GoogleCalendar.Timeout)*time.Second,
		gatewayObserver,
		log,
	)
	log.Info("Google Calendar client initialized (calendar=%s, timeout=%ds)",
		cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		repository *appointmentRepo.Repository
		txMgr      *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		repository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = appointmentRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(txmanager.SQLDBAdapter{DB: db})
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(repository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		calendarClient,
		policy,
		cfg.Schedule.AllowDegraded,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		repository,
		calendarClient,
		getAvailabilityUseCase,
		txMgr,
		policy,
		log,
	)

	cancelAppointmentsUseCase := cancelAppointmentsUC.NewUseCase(
		repository,
		calendarClient,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	cancelAppointments := cancelAppointmentsHandler.NewHandler(cancelAppointmentsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Свободные и занятые слоты на день
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание записи на прием
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Отмена всех активных записей клиента по email
	api.HandleFunc("/appointments/cancel", cancelAppointments.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// История записей клиента
	api.HandleFunc("/clients/{email}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

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
