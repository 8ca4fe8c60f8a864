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

	createAppointmentHandler "github.com/glamdesk/salon-booking/internal/api/handlers/create_appointment"
	createSalonHandler "github.com/glamdesk/salon-booking/internal/api/handlers/create_salon"
	createServiceHandler "github.com/glamdesk/salon-booking/internal/api/handlers/create_service"
	federatedLoginHandler "github.com/glamdesk/salon-booking/internal/api/handlers/federated_login"
	getAppointmentHandler "github.com/glamdesk/salon-booking/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/glamdesk/salon-booking/internal/api/handlers/get_availability"
	getGuestAppointmentsHandler "github.com/glamdesk/salon-booking/internal/api/handlers/get_guest_appointments"
	getSalonHandler "github.com/glamdesk/salon-booking/internal/api/handlers/get_salon"
	getSalonAppointmentsHandler "github.com/glamdesk/salon-booking/internal/api/handlers/get_salon_appointments"
	loginUserHandler "github.com/glamdesk/salon-booking/internal/api/handlers/login_user"
	registerUserHandler "github.com/glamdesk/salon-booking/internal/api/handlers/register_user"
	updateStatusHandler "github.com/glamdesk/salon-booking/internal/api/handlers/update_appointment_status"
	updateSalonHandler "github.com/glamdesk/salon-booking/internal/api/handlers/update_salon"
	updateServiceHandler "github.com/glamdesk/salon-booking/internal/api/handlers/update_service"
	"github.com/glamdesk/salon-booking/internal/api/middleware"
	"github.com/glamdesk/salon-booking/internal/config"
	appointmentRepo "github.com/glamdesk/salon-booking/internal/infra/storage/appointment"
	salonRepo "github.com/glamdesk/salon-booking/internal/infra/storage/salon"
	serviceRepo "github.com/glamdesk/salon-booking/internal/infra/storage/service"
	tokenRepo "github.com/glamdesk/salon-booking/internal/infra/storage/token"
	userRepo "github.com/glamdesk/salon-booking/internal/infra/storage/user"
	identityClient "github.com/glamdesk/salon-booking/internal/integrations/identity"
	appointmentsService "github.com/glamdesk/salon-booking/internal/service/appointments"
	authService "github.com/glamdesk/salon-booking/internal/service/auth"
	catalogService "github.com/glamdesk/salon-booking/internal/service/catalog"
	createAppointmentUC "github.com/glamdesk/salon-booking/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/glamdesk/salon-booking/internal/usecase/get_availability"
	updateStatusUC "github.com/glamdesk/salon-booking/internal/usecase/update_status"
	"github.com/glamdesk/salon-booking/pkg/logger"
	"github.com/glamdesk/salon-booking/pkg/metrics"
	"github.com/glamdesk/salon-booking/pkg/txmanager"
)

const dbStatsInterval = 15 * time.Second

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

	log.Info("Starting salon-booking service...")
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

	if cfg.Metrics.Enabled {
		metricsCollector.CollectDBStats(db, dbStatsInterval, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Клиент внешнего identity-провайдера для федеративного входа
	identity := identityClient.NewClient(
		cfg.Identity.URL,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	log.Info("Identity client initialized (url=%s, timeout=%ds)", cfg.Identity.URL, cfg.Identity.Timeout)

	// Инициализируем репозитории
	userRepository := userRepo.NewRepository(db)
	tokenRepository := tokenRepo.NewRepository(db)
	salonRepository := salonRepo.NewRepository(db)
	serviceRepository := serviceRepo.NewRepository(db)
	appointmentRepository := appointmentRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	tokenManager := authService.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTokenTTLMinutes)*time.Minute,
	)
	authSvc := authService.NewService(
		userRepository,
		tokenRepository,
		identity,
		tokenManager,
		time.Duration(cfg.Auth.RefreshTokenTTLHours)*time.Hour,
		log,
	)
	catalogSvc := catalogService.NewService(
		salonRepository,
		serviceRepository,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		salonRepository,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		salonRepository,
		serviceRepository,
		appointmentRepository,
		&getAvailabilityUC.RealTimeProvider{},
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		salonRepository,
		serviceRepository,
		appointmentRepository,
		txMgr,
		log,
	)
	updateStatusUseCase := updateStatusUC.NewUseCase(
		appointmentRepository,
		salonRepository,
		log,
	)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(authSvc, log)
	loginUser := loginUserHandler.NewHandler(authSvc, log)
	federatedLogin := federatedLoginHandler.NewHandler(authSvc, log)
	createSalon := createSalonHandler.NewHandler(catalogSvc, log)
	getSalon := getSalonHandler.NewHandler(catalogSvc, log)
	updateSalon := updateSalonHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(updateStatusUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getGuestAppointments := getGuestAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getSalonAppointments := getSalonAppointmentsHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// --- Аутентификация ---
	api.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", loginUser.HandleRefresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/federated", federatedLogin.Handle).Methods(http.MethodPost)

	// --- Каталог (чтение доступно без токена) ---
	api.HandleFunc("/salons", getSalon.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}", getSalon.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/services", getSalon.HandleListServices).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/services/{serviceId}", getSalon.HandleGetService).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/salons/{salonId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	// --- Управление салонами (для владельцев) ---
	protected.HandleFunc("/salons", createSalon.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/salons/{salonId}", updateSalon.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/salons/{salonId}/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/salons/{salonId}/services/{serviceId}", updateService.Handle).Methods(http.MethodPatch)

	// --- Записи на услуги ---
	// Создание записи (бронирование слота)
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Смена статуса записи (подтверждение, отмена, завершение)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// История записей гостя
	protected.HandleFunc("/me/appointments", getGuestAppointments.Handle).Methods(http.MethodGet)

	// Журнал записей салона (для владельца)
	protected.HandleFunc("/salons/{salonId}/appointments", getSalonAppointments.Handle).Methods(http.MethodGet)

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
