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
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers/get_appointment"
	getPlanningHandler "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers/get_planning"
	getRevenueStatsHandler "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers/get_revenue_stats"
	getSalonAppointmentsHandler "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers/get_salon_appointments"
	getStaffHandler "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers/get_staff"
	updateAppointmentStatusHandler "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers/update_appointment_status"
	updateStaffHoursHandler "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/handlers/update_staff_hours"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/api/middleware"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/config"
	planningCache "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/infra/cache/planning"
	appointmentRepo "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/infra/storage/appointment"
	staffRepo "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/infra/storage/staff"
	salonServiceClient "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/integrations/salonservice"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/planning"
	appointmentsService "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/service/appointments"
	staffService "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/service/staff"
	createAppointmentUC "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/usecase/create_appointment"
	getPlanningUC "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/usecase/get_planning"
	getRevenueStatsUC "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/usecase/get_revenue_stats"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/dbmetrics"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/logger"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/metrics"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/simpletxmanager"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/txmanager"
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

	log.Info("Starting salon planning service...")
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

	// Инициализируем клиента SalonService
	salonClient := salonServiceClient.NewClient(
		cfg.SalonService.URL,
		time.Duration(cfg.SalonService.Timeout)*time.Second,
		log,
	)
	log.Info("SalonService client initialized (url=%s, timeout=%ds)",
		cfg.SalonService.URL, cfg.SalonService.Timeout)

	// Инициализируем кеш планинга (если включен Redis).
	// Отдельная переменная на каждый интерфейс потребителя, чтобы выключенный
	// кеш оставался честным nil, а не typed-nil внутри интерфейса.
	var (
		serviceCache appointmentsService.PlanningCache
		staffCache   staffService.PlanningCache
		createCache  createAppointmentUC.PlanningCache
		viewCache    getPlanningUC.PlanningCache
	)

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer rdb.Close()

		cache := planningCache.New(rdb, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		serviceCache = cache
		staffCache = cache
		createCache = cache
		viewCache = cache
		log.Info("Planning view cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		staffRepository       *staffRepo.Repository
		txMgr                 createAppointmentUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Параметры сетки планинга и агрегации выручки
	weekStart := time.Monday
	if cfg.Planning.WeekStart == "sunday" {
		weekStart = time.Sunday
	}
	revenuePolicy, err := planning.ParseRevenuePolicy(cfg.Planning.RevenuePolicy)
	if err != nil {
		log.Fatal("Invalid revenue policy: %v", err)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		salonClient,
		serviceCache,
		log,
	)
	staffSvc := staffService.NewService(
		staffRepository,
		salonClient,
		staffCache,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		salonClient,
		createCache,
		txMgr,
		log,
	)

	getPlanningUseCase := getPlanningUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		salonClient,
		viewCache,
		getPlanningUC.Settings{
			OpenHour:        cfg.Planning.OpenHour,
			CloseHour:       cfg.Planning.CloseHour,
			SlotStepMinutes: cfg.Planning.SlotStepMinutes,
			WeekStart:       weekStart,
		},
		log,
	)

	getRevenueStatsUseCase := getRevenueStatsUC.NewUseCase(
		appointmentRepository,
		salonClient,
		getRevenueStatsUC.Settings{
			WeekStart: weekStart,
			Policy:    revenuePolicy,
		},
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getSalonAppointments := getSalonAppointmentsHandler.NewHandler(appointmentSvc, log)
	getPlanning := getPlanningHandler.NewHandler(getPlanningUseCase, log)
	getRevenueStats := getRevenueStatsHandler.NewHandler(getRevenueStatsUseCase, log)
	getStaff := getStaffHandler.NewHandler(staffSvc, log)
	updateStaffHours := updateStaffHoursHandler.NewHandler(staffSvc, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Планинг салона (день/неделя/месяц)
	api.HandleFunc("/salons/{salonId}/planning", getPlanning.Handle).Methods(http.MethodGet)

	// Список мастеров салона
	api.HandleFunc("/salons/{salonId}/staff", getStaff.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи клиентов ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса записи (для менеджеров)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Управление салоном (для менеджеров) ---
	// Список записей салона
	protected.HandleFunc("/salons/{salonId}/appointments", getSalonAppointments.Handle).Methods(http.MethodGet)

	// Статистика выручки
	protected.HandleFunc("/salons/{salonId}/stats/revenue", getRevenueStats.Handle).Methods(http.MethodGet)

	// Обновление рабочего окна мастера
	protected.HandleFunc("/salons/{salonId}/staff/{staffId}/hours", updateStaffHours.Handle).Methods(http.MethodPut)

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
