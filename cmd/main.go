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

	cancelBookingHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_booking"
	getEmployeeBookingsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_employee_bookings"
	getRoomHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_room"
	getRoomBookingsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_room_bookings"
	getRoomScheduleHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_room_schedule"
	listRoomsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/list_rooms"
	proposeSlotHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/propose_slot"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/config"
	bookingRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	employeeServiceClient "github.com/m04kA/SMC-MeetingRoomService/internal/integrations/employeeservice"
	"github.com/m04kA/SMC-MeetingRoomService/internal/schedule"
	bookingsService "github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings"
	roomsService "github.com/m04kA/SMC-MeetingRoomService/internal/service/rooms"
	createBookingUC "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/create_booking"
	getRoomScheduleUC "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_room_schedule"
	proposeSlotUC "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/propose_slot"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/logger"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/metrics"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/txmanager"
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

	log.Info("Starting SMC-MeetingRoomService...")
	log.Info("Configuration loaded from config.toml")

	// Строим каноническую сетку дня из конфигурации
	dayStart, dayEnd, err := cfg.Schedule.Window()
	if err != nil {
		log.Fatal("Failed to parse schedule window: %v", err)
	}
	grid := schedule.Grid{
		DayStartMinutes:    dayStart,
		DayEndMinutes:      dayEnd,
		GranularityMinutes: cfg.Schedule.GranularityMinutes,
	}
	if err := grid.Validate(); err != nil {
		log.Fatal("Invalid schedule grid configuration: %v", err)
	}
	log.Info("Schedule grid configured: window=[%s, %s), granularity=%d min",
		cfg.Schedule.DayStart, cfg.Schedule.DayEnd, cfg.Schedule.GranularityMinutes)

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

	// Инициализируем интеграционного клиента
	employeeClient := employeeServiceClient.NewClient(
		cfg.EmployeeService.URL,
		time.Duration(cfg.EmployeeService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (EmployeeService=%s timeout=%ds)",
		cfg.EmployeeService.URL, cfg.EmployeeService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		roomRepository    *roomRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		roomRepository,
		employeeClient,
		log,
	)
	roomSvc := roomsService.NewService(roomRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		employeeClient,
		txMgr,
		grid,
		log,
	)
	getRoomScheduleUseCase := getRoomScheduleUC.NewUseCase(
		bookingRepository,
		roomRepository,
		employeeClient,
		grid,
		log,
	)
	proposeSlotUseCase := proposeSlotUC.NewUseCase(
		bookingRepository,
		roomRepository,
		grid,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getEmployeeBookings := getEmployeeBookingsHandler.NewHandler(bookingSvc, log)
	getRoomBookings := getRoomBookingsHandler.NewHandler(bookingSvc, log)
	getRoomSchedule := getRoomScheduleHandler.NewHandler(getRoomScheduleUseCase, log)
	proposeSlot := proposeSlotHandler.NewHandler(proposeSlotUseCase, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждому запросу - идентификатор для сквозной трассировки
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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
	// PUBLIC ROUTES (зритель опционален, X-Employee-ID не обязателен)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.Identify)

	// Справочник переговорных
	public.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	public.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	// Расписание переговорной на день
	public.HandleFunc("/rooms/{roomId}/schedule", getRoomSchedule.Handle).Methods(http.MethodGet)

	// Подсветка и предложение интервала по клику на слот
	public.HandleFunc("/rooms/{roomId}/schedule/proposals", proposeSlot.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Employee-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований сотрудника
	protected.HandleFunc("/employees/{employeeId}/bookings", getEmployeeBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	// Список бронирований переговорной (для администраторов)
	protected.HandleFunc("/rooms/{roomId}/bookings", getRoomBookings.Handle).Methods(http.MethodGet)

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
