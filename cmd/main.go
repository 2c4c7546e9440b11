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

	addCartItemHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/add_cart_item"
	cancelBookingHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/cancel_booking"
	checkoutHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/checkout"
	clearCartHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/clear_cart"
	getBookingHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/get_booking"
	getCartHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/get_cart"
	getClassHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/get_class"
	getCourseHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/get_course"
	getInstructorHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/get_instructor"
	getUserBookingsHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/get_user_bookings"
	listClassesHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/list_classes"
	listCoursesHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/list_courses"
	listInstructorsHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/list_instructors"
	removeCartItemHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/remove_cart_item"
	searchClassesHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/search_classes"
	updateBookingStatusHandler "github.com/m04kA/SMC-YogaStore/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-YogaStore/internal/api/middleware"
	"github.com/m04kA/SMC-YogaStore/internal/config"
	"github.com/m04kA/SMC-YogaStore/internal/infra/migrations"
	bookingRepo "github.com/m04kA/SMC-YogaStore/internal/infra/storage/booking"
	cartRepo "github.com/m04kA/SMC-YogaStore/internal/infra/storage/cart"
	catalogRepo "github.com/m04kA/SMC-YogaStore/internal/infra/storage/catalog"
	userRepo "github.com/m04kA/SMC-YogaStore/internal/infra/storage/user"
	"github.com/m04kA/SMC-YogaStore/internal/integrations/events"
	bookingsService "github.com/m04kA/SMC-YogaStore/internal/service/bookings"
	cartService "github.com/m04kA/SMC-YogaStore/internal/service/cart"
	catalogService "github.com/m04kA/SMC-YogaStore/internal/service/catalog"
	checkoutUC "github.com/m04kA/SMC-YogaStore/internal/usecase/checkout"
	"github.com/m04kA/SMC-YogaStore/pkg/dbmetrics"
	"github.com/m04kA/SMC-YogaStore/pkg/logger"
	"github.com/m04kA/SMC-YogaStore/pkg/metrics"
	"github.com/m04kA/SMC-YogaStore/pkg/txmanager"
)

// eventPublisher общий интерфейс NATS издателя и заглушки
type eventPublisher interface {
	PublishBookingCreated(ctx context.Context, event events.BookingCreatedEvent) error
	PublishBookingCancelled(ctx context.Context, event events.BookingCancelledEvent) error
	Close() error
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("YOGA_CONFIG"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-YogaStore...")
	log.Info("Configuration loaded from %s", configPath)

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

	// Применяем миграции
	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(context.Background(), db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Без метрик обёртка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Публикация событий (если включена)
	var publisher eventPublisher = events.NopPublisher{}
	if cfg.Events.Enabled {
		natsPublisher, err := events.Connect(
			cfg.Events.URL,
			cfg.Events.ClientName,
			cfg.Events.SubjectPrefix,
			cfg.Events.ConnectTimeout(),
			log,
		)
		if err != nil {
			log.Fatal("Failed to connect to NATS: %v", err)
		}
		publisher = natsPublisher
	} else {
		log.Info("Event publishing disabled")
	}
	defer publisher.Close()

	// Инициализируем репозитории
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	cartRepository := cartRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogRepository, log)
	cartSvc := cartService.NewService(cartRepository, catalogRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, publisher, log)

	// Инициализируем use cases
	checkoutUseCase := checkoutUC.NewUseCase(
		bookingRepository,
		cartRepository,
		userRepository,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	listClasses := listClassesHandler.NewHandler(catalogSvc, log)
	searchClasses := searchClassesHandler.NewHandler(catalogSvc, log)
	getClass := getClassHandler.NewHandler(catalogSvc, log)
	listCourses := listCoursesHandler.NewHandler(catalogSvc, log)
	getCourse := getCourseHandler.NewHandler(catalogSvc, log)
	listInstructors := listInstructorsHandler.NewHandler(catalogSvc, log)
	getInstructor := getInstructorHandler.NewHandler(catalogSvc, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	addCartItem := addCartItemHandler.NewHandler(cartSvc, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	clearCart := clearCartHandler.NewHandler(cartSvc, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Timeout(cfg.Checkout.Timeout()))

	// ============================================================
	// КАТАЛОГ (без сессии)
	// ============================================================

	// search регистрируется раньше {classId}, иначе mux сочтёт "search" идентификатором
	api.HandleFunc("/classes/search", searchClasses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/classes", listClasses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/classes/{classId}", getClass.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courses", listCourses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courses/{courseId}", getCourse.Handle).Methods(http.MethodGet)
	api.HandleFunc("/instructors", listInstructors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/instructors/{instructorId}", getInstructor.Handle).Methods(http.MethodGet)

	// ============================================================
	// БРОНИРОВАНИЯ
	// ============================================================

	api.HandleFunc("/users/{email}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// ============================================================
	// КОРЗИНА И ОФОРМЛЕНИЕ (требуют X-Session-ID header)
	// ============================================================

	session := api.PathPrefix("").Subrouter()
	session.Use(middleware.Session)

	session.HandleFunc("/cart", getCart.Handle).Methods(http.MethodGet)
	session.HandleFunc("/cart", clearCart.Handle).Methods(http.MethodDelete)
	session.HandleFunc("/cart/items", addCartItem.Handle).Methods(http.MethodPost)
	session.HandleFunc("/cart/items/{itemId}", removeCartItem.Handle).Methods(http.MethodDelete)
	session.HandleFunc("/checkout", checkout.Handle).Methods(http.MethodPost)

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
