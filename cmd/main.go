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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	addCartItemHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/add_cart_item"
	checkConflictsHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/check_conflicts"
	clearCartHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/clear_cart"
	confirmPaymentHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/confirm_payment"
	createCheckoutSessionHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/create_checkout_session"
	filterPackagesHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/filter_packages"
	getBookingsHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/get_bookings"
	getCartHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/get_cart"
	listCoursesHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/list_courses"
	paymentWebhookHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/payment_webhook"
	removeCartItemHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/remove_cart_item"
	searchTeeTimesHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/search_tee_times"
	updateCartItemHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/update_cart_item"
	"github.com/m04kA/SMC-TeeTimeService/internal/api/middleware"
	"github.com/m04kA/SMC-TeeTimeService/internal/config"
	bookingRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/booking"
	cartStorage "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/cart"
	courseRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/course"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/payments"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes/golfmanager"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes/teeone"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/teetimes/zest"
	bookingsService "github.com/m04kA/SMC-TeeTimeService/internal/service/bookings"
	cartService "github.com/m04kA/SMC-TeeTimeService/internal/service/cart"
	coursesService "github.com/m04kA/SMC-TeeTimeService/internal/service/courses"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/eligibility"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/offers"
	addCartItemUC "github.com/m04kA/SMC-TeeTimeService/internal/usecase/add_cart_item"
	confirmPaymentUC "github.com/m04kA/SMC-TeeTimeService/internal/usecase/confirm_payment"
	createCheckoutSessionUC "github.com/m04kA/SMC-TeeTimeService/internal/usecase/create_checkout_session"
	paymentWebhookUC "github.com/m04kA/SMC-TeeTimeService/internal/usecase/payment_webhook"
	searchTeeTimesUC "github.com/m04kA/SMC-TeeTimeService/internal/usecase/search_tee_times"
	updateCartItemUC "github.com/m04kA/SMC-TeeTimeService/internal/usecase/update_cart_item"
	"github.com/m04kA/SMC-TeeTimeService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TeeTimeService/pkg/logger"
	"github.com/m04kA/SMC-TeeTimeService/pkg/metrics"
	"github.com/m04kA/SMC-TeeTimeService/pkg/txmanager"
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

	log.Info("Starting SMC-TeeTimeService...")

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: наблюдатели ничего не делают
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Хранилище корзин: Redis или память процесса
	var carts cartService.Storage
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal("Invalid redis url: %v", err)
		}
		redisClient := redis.NewClient(opts)
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis ping failed, carts may be unavailable until it recovers: %v", err)
		}
		cancelPing()

		carts = cartStorage.NewRedisStorage(redisClient, cfg.Cart.TTL())
		log.Info("Cart storage: redis (ttl=%s)", cfg.Cart.TTL())
	} else {
		carts = cartStorage.NewMemoryStorage()
		log.Warn("Cart storage: in-memory, carts are lost on restart")
	}

	// Клиенты провайдеров тии-таймов
	// Один и тот же клиент обслуживает и поиск, и проверку цены при добавлении в корзину
	providers := make([]searchTeeTimesUC.Provider, 0, 3)
	rateSources := make([]offers.Provider, 0, 3)
	if p := cfg.Providers.Zest; p.Enabled {
		client := zest.NewClient(providerConfig(p), metricsCollector, log)
		providers = append(providers, client)
		rateSources = append(rateSources, client)
	}
	if p := cfg.Providers.Golfmanager; p.Enabled {
		client := golfmanager.NewClient(providerConfig(p), metricsCollector, log)
		providers = append(providers, client)
		rateSources = append(rateSources, client)
	}
	if p := cfg.Providers.TeeOne; p.Enabled {
		client := teeone.NewClient(providerConfig(p), metricsCollector, log)
		providers = append(providers, client)
		rateSources = append(rateSources, client)
	}
	log.Info("Tee-time providers enabled: %d", len(providers))

	paymentsClient := payments.NewClient(
		cfg.Payments.URL,
		cfg.Payments.SecretKey,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)

	// Репозитории и сервисы
	courseRepository := courseRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)

	courseSvc := coursesService.NewService(courseRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	cartSvc := cartService.NewService(carts, log)
	packageFilter := eligibility.NewFilter(eligibility.Rules{
		EarlyBirdCutoffHour: cfg.Packages.EarlyBirdCutoffHour,
		TwilightStartHour:   cfg.Packages.TwilightStartHour,
		EarlyBirdKeywords:   cfg.Packages.EarlyBirdKeywords,
		TwilightKeywords:    cfg.Packages.TwilightKeywords,
	}, log)
	offerSvc := offers.NewService(rateSources, packageFilter, log)

	courseLocation, err := cfg.Search.Location()
	if err != nil {
		log.Fatal("Invalid search timezone: %v", err)
	}

	// Use cases
	searchTeeTimesUseCase := searchTeeTimesUC.NewUseCase(courseSvc, providers, packageFilter, courseLocation, log)
	addCartItemUseCase := addCartItemUC.NewUseCase(cartSvc, courseSvc, offerSvc, metricsCollector, log)
	updateCartItemUseCase := updateCartItemUC.NewUseCase(cartSvc, courseSvc, offerSvc, log)
	createCheckoutSessionUseCase := createCheckoutSessionUC.NewUseCase(
		cartSvc,
		paymentsClient,
		bookingSvc,
		createCheckoutSessionUC.Settings{
			Currency:   cfg.Payments.Currency,
			SuccessURL: cfg.Payments.SuccessURL,
			CancelURL:  cfg.Payments.CancelURL,
		},
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		bookingSvc,
		paymentsClient,
		cartSvc,
		confirmPaymentUC.RetryPolicy{
			MaxAttempts: cfg.Confirmation.MaxAttempts,
			Delay:       time.Duration(cfg.Confirmation.DelayMs) * time.Millisecond,
		},
		log,
	)
	paymentWebhookUseCase := paymentWebhookUC.NewUseCase(bookingSvc, cartSvc, cfg.Payments.WebhookSecret, log)
	if cfg.Payments.WebhookSecret == "" {
		log.Warn("Payments webhook secret is empty, webhook events will be rejected")
	}

	// Handlers
	listCourses := listCoursesHandler.NewHandler(courseSvc, log)
	searchTeeTimes := searchTeeTimesHandler.NewHandler(searchTeeTimesUseCase, log)
	filterPackages := filterPackagesHandler.NewHandler(packageFilter, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	clearCart := clearCartHandler.NewHandler(cartSvc, log)
	addCartItem := addCartItemHandler.NewHandler(addCartItemUseCase, log)
	updateCartItem := updateCartItemHandler.NewHandler(updateCartItemUseCase, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	checkConflicts := checkConflictsHandler.NewHandler(cartSvc, log)
	createCheckoutSession := createCheckoutSessionHandler.NewHandler(createCheckoutSessionUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(paymentWebhookUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	api.HandleFunc("/courses", listCourses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/search", searchTeeTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/packages/eligible", filterPackages.Handle).Methods(http.MethodPost)

	// --- Корзина ---
	api.HandleFunc("/carts/{sessionId}", getCart.Handle).Methods(http.MethodGet)
	api.HandleFunc("/carts/{sessionId}", clearCart.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/carts/{sessionId}/items", addCartItem.Handle).Methods(http.MethodPost)
	api.HandleFunc("/carts/{sessionId}/items/{itemId}", updateCartItem.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/carts/{sessionId}/items/{itemId}", removeCartItem.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/carts/{sessionId}/conflicts", checkConflicts.Handle).Methods(http.MethodGet)

	// --- Оплата ---
	api.HandleFunc("/checkout/create-session", createCheckoutSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/checkout/sessions/{sessionId}/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/confirm-payment", confirmPayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/webhooks/payments", paymentWebhook.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

func providerConfig(p config.ProviderConfig) teetimes.Config {
	return teetimes.Config{
		BaseURL:        p.URL,
		APIKey:         p.APIKey,
		Timeout:        time.Duration(p.Timeout) * time.Second,
		RateLimit:      p.RateLimit,
		RateBurst:      p.RateBurst,
		BreakerTimeout: time.Duration(p.BreakerTimeout) * time.Second,
	}
}
