package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/cancel_booking"
	confirmcompletionhandler "github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/confirm_completion"
	createbookinghandler "github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/create_booking"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/delete_availability_day"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/get_admin_disputes"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/get_availability"
	getavailableslotshandler "github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/get_available_slots"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/get_booking"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/get_customer_bookings"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/get_invoice"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/get_provider_bookings"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/get_provider_disputes"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/get_provider_earnings"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/mark_awaiting_confirmation"
	opendisputehandler "github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/open_dispute"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/resolve_dispute"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/respond_booking"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/respond_dispute"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/update_availability"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/handlers/upsert_exception"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/api/middleware"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/config"
	availabilitystore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/availability"
	bookingstore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/booking"
	disputestore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/dispute"
	invoicestore "github.com/handyhub-ie/HandyHub-BookingService/internal/infra/storage/invoice"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/pushgateway"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
	availabilityservice "github.com/handyhub-ie/HandyHub-BookingService/internal/service/availability"
	bookingsservice "github.com/handyhub-ie/HandyHub-BookingService/internal/service/bookings"
	disputesservice "github.com/handyhub-ie/HandyHub-BookingService/internal/service/disputes"
	invoicesservice "github.com/handyhub-ie/HandyHub-BookingService/internal/service/invoices"
	confirmcompletion "github.com/handyhub-ie/HandyHub-BookingService/internal/usecase/confirm_completion"
	createbooking "github.com/handyhub-ie/HandyHub-BookingService/internal/usecase/create_booking"
	getavailableslots "github.com/handyhub-ie/HandyHub-BookingService/internal/usecase/get_available_slots"
	opendispute "github.com/handyhub-ie/HandyHub-BookingService/internal/usecase/open_dispute"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/worker/reminder"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/dbmetrics"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/logger"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/metrics"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/simpletxmanager"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/txmanager"
)

// TxManager объединяет методы обоих менеджеров транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("[Main] starting booking service")

	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("[Main] failed to open database: %v", err)
	}
	defer sqlDB.Close()

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := sqlDB.PingContext(pingCtx); err != nil {
		cancelPing()
		log.Fatal("[Main] failed to ping database: %v", err)
	}
	cancelPing()

	// При включенных метриках запросы к БД идут через обертку,
	// собирающую счетчики и статистику пула
	var (
		db     dbmetrics.DBExecutor
		txMgr  TxManager
		m      *metrics.Metrics
		stopCh chan struct{}
	)
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.ServiceName)
		stopCh = make(chan struct{})
		wrapped := dbmetrics.WrapWithDefault(sqlDB, m, cfg.Database.DBName, stopCh)
		db = wrapped
		txMgr = txmanager.NewTransactionManager(wrapped)
		defer close(stopCh)
	} else {
		db = sqlDB
		txMgr = simpletxmanager.NewTransactionManager(sqlDB)
	}

	userClient := userdirectory.NewClient(cfg.UserDirectory.URL, time.Duration(cfg.UserDirectory.Timeout)*time.Second, log)
	pushClient := pushgateway.NewClient(cfg.PushGateway.URL, time.Duration(cfg.PushGateway.Timeout)*time.Second, log)

	bookingRepo := bookingstore.NewRepository(db)
	availabilityRepo := availabilitystore.NewRepository(db)
	invoiceRepo := invoicestore.NewRepository(db)
	disputeRepo := disputestore.NewRepository(db)

	timeProvider := createbooking.RealTimeProvider{}

	bookingService := bookingsservice.New(bookingRepo, userClient, pushClient, log)
	availabilityService := availabilityservice.New(availabilityRepo, txMgr, availabilityservice.RealTimeProvider{}, log)
	disputeService := disputesservice.New(disputeRepo, userClient, pushClient, log)
	invoiceService := invoicesservice.New(invoiceRepo, log)

	getSlotsUC := getavailableslots.New(availabilityRepo, bookingRepo, userClient, getavailableslots.RealTimeProvider{}, log)
	createBookingUC := createbooking.New(bookingRepo, availabilityRepo, userClient, pushClient, txMgr, timeProvider, log)
	confirmCompletionUC := confirmcompletion.New(bookingRepo, invoiceRepo, userClient, txMgr, log)
	openDisputeUC := opendispute.New(bookingRepo, disputeRepo, opendispute.RealTimeProvider{}, log)

	router := mux.NewRouter()

	if cfg.Metrics.Enabled {
		router.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)
	if cfg.Metrics.Enabled {
		api.Use(middleware.Metrics(m))
	}

	// Слоты и расписание
	api.Handle("/providers/{providerID}/slots", getavailableslotshandler.New(getSlotsUC, log)).Methods(http.MethodGet)
	api.Handle("/providers/{providerID}/availability", get_availability.New(availabilityService, log)).Methods(http.MethodGet)
	api.Handle("/providers/me/availability", update_availability.New(availabilityService, log)).Methods(http.MethodPut)
	api.Handle("/providers/me/availability/exceptions", upsert_exception.New(availabilityService, log)).Methods(http.MethodPut)
	api.Handle("/providers/me/availability/{day}", delete_availability_day.New(availabilityService, log)).Methods(http.MethodDelete)

	// Жизненный цикл брони
	api.Handle("/bookings", createbookinghandler.New(createBookingUC, log)).Methods(http.MethodPost)
	api.Handle("/bookings/{bookingID}", get_booking.New(bookingService, log)).Methods(http.MethodGet)
	api.Handle("/bookings/{bookingID}/respond", respond_booking.New(bookingService, log)).Methods(http.MethodPost)
	api.Handle("/bookings/{bookingID}/complete", mark_awaiting_confirmation.New(bookingService, log)).Methods(http.MethodPost)
	api.Handle("/bookings/{bookingID}/confirm", confirmcompletionhandler.New(confirmCompletionUC, log)).Methods(http.MethodPost)
	api.Handle("/bookings/{bookingID}/cancel", cancel_booking.New(bookingService, log)).Methods(http.MethodPost)
	api.Handle("/bookings/{bookingID}/invoice", get_invoice.New(invoiceService, log)).Methods(http.MethodGet)
	api.Handle("/customers/me/bookings", get_customer_bookings.New(bookingService, log)).Methods(http.MethodGet)
	api.Handle("/providers/me/bookings", get_provider_bookings.New(bookingService, log)).Methods(http.MethodGet)
	api.Handle("/providers/me/earnings", get_provider_earnings.New(invoiceService, log)).Methods(http.MethodGet)

	// Споры
	api.Handle("/disputes", opendisputehandler.New(openDisputeUC, log)).Methods(http.MethodPost)
	api.Handle("/disputes/{disputeID}/respond", respond_dispute.New(disputeService, log)).Methods(http.MethodPost)
	api.Handle("/providers/me/disputes", get_provider_disputes.New(disputeService, log)).Methods(http.MethodGet)
	api.Handle("/admin/disputes", get_admin_disputes.New(disputeService, userClient, log)).Methods(http.MethodGet)
	api.Handle("/admin/disputes/{disputeID}/resolve", resolve_dispute.New(disputeService, userClient, log)).Methods(http.MethodPost)

	var reminderWorker *reminder.Worker
	if cfg.Reminder.Enabled {
		reminderWorker = reminder.New(bookingRepo, userClient, pushClient, reminder.RealTimeProvider{}, log, reminder.Config{
			Interval:     time.Duration(cfg.Reminder.IntervalMinutes) * time.Minute,
			Lookahead:    time.Duration(cfg.Reminder.LookaheadHours) * time.Hour,
			SweepTimeout: time.Duration(cfg.Reminder.SweepTimeout) * time.Second,
		})
		if err := reminderWorker.Start(); err != nil {
			log.Fatal("[Main] failed to start reminder worker: %v", err)
		}
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("[Main] http server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("[Main] http server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("[Main] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("[Main] http server shutdown failed: %v", err)
	}

	if reminderWorker != nil {
		reminderWorker.Stop()
	}

	log.Info("[Main] stopped")
}
