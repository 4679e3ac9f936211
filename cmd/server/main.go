package main // Entry point package

import (
    "context"
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/sepehrad/venue-reservation/internal/config"
    "github.com/sepehrad/venue-reservation/internal/database"
    "github.com/sepehrad/venue-reservation/internal/handler"
    custommw "github.com/sepehrad/venue-reservation/internal/middleware"
    "github.com/sepehrad/venue-reservation/internal/queue"
    "github.com/sepehrad/venue-reservation/internal/repository"
    "github.com/sepehrad/venue-reservation/internal/reservation"
    "github.com/sepehrad/venue-reservation/internal/router"
    queuepublisher "github.com/sepehrad/venue-reservation/internal/service"
)

func main() {
    // .env is optional; real deployments set the environment directly.
    _ = godotenv.Load()

    cfg := config.Load()
    resCfg := config.LoadReservationConfig()
    rlCfg := config.LoadRateLimitConfig()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable, rate limiting disabled")
    }

    // Repositories
    users := repository.NewUserRepo(db)
    venues := repository.NewVenueRepo(db)
    tables := repository.NewTableRepo(db)
    reservations := repository.NewReservationRepo(db)
    assignments := repository.NewAssignmentRepo(db)
    fees := repository.NewFeeRepo(db)
    reminders := repository.NewReminderRepo(db)
    pricing := repository.NewPricingRepo(db)
    strikes := repository.NewStrikeRepo(db)
    notifications := repository.NewNotificationRepo(db)

    // Services
    publisher := queuepublisher.Publisher{}
    booking := reservation.NewBookingService(db, resCfg,
        venues, tables, reservations, assignments, fees, reminders,
        pricing, strikes, notifications, publisher)
    dispatcher := reservation.NewReminderDispatcher(resCfg, reminders, notifications, publisher)

    // Handlers
    authH := handler.NewAuthHandler(cfg, users)
    venueH := handler.NewVenueHandler(venues, tables)
    customerH := handler.NewCustomerHandler(booking, reservations)
    vendorH := handler.NewVendorHandler(booking, reservations)
    adminH := handler.NewAdminHandler(users, venues, reservations)
    notifH := handler.NewNotificationHandler(notifications)

    e := echo.New()
    limiter := custommw.NewRateLimiter(rlCfg, rdb)
    router.RegisterRoutes(e)
    router.RegisterAuth(e, authH, cfg.JWTSecret)
    router.RegisterPublic(e, venueH)
    router.RegisterCustomer(e, customerH, notifH, cfg.JWTSecret, limiter)
    router.RegisterVendor(e, venueH, vendorH, cfg.JWTSecret)
    router.RegisterAdmin(e, adminH, cfg.JWTSecret)

    // Background workers
    go func() {
        if err := queue.StartReservationConsumer(); err != nil {
            log.Printf("reservation consumer stopped: %v", err)
        }
    }()
    go dispatcher.Run(context.Background())

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
