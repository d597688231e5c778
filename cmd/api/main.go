package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"meetspace/internal/database"
	"meetspace/internal/middleware"
	"meetspace/internal/modules/agenda"
	"meetspace/internal/modules/analytics"
	"meetspace/internal/modules/auth"
	"meetspace/internal/modules/booking"
	"meetspace/internal/modules/catalog"
	"meetspace/internal/modules/intake"
	jwtsvc "meetspace/internal/pkg/jwt"
	"meetspace/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	clientRepo := repository.NewClientRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo, clientRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, roomRepo, clientRepo)
	bookingHandler := booking.NewHandler(bookingService)

	intakeService := intake.NewService(clientRepo, bookingService)
	intakeHandler := intake.NewHandler(intakeService)

	analyticsService := analytics.NewService(bookingRepo)
	analyticsHandler := analytics.NewHandler(analyticsService)

	hub := agenda.NewHub()
	agendaService := agenda.NewService(bookingRepo)
	agendaHandler := agenda.NewHandler(agendaService, hub)
	refresher := agenda.NewRefresher(agendaService, hub)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go refresher.Run(ctx)
	defer hub.Close()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		intakeHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		agendaHandler.RegisterRoutes(v1)

		// protected (dashboard endpoints)
		protected := v1.Group("/admin")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			catalogHandler.RegisterAdminRoutes(protected)
			analyticsHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
