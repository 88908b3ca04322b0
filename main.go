package main

import (
	"context"
	"os"
	"time"

	"github.com/clubsphere/backend/auth"
	"github.com/clubsphere/backend/config"
	"github.com/clubsphere/backend/handlers"
	"github.com/clubsphere/backend/migrations"
	"github.com/clubsphere/backend/payments"
	"github.com/clubsphere/backend/repositories"
	"github.com/clubsphere/backend/services"
	"github.com/flowchartsman/retry"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatal().Err(err).Msg("connect to mongo")
	}
	defer mongoClient.Disconnect(context.Background())

	retrier := retry.NewRetrier(5, 100*time.Millisecond, time.Second)
	err = retrier.Run(func() error {
		return mongoClient.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		log.Fatal().Err(err).Msg("ping mongo")
	}

	db := mongoClient.Database(cfg.Mongo.DatabaseName)
	if err := migrations.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	verifier, err := auth.NewGoogleVerifier(ctx, cfg.Identity.Audience)
	if err != nil {
		log.Fatal().Err(err).Msg("create token verifier")
	}

	checkout := payments.NewClient(cfg.Checkout.SecretKey, cfg.Checkout.APIURL)

	userRepository := repositories.NewUserRepository(db)
	clubRepository := repositories.NewClubRepository(db)
	eventRepository := repositories.NewEventRepository(db)
	membershipRepository := repositories.NewMembershipRepository(db)
	registrationRepository := repositories.NewEventRegistrationRepository(db)
	paymentRepository := repositories.NewPaymentRepository(db)
	analyticsRepository := repositories.NewAnalyticsRepository(db)

	userService := services.NewUserService(userRepository)
	clubService := services.NewClubService(clubRepository, membershipRepository, eventRepository)
	eventService := services.NewEventService(eventRepository, clubRepository, registrationRepository)
	membershipService := services.NewMembershipService(membershipRepository, paymentRepository, clubRepository, checkout, cfg.ClientDomain)
	paymentService := services.NewPaymentService(paymentRepository)
	analyticsService := services.NewAnalyticsService(
		userRepository,
		clubRepository,
		eventRepository,
		membershipRepository,
		registrationRepository,
		paymentRepository,
		analyticsRepository,
	)

	handler := handlers.NewHandler(userService, clubService, eventService, membershipService, paymentService, analyticsService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestLogger(log.Logger))
	r.Use(handlers.CORS(cfg.ClientDomain))
	r.Use(handlers.RateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)))

	handlers.RegisterRoutes(r, handler, verifier)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
