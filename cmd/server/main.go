package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fudys.backend/internal/config"
	"fudys.backend/internal/infrastructure/mail"
	"fudys.backend/internal/infrastructure/repositories"
	"fudys.backend/internal/interfaces/http/handlers"
	"fudys.backend/internal/interfaces/http/middleware"
	"fudys.backend/internal/usecases"
	"fudys.backend/pkg/jwt"
	"fudys.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not reachable: %v (endpoints will return errors)", err)
	} else {
		logger.Info(context.Background(), "Connected to PostgreSQL")
	}

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Expiry)
	mailer := mail.NewSMTPMailer(cfg.SMTP)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	productRepo := repositories.NewProductRepository(db)
	paymentMethodRepo := repositories.NewPaymentMethodRepository(db)
	deliveryOptionRepo := repositories.NewDeliveryOptionRepository(db)
	openingHourRepo := repositories.NewOpeningHourRepository(db)
	passwordResetRepo := repositories.NewPasswordResetRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	reconciler := usecases.NewReconciler(restaurantRepo, uow)
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, cfg.Security.BcryptCost)
	resetUsecase := usecases.NewPasswordResetUsecase(userRepo, passwordResetRepo, uow, mailer, cfg.App.FrontendURL, cfg.Security.BcryptCost)
	accountUsecase := usecases.NewAccountUsecase(userRepo, restaurantRepo, subscriptionRepo, productRepo, paymentMethodRepo, deliveryOptionRepo, openingHourRepo, passwordResetRepo, saleRepo, uow)
	restaurantUsecase := usecases.NewRestaurantUsecase(restaurantRepo, userRepo, subscriptionRepo, productRepo, paymentMethodRepo, deliveryOptionRepo, openingHourRepo, uow)
	productUsecase := usecases.NewProductUsecase(productRepo, restaurantRepo, reconciler)
	openingHourUsecase := usecases.NewOpeningHourUsecase(openingHourRepo, reconciler)
	paymentMethodUsecase := usecases.NewPaymentMethodUsecase(paymentMethodRepo, reconciler)
	deliveryOptionUsecase := usecases.NewDeliveryOptionUsecase(deliveryOptionRepo, reconciler)
	saleUsecase := usecases.NewSaleUsecase(saleRepo, restaurantRepo, subscriptionRepo, uow)
	subscriptionUsecase := usecases.NewSubscriptionUsecase(subscriptionRepo, restaurantRepo)

	// Router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORS(cfg.App.AllowedOrigins))

	registerHealthRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:         handlers.NewAuthHandler(authUsecase, resetUsecase),
		userHandler:         handlers.NewUserHandler(accountUsecase),
		restaurantHandler:   handlers.NewRestaurantHandler(restaurantUsecase),
		productHandler:      handlers.NewProductHandler(productUsecase),
		openingHourHandler:  handlers.NewOpeningHourHandler(openingHourUsecase),
		paymentHandler:      handlers.NewPaymentMethodHandler(paymentMethodUsecase),
		deliveryHandler:     handlers.NewDeliveryOptionHandler(deliveryOptionUsecase),
		saleHandler:         handlers.NewSaleHandler(saleUsecase),
		subscriptionHandler: handlers.NewSubscriptionHandler(subscriptionUsecase),
		authRequired:        middleware.AuthMiddleware(jwtService),
		authOptional:        middleware.OptionalAuth(jwtService),
	})

	log.Printf("Fudys backend starting on port %s", cfg.Server.Port)
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
