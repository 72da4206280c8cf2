package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/config"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/infrastructure/jobs"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/infrastructure/mailer"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/infrastructure/repositories"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/interfaces/http/handlers"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/interfaces/http/middleware"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/usecases"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/jwt"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/logger"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
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
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)
	payoutRepo := repositories.NewPayoutRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	deductionLogRepo := repositories.NewDeductionLogRepository(db)
	planChangeRepo := repositories.NewPlanChangeRepository(db)
	depositRepo := repositories.NewDepositRepository(db)
	paymentMethodRepo := repositories.NewPaymentMethodRepository(db)
	flashSaleRepo := repositories.NewFlashSaleRepository(db)
	nominationRepo := repositories.NewNominationRepository(db)
	saleProductRepo := repositories.NewFlashSaleProductRepository(db)
	productRepo := repositories.NewProductRepository(db)
	settingRepo := repositories.NewSettingRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize mailer
	depositMailer := mailer.New(cfg.SMTP)

	// Initialize usecases
	billingUsecase := usecases.NewBillingUsecase(subscriptionRepo, deductionLogRepo, planChangeRepo, walletRepo, ledgerRepo, productRepo, settingRepo, uow, cfg.Billing.DailyFee, cfg.Billing.FreeMonths)
	walletUsecase := usecases.NewWalletUsecase(walletRepo, ledgerRepo, settingRepo, uow, billingUsecase, cfg.Billing.CommissionPercent)
	payoutUsecase := usecases.NewPayoutUsecase(payoutRepo, walletRepo, ledgerRepo, uow)
	depositUsecase := usecases.NewDepositUsecase(depositRepo, paymentMethodRepo, walletRepo, ledgerRepo, userRepo, settingRepo, uow, depositMailer, billingUsecase)
	flashSaleUsecase := usecases.NewFlashSaleUsecase(flashSaleRepo, nominationRepo, saleProductRepo, productRepo, subscriptionRepo, walletRepo, ledgerRepo, uow)
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, billingUsecase)
	productUsecase := usecases.NewProductUsecase(productRepo)
	settingsUsecase := usecases.NewSettingsUsecase(settingRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	walletHandler := handlers.NewWalletHandler(walletUsecase)
	payoutHandler := handlers.NewPayoutHandler(payoutUsecase)
	subscriptionHandler := handlers.NewSubscriptionHandler(billingUsecase)
	depositHandler := handlers.NewDepositHandler(depositUsecase)
	flashSaleHandler := handlers.NewFlashSaleHandler(flashSaleUsecase)
	productHandler := handlers.NewProductHandler(productUsecase)
	settingsHandler := handlers.NewAdminSettingsHandler(settingsUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	billingJob := jobs.NewSubscriptionBillingJob(billingUsecase, cfg.Billing.SweepInterval)
	go billingJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		walletHandler:       walletHandler,
		payoutHandler:       payoutHandler,
		subscriptionHandler: subscriptionHandler,
		depositHandler:      depositHandler,
		flashSaleHandler:    flashSaleHandler,
		productHandler:      productHandler,
		settingsHandler:     settingsHandler,
		authMiddleware:      authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		billingJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Skiller Ledger Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
