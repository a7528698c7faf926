package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"questhub.backend/internal/config"
	"questhub.backend/internal/infrastructure/repositories"
	"questhub.backend/internal/interfaces/http/handlers"
	"questhub.backend/internal/interfaces/http/middleware"
	"questhub.backend/internal/usecases"
	"questhub.backend/pkg/jwt"
	"questhub.backend/pkg/logger"
	"questhub.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Connect
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
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

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

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

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	userRepo := repositories.NewUserRepository(db)
	balanceRepo := repositories.NewBalanceRepository(db)
	questRepo := repositories.NewQuestRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	ledgerUsecase := usecases.NewLedgerUsecase(balanceRepo, questRepo, txRepo, uow)
	questUsecase := usecases.NewQuestUsecase(ledgerUsecase, questRepo, balanceRepo, uow)
	txUsecase := usecases.NewTransactionUsecase(txRepo, ledgerUsecase, uow)
	rouletteUsecase := usecases.NewRouletteUsecase(ledgerUsecase, balanceRepo, rng)

	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore)
	questHandler := handlers.NewQuestHandler(questUsecase)
	rouletteHandler := handlers.NewRouletteHandler(rouletteUsecase)
	walletHandler := handlers.NewWalletHandler(txUsecase)
	adminHandler := handlers.NewAdminHandler(txUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:     authHandler,
		questHandler:    questHandler,
		rouletteHandler: rouletteHandler,
		walletHandler:   walletHandler,
		adminHandler:    adminHandler,
		authMiddleware:  middleware.AuthMiddleware(jwtService),
		adminMiddleware: middleware.RequireAdmin(ledgerUsecase),
	})

	log.Printf("QuestHub backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
