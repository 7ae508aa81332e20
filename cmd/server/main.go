package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/api-sage/pfm-ledger/internal/adapter/cache"
	"github.com/api-sage/pfm-ledger/internal/adapter/http/controller"
	"github.com/api-sage/pfm-ledger/internal/adapter/http/middleware"
	"github.com/api-sage/pfm-ledger/internal/adapter/http/router"
	"github.com/api-sage/pfm-ledger/internal/adapter/repository/postgres"
	"github.com/api-sage/pfm-ledger/internal/config"
	"github.com/api-sage/pfm-ledger/internal/logger"
	"github.com/api-sage/pfm-ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(startupCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}
	logger.Info("migrations completed", nil)

	db, err := postgres.Open(startupCtx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer func() { _ = redisClient.Close() }()
	}

	ledgerRepo := postgres.NewLedgerRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	loanRepo := postgres.NewLoanRepository(db)
	investmentRepo := postgres.NewInvestmentRepository(db)
	policyRepo := postgres.NewInsurancePolicyRepository(db)
	loanProductRepo := postgres.NewLoanProductRepository(db)
	investmentProductRepo := postgres.NewInvestmentProductRepository(db)
	policyProductRepo := cache.NewInsurancePolicyProductCache(redisClient, postgres.NewInsurancePolicyProductRepository(db))
	userProfileRepo := postgres.NewUserProfileRepository(db)
	bankRepo := postgres.NewBankRepository(db)

	transactionService := services.NewTransactionService(ledgerRepo, transactionRepo)
	loanService := services.NewLoanService(ledgerRepo, loanRepo, loanProductRepo, accountRepo)
	investmentService := services.NewInvestmentService(ledgerRepo, investmentRepo, investmentProductRepo)
	policyService := services.NewInsurancePolicyService(ledgerRepo, policyRepo, policyProductRepo)
	accountService := services.NewAccountService(accountRepo, userProfileRepo, bankRepo)
	userProfileService := services.NewUserProfileService(userProfileRepo)
	bankService := services.NewBankService(bankRepo)
	productService := services.NewProductService(loanProductRepo, investmentProductRepo, policyProductRepo)

	authMiddleware := middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey)
	mux := router.New(
		authMiddleware,
		controller.NewTransactionController(transactionService),
		controller.NewAccountController(accountService),
		controller.NewLoanController(loanService),
		controller.NewInvestmentController(investmentService),
		controller.NewInsurancePolicyController(policyService),
		controller.NewProductController(productService),
		controller.NewUserProfileController(userProfileService),
		controller.NewBankController(bankService),
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("http server starting", logger.Fields{"addr": cfg.ListenAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
	logger.Info("server stopped", nil)
}
