package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rewards_miniapp/internal/api"
	"rewards_miniapp/internal/bootstrap"
	"rewards_miniapp/internal/bot"
	"rewards_miniapp/internal/middleware"
	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/repository"
	"rewards_miniapp/internal/service"
	"rewards_miniapp/pkg/auth"
	"rewards_miniapp/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := repository.New(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer repo.Close()

	if cfg.Database.Migrate {
		if err := repo.EnsureSchema(ctx); err != nil {
			zapLogger.Fatal("Failed to apply schema", zap.Error(err))
		}
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			zapLogger.Fatal("Failed to connect to redis", zap.Error(err))
		}
	}

	policy, err := rewardPolicy(cfg.Rewards)
	if err != nil {
		zapLogger.Fatal("Failed to build reward policy", zap.Error(err))
	}

	hub := api.NewHub()
	withdrawalNotifier := newWithdrawalNotifier()

	referralService := service.NewReferralService(repo, policy, hub)
	svc := &service.Service{
		AccountService:    service.NewAccountService(repo, referralService, policy, service.NewRateLimiter(rdb), hub),
		QuestService:      service.NewQuestService(repo, policy, hub),
		ReferralService:   referralService,
		WithdrawalService: service.NewWithdrawalService(repo, policy, hub, withdrawalNotifier),
		TaskService:       service.NewTaskService(repo, policy, hub),
		CatalogService:    service.NewCatalogService(repo),
		InvestmentService: service.NewInvestmentService(repo, policy, hub),
		AdminService:      service.NewAdminService(repo, auth.NewAdminTokens(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL), policy),
	}

	seeder := bootstrap.NewSeeder(repo, svc, policy)
	err = seeder.SeedAdmin(ctx, model.AdminInput{
		Username: cfg.Admin.DefaultUsername,
		Password: cfg.Admin.DefaultPassword,
		Email:    cfg.Admin.DefaultEmail,
	})
	if err != nil {
		zapLogger.Fatal("Failed to seed admin", zap.Error(err))
	}
	if cfg.Seed.Enabled {
		if err := seeder.SeedCatalog(ctx); err != nil {
			zapLogger.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	var (
		avatars    api.AvatarResolver
		inviteLink func(int64) string
	)
	if cfg.Bot.Enabled {
		b, err := bot.New(bot.Config{
			Token:     cfg.TelegramAuth.TelegramBotToken,
			Username:  cfg.Bot.Username,
			WebAppURL: cfg.Bot.WebAppURL,
			Debug:     cfg.Bot.Debug,
		}, svc.AccountService)
		if err != nil {
			zapLogger.Fatal("Failed to start bot", zap.Error(err))
		}

		withdrawalNotifier.set(b)
		avatars = b
		inviteLink = b.InviteLink
		go b.Run(ctx)
	}

	telegramAuth := auth.NewTelegramAuth(cfg.TelegramAuth.TelegramBotToken, cfg.TelegramAuth.DebugMode)
	authorization := middleware.NewAuthorization(svc.AdminService)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	a := router.Group("/api")
	api.NewAccountRoutes(a, svc.AccountService, avatars, telegramAuth)
	api.NewQuestRoutes(a, svc.QuestService, telegramAuth)
	api.NewReferralRoutes(a, svc.ReferralService, inviteLink, telegramAuth)
	api.NewTaskRoutes(a, svc.TaskService, telegramAuth)
	api.NewWithdrawalRoutes(a, svc.WithdrawalService, svc.CatalogService, telegramAuth)
	api.NewInvestmentRoutes(a, svc.InvestmentService, telegramAuth)
	api.NewWSRoutes(a, hub, telegramAuth)
	api.NewAdminRoutes(a, api.AdminServices{
		Admins:      svc.AdminService,
		Accounts:    svc.AccountService,
		Quests:      svc.QuestService,
		Tasks:       svc.TaskService,
		Catalog:     svc.CatalogService,
		Withdrawals: svc.WithdrawalService,
		Investments: svc.InvestmentService,
	}, authorization)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to shut down server", zap.Error(err))
	}
}

func rewardPolicy(cfg RewardsConfig) (service.RewardPolicy, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return service.RewardPolicy{}, err
	}

	policy := service.DefaultRewardPolicy()
	policy.AdReward = cfg.AdReward
	policy.DailyAdCap = cfg.DailyAdCap
	policy.DailyBonus = cfg.DailyBonus
	policy.ReferralBonus = cfg.ReferralBonus
	policy.AdCooldown = cfg.AdCooldown
	policy.Location = loc
	return policy, nil
}
