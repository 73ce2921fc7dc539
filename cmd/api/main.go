package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/gatera900/bite-backend/api/controllers"
	"github.com/gatera900/bite-backend/api/routes"
	"github.com/gatera900/bite-backend/internal/ai"
	"github.com/gatera900/bite-backend/internal/analytics"
	cartsvc "github.com/gatera900/bite-backend/internal/cart"
	"github.com/gatera900/bite-backend/internal/catalog"
	"github.com/gatera900/bite-backend/internal/chat"
	"github.com/gatera900/bite-backend/internal/farmstats"
	"github.com/gatera900/bite-backend/internal/orders"
	"github.com/gatera900/bite-backend/internal/recs"
	"github.com/gatera900/bite-backend/internal/reviews"
	"github.com/gatera900/bite-backend/pkg/config"
	"github.com/gatera900/bite-backend/pkg/db"
	"github.com/gatera900/bite-backend/pkg/logger"
	"github.com/gatera900/bite-backend/pkg/metrics"
	"github.com/gatera900/bite-backend/pkg/models"
	"github.com/gatera900/bite-backend/pkg/openai"
	"github.com/gatera900/bite-backend/pkg/redis"
	"github.com/gatera900/bite-backend/pkg/weather"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var (
		menuRepo    catalog.Repository
		ordersRepo  orders.Repository
		farmsRepo   farmstats.Repository
		reviewsRepo reviews.Repository
		chatRepo    chat.Repository
		recsRepo    recs.Repository
	)

	readiness := map[string]controllers.Pinger{}

	if cfg.DB.Persistent() {
		dbClient, err := db.New(context.Background(), cfg.DB, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap database", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}()

		if err := seedIfEmpty(dbClient); err != nil {
			logg.Error(context.Background(), "failed to seed database", err)
			os.Exit(1)
		}

		conn := dbClient.DB()
		menuRepo = catalog.NewGormRepository(conn)
		ordersRepo = orders.NewGormRepository(conn)
		farmsRepo = farmstats.NewGormRepository(conn)
		reviewsRepo = reviews.NewGormRepository(conn)
		chatRepo = chat.NewGormRepository(conn)
		recsRepo = recs.NewGormRepository(conn)
		readiness["database"] = dbClient
	} else {
		logg.Info(context.Background(), "no database DSN configured, using in-memory store")
		menuRepo = catalog.NewMemoryRepository()
		ordersRepo = orders.NewMemoryRepository()
		farmsRepo = farmstats.NewMemoryRepository()
		reviewsRepo = reviews.NewMemoryRepository()
		chatRepo = chat.NewMemoryRepository()
		recsRepo = recs.NewMemoryRepository()
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		readiness["redis"] = redisClient
	}

	var chatClient ai.ChatClient
	if cfg.OpenAI.APIKey != "" {
		client, err := openai.NewClient(cfg.OpenAI.APIKey, openai.WithModel(cfg.OpenAI.Model))
		if err != nil {
			logg.Error(context.Background(), "failed to build openai client", err)
			os.Exit(1)
		}
		chatClient = client
	} else {
		logg.Warn(context.Background(), "no OpenAI API key configured, AI features degraded")
	}

	weatherClient := weather.NewClient(cfg.Weather.APIKey, weather.WithLocation(cfg.Weather.Location))

	aiService := ai.NewService(chatClient, logg)
	farmsService := farmstats.NewService(farmsRepo, weatherClient, logg)
	reviewsService := reviews.NewService(reviewsRepo, aiService, logg)
	chatService := chat.NewService(chatRepo, aiService, logg)
	analyticsService := analytics.NewService(ordersRepo)

	deps := routes.Deps{
		Menu:        menuRepo,
		Orders:      ordersRepo,
		Farms:       farmsService,
		Reviews:     reviewsService,
		Chat:        chatService,
		AI:          aiService,
		Recs:        recsRepo,
		Analytics:   analyticsService,
		Cart:        cartsvc.NewManager(),
		Redis:       redisClient,
		HTTPMetrics: metrics.NewHTTPMetrics(),
		Readiness:   readiness,
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, deps),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// seedIfEmpty loads the sample menu and partner farms into a fresh
// database. Existing rows are never touched.
func seedIfEmpty(client *db.Client) error {
	conn := client.DB()

	var menuCount int64
	if err := conn.Model(&models.MenuItem{}).Count(&menuCount).Error; err != nil {
		return err
	}
	if menuCount == 0 {
		items := catalog.SeedMenuItems()
		if err := conn.Create(&items).Error; err != nil {
			return err
		}
	}

	var farmCount int64
	if err := conn.Model(&models.FarmStats{}).Count(&farmCount).Error; err != nil {
		return err
	}
	if farmCount == 0 {
		farms := farmstats.SeedFarmStats()
		if err := conn.Create(&farms).Error; err != nil {
			return err
		}
	}
	return nil
}
