package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"customer-service-agent/config"
	"customer-service-agent/dao"
	"customer-service-agent/internal/llmclient"
	"customer-service-agent/route"
	"customer-service-agent/service"
)

func main() {
	settings, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(settings.Mode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	tables, err := config.LoadTables("config/intents.yaml")
	if err != nil {
		sugar.Fatalw("load intent tables", "error", err)
	}
	sugar.Infow("intent tables loaded", "patterns", len(tables.Patterns))

	store, err := dao.NewStore(settings.DatabasePath, sugar)
	if err != nil {
		sugar.Fatalw("open store", "error", err)
	}
	if err := store.Seed(settings.ProductsCSV, settings.OrdersCSV); err != nil {
		sugar.Fatalw("seed store", "error", err)
	}

	cache := dao.NewSessionCache(settings.RedisAddr, settings.RedisPassword, settings.RedisDB, settings.HistoryLimit)
	defer cache.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cache.Ping(pingCtx); err != nil {
		sugar.Warnw("redis unavailable, session history degraded", "error", err)
	}
	cancel()

	llm := llmclient.NewClient(settings.OpenAIBaseURL, settings.OpenAIAPIKey, settings.OpenAIModel)
	classifier := service.NewClassifier(tables, llm, settings.MinConfidence, sugar)
	agent := service.NewAgent(classifier, store, store, cache, tables, sugar)
	orders := service.NewOrderService(store, sugar)
	products := service.NewProductService(store, sugar)

	if settings.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	route.Register(r, route.Deps{
		Agent:    agent,
		Orders:   orders,
		Products: products,
		Store:    store,
		Cache:    cache,
		Secret:   settings.SecretKey,
		Log:      sugar,
	})

	sugar.Infow("starting customer service agent", "addr", settings.Addr, "mode", settings.Mode)
	if err := r.Run(settings.Addr); err != nil {
		sugar.Fatalw("server exited", "error", err)
	}
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == "prod" || mode == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
