package main

import (
	"context"
	"flag"

	"academyqa/catalog"
	"academyqa/config"
	"academyqa/controllers"
	"academyqa/global"
	"academyqa/logger"
	"academyqa/router"
	"academyqa/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "config file (default ./config/config.yml)")
	flag.Parse()

	config.InitConfig(*configPath)
	defer logger.Sync()
	defer closeStores()

	cfg := config.AppConfig
	gin.SetMode(cfg.App.Mode)

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to load course catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}
	logger.Info("Course catalog loaded", zap.Int("courses", cat.KB.Len()))

	model := services.LoadModelAdapter(context.Background(), cfg.QA)

	opts := []services.AssistantOption{
		services.WithRejectWhenUnavailable(cfg.QA.RejectWhenUnavailable),
	}
	if global.RedisDB != nil {
		opts = append(opts, services.WithAnswerCache(services.NewRedisAnswerCache(global.RedisDB, cfg.Redis.AnswerTTL)))
	}
	assistant := services.NewAssistant(cat, model, opts...)

	var recorders services.Recorders
	if global.Db != nil {
		recorders = append(recorders, services.NewHistoryRecorder(global.Db))
	}
	if global.RedisDB != nil {
		recorders = append(recorders, services.NewRouteStatsRecorder(global.RedisDB))
	}
	if global.RabbitChannel != nil {
		recorders = append(recorders, services.NewEventPublisher(global.RabbitChannel, cfg.RabbitMQ.Queue))
	}

	r := router.SetupRouter(controllers.NewQAController(assistant, recorders), logger.Get())

	logger.Info("Starting server", zap.String("name", cfg.App.Name), zap.String("addr", cfg.App.Addr()))
	if err := r.Run(cfg.App.Addr()); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}

func closeStores() {
	if global.RabbitChannel != nil {
		_ = global.RabbitChannel.Close()
	}
	if global.RabbitConn != nil {
		_ = global.RabbitConn.Close()
	}
	if global.RedisDB != nil {
		_ = global.RedisDB.Close()
	}
	if global.Db != nil {
		if sqlDB, err := global.Db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
