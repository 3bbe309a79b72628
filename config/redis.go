package config

import (
	"academyqa/global"
	"academyqa/logger"

	"github.com/go-redis/redis"
	"go.uber.org/zap"
)

func initRedis() {
	addr := AppConfig.Redis.Addr
	if addr == "" {
		logger.Info("redis addr empty, skipping redis init")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		DB:       AppConfig.Redis.DB,
		Password: AppConfig.Redis.Password,
	})

	if _, err := client.Ping().Result(); err != nil {
		logger.Error("Failed to connect to Redis, answer cache and route stats disabled", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return
	}

	global.RedisDB = client
	logger.Info("Redis initialized", zap.String("addr", addr))
}
