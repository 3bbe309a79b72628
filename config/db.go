package config

import (
	"time"

	"academyqa/global"
	"academyqa/logger"
	"academyqa/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func initDB() {
	dsn := AppConfig.Database.Dsn
	if dsn == "" {
		logger.Info("database dsn empty, skipping database init")
		return
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Error("Failed to open database, question history disabled", zap.Error(err))
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get database handle, question history disabled", zap.Error(err))
		return
	}
	sqlDB.SetMaxIdleConns(AppConfig.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(AppConfig.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&models.QAHistory{}); err != nil {
		logger.Error("Failed to migrate question history table", zap.Error(err))
		return
	}

	global.Db = db
	logger.Info("Database initialized")
}
