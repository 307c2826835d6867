package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timesheet/backend/config"
	"timesheet/backend/internal/api/handler"
	"timesheet/backend/internal/api/middleware"
	"timesheet/backend/internal/api/router"
	"timesheet/backend/internal/dto"
	"timesheet/backend/internal/repository"
	"timesheet/backend/internal/service"
	"timesheet/backend/pkg/jwt"
	applogger "timesheet/backend/pkg/logger"
	"timesheet/backend/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（默认 config/config.yaml）")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("store", cfg.Store.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 打开存储（含迁移与样例数据）
	repo, err := repository.Open(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("存储初始化失败", zap.Error(err))
	}

	// 4. 连接 Redis（可选：连接失败时降级运行，不中断启动）
	var (
		rdb       *redis.Client
		blacklist service.TokenBlacklist
		limiter   middleware.Limiter
	)
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，Token 黑名单与登录限流将不可用", zap.Error(err))
			rdb = nil
		}
	}
	if rdb != nil {
		blacklist = rdb
		limiter = rdb
	}

	// 5. 初始化 JWT 管理器
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. 依赖注入: Repository → Service → Handler
	svc, err := service.NewService(cfg, repo, jwtMgr, blacklist, logger)
	if err != nil {
		logger.Fatal("服务初始化失败", zap.Error(err))
	}
	h := handler.NewHandler(svc)

	// 7. 初始化路由
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := dto.RegisterValidators(); err != nil {
		logger.Fatal("注册校验规则失败", zap.Error(err))
	}
	engine := router.Setup(cfg, h, router.Deps{
		JWT:       jwtMgr,
		Blacklist: blacklist,
		Limiter:   limiter,
		Logger:    logger,
	})

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if err := repo.Close(); err != nil {
		logger.Error("关闭存储失败", zap.Error(err))
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}
