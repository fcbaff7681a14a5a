package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/myysophia/poa-backend/internal/api"
	"github.com/myysophia/poa-backend/internal/db"
	"github.com/myysophia/poa-backend/internal/logger"
	"github.com/myysophia/poa-backend/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 服务",
	Long: `启动 POA 权限管理 HTTP 服务。

默认在启动前执行数据库迁移，使用 --no-migrate 跳过。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		return runServer(noMigrate)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Bool("no-migrate", false, "启动前不执行数据库迁移")
}

func runServer(noMigrate bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("POA权限服务启动中...", zap.String("env", cfg.App.Env))

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if !noMigrate {
		if err := db.MigrateUp(cfg.Database.GetURL()); err != nil {
			return err
		}
	}

	// 初始化数据库
	if err := db.Init(&cfg.Database); err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("关闭数据库连接失败", zap.Error(err))
		}
	}()

	utils.InitValidator()

	router := api.SetupRouter(cfg, api.NewServices(db.GetDB(), cfg))

	readTimeout, writeTimeout, idleTimeout := cfg.App.Timeouts()
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	// 优雅关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP服务器启动成功", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP服务器启动失败: %w", err)
	case <-quit:
	}
	logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务器关闭异常: %w", err)
	}

	logger.Info("服务器已安全关闭")
	return nil
}
