package main

import (
	"fmt"
	"os"

	"github.com/myysophia/poa-backend/internal/config"
	"github.com/myysophia/poa-backend/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	envName    string
)

var rootCmd = &cobra.Command{
	Use:   "poactl",
	Short: "POA 权限管理服务",
	Long: `POA 权限管理服务的命令行入口。

示例:
  poactl db migrate
  poactl serve --config configs --env prod`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs", "配置文件目录或文件路径")
	rootCmd.PersistentFlags().StringVarP(&envName, "env", "e", "", "运行环境，为空时使用 app.env")
}

// loadConfig 加载配置并初始化日志
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath, envName)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	if err := logger.Init(&cfg.Log); err != nil {
		return nil, fmt.Errorf("初始化日志系统失败: %w", err)
	}
	return cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
