package main

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/myysophia/poa-backend/internal/db"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "管理数据库",
	Long:  `管理数据库表结构与迁移。`,
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "创建或升级数据库表结构",
	Long: `执行所有未执行的数据库迁移。

示例:
  poactl db migrate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return db.MigrateUp(cfg.Database.GetURL())
	},
}

var dbDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "回滚数据库迁移",
	Long: `回滚指定步数的数据库迁移（默认 1 步）。

示例:
  poactl db down      # 回滚 1 步
  poactl db down 3    # 回滚 3 步`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("无效的回滚步数: %s", args[0])
			}
			steps = n
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return db.MigrateDown(cfg.Database.GetURL(), steps)
	},
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "查看当前迁移版本",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		version, dirty, err := db.MigrationStatus(cfg.Database.GetURL())
		if err != nil {
			return err
		}
		if version == 0 {
			cmd.Println("尚未执行任何迁移")
			return nil
		}

		cmd.Printf("当前版本: %d\n", version)
		if dirty {
			cmd.Println("警告: 数据库处于 dirty 状态")
		}
		return nil
	},
}

var dbWaitCmd = &cobra.Command{
	Use:   "wait",
	Short: "等待数据库可用",
	Long: `反复连接数据库直到成功或达到重试次数。

示例:
  poactl db wait
  poactl db wait --retries 60`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		retries, _ := cmd.Flags().GetInt("retries")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := waitForDatabase(cmd.Context(), cfg.Database.GetConnURL(), retries, time.Second); err != nil {
			return err
		}
		cmd.Println("数据库已就绪")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbDownCmd)
	dbCmd.AddCommand(dbStatusCmd)
	dbCmd.AddCommand(dbWaitCmd)
	dbWaitCmd.Flags().IntP("retries", "r", 30, "重试次数")
}

// waitForDatabase 每隔 interval 尝试 ping 一次数据库
func waitForDatabase(ctx context.Context, databaseURL string, retries int, interval time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}

	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("打开数据库连接失败: %w", err)
	}
	defer func() { _ = conn.Close() }()

	var lastErr error
	for i := 0; i < retries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		lastErr = conn.PingContext(pingCtx)
		cancel()
		if lastErr == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return fmt.Errorf("数据库在 %d 次重试后仍不可用: %w", retries, lastErr)
}
