package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/myysophia/poa-backend/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 日志输出目标
const (
	OutputStdout = "stdout"
	OutputFile   = "file"
	OutputBoth   = "both"
)

var (
	// base 供 Ctx/With 返回，调用位置即业务代码
	base *zap.Logger
	// facade 供包级函数使用，多跳过一层调用栈
	facade *zap.Logger
)

type ctxKey struct{}

// Init 初始化日志
func Init(cfg *config.LogConfig) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}

	cores, err := buildCores(cfg, newEncoder(cfg.Format), level)
	if err != nil {
		return err
	}

	SetLogger(zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)))
	return nil
}

// parseLevel 空字符串按 info 处理
func parseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(strings.ToLower(s))
	if err != nil {
		return level, fmt.Errorf("无效的日志级别 %q: %w", s, err)
	}
	return level, nil
}

func newEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// buildCores 按输出目标创建 core，file/both 必须配置 file_path
func buildCores(cfg *config.LogConfig, encoder zapcore.Encoder, level zapcore.Level) ([]zapcore.Core, error) {
	output := strings.ToLower(cfg.Output)
	if output == "" {
		output = OutputStdout
	}

	var cores []zapcore.Core
	switch output {
	case OutputStdout, OutputFile, OutputBoth:
	default:
		return nil, fmt.Errorf("无效的日志输出 %q", cfg.Output)
	}

	if output == OutputStdout || output == OutputBoth {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level))
	}

	if output == OutputFile || output == OutputBoth {
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("日志输出为 %s 时必须配置 file_path", output)
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
		logFile, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		// 每个 core 使用独立的编码器
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.AddSync(logFile), level))
	}
	return cores, nil
}

// SetLogger 替换全局日志实例，传 nil 时下次使用重新创建开发日志器
func SetLogger(l *zap.Logger) {
	base = l
	if l == nil {
		facade = nil
		return
	}
	facade = l.WithOptions(zap.AddCallerSkip(1))
}

// GetLogger 获取全局日志实例
func GetLogger() *zap.Logger {
	if base == nil {
		// 未初始化时使用开发环境日志器
		l, _ := zap.NewDevelopment()
		SetLogger(l)
	}
	return base
}

func pkgLogger() *zap.Logger {
	GetLogger()
	return facade
}

// NewContext 返回携带日志字段的 context，后续 Ctx 取出的日志器都带这些字段
func NewContext(ctx context.Context, fields ...zap.Field) context.Context {
	return context.WithValue(ctx, ctxKey{}, Ctx(ctx).With(fields...))
}

// Ctx 取出 context 中的日志器，没有时返回全局日志器
func Ctx(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
			return l
		}
	}
	return GetLogger()
}

// Debug 输出 Debug 级别日志
func Debug(msg string, fields ...zap.Field) {
	pkgLogger().Debug(msg, fields...)
}

// Info 输出 Info 级别日志
func Info(msg string, fields ...zap.Field) {
	pkgLogger().Info(msg, fields...)
}

// Warn 输出 Warn 级别日志
func Warn(msg string, fields ...zap.Field) {
	pkgLogger().Warn(msg, fields...)
}

// Error 输出 Error 级别日志
func Error(msg string, fields ...zap.Field) {
	pkgLogger().Error(msg, fields...)
}

// Fatal 输出 Fatal 级别日志
func Fatal(msg string, fields ...zap.Field) {
	pkgLogger().Fatal(msg, fields...)
}

// With 创建带有额外字段的日志记录器
func With(fields ...zap.Field) *zap.Logger {
	return GetLogger().With(fields...)
}

// Sync 同步日志缓冲区
func Sync() error {
	return GetLogger().Sync()
}
