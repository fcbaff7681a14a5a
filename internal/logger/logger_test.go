package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/myysophia/poa-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	err := Init(&config.LogConfig{Level: "debug", Format: "json", Output: "file", FilePath: path})
	require.NoError(t, err)
	defer SetLogger(nil)

	Info("写入测试", zap.String("key", "value"))
	_ = Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"写入测试"`)
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestWith(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	With(zap.String("request_id", "abc")).Info("请求处理成功")
	Debug("不会记录")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "请求处理成功", entry.Message)
	assert.Equal(t, "abc", entry.ContextMap()["request_id"])
}

func TestInit_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
	}{
		{"Level", config.LogConfig{Level: "verbose"}},
		{"Output", config.LogConfig{Output: "syslog"}},
		{"File Without Path", config.LogConfig{Output: "file"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Init(&tt.cfg))
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zap.InfoLevel, level)

	level, err = parseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, zap.WarnLevel, level)
}

func TestCtx(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	ctx := NewContext(context.Background(), zap.String("request_id", "req-1"))
	ctx = NewContext(ctx, zap.Uint("user_id", 7))

	Ctx(ctx).Info("创建权限成功")
	Ctx(context.Background()).Info("无请求上下文")

	require.Equal(t, 2, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, uint64(7), fields["user_id"])
	assert.Empty(t, logs.All()[1].ContextMap())
}

func TestPackageFunctionsCaller(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core, zap.AddCaller()))
	defer SetLogger(nil)

	Info("调用位置")

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Caller.File, "logger_test.go")
}
