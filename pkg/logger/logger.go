// Package logger 创建全局使用的 zap 日志器
package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

// New 根据 verbose 创建日志器
//
// verbose 时使用开发模式（Debug 级别、可读格式），
// 否则使用生产模式并只输出 Warn 及以上。
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}

// Throttled 限制高频日志（如每 tick 的统计）的输出频率
type Throttled struct {
	logger  *zap.Logger
	limiter *rate.Limiter
}

// NewThrottled 每 every 最多输出一条
func NewThrottled(l *zap.Logger, every time.Duration) *Throttled {
	return &Throttled{
		logger:  l,
		limiter: rate.NewLimiter(rate.Every(every), 1),
	}
}

// Debug 在配额允许时输出 Debug 日志，返回是否实际输出
func (t *Throttled) Debug(msg string, fields ...zap.Field) bool {
	if !t.limiter.Allow() {
		return false
	}
	t.logger.Debug(msg, fields...)
	return true
}
