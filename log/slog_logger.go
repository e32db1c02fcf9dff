package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// SLogLoggerOptions 日志初始化选项
type SLogLoggerOptions struct {
	// 日志级别：debug, info, warn, error
	Level string `validate:"omitempty,oneof=debug info warn error"`

	// 输出格式：text, json
	Format string `validate:"omitempty,oneof=text json"`

	// 输出目标，默认 os.Stdout
	Output io.Writer

	// 时间格式
	TimeFormat string

	// 是否显示调用者信息
	AddSource bool

	// 自定义字段
	Fields map[string]any
}

// SLogLogger 基于标准库 slog 实现的日志器
type SLogLogger struct {
	slogger *slog.Logger
}

// NewSLogLoggerWithOptions 根据选项创建日志器
func NewSLogLoggerWithOptions(options *SLogLoggerOptions) (*SLogLogger, error) {
	if options == nil {
		options = &SLogLoggerOptions{}
	}

	// 设置默认值
	if options.Level == "" {
		options.Level = "info"
	}
	if options.Format == "" {
		options.Format = "text"
	}
	if options.TimeFormat == "" {
		options.TimeFormat = time.RFC3339
	}
	if options.Output == nil {
		options.Output = os.Stdout
	}

	level, err := parseLevel(options.Level)
	if err != nil {
		return nil, errors.WithMessage(err, "parseLevel failed")
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: options.AddSource,
	}

	// 自定义时间格式
	if options.TimeFormat != time.RFC3339 {
		timeFormat := options.TimeFormat
		handlerOpts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(timeFormat)),
				}
			}
			return a
		}
	}

	var handler slog.Handler
	switch strings.ToLower(options.Format) {
	case "json":
		handler = slog.NewJSONHandler(options.Output, handlerOpts)
	case "text":
		handler = slog.NewTextHandler(options.Output, handlerOpts)
	default:
		return nil, errors.Errorf("unsupported format: %s", options.Format)
	}

	slogger := slog.New(handler)

	// 添加自定义字段
	if len(options.Fields) > 0 {
		args := make([]any, 0, len(options.Fields)*2)
		for k, v := range options.Fields {
			args = append(args, k, v)
		}
		slogger = slogger.With(args...)
	}

	return &SLogLogger{slogger: slogger}, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown level: %s", level)
	}
}

func (l *SLogLogger) Debug(msg string, args ...any) { l.slogger.Debug(msg, args...) }
func (l *SLogLogger) Info(msg string, args ...any)  { l.slogger.Info(msg, args...) }
func (l *SLogLogger) Warn(msg string, args ...any)  { l.slogger.Warn(msg, args...) }
func (l *SLogLogger) Error(msg string, args ...any) { l.slogger.Error(msg, args...) }

func (l *SLogLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.slogger.DebugContext(ctx, msg, args...)
}

func (l *SLogLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.slogger.InfoContext(ctx, msg, args...)
}

func (l *SLogLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.slogger.WarnContext(ctx, msg, args...)
}

func (l *SLogLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.slogger.ErrorContext(ctx, msg, args...)
}

func (l *SLogLogger) With(args ...any) Logger {
	return &SLogLogger{slogger: l.slogger.With(args...)}
}
