package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options 日志输出配置，零值字段使用默认滚动策略
type Options struct {
	Level      string // debug / info / warn / error，留空时 debug 模式为 debug，其余为 info
	Dir        string
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Console    bool // release 模式同时输出到 stdout
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.Dir) == "" {
		o.Dir = "logs"
	}
	if strings.TrimSpace(o.Filename) == "" {
		o.Filename = "salon.log"
	}
	o.MaxSizeMB = positiveOr(o.MaxSizeMB, 100)
	o.MaxBackups = positiveOr(o.MaxBackups, 7)
	o.MaxAgeDays = positiveOr(o.MaxAgeDays, 30)
	return o
}

var global atomic.Pointer[zap.Logger]

// Init 创建日志并设为全局实例
func Init(mode string, options Options) *zap.Logger {
	l := New(mode, options)
	global.Store(l)
	zap.ReplaceGlobals(l)
	return l
}

// New debug 模式输出控制台格式到 stdout；其余模式写 JSON 到 lumberjack 滚动文件
func New(mode string, options Options) *zap.Logger {
	debug := strings.EqualFold(strings.TrimSpace(mode), "debug")
	level := resolveLevel(options.Level, debug)
	stdout := zapcore.Lock(os.Stdout)

	if debug {
		return wrap(zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), stdout, level))
	}

	enc := zapcore.NewJSONEncoder(encoderConfig())
	file, err := rollingFile(options.withDefaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file unavailable, writing to stdout: %v\n", err)
		return wrap(zapcore.NewCore(enc, stdout, level))
	}
	cores := []zapcore.Core{zapcore.NewCore(enc, file, level)}
	if options.Console {
		cores = append(cores, zapcore.NewCore(enc, stdout, level))
	}
	return wrap(zapcore.NewTee(cores...))
}

func resolveLevel(raw string, debug bool) zapcore.Level {
	if raw = strings.TrimSpace(raw); raw != "" {
		if lvl, err := zapcore.ParseLevel(raw); err == nil {
			return lvl
		}
	}
	if debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func wrap(core zapcore.Core) *zap.Logger {
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.MillisDurationEncoder
	return cfg
}

// rollingFile 先确认目录与文件可写，再交给 lumberjack
func rollingFile(o Options) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(o.Dir, o.Filename)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	_ = f.Close()
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    o.MaxSizeMB,
		MaxBackups: o.MaxBackups,
		MaxAge:     o.MaxAgeDays,
		Compress:   o.Compress,
	}), nil
}

func positiveOr(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

var fallback = wrap(zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.Lock(os.Stdout), zapcore.InfoLevel))

// Z 全局日志，未初始化时使用 stdout 兜底
func Z() *zap.Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return fallback
}

func S() *zap.SugaredLogger {
	return Z().Sugar()
}

// SW 附带固定字段，例如 request_id
func SW(kv ...interface{}) *zap.SugaredLogger {
	return S().With(kv...)
}

// StdLogger 启动阶段给标准库 log 风格调用使用
func StdLogger() *log.Logger {
	return zap.NewStdLog(Z())
}

func Sync() {
	_ = Z().Sync()
}

func Debugw(msg string, kv ...interface{}) { S().Debugw(msg, kv...) }
func Infow(msg string, kv ...interface{})  { S().Infow(msg, kv...) }
func Warnw(msg string, kv ...interface{})  { S().Warnw(msg, kv...) }
func Errorw(msg string, kv ...interface{}) { S().Errorw(msg, kv...) }
