package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/salon-next/internal/app"
	"github.com/salon-next/internal/config"
	"github.com/salon-next/internal/logger"
	"github.com/salon-next/internal/models"

	"github.com/gin-gonic/gin"
)

// 出现在示例配置里的占位片段
var placeholderSecrets = []string{"change-me", "change-in-production", "your-secret-key", "salon-secret"}

func main() {
	mode := flag.String("mode", app.ModeAll, "run mode: all | api | worker")
	flag.Parse()

	fmt.Printf("\033[95m✂ salon-next\033[0m  mode=%s  pid=%d\n", *mode, os.Getpid())

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	std := logger.StdLogger()
	release := cfg.Server.Mode == "release"
	if release {
		gin.SetMode(gin.ReleaseMode)
	}

	if isWeakSecret(cfg.JWT.SecretKey) {
		if release {
			std.Fatalf("jwt.secret is a placeholder or shorter than 32 chars; refusing to start in release mode")
		}
		logger.Warnw("jwt_secret_weak")
	}

	if err := models.Connect(cfg.Database, cfg.Server.Mode == "debug"); err != nil {
		std.Fatalf("database: %v", err)
	}

	switch {
	case release && cfg.Admin.DefaultPassword == "":
		logger.Warnw("default_admin_skipped", "reason", "admin.default_password not set")
	default:
		if err := models.InitDefaultAdmin(cfg.Admin.DefaultUsername, cfg.Admin.DefaultPassword); err != nil {
			logger.Errorw("default_admin_init_failed", "error", err)
		}
	}

	err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    *mode,
	})
	if err != nil {
		std.Fatalf("run: %v", err)
	}
}

// isWeakSecret 长度不足 32 或包含示例占位词
func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	lower := strings.ToLower(secret)
	for _, marker := range placeholderSecrets {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
