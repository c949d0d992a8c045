package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/salon-next/internal/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB 进程内共享的业务库连接，由 Connect 初始化
var DB *gorm.DB

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres", "postgresql":
		return postgres.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// Connect 打开业务库、设置连接池并执行迁移，成功后写入 DB
func Connect(cfg config.DatabaseConfig, debug bool) error {
	dialector, err := dialectorFor(cfg.Driver, cfg.DSN)
	if err != nil {
		return err
	}
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(level)})
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	pool := cfg.Pool
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(seconds(pool.ConnMaxLifetimeSeconds))
	sqlDB.SetConnMaxIdleTime(seconds(pool.ConnMaxIdleTimeSeconds))

	if err := Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	DB = db
	return nil
}

// seconds 非正数表示不限制
func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}

// AllModels 需要迁移的全部模型
func AllModels() []interface{} {
	return []interface{}{
		&Admin{},
		&AdminAuditLog{},
		&ServiceCategory{},
		&Service{},
		&Promotion{},
		&Staff{},
		&StaffAvailability{},
		&StaffService{},
		&Booking{},
		&GalleryImage{},
		&Feedback{},
		&ContactMessage{},
		&ContentSetting{},
	}
}

// Migrate 建表与补齐字段
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
