package repository

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"go_4_vocab_srs/internal/model"

	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"               // postgresドライバ
	"gorm.io/driver/sqlite"                 // ローカル・テスト用
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const dialectPostgres = "postgres"

// NewDB は URL に応じて Postgres か SQLite に接続する
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)

	dialector := openDialector(databaseURL)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: slogGormLogger.LogMode(gormLogLevel),
		// 一意制約違反を gorm.ErrDuplicatedKey に変換する
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err), slog.String("dialect", dialector.Name()))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	if dialector.Name() == dialectPostgres {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// SQLite は書き込みが直列なので接続は1本
		sqlDB.SetMaxOpenConns(1)
	}

	appLogger.Info("Database connection established with GORM", slog.String("dialect", dialector.Name()))
	return db, nil
}

func openDialector(databaseURL string) gorm.Dialector {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"),
		strings.HasPrefix(databaseURL, "postgresql://"),
		strings.Contains(databaseURL, "host="):
		return postgres.Open(databaseURL)
	default:
		return sqlite.Open(databaseURL)
	}
}

// Migrate はテーブルを作成・更新する
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Word{}, &model.LearningProgress{}, &model.Review{}, &model.StarredWord{})
}

func isPostgres(db *gorm.DB) bool {
	return db.Dialector != nil && db.Dialector.Name() == dialectPostgres
}
