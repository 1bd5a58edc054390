package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/VitaminP8/postql/models"
)

const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

// Open подключается к базе. Для sqlite dsn - путь к файлу (или ":memory:").
func Open(dialect, dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if dialect == DialectSQLite {
		// sqlite допускает одного писателя; для ":memory:" каждое соединение - отдельная база
		db.DB().SetMaxOpenConns(1)
	}

	if log != nil {
		db.SetLogger(zap.NewStdLog(log.Named("gorm")))
		db.LogMode(log.Core().Enabled(zapcore.DebugLevel))
	} else {
		db.LogMode(false)
	}

	return db, nil
}

// Migrate создает таблицу Posts, если ее еще нет.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Post{}).Error; err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close the database connection: %w", err)
	}
	return nil
}
