package database

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schooloffice_backend/internals/configs"
)

var DB *gorm.DB

func DSN(cfg configs.DatabaseConfig) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schooloffice&options=%s",
		url.QueryEscape(cfg.User),
		url.QueryEscape(cfg.Password),
		cfg.Host,
		cfg.Port,
		cfg.Name,
		sslmode,
		url.QueryEscape("-c statement_timeout=5000"),
	)
}

// Open builds a gorm handle with the service defaults. TranslateError makes
// unique/FK violations surface as gorm.ErrDuplicatedKey / ErrForeignKeyViolated.
func Open(dsn string, slow time.Duration) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(slow),
		TranslateError: true,
	})
}

func ConnectDB(cfg configs.DatabaseConfig) {
	log.Println("[INFO] connecting to PostgreSQL...")
	db, err := Open(DSN(cfg), cfg.SlowThreshold)
	if err != nil {
		log.Fatalf("[ERROR] database connect: %v", err)
	}
	DB = db
	log.Println("[INFO] database connected")
}

func TunePool(cfg configs.DatabaseConfig) {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(); err != nil {
			log.Printf("[WARN] warm-up ping: %v", err)
			return
		}
		// dashboard hits these first
		DB.Exec("SELECT 1 FROM students LIMIT 1")
		DB.Exec("SELECT 1 FROM fee_invoices LIMIT 1")
	}()
}

func Ping() error {
	if DB == nil {
		return fmt.Errorf("database not initialised")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
