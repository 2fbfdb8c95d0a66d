package main

import (
	"errors"

	"go-sales-report/internal/comment"
	"go-sales-report/internal/config"
	"go-sales-report/internal/customer"
	"go-sales-report/internal/report"
	"go-sales-report/internal/salesperson"
	"go-sales-report/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id VARCHAR(64),
	aggregate_type VARCHAR(64) NOT NULL,
	aggregate_id VARCHAR(64) NOT NULL,
	event_type VARCHAR(64) NOT NULL,
	topic VARCHAR(128) NOT NULL,
	payload JSONB NOT NULL,
	status VARCHAR(16) NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message VARCHAR(500),
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_status ON outbox_events (status, created_at);
`

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := connection.ConnectGORMWithRetry(cfg.DatabaseURL, 5)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	if err := migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("schema migrated")

	if err := seed(db); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
	logger.Info("seed data applied")
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&salesperson.SalesPerson{},
		&customer.Customer{},
		&report.DailyReport{},
		&report.VisitRecord{},
		&comment.ManagerComment{},
	); err != nil {
		return err
	}
	return db.Exec(outboxDDL).Error
}

// seed inserts a starting manager, two sales reps, and a handful of
// customers. Reruns are no-ops for rows that already exist.
func seed(db *gorm.DB) error {
	people := []struct {
		name       string
		email      string
		password   string
		department string
		isManager  bool
	}{
		{"Sato Kenji", "sato@example.com", "password123", "Sales Dept 1", true},
		{"Yamada Taro", "yamada@example.com", "password123", "Sales Dept 1", false},
		{"Suzuki Hanako", "suzuki@example.com", "password123", "Sales Dept 2", false},
	}

	for _, p := range people {
		var existing salesperson.SalesPerson
		err := db.Where("email = ?", p.email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(p.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := db.Create(&salesperson.SalesPerson{
			Name:         p.name,
			Email:        p.email,
			PasswordHash: string(hash),
			Department:   p.department,
			IsManager:    p.isManager,
			IsActive:     true,
		}).Error; err != nil {
			return err
		}
	}

	customers := []customer.Customer{
		{CompanyName: "ABC Corporation", ContactPerson: "Tanaka Ichiro", Phone: "03-1234-5678", Address: "Tokyo, Chiyoda"},
		{CompanyName: "XYZ Trading", ContactPerson: "Kobayashi Yumi", Phone: "06-9876-5432", Address: "Osaka, Kita"},
		{CompanyName: "Global Industries", ContactPerson: "Nakamura Shin", Phone: "045-111-2222", Address: "Yokohama, Nishi"},
	}
	for _, cust := range customers {
		var existing customer.Customer
		err := db.Where("company_name = ?", cust.CompanyName).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&cust).Error; err != nil {
			return err
		}
	}

	return nil
}
