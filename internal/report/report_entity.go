package report

import (
	"time"

	"go-sales-report/internal/customer"
	"go-sales-report/internal/salesperson"
)

// DailyReport is one sales person's activity log for one calendar date.
// The composite unique index keeps at most one report per (owner, date).
type DailyReport struct {
	ID            uint      `gorm:"primaryKey"`
	SalesPersonID uint      `gorm:"not null;uniqueIndex:uq_reports_salesperson_date"`
	ReportDate    time.Time `gorm:"type:date;not null;uniqueIndex:uq_reports_salesperson_date"`
	Problem       string    `gorm:"type:varchar(1000);not null"`
	Plan          string    `gorm:"type:varchar(1000);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	SalesPerson *salesperson.SalesPerson `gorm:"foreignKey:SalesPersonID"`
	Visits      []VisitRecord            `gorm:"foreignKey:ReportID"`
}

// VisitRecord is one customer visit attached to a report. The set is
// replaced wholesale on report update.
type VisitRecord struct {
	ID           uint    `gorm:"primaryKey"`
	ReportID     uint    `gorm:"not null;index"`
	CustomerID   uint    `gorm:"not null"`
	VisitTime    *string `gorm:"type:varchar(5)"`
	VisitContent string  `gorm:"type:varchar(500);not null"`

	Customer *customer.Customer `gorm:"foreignKey:CustomerID"`
}
