package comment

import (
	"time"

	"go-sales-report/internal/salesperson"
)

// ManagerComment is feedback a manager leaves on a submitted daily report.
// Comments are append-only; there is no edit or delete surface.
type ManagerComment struct {
	ID        uint   `gorm:"primaryKey"`
	ReportID  uint   `gorm:"not null;index:idx_manager_comments_report"`
	ManagerID uint   `gorm:"not null"`
	Comment   string `gorm:"type:varchar(500);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Manager *salesperson.SalesPerson `gorm:"foreignKey:ManagerID"`
}

func (ManagerComment) TableName() string {
	return "manager_comments"
}
