package salesperson

import (
	"time"

	"gorm.io/gorm"
)

type SalesPerson struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex:uq_sales_persons_email;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Department   string `gorm:"type:varchar(255)"`
	IsManager    bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
