package customer

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID            uint   `gorm:"primaryKey"`
	CompanyName   string `gorm:"type:varchar(255);not null"`
	ContactPerson string `gorm:"type:varchar(255)"`
	Phone         string `gorm:"type:varchar(50)"`
	Email         string `gorm:"type:varchar(255)"`
	Address       string `gorm:"type:varchar(500)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
