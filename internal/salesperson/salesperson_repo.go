package salesperson

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salesperson_repo.go -destination=mock/salesperson_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, sp *SalesPerson) error
	FindAll(ctx context.Context) ([]SalesPerson, error)
	FindByID(ctx context.Context, id uint) (*SalesPerson, error)
	FindByEmail(ctx context.Context, email string) (*SalesPerson, error)
	Update(ctx context.Context, sp *SalesPerson) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, sp *SalesPerson) error {
	return r.db.WithContext(ctx).Create(sp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]SalesPerson, error) {
	var people []SalesPerson
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&people).Error
	return people, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*SalesPerson, error) {
	var sp SalesPerson
	err := r.db.WithContext(ctx).First(&sp, "id = ?", id).Error
	return &sp, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*SalesPerson, error) {
	var sp SalesPerson
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&sp).Error
	return &sp, err
}

func (r *repository) Update(ctx context.Context, sp *SalesPerson) error {
	return r.db.WithContext(ctx).Save(sp).Error
}

// Delete is a soft delete; rows are never physically destroyed.
func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&SalesPerson{}, "id = ?", id).Error
}
