package customer

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=customer_repo.go -destination=mock/customer_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, cust *Customer) error
	FindAll(ctx context.Context) ([]Customer, error)
	FindByID(ctx context.Context, id uint) (*Customer, error)
	Update(ctx context.Context, cust *Customer) error
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

func (r *repository) Create(ctx context.Context, cust *Customer) error {
	return r.db.WithContext(ctx).Create(cust).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	err := r.db.WithContext(ctx).
		Order("company_name ASC").
		Find(&customers).Error
	return customers, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Customer, error) {
	var cust Customer
	err := r.db.WithContext(ctx).First(&cust, "id = ?", id).Error
	return &cust, err
}

func (r *repository) Update(ctx context.Context, cust *Customer) error {
	return r.db.WithContext(ctx).Save(cust).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Customer{}, "id = ?", id).Error
}
