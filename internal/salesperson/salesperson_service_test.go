package salesperson_test

import (
	"context"
	"testing"

	"go-sales-report/internal/salesperson"
	salespersonerrors "go-sales-report/internal/salesperson/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepository struct {
	createFn      func(ctx context.Context, sp *salesperson.SalesPerson) error
	findAllFn     func(ctx context.Context) ([]salesperson.SalesPerson, error)
	findByIDFn    func(ctx context.Context, id uint) (*salesperson.SalesPerson, error)
	findByEmailFn func(ctx context.Context, email string) (*salesperson.SalesPerson, error)
	updateFn      func(ctx context.Context, sp *salesperson.SalesPerson) error
	deleteFn      func(ctx context.Context, id uint) error
}

func (f *fakeRepository) WithTx(tx *gorm.DB) salesperson.Repository { return f }
func (f *fakeRepository) Create(ctx context.Context, sp *salesperson.SalesPerson) error {
	if f.createFn != nil {
		return f.createFn(ctx, sp)
	}
	return nil
}
func (f *fakeRepository) FindAll(ctx context.Context) ([]salesperson.SalesPerson, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}
func (f *fakeRepository) FindByID(ctx context.Context, id uint) (*salesperson.SalesPerson, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRepository) FindByEmail(ctx context.Context, email string) (*salesperson.SalesPerson, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRepository) Update(ctx context.Context, sp *salesperson.SalesPerson) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, sp)
	}
	return nil
}
func (f *fakeRepository) Delete(ctx context.Context, id uint) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func TestSalesPersonService_Create(t *testing.T) {
	ctx := context.Background()
	req := salesperson.CreateSalesPersonRequest{
		Name:       "Suzuki Hanako",
		Email:      "suzuki@example.com",
		Password:   "password123",
		Department: "Sales Dept 2",
	}

	t.Run("success hashes the password", func(t *testing.T) {
		repo := &fakeRepository{
			createFn: func(ctx context.Context, sp *salesperson.SalesPerson) error {
				assert.NotEqual(t, req.Password, sp.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(sp.PasswordHash), []byte(req.Password)))
				assert.True(t, sp.IsActive)
				sp.ID = 3
				return nil
			},
		}

		svc := salesperson.NewService(repo)
		resp, err := svc.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(3), resp.ID)
		assert.Equal(t, "suzuki@example.com", resp.Email)
	})

	t.Run("negative duplicate email from unique index", func(t *testing.T) {
		repo := &fakeRepository{
			createFn: func(ctx context.Context, sp *salesperson.SalesPerson) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_sales_persons_email"}
			},
		}

		svc := salesperson.NewService(repo)
		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, salespersonerrors.ErrDuplicateEmail)
	})
}

func TestSalesPersonService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *salesperson.SalesPerson {
		return &salesperson.SalesPerson{
			ID:           3,
			Name:         "Suzuki Hanako",
			Email:        "suzuki@example.com",
			PasswordHash: "old-hash",
			Department:   "Sales Dept 2",
			IsActive:     true,
		}
	}

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		newName := "Suzuki H."
		repo := &fakeRepository{
			findByIDFn: func(ctx context.Context, id uint) (*salesperson.SalesPerson, error) {
				return existing(), nil
			},
			updateFn: func(ctx context.Context, sp *salesperson.SalesPerson) error {
				assert.Equal(t, newName, sp.Name)
				assert.Equal(t, "suzuki@example.com", sp.Email)
				assert.Equal(t, "old-hash", sp.PasswordHash)
				return nil
			},
		}

		svc := salesperson.NewService(repo)
		resp, err := svc.Update(ctx, 3, salesperson.UpdateSalesPersonRequest{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, newName, resp.Name)
	})

	t.Run("password change rehashes", func(t *testing.T) {
		newPassword := "newpassword456"
		repo := &fakeRepository{
			findByIDFn: func(ctx context.Context, id uint) (*salesperson.SalesPerson, error) {
				return existing(), nil
			},
			updateFn: func(ctx context.Context, sp *salesperson.SalesPerson) error {
				assert.NotEqual(t, "old-hash", sp.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(sp.PasswordHash), []byte(newPassword)))
				return nil
			},
		}

		svc := salesperson.NewService(repo)
		_, err := svc.Update(ctx, 3, salesperson.UpdateSalesPersonRequest{Password: &newPassword})

		assert.NoError(t, err)
	})

	t.Run("negative unknown id", func(t *testing.T) {
		svc := salesperson.NewService(&fakeRepository{})
		name := "x"
		_, err := svc.Update(ctx, 404, salesperson.UpdateSalesPersonRequest{Name: &name})

		assert.ErrorIs(t, err, salespersonerrors.ErrSalesPersonNotFound)
	})
}

func TestSalesPersonService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deleted := false
		repo := &fakeRepository{
			findByIDFn: func(ctx context.Context, id uint) (*salesperson.SalesPerson, error) {
				return &salesperson.SalesPerson{ID: 3}, nil
			},
			deleteFn: func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			},
		}

		svc := salesperson.NewService(repo)
		err := svc.Delete(ctx, 3)

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("negative unknown id", func(t *testing.T) {
		svc := salesperson.NewService(&fakeRepository{})
		err := svc.Delete(ctx, 404)

		assert.ErrorIs(t, err, salespersonerrors.ErrSalesPersonNotFound)
	})
}

func TestSalesPersonService_GetAll(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepository{
		findAllFn: func(ctx context.Context) ([]salesperson.SalesPerson, error) {
			return []salesperson.SalesPerson{
				{ID: 1, Name: "Sato Kenji", IsManager: true, IsActive: true},
				{ID: 2, Name: "Yamada Taro", IsActive: true},
			}, nil
		},
	}

	svc := salesperson.NewService(repo)
	resp, err := svc.GetAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.True(t, resp[0].IsManager)

	for _, r := range resp {
		assert.True(t, r.IsActive)
	}
}
