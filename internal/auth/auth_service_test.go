package auth_test

import (
	"context"
	"testing"
	"time"

	"go-sales-report/internal/auth"
	"go-sales-report/internal/salesperson"
	"go-sales-report/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeSalesPersonRepository struct {
	findByEmailFn func(ctx context.Context, email string) (*salesperson.SalesPerson, error)
	findByIDFn    func(ctx context.Context, id uint) (*salesperson.SalesPerson, error)
}

func (f *fakeSalesPersonRepository) WithTx(tx *gorm.DB) salesperson.Repository { return f }
func (f *fakeSalesPersonRepository) Create(ctx context.Context, sp *salesperson.SalesPerson) error {
	return nil
}
func (f *fakeSalesPersonRepository) FindAll(ctx context.Context) ([]salesperson.SalesPerson, error) {
	return nil, nil
}
func (f *fakeSalesPersonRepository) FindByID(ctx context.Context, id uint) (*salesperson.SalesPerson, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeSalesPersonRepository) FindByEmail(ctx context.Context, email string) (*salesperson.SalesPerson, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeSalesPersonRepository) Update(ctx context.Context, sp *salesperson.SalesPerson) error {
	return nil
}
func (f *fakeSalesPersonRepository) Delete(ctx context.Context, id uint) error { return nil }

var testTokens = auth.TokenConfig{
	Secret:        "test-secret",
	AccessExpiry:  time.Hour,
	RefreshExpiry: 24 * time.Hour,
}

func activeSalesPerson(t *testing.T, password string) *salesperson.SalesPerson {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &salesperson.SalesPerson{
		ID:           7,
		Name:         "Yamada Taro",
		Email:        "yamada@example.com",
		PasswordHash: string(hash),
		Department:   "Sales Dept 1",
		IsManager:    false,
		IsActive:     true,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues both tokens", func(t *testing.T) {
		sp := activeSalesPerson(t, "password123")
		repo := &fakeSalesPersonRepository{
			findByEmailFn: func(ctx context.Context, email string) (*salesperson.SalesPerson, error) {
				assert.Equal(t, "yamada@example.com", email)
				return sp, nil
			},
		}

		svc := auth.NewService(repo, nil, testTokens)
		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "yamada@example.com", Password: "password123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, 3600, resp.ExpiresIn)
		assert.Equal(t, uint(7), resp.User.ID)
		assert.False(t, resp.User.IsManager)

		token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte(testTokens.Secret), nil
		})
		assert.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, float64(7), claims["sub"])
		assert.Equal(t, "yamada@example.com", claims["email"])
		assert.Equal(t, false, claims["is_manager"])
		assert.Equal(t, "access", claims["type"])
	})

	t.Run("negative wrong password", func(t *testing.T) {
		sp := activeSalesPerson(t, "password123")
		repo := &fakeSalesPersonRepository{
			findByEmailFn: func(ctx context.Context, email string) (*salesperson.SalesPerson, error) {
				return sp, nil
			},
		}

		svc := auth.NewService(repo, nil, testTokens)
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "yamada@example.com", Password: "wrong"})

		assert.Error(t, err)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, "INVALID_CREDENTIALS", httpErr.Code)
		assert.Equal(t, 401, httpErr.Status)
	})

	t.Run("negative unknown email uses same code", func(t *testing.T) {
		svc := auth.NewService(&fakeSalesPersonRepository{}, nil, testTokens)
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ghost@example.com", Password: "password123"})

		assert.Error(t, err)
		assert.Equal(t, "INVALID_CREDENTIALS", apperror.ToHTTP(err).Code)
	})

	t.Run("negative deactivated account", func(t *testing.T) {
		sp := activeSalesPerson(t, "password123")
		sp.IsActive = false
		repo := &fakeSalesPersonRepository{
			findByEmailFn: func(ctx context.Context, email string) (*salesperson.SalesPerson, error) {
				return sp, nil
			},
		}

		svc := auth.NewService(repo, nil, testTokens)
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "yamada@example.com", Password: "password123"})

		assert.Error(t, err)
		assert.Equal(t, "INVALID_CREDENTIALS", apperror.ToHTTP(err).Code)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("success mints a new access token", func(t *testing.T) {
		sp := activeSalesPerson(t, "password123")
		repo := &fakeSalesPersonRepository{
			findByEmailFn: func(ctx context.Context, email string) (*salesperson.SalesPerson, error) {
				return sp, nil
			},
			findByIDFn: func(ctx context.Context, id uint) (*salesperson.SalesPerson, error) {
				assert.Equal(t, uint(7), id)
				return sp, nil
			},
		}

		svc := auth.NewService(repo, nil, testTokens)
		login, err := svc.Login(ctx, auth.LoginRequest{Email: "yamada@example.com", Password: "password123"})
		assert.NoError(t, err)

		resp, err := svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.RefreshToken})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Empty(t, resp.RefreshToken)
	})

	t.Run("negative access token is rejected", func(t *testing.T) {
		sp := activeSalesPerson(t, "password123")
		repo := &fakeSalesPersonRepository{
			findByEmailFn: func(ctx context.Context, email string) (*salesperson.SalesPerson, error) {
				return sp, nil
			},
		}

		svc := auth.NewService(repo, nil, testTokens)
		login, err := svc.Login(ctx, auth.LoginRequest{Email: "yamada@example.com", Password: "password123"})
		assert.NoError(t, err)

		_, err = svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.AccessToken})

		assert.Error(t, err)
		assert.Equal(t, "AUTH_TOKEN_INVALID", apperror.ToHTTP(err).Code)
	})

	t.Run("negative garbage token", func(t *testing.T) {
		svc := auth.NewService(&fakeSalesPersonRepository{}, nil, testTokens)
		_, err := svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: "not-a-jwt"})

		assert.Error(t, err)
		assert.Equal(t, "AUTH_TOKEN_INVALID", apperror.ToHTTP(err).Code)
	})

	t.Run("negative deactivated account", func(t *testing.T) {
		sp := activeSalesPerson(t, "password123")
		repo := &fakeSalesPersonRepository{
			findByEmailFn: func(ctx context.Context, email string) (*salesperson.SalesPerson, error) {
				return sp, nil
			},
			findByIDFn: func(ctx context.Context, id uint) (*salesperson.SalesPerson, error) {
				deactivated := *sp
				deactivated.IsActive = false
				return &deactivated, nil
			},
		}

		svc := auth.NewService(repo, nil, testTokens)
		login, err := svc.Login(ctx, auth.LoginRequest{Email: "yamada@example.com", Password: "password123"})
		assert.NoError(t, err)

		_, err = svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.RefreshToken})

		assert.Error(t, err)
		assert.Equal(t, "AUTH_TOKEN_INVALID", apperror.ToHTTP(err).Code)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		sp := activeSalesPerson(t, "password123")
		repo := &fakeSalesPersonRepository{
			findByIDFn: func(ctx context.Context, id uint) (*salesperson.SalesPerson, error) {
				return sp, nil
			},
		}

		svc := auth.NewService(repo, nil, testTokens)
		profile, err := svc.GetMe(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, uint(7), profile.ID)
		assert.Equal(t, "Yamada Taro", profile.Name)
		assert.Equal(t, "Sales Dept 1", profile.Department)
	})

	t.Run("negative unknown id", func(t *testing.T) {
		svc := auth.NewService(&fakeSalesPersonRepository{}, nil, testTokens)
		_, err := svc.GetMe(ctx, 404)

		assert.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperror.ToHTTP(err).Code)
	})
}
