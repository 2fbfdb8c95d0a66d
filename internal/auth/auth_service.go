package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	autherrors "go-sales-report/internal/auth/errors"
	"go-sales-report/internal/salesperson"
	"go-sales-report/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const revokedKeyPrefix = "auth:revoked:"

type TokenConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetMe(ctx context.Context, id uint) (UserProfile, error)
}

type service struct {
	repo   salesperson.Repository
	rdb    *redis.Client
	tokens TokenConfig
	logger *zap.Logger
}

func NewService(repo salesperson.Repository, rdb *redis.Client, tokens TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, rdb: rdb, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	sp, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("login unknown email", zap.String("email", req.Email))
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return AuthResponse{}, err
	}

	if !sp.IsActive {
		s.logger.Warn("login on deactivated account", zap.Uint("sales_person_id", sp.ID))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(sp.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login password mismatch", zap.Uint("sales_person_id", sp.ID))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	resp, err := s.issueTokens(sp)
	if err != nil {
		s.logger.Error("login token issue failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("login success", zap.Uint("sales_person_id", sp.ID), zap.Bool("is_manager", sp.IsManager))
	return resp, nil
}

func (s *service) Refresh(ctx context.Context, req RefreshRequest) (AuthResponse, error) {
	claims, err := s.parseRefreshClaims(req.RefreshToken)
	if err != nil {
		return AuthResponse{}, err
	}

	if jti, _ := claims["jti"].(string); jti != "" && s.rdb != nil {
		revoked, err := s.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
		if err != nil {
			s.logger.Error("refresh revocation check failed", zap.Error(err))
			return AuthResponse{}, err
		}
		if revoked > 0 {
			return AuthResponse{}, apperror.ErrTokenInvalid
		}
	}

	sub, _ := claims["sub"].(float64)
	sp, err := s.repo.FindByID(ctx, uint(sub))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, apperror.ErrTokenInvalid
		}
		return AuthResponse{}, err
	}
	if !sp.IsActive {
		return AuthResponse{}, apperror.ErrTokenInvalid
	}

	access, err := s.signToken(sp, "access", s.tokens.AccessExpiry, "")
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokens.AccessExpiry.Seconds()),
		User:        profileOf(sp),
	}, nil
}

// Logout revokes the presented refresh token. Access tokens stay valid
// until their short expiry; only the refresh path consults the denylist.
func (s *service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.parseRefreshClaims(refreshToken)
	if err != nil {
		return err
	}

	jti, _ := claims["jti"].(string)
	if jti == "" || s.rdb == nil {
		return nil
	}

	ttl := time.Until(expiryOf(claims))
	if ttl <= 0 {
		return nil
	}

	if err := s.rdb.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err(); err != nil {
		s.logger.Error("logout revocation write failed", zap.Error(err))
		return err
	}
	s.logger.Info("logout success", zap.String("jti", jti))
	return nil
}

func (s *service) GetMe(ctx context.Context, id uint) (UserProfile, error) {
	sp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserProfile{}, apperror.ErrNotFound
		}
		return UserProfile{}, err
	}
	return profileOf(sp), nil
}

func (s *service) issueTokens(sp *salesperson.SalesPerson) (AuthResponse, error) {
	access, err := s.signToken(sp, "access", s.tokens.AccessExpiry, "")
	if err != nil {
		return AuthResponse{}, err
	}

	refresh, err := s.signToken(sp, "refresh", s.tokens.RefreshExpiry, uuid.New().String())
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.tokens.AccessExpiry.Seconds()),
		User:         profileOf(sp),
	}, nil
}

func (s *service) signToken(sp *salesperson.SalesPerson, tokenType string, expiry time.Duration, jti string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        float64(sp.ID),
		"email":      sp.Email,
		"name":       sp.Name,
		"department": sp.Department,
		"is_manager": sp.IsManager,
		"type":       tokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(expiry).Unix(),
	}
	if jti != "" {
		claims["jti"] = jti
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.tokens.Secret))
}

func (s *service) parseRefreshClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(s.tokens.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.ErrTokenInvalid
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, apperror.ErrTokenInvalid
	}
	return claims, nil
}

func expiryOf(claims jwt.MapClaims) time.Time {
	exp, _ := claims["exp"].(float64)
	return time.Unix(int64(exp), 0)
}

func profileOf(sp *salesperson.SalesPerson) UserProfile {
	return UserProfile{
		ID:         sp.ID,
		Name:       sp.Name,
		Email:      sp.Email,
		Department: sp.Department,
		IsManager:  sp.IsManager,
	}
}
