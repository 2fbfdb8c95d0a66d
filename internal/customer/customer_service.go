package customer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	customererrors "go-sales-report/internal/customer/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// OptionsCacheKey holds the customer picker list used by visit-record forms;
// invalidated on every mutation.
const OptionsCacheKey = "customers:options"

const optionsCacheTTL = 10 * time.Minute

//go:generate mockgen -source=customer_service.go -destination=mock/customer_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error)
	GetAll(ctx context.Context) ([]CustomerResponse, error)
	GetOptions(ctx context.Context) ([]CustomerOption, error)
	GetByID(ctx context.Context, id uint) (CustomerResponse, error)
	Update(ctx context.Context, id uint, req UpdateCustomerRequest) (CustomerResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("customer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("customer.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error) {
	cust := &Customer{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
	}

	if err := s.repo.Create(ctx, cust); err != nil {
		s.logger.Error("create customer persist failed", zap.Error(err))
		return CustomerResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("create customer success", zap.Uint("customer_id", cust.ID))
	return mapToResponse(*cust), nil
}

func (s *service) GetAll(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]CustomerResponse, len(customers))
	for i, cust := range customers {
		resp[i] = mapToResponse(cust)
	}
	return resp, nil
}

// GetOptions serves the picker list from redis; cache misses are collapsed
// with singleflight so one query refills the key under load.
func (s *service) GetOptions(ctx context.Context) ([]CustomerOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Bytes(); err == nil {
			var options []CustomerOption
			if err := json.Unmarshal(cached, &options); err == nil {
				return options, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (any, error) {
		customers, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		options := make([]CustomerOption, len(customers))
		for i, cust := range customers {
			options[i] = CustomerOption{ID: cust.ID, CompanyName: cust.CompanyName}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(options); err == nil {
				_ = s.rdb.Set(ctx, OptionsCacheKey, payload, optionsCacheTTL).Err()
			}
		}
		return options, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]CustomerOption), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (CustomerResponse, error) {
	cust, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CustomerResponse{}, customererrors.ErrCustomerNotFound
		}
		return CustomerResponse{}, err
	}
	return mapToResponse(*cust), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateCustomerRequest) (CustomerResponse, error) {
	cust, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CustomerResponse{}, customererrors.ErrCustomerNotFound
		}
		return CustomerResponse{}, err
	}

	if req.CompanyName != nil {
		cust.CompanyName = *req.CompanyName
	}
	if req.ContactPerson != nil {
		cust.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		cust.Phone = *req.Phone
	}
	if req.Email != nil {
		cust.Email = *req.Email
	}
	if req.Address != nil {
		cust.Address = *req.Address
	}

	if err := s.repo.Update(ctx, cust); err != nil {
		s.logger.Error("update customer persist failed", zap.Uint("customer_id", id), zap.Error(err))
		return CustomerResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("update customer success", zap.Uint("customer_id", id))
	return mapToResponse(*cust), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customererrors.ErrCustomerNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("delete customer success", zap.Uint("customer_id", id))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Warn("invalidate customer options cache failed", zap.Error(err))
	}
}

func mapToResponse(cust Customer) CustomerResponse {
	return CustomerResponse{
		ID:            cust.ID,
		CompanyName:   cust.CompanyName,
		ContactPerson: cust.ContactPerson,
		Phone:         cust.Phone,
		Email:         cust.Email,
		Address:       cust.Address,
	}
}
