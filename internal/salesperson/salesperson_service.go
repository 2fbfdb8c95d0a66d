package salesperson

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=salesperson_service.go -destination=mock/salesperson_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalesPersonRequest) (SalesPersonResponse, error)
	GetAll(ctx context.Context) ([]SalesPersonResponse, error)
	GetByID(ctx context.Context, id uint) (SalesPersonResponse, error)
	Update(ctx context.Context, id uint, req UpdateSalesPersonRequest) (SalesPersonResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salesperson.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salesperson.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSalesPersonRequest) (SalesPersonResponse, error) {
	s.logger.Debug("create sales person requested", zap.String("email", req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create sales person hash failed", zap.Error(err))
		return SalesPersonResponse{}, err
	}

	sp := &SalesPerson{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Department:   req.Department,
		IsManager:    req.IsManager,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		mapped := mapRepositoryError(err)
		s.logger.Warn("create sales person persist failed", zap.String("email", req.Email), zap.Error(err))
		return SalesPersonResponse{}, mapped
	}

	s.logger.Info("create sales person success", zap.Uint("sales_person_id", sp.ID))
	return mapToResponse(*sp), nil
}

func (s *service) GetAll(ctx context.Context) ([]SalesPersonResponse, error) {
	people, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]SalesPersonResponse, len(people))
	for i, sp := range people {
		resp[i] = mapToResponse(sp)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (SalesPersonResponse, error) {
	sp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SalesPersonResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*sp), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateSalesPersonRequest) (SalesPersonResponse, error) {
	sp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SalesPersonResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		sp.Name = *req.Name
	}
	if req.Email != nil {
		sp.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return SalesPersonResponse{}, err
		}
		sp.PasswordHash = string(hashed)
	}
	if req.Department != nil {
		sp.Department = *req.Department
	}
	if req.IsManager != nil {
		sp.IsManager = *req.IsManager
	}
	if req.IsActive != nil {
		sp.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, sp); err != nil {
		mapped := mapRepositoryError(err)
		s.logger.Warn("update sales person persist failed", zap.Uint("sales_person_id", id), zap.Error(err))
		return SalesPersonResponse{}, mapped
	}

	s.logger.Info("update sales person success", zap.Uint("sales_person_id", id))
	return mapToResponse(*sp), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("delete sales person success", zap.Uint("sales_person_id", id))
	return nil
}

func mapToResponse(sp SalesPerson) SalesPersonResponse {
	return SalesPersonResponse{
		ID:         sp.ID,
		Name:       sp.Name,
		Email:      sp.Email,
		Department: sp.Department,
		IsManager:  sp.IsManager,
		IsActive:   sp.IsActive,
	}
}
