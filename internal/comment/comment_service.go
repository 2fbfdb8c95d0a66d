package comment

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go-sales-report/internal/authz"
	"go-sales-report/internal/events"
	"go-sales-report/internal/messaging/kafka"
	reporterrors "go-sales-report/internal/report/errors"
	"go-sales-report/internal/shared/contextutil"
	"go-sales-report/internal/shared/uow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=comment_service.go -destination=mock/comment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, managerID uint, reportID uint, req CreateCommentRequest) (CommentResponse, error)
	ListByReport(ctx context.Context, actorID uint, isManager bool, reportID uint) ([]CommentResponse, error)
}

type service struct {
	uow    uow.Manager
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(txm uow.Manager, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(txm, repo, nil, logger...)
}

func NewServiceWithOutbox(txm uow.Manager, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("comment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("comment.service")
	}
	return &service{uow: txm, repo: repo, outbox: outbox, logger: l}
}

func (s *service) Create(ctx context.Context, managerID uint, reportID uint, req CreateCommentRequest) (CommentResponse, error) {
	s.logger.Debug("create comment requested",
		zap.Uint("report_id", reportID),
		zap.Uint("manager_id", managerID),
	)

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("create comment begin tx failed", zap.Error(err))
		return CommentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx.DB())

	ownerID, err := qtx.FindReportOwner(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CommentResponse{}, reporterrors.ErrReportNotFound
		}
		return CommentResponse{}, err
	}

	mc := &ManagerComment{
		ReportID:  reportID,
		ManagerID: managerID,
		Comment:   req.Comment,
	}
	if err := qtx.Create(ctx, mc); err != nil {
		s.logger.Error("create comment persist failed", zap.Error(err))
		return CommentResponse{}, err
	}

	if err := s.appendCommentEvent(ctx, tx.DB(), mc, ownerID); err != nil {
		s.logger.Error("create comment outbox append failed", zap.Error(err))
		return CommentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create comment commit failed", zap.Error(err))
		return CommentResponse{}, err
	}
	s.logger.Info("create comment success",
		zap.Uint("comment_id", mc.ID),
		zap.Uint("report_id", reportID),
		zap.Uint("manager_id", managerID),
	)

	created, err := s.repo.FindByID(ctx, mc.ID)
	if err != nil {
		return CommentResponse{}, err
	}
	return mapToResponse(*created), nil
}

func (s *service) ListByReport(ctx context.Context, actorID uint, isManager bool, reportID uint) ([]CommentResponse, error) {
	ownerID, err := s.repo.FindReportOwner(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reporterrors.ErrReportNotFound
		}
		return nil, err
	}

	if !authz.CanReadReport(isManager, actorID, ownerID) {
		return nil, reporterrors.ErrReportAccessDenied
	}

	comments, err := s.repo.FindByReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	resp := make([]CommentResponse, len(comments))
	for i, mc := range comments {
		resp[i] = mapToResponse(mc)
	}
	return resp, nil
}

func (s *service) appendCommentEvent(ctx context.Context, tx *gorm.DB, mc *ManagerComment, ownerID uint) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.CommentAddedEvent{
		EventType:     "comment.added",
		CommentID:     mc.ID,
		ReportID:      mc.ReportID,
		ManagerID:     mc.ManagerID,
		ReportOwnerID: ownerID,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "manager_comment",
		AggregateID:   strconv.FormatUint(uint64(mc.ID), 10),
		EventType:     "comment.added",
		Topic:         events.CommentTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(mc ManagerComment) CommentResponse {
	resp := CommentResponse{
		ID:        mc.ID,
		ReportID:  mc.ReportID,
		ManagerID: mc.ManagerID,
		Comment:   mc.Comment,
		CreatedAt: mc.CreatedAt,
	}
	if mc.Manager != nil {
		resp.ManagerName = mc.Manager.Name
	}
	return resp
}
