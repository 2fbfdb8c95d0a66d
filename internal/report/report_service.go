package report

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

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID uint, req CreateReportRequest) (ReportResponse, error)
	List(ctx context.Context, actorID uint, isManager bool, q ListReportsQuery) ([]ReportResponse, int64, error)
	GetByID(ctx context.Context, actorID uint, isManager bool, id uint) (ReportResponse, error)
	Update(ctx context.Context, actorID uint, id uint, req UpdateReportRequest) (ReportResponse, error)
	Delete(ctx context.Context, actorID uint, id uint) error
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
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{uow: txm, repo: repo, outbox: outbox, logger: l}
}

func (s *service) Create(ctx context.Context, actorID uint, req CreateReportRequest) (ReportResponse, error) {
	s.logger.Debug("create report requested",
		zap.Uint("actor_id", actorID),
		zap.String("report_date", req.ReportDate),
		zap.Int("visits", len(req.Visits)),
	)

	reportDate, err := parseDate(req.ReportDate)
	if err != nil {
		return ReportResponse{}, err
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("create report begin tx failed", zap.Error(err))
		return ReportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx.DB())

	exists, err := qtx.ExistsByOwnerAndDate(ctx, actorID, reportDate)
	if err != nil {
		s.logger.Error("create report duplicate check failed", zap.Error(err))
		return ReportResponse{}, err
	}
	if exists {
		s.logger.Warn("create report duplicate detected",
			zap.Uint("actor_id", actorID),
			zap.String("report_date", req.ReportDate),
		)
		return ReportResponse{}, reporterrors.ErrDuplicateReport
	}

	r := &DailyReport{
		SalesPersonID: actorID,
		ReportDate:    reportDate,
		Problem:       req.Problem,
		Plan:          req.Plan,
	}
	if err := qtx.Create(ctx, r); err != nil {
		s.logger.Error("create report persist failed", zap.Error(err))
		return ReportResponse{}, mapRepositoryError(err)
	}

	if err := qtx.CreateVisits(ctx, buildVisits(r.ID, req.Visits)); err != nil {
		s.logger.Error("create report visits persist failed", zap.Error(err))
		return ReportResponse{}, err
	}

	if err := s.appendReportEvent(ctx, tx.DB(), "report.submitted", r, len(req.Visits)); err != nil {
		s.logger.Error("create report outbox append failed", zap.Error(err))
		return ReportResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create report commit failed", zap.Error(err))
		return ReportResponse{}, err
	}
	s.logger.Info("create report success",
		zap.Uint("report_id", r.ID),
		zap.Uint("actor_id", actorID),
		zap.String("report_date", req.ReportDate),
	)

	return s.loadResponse(ctx, r.ID)
}

func (s *service) List(ctx context.Context, actorID uint, isManager bool, q ListReportsQuery) ([]ReportResponse, int64, error) {
	filter := ListFilter{Page: q.Page, PerPage: q.PerPage}

	// Non-managers only ever see their own reports; the sales_person_id
	// filter is a manager facility.
	if isManager {
		filter.SalesPersonID = q.SalesPersonID
	} else {
		filter.SalesPersonID = actorID
	}

	if q.DateFrom != "" {
		from, err := parseDate(q.DateFrom)
		if err != nil {
			return nil, 0, err
		}
		filter.DateFrom = &from
	}
	if q.DateTo != "" {
		to, err := parseDate(q.DateTo)
		if err != nil {
			return nil, 0, err
		}
		filter.DateTo = &to
	}

	reports, total, err := s.repo.FindPage(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]ReportResponse, len(reports))
	for i, r := range reports {
		resp[i] = mapToResponse(r)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, actorID uint, isManager bool, id uint) (ReportResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReportResponse{}, reporterrors.ErrReportNotFound
		}
		return ReportResponse{}, err
	}

	if !authz.CanReadReport(isManager, actorID, r.SalesPersonID) {
		return ReportResponse{}, reporterrors.ErrReportAccessDenied
	}

	return mapToResponse(*r), nil
}

func (s *service) Update(ctx context.Context, actorID uint, id uint, req UpdateReportRequest) (ReportResponse, error) {
	s.logger.Debug("update report requested",
		zap.Uint("report_id", id),
		zap.Uint("actor_id", actorID),
	)

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("update report begin tx failed", zap.Error(err))
		return ReportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx.DB())

	r, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReportResponse{}, reporterrors.ErrReportNotFound
		}
		return ReportResponse{}, err
	}

	if !authz.CanModifyReport(actorID, r.SalesPersonID) {
		return ReportResponse{}, reporterrors.ErrNotReportOwner
	}

	if req.Problem != nil {
		r.Problem = *req.Problem
	}
	if req.Plan != nil {
		r.Plan = *req.Plan
	}

	if err := qtx.Update(ctx, r); err != nil {
		s.logger.Error("update report persist failed", zap.Uint("report_id", id), zap.Error(err))
		return ReportResponse{}, err
	}

	// Supplied visits supersede the existing set in full; deletion and
	// re-insert share the field update's transaction.
	if req.Visits != nil {
		if err := qtx.DeleteVisitsByReport(ctx, id); err != nil {
			s.logger.Error("update report delete visits failed", zap.Uint("report_id", id), zap.Error(err))
			return ReportResponse{}, err
		}
		if err := qtx.CreateVisits(ctx, buildVisits(id, req.Visits)); err != nil {
			s.logger.Error("update report insert visits failed", zap.Uint("report_id", id), zap.Error(err))
			return ReportResponse{}, err
		}
	}

	if err := s.appendReportEvent(ctx, tx.DB(), "report.updated", r, len(req.Visits)); err != nil {
		s.logger.Error("update report outbox append failed", zap.Error(err))
		return ReportResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update report commit failed", zap.Uint("report_id", id), zap.Error(err))
		return ReportResponse{}, err
	}
	s.logger.Info("update report success", zap.Uint("report_id", id))

	return s.loadResponse(ctx, id)
}

func (s *service) Delete(ctx context.Context, actorID uint, id uint) error {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx.DB())

	r, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reporterrors.ErrReportNotFound
		}
		return err
	}

	if !authz.CanModifyReport(actorID, r.SalesPersonID) {
		return reporterrors.ErrNotReportOwner
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete report failed", zap.Uint("report_id", id), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("delete report success", zap.Uint("report_id", id))
	return nil
}

func (s *service) appendReportEvent(ctx context.Context, tx *gorm.DB, eventType string, r *DailyReport, visitCount int) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.ReportSubmittedEvent{
		EventType:     eventType,
		ReportID:      r.ID,
		SalesPersonID: r.SalesPersonID,
		ReportDate:    r.ReportDate.Format("2006-01-02"),
		VisitCount:    visitCount,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "daily_report",
		AggregateID:   strconv.FormatUint(uint64(r.ID), 10),
		EventType:     eventType,
		Topic:         events.ReportLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) loadResponse(ctx context.Context, id uint) (ReportResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ReportResponse{}, err
	}
	return mapToResponse(*r), nil
}

func buildVisits(reportID uint, reqs []VisitRecordRequest) []VisitRecord {
	visits := make([]VisitRecord, len(reqs))
	for i, v := range reqs {
		visits[i] = VisitRecord{
			ReportID:     reportID,
			CustomerID:   v.CustomerID,
			VisitTime:    v.VisitTime,
			VisitContent: v.VisitContent,
		}
	}
	return visits
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, reporterrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(r DailyReport) ReportResponse {
	resp := ReportResponse{
		ID:            r.ID,
		SalesPersonID: r.SalesPersonID,
		ReportDate:    r.ReportDate.Format("2006-01-02"),
		Problem:       r.Problem,
		Plan:          r.Plan,
		Visits:        make([]VisitRecordResponse, len(r.Visits)),
	}
	if r.SalesPerson != nil {
		resp.SalesPersonName = r.SalesPerson.Name
	}
	for i, v := range r.Visits {
		vr := VisitRecordResponse{
			ID:           v.ID,
			CustomerID:   v.CustomerID,
			VisitTime:    v.VisitTime,
			VisitContent: v.VisitContent,
		}
		if v.Customer != nil {
			vr.CustomerName = v.Customer.CompanyName
		}
		resp.Visits[i] = vr
	}
	return resp
}
