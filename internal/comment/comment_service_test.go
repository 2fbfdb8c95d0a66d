package comment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-sales-report/internal/comment"
	"go-sales-report/internal/messaging/kafka"
	reporterrors "go-sales-report/internal/report/errors"
	"go-sales-report/internal/salesperson"
	"go-sales-report/internal/shared/uow"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (f *fakeTx) DB() *gorm.DB { return nil }
func (f *fakeTx) Commit() error {
	f.committed = true
	return nil
}
func (f *fakeTx) Rollback() error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type fakeTxManager struct {
	tx *fakeTx
}

func (f *fakeTxManager) Begin(ctx context.Context) (uow.Tx, error) {
	if f.tx == nil {
		f.tx = &fakeTx{}
	}
	return f.tx, nil
}

type fakeCommentRepository struct {
	createFn          func(ctx context.Context, mc *comment.ManagerComment) error
	findByIDFn        func(ctx context.Context, id uint) (*comment.ManagerComment, error)
	findByReportFn    func(ctx context.Context, reportID uint) ([]comment.ManagerComment, error)
	findReportOwnerFn func(ctx context.Context, reportID uint) (uint, error)
}

func (f *fakeCommentRepository) WithTx(tx *gorm.DB) comment.Repository { return f }

func (f *fakeCommentRepository) Create(ctx context.Context, mc *comment.ManagerComment) error {
	if f.createFn != nil {
		return f.createFn(ctx, mc)
	}
	return nil
}

func (f *fakeCommentRepository) FindByID(ctx context.Context, id uint) (*comment.ManagerComment, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCommentRepository) FindByReport(ctx context.Context, reportID uint) ([]comment.ManagerComment, error) {
	if f.findByReportFn != nil {
		return f.findByReportFn(ctx, reportID)
	}
	return nil, nil
}

func (f *fakeCommentRepository) FindReportOwner(ctx context.Context, reportID uint) (uint, error) {
	if f.findReportOwnerFn != nil {
		return f.findReportOwnerFn(ctx, reportID)
	}
	return 0, gorm.ErrRecordNotFound
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id, reason string) error { return nil }

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	req := comment.CreateCommentRequest{Comment: "Good recovery plan, follow up by Friday"}

	t.Run("success", func(t *testing.T) {
		txm := &fakeTxManager{}
		outbox := &fakeOutboxRepository{}
		repo := &fakeCommentRepository{
			findReportOwnerFn: func(ctx context.Context, reportID uint) (uint, error) {
				assert.Equal(t, uint(42), reportID)
				return 7, nil
			},
			createFn: func(ctx context.Context, mc *comment.ManagerComment) error {
				assert.Equal(t, uint(42), mc.ReportID)
				assert.Equal(t, uint(99), mc.ManagerID)
				mc.ID = 5
				return nil
			},
			findByIDFn: func(ctx context.Context, id uint) (*comment.ManagerComment, error) {
				return &comment.ManagerComment{
					ID:        5,
					ReportID:  42,
					ManagerID: 99,
					Comment:   req.Comment,
					CreatedAt: time.Now(),
					Manager:   &salesperson.SalesPerson{ID: 99, Name: "Sato Kenji"},
				}, nil
			},
		}

		svc := comment.NewServiceWithOutbox(txm, repo, outbox)
		resp, err := svc.Create(ctx, 99, 42, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(5), resp.ID)
		assert.Equal(t, "Sato Kenji", resp.ManagerName)
		assert.True(t, txm.tx.committed)
		assert.Len(t, outbox.created, 1)
		assert.Equal(t, "comment.added", outbox.created[0].EventType)
	})

	t.Run("negative missing report", func(t *testing.T) {
		txm := &fakeTxManager{}
		svc := comment.NewService(txm, &fakeCommentRepository{})
		_, err := svc.Create(ctx, 99, 42, req)

		assert.ErrorIs(t, err, reporterrors.ErrReportNotFound)
		assert.True(t, txm.tx.rolledBack)
	})

	t.Run("negative persist failure", func(t *testing.T) {
		repo := &fakeCommentRepository{
			findReportOwnerFn: func(ctx context.Context, reportID uint) (uint, error) {
				return 7, nil
			},
			createFn: func(ctx context.Context, mc *comment.ManagerComment) error {
				return errors.New("db down")
			},
		}

		txm := &fakeTxManager{}
		svc := comment.NewService(txm, repo)
		_, err := svc.Create(ctx, 99, 42, req)

		assert.Error(t, err)
		assert.True(t, txm.tx.rolledBack)
	})
}

func TestCommentService_ListByReport(t *testing.T) {
	ctx := context.Background()

	comments := []comment.ManagerComment{
		{ID: 1, ReportID: 42, ManagerID: 99, Comment: "First"},
		{ID: 2, ReportID: 42, ManagerID: 99, Comment: "Second"},
	}

	t.Run("owner reads comments on own report", func(t *testing.T) {
		repo := &fakeCommentRepository{
			findReportOwnerFn: func(ctx context.Context, reportID uint) (uint, error) {
				return 7, nil
			},
			findByReportFn: func(ctx context.Context, reportID uint) ([]comment.ManagerComment, error) {
				return comments, nil
			},
		}

		svc := comment.NewService(&fakeTxManager{}, repo)
		resp, err := svc.ListByReport(ctx, 7, false, 42)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "First", resp[0].Comment)
	})

	t.Run("manager reads comments on any report", func(t *testing.T) {
		repo := &fakeCommentRepository{
			findReportOwnerFn: func(ctx context.Context, reportID uint) (uint, error) {
				return 7, nil
			},
			findByReportFn: func(ctx context.Context, reportID uint) ([]comment.ManagerComment, error) {
				return comments, nil
			},
		}

		svc := comment.NewService(&fakeTxManager{}, repo)
		_, err := svc.ListByReport(ctx, 99, true, 42)

		assert.NoError(t, err)
	})

	t.Run("negative other sales person is denied", func(t *testing.T) {
		repo := &fakeCommentRepository{
			findReportOwnerFn: func(ctx context.Context, reportID uint) (uint, error) {
				return 7, nil
			},
		}

		svc := comment.NewService(&fakeTxManager{}, repo)
		_, err := svc.ListByReport(ctx, 8, false, 42)

		assert.ErrorIs(t, err, reporterrors.ErrReportAccessDenied)
	})

	t.Run("negative missing report", func(t *testing.T) {
		svc := comment.NewService(&fakeTxManager{}, &fakeCommentRepository{})
		_, err := svc.ListByReport(ctx, 7, false, 42)

		assert.ErrorIs(t, err, reporterrors.ErrReportNotFound)
	})
}
