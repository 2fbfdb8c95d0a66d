package comment

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=comment_repo.go -destination=mock/comment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, mc *ManagerComment) error
	FindByID(ctx context.Context, id uint) (*ManagerComment, error)
	FindByReport(ctx context.Context, reportID uint) ([]ManagerComment, error)
	FindReportOwner(ctx context.Context, reportID uint) (uint, error)
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

func (r *repository) Create(ctx context.Context, mc *ManagerComment) error {
	return r.db.WithContext(ctx).Omit("Manager").Create(mc).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*ManagerComment, error) {
	var mc ManagerComment
	err := r.db.WithContext(ctx).
		Preload("Manager").
		First(&mc, "id = ?", id).Error
	return &mc, err
}

func (r *repository) FindByReport(ctx context.Context, reportID uint) ([]ManagerComment, error) {
	var comments []ManagerComment
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Where("report_id = ?", reportID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}

// FindReportOwner resolves the authoring sales person of a report without
// pulling the report aggregate into this package.
func (r *repository) FindReportOwner(ctx context.Context, reportID uint) (uint, error) {
	var ownerID uint
	err := r.db.WithContext(ctx).
		Raw("SELECT sales_person_id FROM daily_reports WHERE id = ?", reportID).
		Scan(&ownerID).Error
	if err != nil {
		return 0, err
	}
	if ownerID == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return ownerID, nil
}
