package report

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListFilter narrows and pages the report listing. A zero SalesPersonID
// means no owner restriction.
type ListFilter struct {
	SalesPersonID uint
	DateFrom      *time.Time
	DateTo        *time.Time
	Page          int
	PerPage       int
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, r *DailyReport) error
	CreateVisits(ctx context.Context, visits []VisitRecord) error
	DeleteVisitsByReport(ctx context.Context, reportID uint) error
	FindByID(ctx context.Context, id uint) (*DailyReport, error)
	FindPage(ctx context.Context, f ListFilter) ([]DailyReport, int64, error)
	ExistsByOwnerAndDate(ctx context.Context, ownerID uint, date time.Time) (bool, error)
	Update(ctx context.Context, r *DailyReport) error
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

func (r *repository) Create(ctx context.Context, report *DailyReport) error {
	// Visits are inserted separately so the service controls ordering
	// inside the transaction.
	return r.db.WithContext(ctx).Omit("Visits", "SalesPerson").Create(report).Error
}

func (r *repository) CreateVisits(ctx context.Context, visits []VisitRecord) error {
	if len(visits) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Customer").Create(&visits).Error
}

func (r *repository) DeleteVisitsByReport(ctx context.Context, reportID uint) error {
	return r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Delete(&VisitRecord{}).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*DailyReport, error) {
	var report DailyReport
	err := r.db.WithContext(ctx).
		Preload("SalesPerson").
		Preload("Visits.Customer").
		First(&report, "id = ?", id).Error
	return &report, err
}

func (r *repository) FindPage(ctx context.Context, f ListFilter) ([]DailyReport, int64, error) {
	base := r.db.WithContext(ctx).Model(&DailyReport{})
	if f.SalesPersonID != 0 {
		base = base.Where("sales_person_id = ?", f.SalesPersonID)
	}
	if f.DateFrom != nil {
		base = base.Where("report_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		base = base.Where("report_date <= ?", *f.DateTo)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []DailyReport
	err := base.
		Preload("SalesPerson").
		Preload("Visits.Customer").
		Order("report_date DESC, id DESC").
		Offset((f.Page - 1) * f.PerPage).
		Limit(f.PerPage).
		Find(&reports).Error
	return reports, total, err
}

func (r *repository) ExistsByOwnerAndDate(ctx context.Context, ownerID uint, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DailyReport{}).
		Where("sales_person_id = ?", ownerID).
		Where("report_date = ?", date).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, report *DailyReport) error {
	return r.db.WithContext(ctx).
		Omit("Visits", "SalesPerson").
		Save(report).Error
}

// Delete removes the report together with its visit records and comments.
// All three tables are touched inside the caller's transaction.
func (r *repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Exec("DELETE FROM manager_comments WHERE report_id = ?", id).Error; err != nil {
		return err
	}
	if err := r.DeleteVisitsByReport(ctx, id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&DailyReport{}, "id = ?", id).Error
}
