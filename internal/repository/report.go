package repository

import (
	"context"

	"tastemap/internal/models"

	"gorm.io/gorm"
)

// ReportRepository defines the interface for report data operations
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uint) (*models.Report, error)
	List(ctx context.Context, unreadOnly bool) ([]*models.Report, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkSeen(ctx context.Context, id uint) error
	Resolve(ctx context.Context, id uint) error
	DeleteByPost(ctx context.Context, postID uint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).
		Preload("Post").
		Preload("ReportedBy").
		First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) List(ctx context.Context, unreadOnly bool) ([]*models.Report, error) {
	var reports []*models.Report
	q := r.db.WithContext(ctx).
		Preload("Post").
		Preload("ReportedBy")
	if unreadOnly {
		q = q.Where("seen_by_admin = ?", false)
	}
	err := q.Order("created_at DESC").Find(&reports).Error
	return reports, err
}

func (r *reportRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("seen_by_admin = ?", false).
		Count(&count).Error
	return count, err
}

func (r *reportRepository) MarkSeen(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ?", id).
		Update("seen_by_admin", true).Error
}

// Resolve closes the report and forces the seen flag so a resolved report
// can never count as unread.
func (r *reportRepository) Resolve(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.ReportStatusResolved,
			"seen_by_admin": true,
		}).Error
}

func (r *reportRepository) DeleteByPost(ctx context.Context, postID uint) error {
	return r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&models.Report{}).Error
}

func (r *reportRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("reported_by_id = ?", userID).
		Delete(&models.Report{}).Error
}
