package service

import (
	"context"
	"errors"
	"strings"

	"tastemap/internal/models"
	"tastemap/internal/repository"

	"gorm.io/gorm"
)

type ReportService struct {
	reportRepo repository.ReportRepository
	postRepo   repository.PostRepository
}

// ReportList pairs the (possibly filtered) report list with the unread
// counter. The counter always uses the seen_by_admin = false predicate, the
// same one the unread filter applies to the list.
type ReportList struct {
	Reports     []*models.Report
	UnreadCount int64
}

func NewReportService(reportRepo repository.ReportRepository, postRepo repository.PostRepository) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		postRepo:   postRepo,
	}
}

func (s *ReportService) CreateReport(ctx context.Context, userID, postID uint, reason string) (*models.Report, error) {
	reason = strings.TrimSpace(reason)
	if postID == 0 || reason == "" {
		return nil, models.NewValidationError("postId and reason are required")
	}
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, err
	}

	report := &models.Report{
		PostID:       postID,
		ReportedByID: userID,
		Reason:       reason,
		Status:       models.ReportStatusOpen,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) ListReports(ctx context.Context, unreadOnly bool) (*ReportList, error) {
	reports, err := s.reportRepo.List(ctx, unreadOnly)
	if err != nil {
		return nil, err
	}
	unread, err := s.reportRepo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	return &ReportList{Reports: reports, UnreadCount: unread}, nil
}

// MarkSeen flags the report as read. Repeat calls are harmless and the
// status axis is untouched.
func (s *ReportService) MarkSeen(ctx context.Context, id uint) (*models.Report, error) {
	if _, err := s.getReport(ctx, id); err != nil {
		return nil, err
	}
	if err := s.reportRepo.MarkSeen(ctx, id); err != nil {
		return nil, err
	}
	return s.getReport(ctx, id)
}

// Resolve closes the report. Resolution implies seen; there is no way back
// to open.
func (s *ReportService) Resolve(ctx context.Context, id uint) (*models.Report, error) {
	if _, err := s.getReport(ctx, id); err != nil {
		return nil, err
	}
	if err := s.reportRepo.Resolve(ctx, id); err != nil {
		return nil, err
	}
	return s.getReport(ctx, id)
}

func (s *ReportService) getReport(ctx context.Context, id uint) (*models.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Report")
		}
		return nil, err
	}
	return report, nil
}
