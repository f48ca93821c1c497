package service

import (
	"context"
	"testing"

	"tastemap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_CreateReport(t *testing.T) {
	t.Parallel()

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		svc := NewReportService(noopReportRepo(), noopPostRepo())
		_, err := svc.CreateReport(context.Background(), 1, 0, "  ")
		assertAppErrorCode(t, err, "VALIDATION_ERROR")
		assert.Equal(t, "postId and reason are required", err.(*models.AppError).Message)
	})

	t.Run("post must exist", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(context.Context, uint, uint) (*models.Post, error) {
			return nil, errRecordNotFound()
		}
		svc := NewReportService(noopReportRepo(), postRepo)
		_, err := svc.CreateReport(context.Background(), 1, 99, "spam")
		assertAppErrorCode(t, err, "NOT_FOUND")
	})

	t.Run("created open and unseen with trimmed reason", func(t *testing.T) {
		t.Parallel()
		var created *models.Report
		reportRepo := noopReportRepo()
		reportRepo.createFn = func(_ context.Context, r *models.Report) error {
			r.ID = 5
			created = r
			return nil
		}
		svc := NewReportService(reportRepo, noopPostRepo())
		report, err := svc.CreateReport(context.Background(), 2, 1, "  spam  ")
		require.NoError(t, err)
		assert.Equal(t, "spam", created.Reason)
		assert.Equal(t, models.ReportStatusOpen, report.Status)
		assert.False(t, report.SeenByAdmin)
	})
}

func TestReportService_ListReports_SharedPredicate(t *testing.T) {
	t.Parallel()

	all := []*models.Report{
		{ID: 1, SeenByAdmin: true},
		{ID: 2, SeenByAdmin: false},
		{ID: 3, SeenByAdmin: false},
	}
	reportRepo := noopReportRepo()
	reportRepo.listFn = func(_ context.Context, unreadOnly bool) ([]*models.Report, error) {
		if !unreadOnly {
			return all, nil
		}
		var unread []*models.Report
		for _, r := range all {
			if !r.SeenByAdmin {
				unread = append(unread, r)
			}
		}
		return unread, nil
	}
	reportRepo.countUnreadFn = func(context.Context) (int64, error) { return 2, nil }

	svc := NewReportService(reportRepo, noopPostRepo())
	ctx := context.Background()

	full, err := svc.ListReports(ctx, false)
	require.NoError(t, err)
	assert.Len(t, full.Reports, 3)
	assert.Equal(t, int64(2), full.UnreadCount)

	unread, err := svc.ListReports(ctx, true)
	require.NoError(t, err)
	assert.Len(t, unread.Reports, 2)
	assert.Equal(t, int64(2), unread.UnreadCount,
		"filtered list length and unread counter agree")
}

func TestReportService_MarkSeen(t *testing.T) {
	t.Parallel()

	t.Run("unknown report 404", func(t *testing.T) {
		t.Parallel()
		reportRepo := noopReportRepo()
		reportRepo.getByIDFn = func(context.Context, uint) (*models.Report, error) {
			return nil, errRecordNotFound()
		}
		svc := NewReportService(reportRepo, noopPostRepo())
		_, err := svc.MarkSeen(context.Background(), 99)
		assertAppErrorCode(t, err, "NOT_FOUND")
	})

	t.Run("idempotent and leaves status alone", func(t *testing.T) {
		t.Parallel()
		stored := &models.Report{ID: 1, Status: models.ReportStatusOpen, SeenByAdmin: false}
		reportRepo := noopReportRepo()
		reportRepo.getByIDFn = func(context.Context, uint) (*models.Report, error) { return stored, nil }
		reportRepo.markSeenFn = func(context.Context, uint) error {
			stored.SeenByAdmin = true
			return nil
		}

		svc := NewReportService(reportRepo, noopPostRepo())
		ctx := context.Background()

		first, err := svc.MarkSeen(ctx, 1)
		require.NoError(t, err)
		assert.True(t, first.SeenByAdmin)
		assert.Equal(t, models.ReportStatusOpen, first.Status)

		second, err := svc.MarkSeen(ctx, 1)
		require.NoError(t, err)
		assert.True(t, second.SeenByAdmin)
	})
}

func TestReportService_Resolve_ForcesSeen(t *testing.T) {
	t.Parallel()

	stored := &models.Report{ID: 1, Status: models.ReportStatusOpen, SeenByAdmin: false}
	reportRepo := noopReportRepo()
	reportRepo.getByIDFn = func(context.Context, uint) (*models.Report, error) { return stored, nil }
	reportRepo.resolveFn = func(context.Context, uint) error {
		stored.Status = models.ReportStatusResolved
		stored.SeenByAdmin = true
		return nil
	}

	svc := NewReportService(reportRepo, noopPostRepo())
	report, err := svc.Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusResolved, report.Status)
	assert.True(t, report.SeenByAdmin, "a resolved report can never count as unread")
}
