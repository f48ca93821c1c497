package service

import (
	"context"
	"errors"
	"log/slog"

	"tastemap/internal/middleware"
	"tastemap/internal/models"
	"tastemap/internal/observability"
	"tastemap/internal/repository"

	"gorm.io/gorm"
)

// ModerationService owns the destructive admin operations: cascading deletes
// of posts and users, and hiding or removing individual comments. Cascades
// are sequential and best-effort rather than transactional; each step is a
// no-op when its rows are already gone, so a partially applied cascade can be
// retried safely.
type ModerationService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	reportRepo  repository.ReportRepository
	userRepo    repository.UserRepository
}

func NewModerationService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
) *ModerationService {
	return &ModerationService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		reportRepo:  reportRepo,
		userRepo:    userRepo,
	}
}

// DeletePostCascade removes the post row and every row referencing it:
// likes, saved entries, comments and reports. Deleting an absent post is a
// not-found error so a repeat delete surfaces as 404.
func (s *ModerationService) DeletePostCascade(ctx context.Context, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post")
		}
		return err
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	if err := s.postRepo.DeleteLikesByPost(ctx, postID); err != nil {
		return err
	}
	if err := s.postRepo.DeleteSavedByPost(ctx, postID); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteByPost(ctx, postID); err != nil {
		return err
	}
	if err := s.reportRepo.DeleteByPost(ctx, postID); err != nil {
		return err
	}

	observability.CascadeDeletes.WithLabelValues("post").Inc()
	middleware.Logger.InfoContext(ctx, "post cascade delete completed", slog.Uint64("post_id", uint64(postID)))
	return nil
}

// DeleteUserCascade removes a user and all their content. Authored posts go
// through the single-post cascade first so comments and reports hanging off
// those posts never outlive them.
func (s *ModerationService) DeleteUserCascade(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("User")
		}
		return err
	}

	postIDs, err := s.postRepo.GetIDsByUserID(ctx, userID)
	if err != nil {
		return err
	}
	for _, postID := range postIDs {
		if err := s.DeletePostCascade(ctx, postID); err != nil {
			// Someone else removed it mid-cascade; nothing left to clean up.
			var appErr *models.AppError
			if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
				continue
			}
			return err
		}
	}

	if err := s.commentRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.reportRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.postRepo.DeleteLikesByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.postRepo.DeleteSavedByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	observability.CascadeDeletes.WithLabelValues("user").Inc()
	middleware.Logger.InfoContext(ctx, "user cascade delete completed",
		slog.Uint64("user_id", uint64(userID)),
		slog.Int("posts_removed", len(postIDs)),
	)
	return nil
}

// HideComment flags the comment invisible without deleting the row. The
// comment must belong to the given post.
func (s *ModerationService) HideComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	if _, err := s.commentRepo.GetByIDForPost(ctx, commentID, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment")
		}
		return nil, err
	}
	if err := s.commentRepo.SetVisible(ctx, commentID, false); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, commentID)
}

// DeleteComment permanently removes a comment, scoped to its post.
func (s *ModerationService) DeleteComment(ctx context.Context, postID, commentID uint) error {
	if _, err := s.commentRepo.GetByIDForPost(ctx, commentID, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment")
		}
		return err
	}
	return s.commentRepo.Delete(ctx, commentID)
}
