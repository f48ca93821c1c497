package service

import (
	"context"
	"errors"
	"strings"

	"tastemap/internal/models"
	"tastemap/internal/policy"
	"tastemap/internal/repository"

	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *CommentService) AddComment(ctx context.Context, userID, postID uint, text string) (*models.Comment, error) {
	if postID == 0 || strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("postId and text are required")
	}
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Text:    strings.TrimSpace(text),
		Visible: true,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByPost returns the post's visible comments, oldest first.
func (s *CommentService) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

// DeleteComment removes the caller's own comment. There is no admin override
// here; moderation uses the dedicated admin endpoints.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, actorID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment")
		}
		return err
	}
	if allowed, reason := policy.CanDeleteComment(comment.UserID, actorID); !allowed {
		return models.NewForbiddenError(reason)
	}
	return s.commentRepo.Delete(ctx, commentID)
}
