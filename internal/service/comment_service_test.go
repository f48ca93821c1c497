package service

import (
	"context"
	"testing"

	"tastemap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_AddComment(t *testing.T) {
	t.Parallel()

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopPostRepo())
		_, err := svc.AddComment(context.Background(), 1, 0, "")
		assertAppErrorCode(t, err, "VALIDATION_ERROR")
		assert.Equal(t, "postId and text are required", err.(*models.AppError).Message)
	})

	t.Run("post must exist", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(context.Context, uint, uint) (*models.Post, error) {
			return nil, errRecordNotFound()
		}
		svc := NewCommentService(noopCommentRepo(), postRepo)
		_, err := svc.AddComment(context.Background(), 1, 99, "tasty")
		assertAppErrorCode(t, err, "NOT_FOUND")
		assert.Equal(t, "Post not found", err.(*models.AppError).Message)
	})

	t.Run("created visible with trimmed text", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopPostRepo())
		comment, err := svc.AddComment(context.Background(), 2, 1, "  really tasty  ")
		require.NoError(t, err)
		assert.Equal(t, "really tasty", comment.Text)
		assert.True(t, comment.Visible)
		assert.Equal(t, uint(2), comment.UserID)
	})
}

func TestCommentService_DeleteComment(t *testing.T) {
	t.Parallel()

	newRepo := func(authorID uint) *commentRepoStub {
		repo := noopCommentRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: 1, UserID: authorID, Text: "x", Visible: true}, nil
		}
		return repo
	}

	t.Run("author may delete", func(t *testing.T) {
		t.Parallel()
		deleted := false
		repo := newRepo(3)
		repo.deleteFn = func(context.Context, uint) error {
			deleted = true
			return nil
		}
		svc := NewCommentService(repo, noopPostRepo())
		require.NoError(t, svc.DeleteComment(context.Background(), 1, 3))
		assert.True(t, deleted)
	})

	t.Run("non-author forbidden, even admins", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(newRepo(3), noopPostRepo())
		err := svc.DeleteComment(context.Background(), 1, 4)
		assertAppErrorCode(t, err, "FORBIDDEN")
		assert.Equal(t, "Not allowed to delete this comment", err.(*models.AppError).Message)
	})

	t.Run("missing comment 404 before ownership", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.getByIDFn = func(context.Context, uint) (*models.Comment, error) {
			return nil, errRecordNotFound()
		}
		svc := NewCommentService(repo, noopPostRepo())
		err := svc.DeleteComment(context.Background(), 99, 4)
		assertAppErrorCode(t, err, "NOT_FOUND")
	})
}
