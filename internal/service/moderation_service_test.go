package service

import (
	"context"
	"fmt"
	"testing"

	"tastemap/internal/database"
	"tastemap/internal/models"
	"tastemap/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newModerationService(db *gorm.DB) *ModerationService {
	return NewModerationService(
		repository.NewPostRepository(db),
		repository.NewCommentRepository(db),
		repository.NewReportRepository(db),
		repository.NewUserRepository(db),
	)
}

func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "digest",
		Role:     models.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, author *models.User) *models.Post {
	t.Helper()
	post := &models.Post{
		FoodName: "Vada Pav",
		ImageURL: "https://img/vada",
		UserID:   author.ID,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func count(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}

func TestDeletePostCascade_RemovesAllDependents(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db)

	author := seedUser(t, db, "author")
	other := seedUser(t, db, "other")
	post := seedPost(t, db, author)
	keeper := seedPost(t, db, author)

	require.NoError(t, db.Create(&models.Comment{PostID: post.ID, UserID: other.ID, Text: "nice", Visible: true}).Error)
	require.NoError(t, db.Create(&models.Report{PostID: post.ID, ReportedByID: other.ID, Reason: "spam", Status: models.ReportStatusOpen}).Error)
	require.NoError(t, db.Create(&models.Like{PostID: post.ID, UserID: other.ID}).Error)
	require.NoError(t, db.Create(&models.SavedPost{PostID: post.ID, UserID: other.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{PostID: keeper.ID, UserID: other.ID, Text: "keep me", Visible: true}).Error)

	require.NoError(t, svc.DeletePostCascade(context.Background(), post.ID))

	assert.Zero(t, count(t, db, &models.Post{}, "id = ?", post.ID))
	assert.Zero(t, count(t, db, &models.Comment{}, "post_id = ?", post.ID))
	assert.Zero(t, count(t, db, &models.Report{}, "post_id = ?", post.ID))
	assert.Zero(t, count(t, db, &models.Like{}, "post_id = ?", post.ID))
	assert.Zero(t, count(t, db, &models.SavedPost{}, "post_id = ?", post.ID))

	// unrelated post and its comments survive
	assert.Equal(t, int64(1), count(t, db, &models.Post{}, "id = ?", keeper.ID))
	assert.Equal(t, int64(1), count(t, db, &models.Comment{}, "post_id = ?", keeper.ID))
}

func TestDeletePostCascade_RepeatDeleteIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db)

	author := seedUser(t, db, "author")
	post := seedPost(t, db, author)

	require.NoError(t, svc.DeletePostCascade(context.Background(), post.ID))

	err := svc.DeletePostCascade(context.Background(), post.ID)
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestDeleteUserCascade_LeavesNoOrphans(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db)

	target := seedUser(t, db, "target")
	bystander := seedUser(t, db, "bystander")

	targetPost := seedPost(t, db, target)
	bystanderPost := seedPost(t, db, bystander)

	// Content hanging off the target's post, authored by someone else.
	// Without routing through the post cascade these would be orphaned.
	require.NoError(t, db.Create(&models.Comment{PostID: targetPost.ID, UserID: bystander.ID, Text: "yum", Visible: true}).Error)
	require.NoError(t, db.Create(&models.Report{PostID: targetPost.ID, ReportedByID: bystander.ID, Reason: "spam", Status: models.ReportStatusOpen}).Error)

	// The target's own engagement with other people's content.
	require.NoError(t, db.Create(&models.Comment{PostID: bystanderPost.ID, UserID: target.ID, Text: "mine", Visible: true}).Error)
	require.NoError(t, db.Create(&models.Report{PostID: bystanderPost.ID, ReportedByID: target.ID, Reason: "bad", Status: models.ReportStatusOpen}).Error)
	require.NoError(t, db.Create(&models.Like{PostID: bystanderPost.ID, UserID: target.ID}).Error)
	require.NoError(t, db.Create(&models.SavedPost{PostID: bystanderPost.ID, UserID: target.ID}).Error)

	require.NoError(t, svc.DeleteUserCascade(context.Background(), target.ID))

	// The user and everything they authored or filed is gone.
	assert.Zero(t, count(t, db, &models.User{}, "id = ?", target.ID))
	assert.Zero(t, count(t, db, &models.Post{}, "user_id = ?", target.ID))
	assert.Zero(t, count(t, db, &models.Comment{}, "user_id = ?", target.ID))
	assert.Zero(t, count(t, db, &models.Report{}, "reported_by_id = ?", target.ID))
	assert.Zero(t, count(t, db, &models.Like{}, "user_id = ?", target.ID))
	assert.Zero(t, count(t, db, &models.SavedPost{}, "user_id = ?", target.ID))

	// Nothing references the deleted posts anymore, regardless of author.
	assert.Zero(t, count(t, db, &models.Comment{}, "post_id = ?", targetPost.ID))
	assert.Zero(t, count(t, db, &models.Report{}, "post_id = ?", targetPost.ID))

	// The bystander and their post are untouched.
	assert.Equal(t, int64(1), count(t, db, &models.User{}, "id = ?", bystander.ID))
	assert.Equal(t, int64(1), count(t, db, &models.Post{}, "id = ?", bystanderPost.ID))
}

func TestDeleteUserCascade_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db)

	err := svc.DeleteUserCascade(context.Background(), 12345)
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestHideComment(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db)

	author := seedUser(t, db, "author")
	post := seedPost(t, db, author)
	comment := &models.Comment{PostID: post.ID, UserID: author.ID, Text: "rude", Visible: true}
	require.NoError(t, db.Create(comment).Error)

	t.Run("wrong post scope is not found", func(t *testing.T) {
		_, err := svc.HideComment(context.Background(), post.ID+1, comment.ID)
		assertAppErrorCode(t, err, "NOT_FOUND")
	})

	t.Run("hidden comment stays in storage but leaves listings", func(t *testing.T) {
		hidden, err := svc.HideComment(context.Background(), post.ID, comment.ID)
		require.NoError(t, err)
		assert.False(t, hidden.Visible)

		commentRepo := repository.NewCommentRepository(db)
		visible, err := commentRepo.ListByPost(context.Background(), post.ID)
		require.NoError(t, err)
		assert.Empty(t, visible)

		assert.Equal(t, int64(1), count(t, db, &models.Comment{}, "id = ?", comment.ID),
			"hide is non-destructive")
	})
}
