// Package service contains the application's business logic.
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

// PostCascader removes a post together with its dependent rows.
// Implemented by ModerationService.
type PostCascader interface {
	DeletePostCascade(ctx context.Context, postID uint) error
}

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	cascade  PostCascader
	isAdmin  func(ctx context.Context, userID uint) (bool, error)
}

type CreatePostInput struct {
	UserID      uint
	FoodName    string
	StallName   string
	Description string
	Category    string
	Tags        []string
	ImageURL    string
	Rating      *int
	PriceRange  string
	Latitude    *float64
	Longitude   *float64
}

// UpdatePostInput carries the partial update. Nil pointers mean "leave as is".
// The post's author and location are not updatable.
type UpdatePostInput struct {
	UserID      uint
	PostID      uint
	FoodName    *string
	StallName   *string
	Description *string
	Category    *string
	Tags        *[]string
	ImageURL    *string
	Rating      *int
	PriceRange  *string
}

// FeedPage is one page of the location-scoped feed.
type FeedPage struct {
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Count int64          `json:"count"`
	Posts []*models.Post `json:"posts"`
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	cascade PostCascader,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		cascade:  cascade,
		isAdmin:  isAdmin,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.FoodName) == "" || strings.TrimSpace(in.ImageURL) == "" {
		return nil, models.NewValidationError("foodName and imageUrl are required")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return nil, models.NewValidationError("Rating must be between 1 and 5")
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User")
		}
		return nil, err
	}
	if user.LocationID == nil {
		return nil, models.NewValidationError("Please select a location (college/city) on your profile before creating posts")
	}

	post := &models.Post{
		FoodName:    strings.TrimSpace(in.FoodName),
		StallName:   in.StallName,
		Description: in.Description,
		Category:    in.Category,
		Tags:        in.Tags,
		ImageURL:    in.ImageURL,
		Rating:      in.Rating,
		PriceRange:  in.PriceRange,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		LocationID:  user.LocationID,
		UserID:      in.UserID,
	}
	if user.Location != nil {
		post.LocationText = user.Location.Name
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) ListPosts(ctx context.Context, filter repository.PostFilter, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.List(ctx, filter, currentUserID)
}

// Feed returns one page of posts from the caller's selected location.
func (s *PostService) Feed(ctx context.Context, userID uint, page, limit int) (*FeedPage, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User")
		}
		return nil, err
	}
	if user.LocationID == nil {
		return nil, models.NewValidationError("No location selected on your profile")
	}

	count, err := s.postRepo.CountByLocation(ctx, *user.LocationID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByLocation(ctx, *user.LocationID, limit, (page-1)*limit, userID)
	if err != nil {
		return nil, err
	}
	return &FeedPage{Page: page, Limit: limit, Count: count, Posts: posts}, nil
}

func (s *PostService) SearchPosts(ctx context.Context, query string, currentUserID uint) ([]*models.Post, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.NewValidationError("q query param required")
	}
	return s.postRepo.Search(ctx, query, currentUserID)
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id, currentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPostsByUser(ctx context.Context, userID, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, currentUserID)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.GetPost(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if allowed, reason := policy.CanUpdatePost(post.UserID, in.UserID); !allowed {
		return nil, models.NewForbiddenError(reason)
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return nil, models.NewValidationError("Rating must be between 1 and 5")
	}

	if in.FoodName != nil {
		if strings.TrimSpace(*in.FoodName) == "" {
			return nil, models.NewValidationError("foodName cannot be empty")
		}
		post.FoodName = strings.TrimSpace(*in.FoodName)
	}
	if in.StallName != nil {
		post.StallName = *in.StallName
	}
	if in.Description != nil {
		post.Description = *in.Description
	}
	if in.Category != nil {
		post.Category = *in.Category
	}
	if in.Tags != nil {
		post.Tags = *in.Tags
	}
	if in.ImageURL != nil {
		if strings.TrimSpace(*in.ImageURL) == "" {
			return nil, models.NewValidationError("imageUrl cannot be empty")
		}
		post.ImageURL = *in.ImageURL
	}
	if in.Rating != nil {
		post.Rating = in.Rating
	}
	if in.PriceRange != nil {
		post.PriceRange = *in.PriceRange
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// DeletePost removes a post and everything hanging off it. Owner or admin.
func (s *PostService) DeletePost(ctx context.Context, postID, actorID uint) error {
	post, err := s.GetPost(ctx, postID, actorID)
	if err != nil {
		return err
	}
	admin, err := s.isAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	if allowed, reason := policy.CanDeletePost(post.UserID, actorID, admin); !allowed {
		return models.NewForbiddenError(reason)
	}
	return s.cascade.DeletePostCascade(ctx, postID)
}

// LikePost adds the caller to the post's liker set and returns the new count.
// A repeat like is reported as an error even though the insert itself is
// conflict-safe.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) (int64, error) {
	if _, err := s.GetPost(ctx, postID, 0); err != nil {
		return 0, err
	}
	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return 0, err
	}
	if liked {
		return 0, models.NewConflictError("You already liked this post")
	}
	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return 0, err
	}
	return s.postRepo.CountLikes(ctx, postID)
}

// UnlikePost is idempotent: removing an absent like is not an error.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) (int64, error) {
	if _, err := s.GetPost(ctx, postID, 0); err != nil {
		return 0, err
	}
	if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		return 0, err
	}
	return s.postRepo.CountLikes(ctx, postID)
}

func (s *PostService) SavePost(ctx context.Context, userID, postID uint) error {
	if _, err := s.GetPost(ctx, postID, 0); err != nil {
		return err
	}
	saved, err := s.postRepo.IsSaved(ctx, userID, postID)
	if err != nil {
		return err
	}
	if saved {
		return models.NewConflictError("Already saved")
	}
	return s.postRepo.Save(ctx, userID, postID)
}

func (s *PostService) UnsavePost(ctx context.Context, userID, postID uint) error {
	if _, err := s.GetPost(ctx, postID, 0); err != nil {
		return err
	}
	return s.postRepo.Unsave(ctx, userID, postID)
}

func (s *PostService) GetSavedPosts(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.postRepo.GetSavedByUser(ctx, userID)
}
