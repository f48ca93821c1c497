package service

import (
	"context"
	"testing"

	"tastemap/internal/models"
	"tastemap/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Hand-written stubs for the repository interfaces. Each method delegates to
// an fn field so individual tests override only what they care about.

type postRepoStub struct {
	createFn          func(context.Context, *models.Post) error
	getByIDFn         func(context.Context, uint, uint) (*models.Post, error)
	listFn            func(context.Context, repository.PostFilter, uint) ([]*models.Post, error)
	listByLocationFn  func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	countByLocationFn func(context.Context, uint) (int64, error)
	getByUserIDFn     func(context.Context, uint, uint) ([]*models.Post, error)
	getIDsByUserIDFn  func(context.Context, uint) ([]uint, error)
	searchFn          func(context.Context, string, uint) ([]*models.Post, error)
	updateFn          func(context.Context, *models.Post) error
	deleteFn          func(context.Context, uint) error
	countLikesFn      func(context.Context, uint) (int64, error)
	isLikedFn         func(context.Context, uint, uint) (bool, error)
	likeFn            func(context.Context, uint, uint) error
	unlikeFn          func(context.Context, uint, uint) error
	isSavedFn         func(context.Context, uint, uint) (bool, error)
	saveFn            func(context.Context, uint, uint) error
	unsaveFn          func(context.Context, uint, uint) error
	getSavedByUserFn  func(context.Context, uint) ([]*models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, p *models.Post) error { return s.createFn(ctx, p) }
func (s *postRepoStub) GetByID(ctx context.Context, id, cur uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, cur)
}
func (s *postRepoStub) List(ctx context.Context, f repository.PostFilter, cur uint) ([]*models.Post, error) {
	return s.listFn(ctx, f, cur)
}
func (s *postRepoStub) ListByLocation(ctx context.Context, loc uint, limit, offset int, cur uint) ([]*models.Post, error) {
	return s.listByLocationFn(ctx, loc, limit, offset, cur)
}
func (s *postRepoStub) CountByLocation(ctx context.Context, loc uint) (int64, error) {
	return s.countByLocationFn(ctx, loc)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, uid, cur uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, uid, cur)
}
func (s *postRepoStub) GetIDsByUserID(ctx context.Context, uid uint) ([]uint, error) {
	return s.getIDsByUserIDFn(ctx, uid)
}
func (s *postRepoStub) Search(ctx context.Context, q string, cur uint) ([]*models.Post, error) {
	return s.searchFn(ctx, q, cur)
}
func (s *postRepoStub) Update(ctx context.Context, p *models.Post) error { return s.updateFn(ctx, p) }
func (s *postRepoStub) Delete(ctx context.Context, id uint) error        { return s.deleteFn(ctx, id) }
func (s *postRepoStub) CountLikes(ctx context.Context, id uint) (int64, error) {
	return s.countLikesFn(ctx, id)
}
func (s *postRepoStub) IsLiked(ctx context.Context, uid, pid uint) (bool, error) {
	return s.isLikedFn(ctx, uid, pid)
}
func (s *postRepoStub) Like(ctx context.Context, uid, pid uint) error { return s.likeFn(ctx, uid, pid) }
func (s *postRepoStub) Unlike(ctx context.Context, uid, pid uint) error { return s.unlikeFn(ctx, uid, pid) }
func (s *postRepoStub) DeleteLikesByPost(context.Context, uint) error   { return nil }
func (s *postRepoStub) DeleteLikesByUser(context.Context, uint) error   { return nil }
func (s *postRepoStub) IsSaved(ctx context.Context, uid, pid uint) (bool, error) {
	return s.isSavedFn(ctx, uid, pid)
}
func (s *postRepoStub) Save(ctx context.Context, uid, pid uint) error { return s.saveFn(ctx, uid, pid) }
func (s *postRepoStub) Unsave(ctx context.Context, uid, pid uint) error { return s.unsaveFn(ctx, uid, pid) }
func (s *postRepoStub) GetSavedByUser(ctx context.Context, uid uint) ([]*models.Post, error) {
	return s.getSavedByUserFn(ctx, uid)
}
func (s *postRepoStub) DeleteSavedByPost(context.Context, uint) error { return nil }
func (s *postRepoStub) DeleteSavedByUser(context.Context, uint) error { return nil }

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, p *models.Post) error {
			p.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1, FoodName: "Momos", ImageURL: "https://img"}, nil
		},
		listFn: func(context.Context, repository.PostFilter, uint) ([]*models.Post, error) {
			return nil, nil
		},
		listByLocationFn: func(context.Context, uint, int, int, uint) ([]*models.Post, error) {
			return nil, nil
		},
		countByLocationFn: func(context.Context, uint) (int64, error) { return 0, nil },
		getByUserIDFn:     func(context.Context, uint, uint) ([]*models.Post, error) { return nil, nil },
		getIDsByUserIDFn:  func(context.Context, uint) ([]uint, error) { return nil, nil },
		searchFn:          func(context.Context, string, uint) ([]*models.Post, error) { return nil, nil },
		updateFn:          func(context.Context, *models.Post) error { return nil },
		deleteFn:          func(context.Context, uint) error { return nil },
		countLikesFn:      func(context.Context, uint) (int64, error) { return 0, nil },
		isLikedFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		likeFn:            func(context.Context, uint, uint) error { return nil },
		unlikeFn:          func(context.Context, uint, uint) error { return nil },
		isSavedFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		saveFn:            func(context.Context, uint, uint) error { return nil },
		unsaveFn:          func(context.Context, uint, uint) error { return nil },
		getSavedByUserFn:  func(context.Context, uint) ([]*models.Post, error) { return nil, nil },
	}
}

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	existsByEmailFn func(context.Context, string) (bool, error)
	updateFieldsFn  func(context.Context, uint, map[string]interface{}) error
	deleteFn        func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, u *models.User) error { return s.createFn(ctx, u) }
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.existsByEmailFn(ctx, email)
}
func (s *userRepoStub) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return s.updateFieldsFn(ctx, id, fields)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopUserRepo() *userRepoStub {
	locID := uint(1)
	return &userRepoStub{
		createFn: func(_ context.Context, u *models.User) error {
			u.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{
				ID:         id,
				Name:       "Asha",
				Email:      "asha@example.com",
				Role:       models.RoleUser,
				LocationID: &locID,
				Location:   &models.Location{ID: locID, Name: "IIT Delhi"},
			}, nil
		},
		getByEmailFn: func(context.Context, string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		existsByEmailFn: func(context.Context, string) (bool, error) { return false, nil },
		updateFieldsFn:  func(context.Context, uint, map[string]interface{}) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn         func(context.Context, *models.Comment) error
	getByIDFn        func(context.Context, uint) (*models.Comment, error)
	getByIDForPostFn func(context.Context, uint, uint) (*models.Comment, error)
	listByPostFn     func(context.Context, uint) ([]*models.Comment, error)
	setVisibleFn     func(context.Context, uint, bool) error
	deleteFn         func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) GetByIDForPost(ctx context.Context, id, postID uint) (*models.Comment, error) {
	return s.getByIDForPostFn(ctx, id, postID)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) SetVisible(ctx context.Context, id uint, v bool) error {
	return s.setVisibleFn(ctx, id, v)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }
func (s *commentRepoStub) DeleteByPost(context.Context, uint) error  { return nil }
func (s *commentRepoStub) DeleteByUser(context.Context, uint) error  { return nil }

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: 1, UserID: 1, Text: "so good", Visible: true}, nil
		},
		getByIDForPostFn: func(_ context.Context, id, postID uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: postID, UserID: 1, Text: "so good", Visible: true}, nil
		},
		listByPostFn: func(context.Context, uint) ([]*models.Comment, error) { return nil, nil },
		setVisibleFn: func(context.Context, uint, bool) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
	}
}

type reportRepoStub struct {
	createFn      func(context.Context, *models.Report) error
	getByIDFn     func(context.Context, uint) (*models.Report, error)
	listFn        func(context.Context, bool) ([]*models.Report, error)
	countUnreadFn func(context.Context) (int64, error)
	markSeenFn    func(context.Context, uint) error
	resolveFn     func(context.Context, uint) error
}

func (s *reportRepoStub) Create(ctx context.Context, r *models.Report) error {
	return s.createFn(ctx, r)
}
func (s *reportRepoStub) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	return s.getByIDFn(ctx, id)
}
func (s *reportRepoStub) List(ctx context.Context, unreadOnly bool) ([]*models.Report, error) {
	return s.listFn(ctx, unreadOnly)
}
func (s *reportRepoStub) CountUnread(ctx context.Context) (int64, error) {
	return s.countUnreadFn(ctx)
}
func (s *reportRepoStub) MarkSeen(ctx context.Context, id uint) error { return s.markSeenFn(ctx, id) }
func (s *reportRepoStub) Resolve(ctx context.Context, id uint) error  { return s.resolveFn(ctx, id) }
func (s *reportRepoStub) DeleteByPost(context.Context, uint) error    { return nil }
func (s *reportRepoStub) DeleteByUser(context.Context, uint) error    { return nil }

func noopReportRepo() *reportRepoStub {
	return &reportRepoStub{
		createFn: func(_ context.Context, r *models.Report) error {
			r.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Report, error) {
			return &models.Report{ID: id, PostID: 1, ReportedByID: 2, Reason: "spam", Status: models.ReportStatusOpen}, nil
		},
		listFn:        func(context.Context, bool) ([]*models.Report, error) { return nil, nil },
		countUnreadFn: func(context.Context) (int64, error) { return 0, nil },
		markSeenFn:    func(context.Context, uint) error { return nil },
		resolveFn:     func(context.Context, uint) error { return nil },
	}
}

type locationRepoStub struct {
	createFn  func(context.Context, *models.Location) error
	getByIDFn func(context.Context, uint) (*models.Location, error)
	listFn    func(context.Context) ([]*models.Location, error)
}

func (s *locationRepoStub) Create(ctx context.Context, l *models.Location) error {
	return s.createFn(ctx, l)
}
func (s *locationRepoStub) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	return s.getByIDFn(ctx, id)
}
func (s *locationRepoStub) List(ctx context.Context) ([]*models.Location, error) {
	return s.listFn(ctx)
}

func noopLocationRepo() *locationRepoStub {
	return &locationRepoStub{
		createFn: func(context.Context, *models.Location) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Location, error) {
			return &models.Location{ID: id, Name: "IIT Delhi", Type: "college"}, nil
		},
		listFn: func(context.Context) ([]*models.Location, error) { return nil, nil },
	}
}

func alwaysAdmin(context.Context, uint) (bool, error) { return true, nil }
func neverAdmin(context.Context, uint) (bool, error)  { return false, nil }

func errRecordNotFound() error { return gorm.ErrRecordNotFound }

// assertAppErrorCode fails unless err is an AppError with the given code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.Code)
}
