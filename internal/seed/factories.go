// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"tastemap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var (
	categories  = []string{"street-food", "dessert", "breakfast", "lunch", "dinner", "snacks", "drinks"}
	priceRanges = []string{"<50", "50-100", "100-200", "200+"}
	foodTags    = []string{
		"spicy", "veg", "non-veg", "cheesy", "crispy", "sweet", "budget",
		"late-night", "hidden-gem", "must-try", "juicy", "fresh",
	}
)

// CreateUser constructs and persists a sample user. All seeded users share
// the password "password123". Optional override functions may modify the
// generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Password:  string(hashed),
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Role:      models.RoleUser,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a food post authored by the user.
// The post inherits the author's location like the API does.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	rating := f.r.Intn(5) + 1
	post := &models.Post{
		FoodName:    gofakeit.Dinner(),
		StallName:   gofakeit.Company(),
		Description: gofakeit.Sentence(12),
		Category:    categories[f.r.Intn(len(categories))],
		Tags:        f.pickTags(),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		Rating:      &rating,
		PriceRange:  priceRanges[f.r.Intn(len(priceRanges))],
		LocationID:  user.LocationID,
		UserID:      user.ID,
	}
	if user.Location != nil {
		post.LocationText = user.Location.Name
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.r.Intn(90)
	hoursBack := f.r.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment by the user on the post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Text:    gofakeit.Sentence(8),
		Visible: true,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateReport persists a report filed by the user against the post.
func (f *Factory) CreateReport(user *models.User, post *models.Post) (*models.Report, error) {
	reasons := []string{
		"Spam or misleading", "Not food related", "Offensive content",
		"Duplicate post", "Wrong location",
	}
	report := &models.Report{
		PostID:       post.ID,
		ReportedByID: user.ID,
		Reason:       reasons[f.r.Intn(len(reasons))],
		Status:       models.ReportStatusOpen,
	}
	if err := f.db.Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

func (f *Factory) pickTags() []string {
	n := f.r.Intn(3) + 1
	tags := make([]string, 0, n)
	seen := map[string]struct{}{}
	for len(tags) < n {
		t := foodTags[f.r.Intn(len(foodTags))]
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}
