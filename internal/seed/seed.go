package seed

import (
	"fmt"
	"log"

	"tastemap/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the given DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// defaultLocations is the built-in reference data. Idempotent: existing rows
// with the same name are left alone.
var defaultLocations = []models.Location{
	{Name: "IIT Delhi", Type: "college", Slug: "iit-delhi"},
	{Name: "IIT Bombay", Type: "college", Slug: "iit-bombay"},
	{Name: "BITS Pilani", Type: "college", Slug: "bits-pilani"},
	{Name: "VIT Vellore", Type: "college", Slug: "vit-vellore"},
	{Name: "Delhi", Type: "city", Slug: "delhi"},
	{Name: "Mumbai", Type: "city", Slug: "mumbai"},
	{Name: "Bangalore", Type: "city", Slug: "bangalore"},
	{Name: "Chennai", Type: "city", Slug: "chennai"},
}

// Locations inserts the built-in location reference data.
func Locations(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaultLocations).Error
}

// ClearAll wipes every domain table. Order matters: dependents first.
func (s *Seeder) ClearAll() error {
	tables := []interface{}{
		&models.Report{},
		&models.Comment{},
		&models.Like{},
		&models.SavedPost{},
		&models.Post{},
		&models.User{},
		&models.Location{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}
	log.Println("Database cleared")
	return nil
}

// Run seeds locations, users (including one admin), posts and engagement.
// Every seeded user gets the password "password123"; the admin account is
// admin@tastemap.dev.
func (s *Seeder) Run(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	if err := Locations(s.db); err != nil {
		return fmt.Errorf("location seeding failed: %w", err)
	}
	var locations []models.Location
	if err := s.db.Find(&locations).Error; err != nil {
		return err
	}

	admin, err := s.factory.CreateUser(func(u *models.User) {
		u.Name = "Admin"
		u.Email = "admin@tastemap.dev"
		u.Role = models.RoleAdmin
		u.LocationID = &locations[0].ID
	})
	if err != nil {
		return fmt.Errorf("admin seeding failed: %w", err)
	}
	log.Printf("Seeded admin user %s", admin.Email)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		loc := locations[i%len(locations)]
		user, err := s.factory.CreateUser(func(u *models.User) {
			u.LocationID = &loc.ID
			u.Location = &loc
		})
		if err != nil {
			return fmt.Errorf("user seeding failed: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users", len(users))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[s.factory.r.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("post seeding failed: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("Seeded %d posts", len(posts))

	// Engagement: comments, likes, saves and a handful of reports.
	var comments, likes, saves, reports int
	for _, post := range posts {
		for i := s.factory.r.Intn(4); i > 0; i-- {
			commenter := users[s.factory.r.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return err
			}
			comments++
		}
		for i := s.factory.r.Intn(6); i > 0; i-- {
			liker := users[s.factory.r.Intn(len(users))]
			err := s.db.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.Like{UserID: liker.ID, PostID: post.ID}).Error
			if err != nil {
				return err
			}
			likes++
		}
		if s.factory.r.Intn(3) == 0 {
			saver := users[s.factory.r.Intn(len(users))]
			err := s.db.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.SavedPost{UserID: saver.ID, PostID: post.ID}).Error
			if err != nil {
				return err
			}
			saves++
		}
		if s.factory.r.Intn(20) == 0 {
			reporter := users[s.factory.r.Intn(len(users))]
			if _, err := s.factory.CreateReport(reporter, post); err != nil {
				return err
			}
			reports++
		}
	}
	log.Printf("Seeded engagement: %d comments, %d likes, %d saves, %d reports",
		comments, likes, saves, reports)

	return nil
}
