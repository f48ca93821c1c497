package repository

import (
	"context"

	"tastemap/internal/cache"
	"tastemap/internal/models"

	"gorm.io/gorm"
)

// LocationRepository defines the interface for location reference data.
// Locations are created out of band (seeding), so there is no update/delete.
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id uint) (*models.Location, error)
	List(ctx context.Context) ([]*models.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *models.Location) error {
	err := r.db.WithContext(ctx).Create(location).Error
	if err == nil {
		cache.Invalidate(ctx, cache.LocationsListKey)
	}
	return err
}

func (r *locationRepository) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	var location models.Location
	if err := r.db.WithContext(ctx).First(&location, id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) List(ctx context.Context) ([]*models.Location, error) {
	var locations []*models.Location
	err := cache.Aside(ctx, cache.LocationsListKey, &locations, cache.LocationsTTL, func() error {
		return r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error
	})
	return locations, err
}
