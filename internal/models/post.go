package models

import (
	"time"
)

// Post is a food find shared by a user. The author reference never changes
// after creation, and the attached Location is copied from the author's
// profile at creation time.
type Post struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FoodName     string    `gorm:"not null" json:"foodName"`
	StallName    string    `json:"stallName"`
	Description  string    `gorm:"type:text" json:"description"`
	Category     string    `gorm:"index" json:"category"`
	Tags         []string  `gorm:"serializer:json" json:"tags"`
	ImageURL     string    `gorm:"not null" json:"imageUrl"`
	Rating       *int      `json:"rating"`
	PriceRange   string    `json:"priceRange"`
	LocationID   *uint     `gorm:"index" json:"locationId,omitempty"`
	Location     *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	LocationText string    `json:"locationText"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	User         *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likesCount"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool      `gorm:"->" json:"liked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Like is one user's membership in a post's liker set. The composite unique
// index makes membership idempotent at the storage layer.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"userId"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post;index" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SavedPost is the join row backing User.SavedPosts.
type SavedPost struct {
	UserID uint `gorm:"primaryKey"`
	PostID uint `gorm:"primaryKey"`
}
