package models

import "time"

// Report status values. The workflow has two independent axes: SeenByAdmin
// (unread flag for the admin feed) and Status (open until explicitly
// resolved). Resolving also marks the report seen; there is no transition
// back from resolved.
const (
	ReportStatusOpen     = "open"
	ReportStatusResolved = "resolved"
)

// Report is a user complaint against a post.
type Report struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PostID       uint      `gorm:"not null;index" json:"postId"`
	Post         *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	ReportedByID uint      `gorm:"not null;index" json:"reportedById"`
	ReportedBy   *User     `gorm:"foreignKey:ReportedByID" json:"reportedBy,omitempty"`
	Reason       string    `gorm:"not null" json:"reason"`
	Status       string    `gorm:"not null;default:open;index" json:"status"`
	SeenByAdmin  bool      `gorm:"not null;default:false;index" json:"seenByAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
