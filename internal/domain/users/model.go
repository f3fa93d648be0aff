package users

import (
	"time"

	"artistpages/internal/domain/pages"
)

// User is the owner of one or more artist pages. Identity comes from the
// auth provider; only the email is trusted.
type User struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"not null;default:''"`
	Email string `gorm:"not null;uniqueIndex:idx_users_email"`

	Pages []pages.Page `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
