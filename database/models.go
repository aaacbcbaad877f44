package database

import "time"

// User represents a registered user.
// Password always holds the bcrypt hash, never the plaintext.
type User struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Email     string `gorm:"uniqueIndex;not null"`
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Likes     []Like `gorm:"constraint:OnDelete:CASCADE;"`
}

// GovMember is a locally cached congressional member.
// It is created the first time any user likes the member and is never
// updated from the upstream API afterwards. The ID is the upstream
// member identifier.
type GovMember struct {
	ID        string `gorm:"primaryKey"`
	FirstName string
	LastName  string
}

// Like is the edge of the many-to-many relation between users and members.
// The (user_id, item_id) pair is unique so repeated toggles cannot
// accumulate duplicate edges.
type Like struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_likes_user_item"`
	ItemID string `gorm:"not null;uniqueIndex:idx_likes_user_item"`

	Member GovMember `gorm:"foreignKey:ItemID;references:ID;constraint:OnDelete:CASCADE;"`
}
