package model

import (
	"time"
)

// User is a registered account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email" gorm:"unique"`
	Username     string    `json:"username" db:"username" gorm:"unique"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// SessionUser is the slimmed-down user info kept in the cookie session.
type SessionUser struct {
	ID       int
	Email    string
	Username string
	Role     string
}

// ListEntry is one row of a per-user collection (favorites, watchlist or
// history). The (user, list, media type, item) tuple is the storage key, so a
// repeated add overwrites the snapshot instead of duplicating the row.
type ListEntry struct {
	ID        int       `json:"-" db:"id"`
	UserID    int       `json:"-" db:"user_id" gorm:"uniqueIndex:idx_user_list_item"`
	List      string    `json:"-" db:"list" gorm:"uniqueIndex:idx_user_list_item"`
	MediaType string    `json:"type" db:"media_type" gorm:"uniqueIndex:idx_user_list_item"`
	ItemID    string    `json:"id" db:"item_id" gorm:"uniqueIndex:idx_user_list_item"`
	Title     string    `json:"title" db:"title"`
	Poster    *string   `json:"poster" db:"poster"`
	Rating    *string   `json:"rating" db:"rating"`
	Year      *string   `json:"year" db:"year"`
	AddedAt   time.Time `json:"addedAt" db:"added_at"`
}

// List names for ListEntry. History is the only one with a bulk clear.
const (
	ListFavorites = "favorites"
	ListWatchlist = "watchlist"
	ListHistory   = "history"
)

// Review is a user's rating and write-up for one catalog item. A single row
// per (user, media type, item) is the only copy; the public per-item listing
// and the per-user listing are both queries over these rows.
type Review struct {
	ID        int       `json:"-" db:"id"`
	UserID    int       `json:"userId" db:"user_id" gorm:"uniqueIndex:idx_review_user_item"`
	MediaType string    `json:"type" db:"media_type" gorm:"uniqueIndex:idx_review_user_item"`
	ItemID    string    `json:"itemId" db:"item_id" gorm:"uniqueIndex:idx_review_user_item"`
	Rating    int       `json:"rating" db:"rating"`
	Body      string    `json:"review" db:"body"`
	ItemTitle string    `json:"itemTitle" db:"item_title"`
	UserName  string    `json:"userName" db:"user_name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
