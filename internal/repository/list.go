package repository

import (
	"time"

	"github.com/user/onmovie/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListRepository stores the favorites, watchlist and history collections.
// All three share the ListEntry shape and the (user, list, type, item) key.
type ListRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

// Upsert adds an entry or refreshes its snapshot and timestamp. The unique
// key makes a repeated add idempotent: one row per (user, list, type, item).
func (r *ListRepository) Upsert(entry *model.ListEntry) error {
	entry.AddedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "list"}, {Name: "media_type"}, {Name: "item_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"title", "poster", "rating", "year", "added_at"}),
	}).Create(entry).Error
}

// Remove deletes one entry by key.
func (r *ListRepository) Remove(userID int, list, mediaType, itemID string) error {
	return r.db.Where("user_id = ? AND list = ? AND media_type = ? AND item_id = ?",
		userID, list, mediaType, itemID).Delete(&model.ListEntry{}).Error
}

// Contains reports whether the entry exists.
func (r *ListRepository) Contains(userID int, list, mediaType, itemID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.ListEntry{}).
		Where("user_id = ? AND list = ? AND media_type = ? AND item_id = ?",
			userID, list, mediaType, itemID).
		Count(&count).Error
	return count > 0, err
}

// ListByUser returns one collection newest first.
func (r *ListRepository) ListByUser(userID int, list string) ([]*model.ListEntry, error) {
	var entries []*model.ListEntry
	err := r.db.Where("user_id = ? AND list = ?", userID, list).
		Order("added_at DESC").
		Find(&entries).Error
	return entries, err
}

// Clear deletes a whole collection for one user. Only history exposes this.
func (r *ListRepository) Clear(userID int, list string) error {
	return r.db.Where("user_id = ? AND list = ?", userID, list).Delete(&model.ListEntry{}).Error
}

// CountByUser returns the size of one collection.
func (r *ListRepository) CountByUser(userID int, list string) (int, error) {
	var count int64
	err := r.db.Model(&model.ListEntry{}).Where("user_id = ? AND list = ?", userID, list).Count(&count).Error
	return int(count), err
}
